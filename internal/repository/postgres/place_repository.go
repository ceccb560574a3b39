package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
	apperrors "github.com/places-microservice/internal/pkg/errors"
	"go.uber.org/zap"
)

const placeColumns = `id, title, description, address, lat, lng, image, creator, created_at, updated_at`

type placeRow struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Address     string    `db:"address"`
	Lat         float64   `db:"lat"`
	Lng         float64   `db:"lng"`
	Image       string    `db:"image"`
	Creator     string    `db:"creator"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r placeRow) toDomain() *domain.Place {
	return &domain.Place{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Address:     r.Address,
		Location:    domain.Coordinates{Lat: r.Lat, Lng: r.Lng},
		Image:       r.Image,
		Creator:     r.Creator,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type placeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPlaceRepository(db *DB) repository.PlaceRepository {
	return &placeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *placeRepository) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places WHERE id = $1`

	var row placeRow
	err := conn(ctx, r.db).GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrPlaceNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get place by ID", zap.String("id", id), zap.Error(err))
		return nil, apperrors.ErrStorageUnavailable.Wrap(err)
	}

	return row.toDomain(), nil
}

func (r *placeRepository) ListByCreator(ctx context.Context, creatorID string) ([]*domain.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places WHERE creator = $1 ORDER BY created_at, id`

	var rows []placeRow
	if err := conn(ctx, r.db).SelectContext(ctx, &rows, query, creatorID); err != nil {
		r.logger.Error("Failed to list places by creator", zap.String("creator", creatorID), zap.Error(err))
		return nil, apperrors.ErrStorageUnavailable.Wrap(err)
	}

	places := make([]*domain.Place, 0, len(rows))
	for _, row := range rows {
		places = append(places, row.toDomain())
	}
	return places, nil
}

func (r *placeRepository) Create(ctx context.Context, place *domain.Place) error {
	query := `
		INSERT INTO places (id, title, description, address, lat, lng, image, creator)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	id := uuid.New().String()
	err := conn(ctx, r.db).QueryRowxContext(ctx, query,
		id, place.Title, place.Description, place.Address,
		place.Location.Lat, place.Location.Lng, place.Image, place.Creator,
	).Scan(&place.CreatedAt, &place.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to insert place", zap.String("creator", place.Creator), zap.Error(err))
		return apperrors.ErrStorageUnavailable.Wrap(err)
	}

	place.ID = id
	return nil
}

func (r *placeRepository) Update(ctx context.Context, place *domain.Place) error {
	query := `
		UPDATE places
		SET title = $2, description = $3, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := conn(ctx, r.db).QueryRowxContext(ctx, query, place.ID, place.Title, place.Description).
		Scan(&place.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrPlaceNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update place", zap.String("id", place.ID), zap.Error(err))
		return apperrors.ErrStorageUnavailable.Wrap(err)
	}
	return nil
}

func (r *placeRepository) Delete(ctx context.Context, id string) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM places WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete place", zap.String("id", id), zap.Error(err))
		return apperrors.ErrStorageUnavailable.Wrap(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.ErrStorageUnavailable.Wrap(err)
	}
	if affected == 0 {
		return apperrors.ErrPlaceNotFound
	}
	return nil
}
