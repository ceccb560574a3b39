package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
	apperrors "github.com/places-microservice/internal/pkg/errors"
	"go.uber.org/zap"
)

type userRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, name, email, places::text[] FROM users WHERE id = $1`

	var user domain.User
	var places pq.StringArray
	err := conn(ctx, r.db).QueryRowxContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &places,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get user by ID", zap.String("id", id), zap.Error(err))
		return nil, apperrors.ErrStorageUnavailable.Wrap(err)
	}

	user.Places = []string(places)
	return &user, nil
}

func (r *userRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := conn(ctx, r.db).GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id)
	if err != nil {
		r.logger.Error("Failed to check user existence", zap.String("id", id), zap.Error(err))
		return false, apperrors.ErrStorageUnavailable.Wrap(err)
	}
	return exists, nil
}

func (r *userRepository) AddPlace(ctx context.Context, userID, placeID string) error {
	query := `UPDATE users SET places = array_append(places, $2::uuid) WHERE id = $1`
	return r.updatePlaces(ctx, query, userID, placeID)
}

func (r *userRepository) RemovePlace(ctx context.Context, userID, placeID string) error {
	query := `UPDATE users SET places = array_remove(places, $2::uuid) WHERE id = $1`
	return r.updatePlaces(ctx, query, userID, placeID)
}

// updatePlaces выполняет изменение списка мест; отсутствие пользователя
// считается ошибкой, чтобы транзакция откатилась целиком.
func (r *userRepository) updatePlaces(ctx context.Context, query, userID, placeID string) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, query, userID, placeID)
	if err != nil {
		r.logger.Error("Failed to update user places",
			zap.String("user_id", userID),
			zap.String("place_id", placeID),
			zap.Error(err),
		)
		return apperrors.ErrStorageUnavailable.Wrap(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.ErrStorageUnavailable.Wrap(err)
	}
	if affected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
