package usecase

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
	"github.com/places-microservice/internal/pkg/errors"
	"github.com/places-microservice/internal/pkg/validator"
	"github.com/places-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// PlaceUseCaseConfig - параметры PlaceUseCase
type PlaceUseCaseConfig struct {
	DefaultImage     string
	EnforceOwnership bool
	EventsStream     string
}

// PlaceUseCase - CRUD мест. Создание и удаление меняют место и список мест
// владельца в одной транзакции.
type PlaceUseCase struct {
	placeRepo  repository.PlaceRepository
	userRepo   repository.UserRepository
	tx         repository.Transactor
	geocoder   repository.Geocoder
	streamRepo repository.StreamRepository // nil - события отключены
	cfg        PlaceUseCaseConfig
	logger     *zap.Logger
}

func NewPlaceUseCase(
	placeRepo repository.PlaceRepository,
	userRepo repository.UserRepository,
	tx repository.Transactor,
	geocoder repository.Geocoder,
	streamRepo repository.StreamRepository,
	cfg PlaceUseCaseConfig,
	logger *zap.Logger,
) *PlaceUseCase {
	if cfg.EventsStream == "" {
		cfg.EventsStream = domain.StreamPlaceEvents
	}
	return &PlaceUseCase{
		placeRepo:  placeRepo,
		userRepo:   userRepo,
		tx:         tx,
		geocoder:   geocoder,
		streamRepo: streamRepo,
		cfg:        cfg,
		logger:     logger,
	}
}

// GetPlaceByID возвращает место по ID
func (uc *PlaceUseCase) GetPlaceByID(ctx context.Context, placeID string) (*domain.Place, error) {
	if !isValidID(placeID) {
		return nil, errors.ErrPlaceNotFound
	}

	place, err := uc.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		return nil, uc.storageError(err, errors.ErrPlaceNotFound, "Failed to get place", zap.String("place_id", placeID))
	}

	return place, nil
}

// ListPlacesByUser возвращает места пользователя. Пустой результат - ErrPlacesNotFound.
func (uc *PlaceUseCase) ListPlacesByUser(ctx context.Context, userID string) ([]*domain.Place, error) {
	if !isValidID(userID) {
		return nil, errors.ErrPlacesNotFound
	}

	places, err := uc.placeRepo.ListByCreator(ctx, userID)
	if err != nil {
		return nil, uc.storageError(err, errors.ErrPlacesNotFound, "Failed to list places", zap.String("user_id", userID))
	}

	if len(places) == 0 {
		return nil, errors.ErrPlacesNotFound
	}

	return places, nil
}

// CreatePlace геокодирует адрес, проверяет создателя и атомарно сохраняет
// место вместе с обновлённым списком мест пользователя.
func (uc *PlaceUseCase) CreatePlace(ctx context.Context, req dto.CreatePlaceRequest) (*domain.Place, error) {
	// Валидация до любого I/O
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	coords, err := uc.geocoder.Geocode(ctx, req.Address)
	if err != nil {
		if _, ok := errors.As(err); ok {
			return nil, err
		}
		uc.logger.Error("Geocoder failed", zap.Error(err))
		return nil, errors.ErrGeocoderUnavailable.Wrap(err)
	}

	exists, err := uc.userRepo.Exists(ctx, req.Creator)
	if err != nil {
		uc.logger.Error("Failed to check creator", zap.String("creator", req.Creator), zap.Error(err))
		return nil, errors.ErrStorageUnavailable.Wrap(err)
	}
	if !exists {
		return nil, errors.ErrUserNotFound
	}

	place := &domain.Place{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		Location:    *coords,
		Image:       uc.cfg.DefaultImage,
		Creator:     req.Creator,
	}

	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.placeRepo.Create(ctx, place); err != nil {
			return err
		}
		return uc.userRepo.AddPlace(ctx, place.Creator, place.ID)
	})
	if err != nil {
		uc.logger.Error("Failed to create place",
			zap.String("creator", req.Creator),
			zap.Error(err),
		)
		return nil, errors.ErrStorageUnavailable.Wrap(err)
	}

	uc.logger.Info("Place created",
		zap.String("place_id", place.ID),
		zap.String("creator", place.Creator),
	)
	uc.publish(ctx, domain.PlaceCreated, place)

	return place, nil
}

// UpdatePlace меняет только title и description. actorID - вызывающий
// пользователь; сверяется с создателем, если включена проверка владения.
func (uc *PlaceUseCase) UpdatePlace(
	ctx context.Context,
	placeID string,
	req dto.UpdatePlaceRequest,
	actorID string,
) (*domain.Place, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	place, err := uc.GetPlaceByID(ctx, placeID)
	if err != nil {
		return nil, err
	}

	if err := uc.checkOwner(place, actorID); err != nil {
		return nil, err
	}

	place.Title = req.Title
	place.Description = req.Description

	if err := uc.placeRepo.Update(ctx, place); err != nil {
		return nil, uc.storageError(err, errors.ErrPlaceNotFound, "Failed to update place", zap.String("place_id", placeID))
	}

	return place, nil
}

// DeletePlace атомарно удаляет место и убирает его ID из списка мест владельца
func (uc *PlaceUseCase) DeletePlace(ctx context.Context, placeID string, actorID string) error {
	place, err := uc.GetPlaceByID(ctx, placeID)
	if err != nil {
		return err
	}

	if err := uc.checkOwner(place, actorID); err != nil {
		return err
	}

	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.placeRepo.Delete(ctx, place.ID); err != nil {
			return err
		}
		return uc.userRepo.RemovePlace(ctx, place.Creator, place.ID)
	})
	if err != nil {
		uc.logger.Error("Failed to delete place",
			zap.String("place_id", place.ID),
			zap.Error(err),
		)
		return errors.ErrStorageUnavailable.Wrap(err)
	}

	uc.logger.Info("Place deleted",
		zap.String("place_id", place.ID),
		zap.String("creator", place.Creator),
	)
	uc.publish(ctx, domain.PlaceDeleted, place)

	return nil
}

func (uc *PlaceUseCase) checkOwner(place *domain.Place, actorID string) error {
	if !uc.cfg.EnforceOwnership || place.Creator == actorID {
		return nil
	}

	uc.logger.Warn("Place modification by non-owner rejected",
		zap.String("place_id", place.ID),
		zap.String("actor", actorID),
	)
	return errors.ErrForbidden
}

// storageError оставляет notFound как есть, остальное сводит к ErrStorageUnavailable
func (uc *PlaceUseCase) storageError(err error, notFound *errors.AppError, msg string, fields ...zap.Field) error {
	if stderrors.Is(err, notFound) {
		return notFound
	}

	uc.logger.Error(msg, append(fields, zap.Error(err))...)
	return errors.ErrStorageUnavailable.Wrap(err)
}

// publish отправляет событие после коммита. Ошибка публикации не отменяет операцию.
func (uc *PlaceUseCase) publish(ctx context.Context, t domain.PlaceEventType, place *domain.Place) {
	if uc.streamRepo == nil {
		return
	}

	event := domain.NewPlaceEvent(t, place)
	if err := uc.streamRepo.PublishToStream(ctx, uc.cfg.EventsStream, event); err != nil {
		uc.logger.Warn("Failed to publish place event",
			zap.String("type", string(t)),
			zap.String("place_id", place.ID),
			zap.Error(err),
		)
	}
}

func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
