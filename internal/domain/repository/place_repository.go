package repository

import (
	"context"

	"github.com/places-microservice/internal/domain"
)

// PlaceRepository определяет методы для работы с местами.
// Если в ctx открыта транзакция (см. Transactor), запись идёт в неё.
type PlaceRepository interface {
	// GetByID возвращает место по ID или ErrPlaceNotFound
	GetByID(ctx context.Context, id string) (*domain.Place, error)

	// ListByCreator возвращает все места пользователя (пустой срез, если мест нет)
	ListByCreator(ctx context.Context, creatorID string) ([]*domain.Place, error)

	// Create сохраняет место и заполняет сгенерированный ID
	Create(ctx context.Context, place *domain.Place) error

	// Update перезаписывает title и description
	Update(ctx context.Context, place *domain.Place) error

	// Delete удаляет место
	Delete(ctx context.Context, id string) error
}

// UserRepository - доступ к пользователям и их спискам мест
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Exists(ctx context.Context, id string) (bool, error)

	// AddPlace добавляет placeID в список мест пользователя
	AddPlace(ctx context.Context, userID, placeID string) error

	// RemovePlace удаляет placeID из списка мест пользователя
	RemovePlace(ctx context.Context, userID, placeID string) error
}

// Transactor выполняет fn в одной транзакции: коммит при nil,
// откат при ошибке или панике.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
