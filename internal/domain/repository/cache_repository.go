package repository

import (
	"context"
	"time"

	"github.com/places-microservice/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу (nil, nil при промахе)
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetCoordinates получает результат геокодирования адреса
	GetCoordinates(ctx context.Context, address string) (*domain.Coordinates, error)

	// SetCoordinates сохраняет результат геокодирования адреса
	SetCoordinates(ctx context.Context, address string, coords *domain.Coordinates, ttl time.Duration) error
}
