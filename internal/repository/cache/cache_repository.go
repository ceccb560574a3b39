package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const geocodeKeyPrefix = "geocode:"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetCoordinates получает координаты адреса из кеша
func (r *cacheRepository) GetCoordinates(ctx context.Context, address string) (*domain.Coordinates, error) {
	data, err := r.Get(ctx, GeocodeKey(address))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var coords domain.Coordinates
	if err := json.Unmarshal(data, &coords); err != nil {
		r.logger.Error("Failed to unmarshal coordinates from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal coordinates: %w", err)
	}

	return &coords, nil
}

// SetCoordinates сохраняет координаты адреса в кеше
func (r *cacheRepository) SetCoordinates(ctx context.Context, address string, coords *domain.Coordinates, ttl time.Duration) error {
	data, err := json.Marshal(coords)
	if err != nil {
		r.logger.Error("Failed to marshal coordinates", zap.Error(err))
		return fmt.Errorf("marshal coordinates: %w", err)
	}

	return r.Set(ctx, GeocodeKey(address), data, ttl)
}

// GeocodeKey нормализует адрес: регистр и лишние пробелы не влияют на ключ
func GeocodeKey(address string) string {
	return geocodeKeyPrefix + strings.ToLower(strings.Join(strings.Fields(address), " "))
}
