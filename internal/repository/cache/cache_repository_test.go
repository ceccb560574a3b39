package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/repository/cache"
)

// getTestRedisClient creates a Redis client for testing
func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     "localhost:6379",
		Password: "",
		DB:       1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	return client
}

func TestGeocodeKey(t *testing.T) {
	assert.Equal(t,
		cache.GeocodeKey("20 W 34th St, New York, NY 10001"),
		cache.GeocodeKey("  20 w 34th st,   New York, NY 10001 "),
	)
	assert.Equal(t, "geocode:paris", cache.GeocodeKey("Paris"))
}

func TestCacheRepository_Coordinates(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := cache.NewCacheRepository(cache.NewRedisFromClient(client, zap.NewNop()))
	ctx := context.Background()
	address := "20 W 34th St, New York, NY 10001"
	defer client.Del(ctx, cache.GeocodeKey(address))

	miss, err := repo.GetCoordinates(ctx, address)
	require.NoError(t, err)
	assert.Nil(t, miss)

	coords := &domain.Coordinates{Lat: 40.7484474, Lng: -73.9871516}
	require.NoError(t, repo.SetCoordinates(ctx, address, coords, time.Minute))

	hit, err := repo.GetCoordinates(ctx, "20 w 34th st, new york, ny 10001")
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, *coords, *hit)

	require.NoError(t, repo.Delete(ctx, cache.GeocodeKey(address)))
	miss, err = repo.GetCoordinates(ctx, address)
	require.NoError(t, err)
	assert.Nil(t, miss)
}
