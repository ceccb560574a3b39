package mapbox

import (
	"context"
	"time"

	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

// CachedGeocoder кеширует успешные результаты геокодирования.
// Ошибки кеша только логируются: запрос уходит напрямую в геокодер.
type CachedGeocoder struct {
	next   repository.Geocoder
	cache  repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedGeocoder(
	next repository.Geocoder,
	cache repository.CacheRepository,
	ttl time.Duration,
	logger *zap.Logger,
) *CachedGeocoder {
	return &CachedGeocoder{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (g *CachedGeocoder) Geocode(ctx context.Context, address string) (*domain.Coordinates, error) {
	cached, err := g.cache.GetCoordinates(ctx, address)
	if err != nil {
		g.logger.Warn("Geocode cache read failed", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	coords, err := g.next.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}

	if err := g.cache.SetCoordinates(ctx, address, coords, g.ttl); err != nil {
		g.logger.Warn("Geocode cache write failed", zap.Error(err))
	}

	return coords, nil
}
