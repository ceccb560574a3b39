package mapbox

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/places-microservice/internal/config"
	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
	apperrors "github.com/places-microservice/internal/pkg/errors"
	"github.com/places-microservice/internal/pkg/utils"
	"go.uber.org/zap"
)

// geocodeResponse - ответ Mapbox Geocoding API (FeatureCollection)
type geocodeResponse struct {
	Type     string           `json:"type"`
	Features []geocodeFeature `json:"features"`
}

type geocodeFeature struct {
	ID        string    `json:"id"`
	PlaceName string    `json:"place_name"`
	Relevance float64   `json:"relevance"`
	Center    []float64 `json:"center"` // [lng, lat]
}

type client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	logger      *zap.Logger
}

// NewMapboxClient создает геокодер поверх Mapbox Geocoding API
func NewMapboxClient(cfg *config.MapboxConfig, logger *zap.Logger) repository.Geocoder {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		logger:      logger,
	}
}

// Geocode возвращает координаты первого найденного объекта для адреса
func (c *client) Geocode(ctx context.Context, address string) (*domain.Coordinates, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, apperrors.ErrAddressNotFound
	}

	path := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json", c.baseURL, url.PathEscape(address))
	endpoint := fmt.Sprintf("%s?access_token=%s&limit=1", path, url.QueryEscape(c.accessToken))

	c.logger.Debug("Calling Mapbox Geocoding API", zap.String("address", address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		err = redactURL(err, path)
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, apperrors.ErrGeocoderUnavailable.Wrap(fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = redactURL(err, path)
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, apperrors.ErrGeocoderUnavailable.Wrap(fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("Mapbox API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, apperrors.ErrGeocoderUnavailable.Wrap(
			fmt.Errorf("mapbox API error: status %d, body: %s", resp.StatusCode, string(body)))
	}

	var geoResp geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&geoResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, apperrors.ErrGeocoderUnavailable.Wrap(fmt.Errorf("failed to decode response: %w", err))
	}

	if len(geoResp.Features) == 0 {
		c.logger.Info("Address not found", zap.String("address", address))
		return nil, apperrors.ErrAddressNotFound
	}

	center := geoResp.Features[0].Center
	if len(center) != 2 || !utils.ValidateCoordinates(center[1], center[0]) {
		c.logger.Error("Mapbox API returned invalid center", zap.Float64s("center", center))
		return nil, apperrors.ErrGeocoderUnavailable.Wrap(fmt.Errorf("invalid center %v", center))
	}

	coords := &domain.Coordinates{Lat: center[1], Lng: center[0]}

	c.logger.Debug("Mapbox Geocoding API call successful",
		zap.String("place_name", geoResp.Features[0].PlaceName),
		zap.Float64("lat", coords.Lat),
		zap.Float64("lng", coords.Lng))

	return coords, nil
}

// redactURL заменяет URL с access_token в *url.Error на адрес без query
func redactURL(err error, safe string) error {
	var urlErr *url.Error
	if !stderrors.As(err, &urlErr) {
		return err
	}
	return &url.Error{Op: urlErr.Op, URL: safe, Err: urlErr.Err}
}
