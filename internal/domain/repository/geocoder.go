package repository

import (
	"context"

	"github.com/places-microservice/internal/domain"
)

// Geocoder переводит почтовый адрес в координаты.
// Возвращает ErrAddressNotFound или ErrGeocoderUnavailable.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*domain.Coordinates, error)
}
