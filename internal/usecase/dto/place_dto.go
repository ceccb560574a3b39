package dto

import "github.com/places-microservice/internal/domain"

// CreatePlaceRequest - тело POST /api/places
type CreatePlaceRequest struct {
	Title       string `json:"title" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
	Address     string `json:"address" validate:"required,notblank"`
	Creator     string `json:"creator" validate:"required,uuid"`
}

// UpdatePlaceRequest - тело PATCH /api/places/:placeId.
// Остальные поля (address, location, creator) схемой не принимаются.
type UpdatePlaceRequest struct {
	Title       string `json:"title" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
}

// PlaceResponse - ответ с одним местом
type PlaceResponse struct {
	Place *domain.Place `json:"place"`
}

// PlacesResponse - ответ со списком мест пользователя
type PlacesResponse struct {
	Places []*domain.Place `json:"places"`
}
