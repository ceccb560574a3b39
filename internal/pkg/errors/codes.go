package errors

import "net/http"

var (
	ErrValidationFailed = New(
		"VALIDATION_FAILED",
		"Invalid inputs passed, please check your data",
		http.StatusUnprocessableEntity,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Authentication failed",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = New(
		"INVALID_TOKEN",
		"Authentication failed",
		http.StatusForbidden,
	)

	ErrForbidden = New(
		"FORBIDDEN",
		"You are not allowed to modify this place",
		http.StatusForbidden,
	)

	ErrPlaceNotFound = New(
		"PLACE_NOT_FOUND",
		"Could not find a place for the provided id",
		http.StatusNotFound,
	)

	ErrPlacesNotFound = New(
		"PLACES_NOT_FOUND",
		"Could not find places for the provided user id",
		http.StatusNotFound,
	)

	ErrUserNotFound = New(
		"USER_NOT_FOUND",
		"Could not find user for the provided id",
		http.StatusNotFound,
	)

	ErrAddressNotFound = New(
		"ADDRESS_NOT_FOUND",
		"Could not find location for the specified address",
		http.StatusNotFound,
	)

	ErrGeocoderUnavailable = New(
		"GEOCODER_UNAVAILABLE",
		"Geocoding service failed, please try again later",
		http.StatusInternalServerError,
	)

	ErrStorageUnavailable = New(
		"STORAGE_UNAVAILABLE",
		"Something went wrong, please try again later",
		http.StatusInternalServerError,
	)

	ErrRouteNotFound = New(
		"ROUTE_NOT_FOUND",
		"Could not find this route",
		http.StatusNotFound,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
