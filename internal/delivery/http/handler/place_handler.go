package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/places-microservice/internal/delivery/http/middleware"
	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/pkg/errors"
	"github.com/places-microservice/internal/pkg/utils"
	"github.com/places-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

const deletedPlaceMessage = "Deleted place."

// PlaceService - операции над местами, которые нужны обработчику
type PlaceService interface {
	GetPlaceByID(ctx context.Context, placeID string) (*domain.Place, error)
	ListPlacesByUser(ctx context.Context, userID string) ([]*domain.Place, error)
	CreatePlace(ctx context.Context, req dto.CreatePlaceRequest) (*domain.Place, error)
	UpdatePlace(ctx context.Context, placeID string, req dto.UpdatePlaceRequest, actorID string) (*domain.Place, error)
	DeletePlace(ctx context.Context, placeID string, actorID string) error
}

// PlaceHandler - обработчик запросов /api/places
type PlaceHandler struct {
	placeUC PlaceService
	logger  *zap.Logger
}

// NewPlaceHandler - создание нового PlaceHandler
func NewPlaceHandler(placeUC PlaceService, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		placeUC: placeUC,
		logger:  logger,
	}
}

// GetPlaceByID godoc
// @Summary      Get place by ID
// @Tags         places
// @Produce      json
// @Param        placeId  path      string  true  "Place ID"
// @Success      200      {object}  dto.PlaceResponse
// @Failure      404      {object}  utils.ErrorResponse
// @Failure      500      {object}  utils.ErrorResponse
// @Router       /places/{placeId} [get]
func (h *PlaceHandler) GetPlaceByID(c *fiber.Ctx) error {
	place, err := h.placeUC.GetPlaceByID(c.Context(), c.Params("placeId"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, dto.PlaceResponse{Place: place})
}

// GetPlacesByUserID godoc
// @Summary      List places created by a user
// @Tags         places
// @Produce      json
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  dto.PlacesResponse
// @Failure      404     {object}  utils.ErrorResponse
// @Failure      500     {object}  utils.ErrorResponse
// @Router       /places/user/{userId} [get]
func (h *PlaceHandler) GetPlacesByUserID(c *fiber.Ctx) error {
	places, err := h.placeUC.ListPlacesByUser(c.Context(), c.Params("userId"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, dto.PlacesResponse{Places: places})
}

// CreatePlace godoc
// @Summary      Create place
// @Description  Geocodes the address and links the place to its creator atomically
// @Tags         places
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.CreatePlaceRequest  true  "Place"
// @Success      201      {object}  dto.PlaceResponse
// @Failure      401      {object}  utils.ErrorResponse
// @Failure      403      {object}  utils.ErrorResponse
// @Failure      404      {object}  utils.ErrorResponse
// @Failure      422      {object}  utils.ErrorResponse
// @Failure      500      {object}  utils.ErrorResponse
// @Router       /places [post]
func (h *PlaceHandler) CreatePlace(c *fiber.Ctx) error {
	var req dto.CreatePlaceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidationFailed.Wrap(err))
	}

	place, err := h.placeUC.CreatePlace(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusCreated, dto.PlaceResponse{Place: place})
}

// UpdatePlace godoc
// @Summary      Update place title and description
// @Tags         places
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        placeId  path      string                  true  "Place ID"
// @Param        request  body      dto.UpdatePlaceRequest  true  "Changes"
// @Success      200      {object}  dto.PlaceResponse
// @Failure      401      {object}  utils.ErrorResponse
// @Failure      403      {object}  utils.ErrorResponse
// @Failure      404      {object}  utils.ErrorResponse
// @Failure      422      {object}  utils.ErrorResponse
// @Failure      500      {object}  utils.ErrorResponse
// @Router       /places/{placeId} [patch]
func (h *PlaceHandler) UpdatePlace(c *fiber.Ctx) error {
	var req dto.UpdatePlaceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidationFailed.Wrap(err))
	}

	place, err := h.placeUC.UpdatePlace(c.Context(), c.Params("placeId"), req, middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, dto.PlaceResponse{Place: place})
}

// DeletePlace godoc
// @Summary      Delete place
// @Description  Removes the place and unlinks it from its creator atomically
// @Tags         places
// @Produce      json
// @Security     BearerAuth
// @Param        placeId  path      string  true  "Place ID"
// @Success      200      {object}  utils.MessageResponse
// @Failure      401      {object}  utils.ErrorResponse
// @Failure      403      {object}  utils.ErrorResponse
// @Failure      404      {object}  utils.ErrorResponse
// @Failure      500      {object}  utils.ErrorResponse
// @Router       /places/{placeId} [delete]
func (h *PlaceHandler) DeletePlace(c *fiber.Ctx) error {
	placeID := c.Params("placeId")
	if err := h.placeUC.DeletePlace(c.Context(), placeID, middleware.UserID(c)); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, utils.MessageResponse{Message: deletedPlaceMessage})
}
