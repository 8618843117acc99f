package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/poi-explorer/internal/delivery/http/middleware"
	"github.com/poi-explorer/internal/pkg/errors"
	"github.com/poi-explorer/internal/pkg/utils"
	"github.com/poi-explorer/internal/pkg/validator"
	"github.com/poi-explorer/internal/usecase"
	"github.com/poi-explorer/internal/usecase/dto"
)

// DistanceHandler - обработчик запросов расстояния
type DistanceHandler struct {
	distanceUC *usecase.DistanceUseCase
	logger     *zap.Logger
}

func NewDistanceHandler(distanceUC *usecase.DistanceUseCase, logger *zap.Logger) *DistanceHandler {
	return &DistanceHandler{
		distanceUC: distanceUC,
		logger:     logger,
	}
}

// BetweenPOIs - расстояние между двумя POI пользователя
func (h *DistanceHandler) BetweenPOIs(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req dto.POIDistanceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.distanceUC.BetweenPOIs(c.Context(), userID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// BetweenCoordinates - расстояние между двумя парами координат
func (h *DistanceHandler) BetweenCoordinates(c *fiber.Ctx) error {
	var req dto.CoordinateDistanceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.distanceUC.BetweenCoordinates(req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
