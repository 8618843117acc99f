package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/poi-explorer/internal/delivery/http/middleware"
	"github.com/poi-explorer/internal/pkg/errors"
	"github.com/poi-explorer/internal/pkg/utils"
	"github.com/poi-explorer/internal/pkg/validator"
	"github.com/poi-explorer/internal/usecase"
	"github.com/poi-explorer/internal/usecase/dto"
)

const defaultNearbyRadiusKm = 5

// POIHandler - обработчик CRUD и nearby-запросов POI
type POIHandler struct {
	poiUC    *usecase.POIUseCase
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

func NewPOIHandler(
	poiUC *usecase.POIUseCase,
	searchUC *usecase.SearchUseCase,
	logger *zap.Logger,
) *POIHandler {
	return &POIHandler{
		poiUC:    poiUC,
		searchUC: searchUC,
		logger:   logger,
	}
}

// GetAll - все POI пользователя, новые первыми.
// Необязательный фильтр ?category=food,museum
func (h *POIHandler) GetAll(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var categories []string
	if raw := c.Query("category"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				categories = append(categories, trimmed)
			}
		}
	}

	pois, err := h.poiUC.GetAll(c.Context(), userID, categories)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, pois, &utils.Meta{Count: len(pois)})
}

// GetByID - один POI по id
func (h *POIHandler) GetByID(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	poiID, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	poi, err := h.poiUC.GetByID(c.Context(), userID, poiID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, poi, nil)
}

// Create - создание POI
func (h *POIHandler) Create(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req dto.CreatePOIRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	poi, err := h.poiUC.Create(c.Context(), userID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, poi)
}

// Update - частичное обновление POI
func (h *POIHandler) Update(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	poiID, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdatePOIRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	poi, err := h.poiUC.Update(c.Context(), userID, poiID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, poi, nil)
}

// Delete - удаление POI
func (h *POIHandler) Delete(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	poiID, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.poiUC.Delete(c.Context(), userID, poiID); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"message": "POI deleted successfully"}, nil)
}

// FindNearby - POI в радиусе от точки, отсортированные по расстоянию.
// Параметры запроса: latitude, longitude, radius (км, по умолчанию 5).
func (h *POIHandler) FindNearby(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	lat, err1 := strconv.ParseFloat(c.Query("latitude"), 64)
	lon, err2 := strconv.ParseFloat(c.Query("longitude"), 64)
	if err1 != nil || err2 != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	radius := float64(defaultNearbyRadiusKm)
	if raw := c.Query("radius"); raw != "" {
		r, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.SendError(c, errors.ErrInvalidRadius)
		}
		radius = r
	}

	pois, err := h.searchUC.FindNearby(c.Context(), userID, dto.NearbyRequest{
		Latitude:  lat,
		Longitude: lon,
		RadiusKm:  radius,
	})
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, pois, &utils.Meta{Count: len(pois)})
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ErrInvalidRequest.WithMessage("POI ID is required")
	}
	return id, nil
}
