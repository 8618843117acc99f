package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/poi-explorer/internal/delivery/http/middleware"
	"github.com/poi-explorer/internal/pkg/errors"
	"github.com/poi-explorer/internal/pkg/utils"
	"github.com/poi-explorer/internal/usecase"
	"github.com/poi-explorer/internal/usecase/dto"
)

// SyncHandler - обработчик синхронизации снимка POI клиента
type SyncHandler struct {
	syncUC *usecase.SyncUseCase
	logger *zap.Logger
}

func NewSyncHandler(syncUC *usecase.SyncUseCase, logger *zap.Logger) *SyncHandler {
	return &SyncHandler{
		syncUC: syncUC,
		logger: logger,
	}
}

// SyncPOIs принимает полный снимок POI клиента и сверяет его с сервером
func (h *SyncHandler) SyncPOIs(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req dto.SyncRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	// nil отличает отсутствующее/null поле от пустого массива: пустой
	// массив - валидный снимок "у клиента нет POI" (удалит всё)
	if req.POIs == nil {
		return utils.SendError(c,
			errors.ErrInvalidRequest.WithMessage("POIs must be provided as an array"))
	}

	result, err := h.syncUC.SyncPOIs(c.Context(), userID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"sync_summary": result.Summary,
		"data":         result.Data,
	})
}
