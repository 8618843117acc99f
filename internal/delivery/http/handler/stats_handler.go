package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/poi-explorer/internal/delivery/http/middleware"
	"github.com/poi-explorer/internal/pkg/utils"
	"github.com/poi-explorer/internal/usecase"
)

// StatsHandler - обработчик статистики синхронизаций
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetSyncStats - накопленная статистика синхронизаций пользователя
func (h *StatsHandler) GetSyncStats(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	stats, err := h.statsUC.GetSyncStats(c.Context(), userID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}
