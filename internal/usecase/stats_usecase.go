package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/poi-explorer/internal/domain"
	"github.com/poi-explorer/internal/domain/repository"
)

// StatsUseCase - чтение накопленной статистики синхронизаций.
// Статистику наполняет воркер из стрима sync-событий; данные
// согласованы в конечном счёте.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
	logger    *zap.Logger
}

func NewStatsUseCase(
	statsRepo repository.StatsRepository,
	logger *zap.Logger,
) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

func (uc *StatsUseCase) GetSyncStats(ctx context.Context, userID int64) (*domain.SyncStats, error) {
	stats, err := uc.statsRepo.GetSyncStats(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to get sync stats",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return nil, err
	}

	return stats, nil
}
