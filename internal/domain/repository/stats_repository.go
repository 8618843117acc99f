package repository

import (
	"context"

	"github.com/poi-explorer/internal/domain"
)

// StatsRepository хранит накопленную статистику синхронизаций
type StatsRepository interface {
	// RecordSync добавляет счётчики события к статистике пользователя
	RecordSync(ctx context.Context, event *domain.SyncEvent) error

	// GetSyncStats возвращает статистику пользователя; нулевые значения,
	// если синхронизаций ещё не было
	GetSyncStats(ctx context.Context, userID int64) (*domain.SyncStats, error)
}
