package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/poi-explorer/internal/domain"
	"github.com/poi-explorer/internal/domain/repository"
	"github.com/poi-explorer/internal/pkg/errors"
)

const (
	fieldTotalSyncs   = "total_syncs"
	fieldTotalCreated = "total_created"
	fieldTotalUpdated = "total_updated"
	fieldTotalDeleted = "total_deleted"
	fieldTotalErrors  = "total_errors"
	fieldLastSyncedAt = "last_synced_at"
)

type statsRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewStatsRepository создает новый экземпляр StatsRepository
func NewStatsRepository(client *redis.Client, logger *zap.Logger) repository.StatsRepository {
	return &statsRepository{
		client: client,
		logger: logger,
	}
}

func statsKey(userID int64) string {
	return fmt.Sprintf("stats:sync:%d", userID)
}

// RecordSync добавляет счётчики события к статистике пользователя
func (r *statsRepository) RecordSync(ctx context.Context, event *domain.SyncEvent) error {
	key := statsKey(event.UserID)

	pipe := r.client.TxPipeline()
	pipe.HIncrBy(ctx, key, fieldTotalSyncs, 1)
	pipe.HIncrBy(ctx, key, fieldTotalCreated, int64(event.Created))
	pipe.HIncrBy(ctx, key, fieldTotalUpdated, int64(event.Updated))
	pipe.HIncrBy(ctx, key, fieldTotalDeleted, int64(event.Deleted))
	pipe.HIncrBy(ctx, key, fieldTotalErrors, int64(event.Errors))
	pipe.HSet(ctx, key, fieldLastSyncedAt, event.SyncedAt.UTC().Format(time.RFC3339))

	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Failed to record sync stats",
			zap.Int64("user_id", event.UserID),
			zap.Error(err))
		return errors.ErrCacheError
	}

	return nil
}

// GetSyncStats возвращает статистику пользователя. Если синхронизаций
// ещё не было, возвращаются нулевые счётчики.
func (r *statsRepository) GetSyncStats(ctx context.Context, userID int64) (*domain.SyncStats, error) {
	values, err := r.client.HGetAll(ctx, statsKey(userID)).Result()
	if err != nil {
		r.logger.Error("Failed to get sync stats",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return nil, errors.ErrCacheError
	}

	stats := &domain.SyncStats{UserID: userID}
	stats.TotalSyncs = parseCounter(values[fieldTotalSyncs])
	stats.TotalCreated = parseCounter(values[fieldTotalCreated])
	stats.TotalUpdated = parseCounter(values[fieldTotalUpdated])
	stats.TotalDeleted = parseCounter(values[fieldTotalDeleted])
	stats.TotalErrors = parseCounter(values[fieldTotalErrors])

	if raw, ok := values[fieldLastSyncedAt]; ok {
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			stats.LastSyncedAt = &ts
		}
	}

	return stats, nil
}

func parseCounter(raw string) int64 {
	n, _ := strconv.ParseInt(raw, 10, 64)
	return n
}
