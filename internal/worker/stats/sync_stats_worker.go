package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/poi-explorer/internal/domain"
	"github.com/poi-explorer/internal/domain/repository"
	"github.com/poi-explorer/internal/worker"
)

// SyncStatsWorker агрегирует события синхронизации из Redis Stream
// в счётчики статистики пользователя
type SyncStatsWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	statsRepo  repository.StatsRepository
	maxRetries int
}

// NewSyncStatsWorker создает новый SyncStatsWorker
func NewSyncStatsWorker(
	streamRepo repository.StreamRepository,
	statsRepo repository.StatsRepository,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *SyncStatsWorker {
	return &SyncStatsWorker{
		BaseWorker: worker.NewBaseWorker("sync-stats-worker", consumerGroup, logger),
		streamRepo: streamRepo,
		statsRepo:  statsRepo,
		maxRetries: maxRetries,
	}
}

// Start запускает обработку событий синхронизации
func (w *SyncStatsWorker) Start(ctx context.Context) error {
	logger := w.Logger()

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamPOISync, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	consumerName := w.consumerName()
	logger.Info("Sync stats worker started",
		zap.String("stream", domain.StreamPOISync),
		zap.String("group", w.ConsumerGroup()),
		zap.String("consumer", consumerName))

	messages, err := w.streamRepo.ConsumeStream(ctx, domain.StreamPOISync, w.ConsumerGroup(), consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info("Sync stats worker context cancelled")
			return nil
		case <-w.StopChan():
			logger.Info("Sync stats worker stop requested")
			return nil
		case msg, ok := <-messages:
			if !ok {
				logger.Info("Sync stats stream closed")
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

func (w *SyncStatsWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var lastErr error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if lastErr = w.processMessage(ctx, msg); lastErr == nil {
			break
		}
		logger.Warn("Failed to process sync event",
			zap.String("message_id", msg.ID),
			zap.Int("attempt", attempt),
			zap.Error(lastErr))
	}

	if lastErr != nil {
		// подтверждаем даже неудачные, чтобы не зацикливаться на ядовитых сообщениях
		logger.Error("Giving up on sync event",
			zap.String("message_id", msg.ID),
			zap.Error(lastErr))
	}

	if err := w.streamRepo.AckMessage(ctx, domain.StreamPOISync, w.ConsumerGroup(), msg.ID); err != nil {
		logger.Error("Failed to ack message",
			zap.String("message_id", msg.ID),
			zap.Error(err))
	}
}

func (w *SyncStatsWorker) processMessage(ctx context.Context, msg domain.StreamMessage) error {
	var event domain.SyncEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return fmt.Errorf("failed to unmarshal sync event: %w", err)
	}

	if err := w.statsRepo.RecordSync(ctx, &event); err != nil {
		return fmt.Errorf("failed to record sync stats: %w", err)
	}

	w.Logger().Debug("Sync event recorded",
		zap.Int64("user_id", event.UserID),
		zap.Int("created", event.Created),
		zap.Int("updated", event.Updated),
		zap.Int("deleted", event.Deleted))

	return nil
}

func (w *SyncStatsWorker) consumerName() string {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return fmt.Sprintf("%s-%d", hostname, os.Getpid())
}
