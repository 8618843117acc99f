package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/poi-explorer/internal/domain"
	redisRepo "github.com/poi-explorer/internal/repository/redis"
)

// getTestRedisClient creates a Redis client for testing
func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     "localhost:6379",
		Password: "",
		DB:       1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	return client
}

func TestStatsRepository_RecordAndGet(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	logger := zap.NewNop()
	repo := redisRepo.NewStatsRepository(client, logger)
	ctx := context.Background()

	const userID int64 = 424242
	defer client.Del(ctx, "stats:sync:424242")

	syncedAt := time.Now().UTC().Truncate(time.Second)
	err := repo.RecordSync(ctx, &domain.SyncEvent{
		UserID:   userID,
		Created:  3,
		Updated:  2,
		Deleted:  1,
		Errors:   0,
		SyncedAt: syncedAt,
	})
	require.NoError(t, err)

	err = repo.RecordSync(ctx, &domain.SyncEvent{
		UserID:   userID,
		Created:  1,
		Updated:  0,
		Deleted:  0,
		Errors:   2,
		SyncedAt: syncedAt.Add(time.Minute),
	})
	require.NoError(t, err)

	stats, err := repo.GetSyncStats(ctx, userID)
	require.NoError(t, err)

	// счётчики накапливаются между событиями
	assert.Equal(t, int64(2), stats.TotalSyncs)
	assert.Equal(t, int64(4), stats.TotalCreated)
	assert.Equal(t, int64(2), stats.TotalUpdated)
	assert.Equal(t, int64(1), stats.TotalDeleted)
	assert.Equal(t, int64(2), stats.TotalErrors)
	require.NotNil(t, stats.LastSyncedAt)
	assert.Equal(t, syncedAt.Add(time.Minute), stats.LastSyncedAt.UTC())
}

func TestStatsRepository_GetSyncStats_NeverSynced(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewStatsRepository(client, zap.NewNop())

	stats, err := repo.GetSyncStats(context.Background(), 999999999)
	require.NoError(t, err)
	assert.Equal(t, int64(999999999), stats.UserID)
	assert.Equal(t, int64(0), stats.TotalSyncs)
	assert.Nil(t, stats.LastSyncedAt)
}
