package domain

import "time"

// Stream names
const (
	StreamPOISync = "stream:poi:sync"
)

// SyncEvent - событие завершённой синхронизации, публикуется в Redis Stream
// после каждого вызова sync
type SyncEvent struct {
	UserID   int64     `json:"user_id"`
	Created  int       `json:"created"`
	Updated  int       `json:"updated"`
	Deleted  int       `json:"deleted"`
	Errors   int       `json:"errors"`
	SyncedAt time.Time `json:"synced_at"`
}

// SyncStats - накопленная статистика синхронизаций пользователя
type SyncStats struct {
	UserID       int64      `json:"user_id"`
	TotalSyncs   int64      `json:"total_syncs"`
	TotalCreated int64      `json:"total_created"`
	TotalUpdated int64      `json:"total_updated"`
	TotalDeleted int64      `json:"total_deleted"`
	TotalErrors  int64      `json:"total_errors"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
