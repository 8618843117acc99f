package dto

import "github.com/poi-explorer/internal/domain"

// SyncRequest - полный снимок POI клиента. Снимок считается желаемым
// состоянием: отсутствие существующего POI в списке означает удаление.
type SyncRequest struct {
	POIs []SyncPOI `json:"pois"`
}

// SyncPOI - один элемент снимка
type SyncPOI struct {
	ID          *int64      `json:"id,omitempty"`
	Name        string      `json:"name"`
	Description *string     `json:"description,omitempty"`
	Latitude    *Coordinate `json:"latitude"`
	Longitude   *Coordinate `json:"longitude"`
	Category    *string     `json:"category,omitempty"`
	IsVisited   FlexBool    `json:"is_visited"`
	ClientID    *string     `json:"client_id,omitempty"`
}

// SyncError - ошибка обработки одного элемента; не прерывает остальные
type SyncError struct {
	POI   *SyncPOI `json:"poi,omitempty"`
	POIID *int64   `json:"poi_id,omitempty"`
	Error string   `json:"error"`
}

// SyncSummary - счётчики операций синхронизации
type SyncSummary struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
	Errors  int `json:"errors"`
}

// SyncData - подробный результат синхронизации
type SyncData struct {
	POIs    []*domain.POI `json:"pois"`
	Created []*domain.POI `json:"created"`
	Updated []*domain.POI `json:"updated"`
	Deleted []int64       `json:"deleted"`
	Errors  []SyncError   `json:"errors"`
}

// SyncResponse - итог синхронизации: счётчики + полное текущее состояние
type SyncResponse struct {
	Summary SyncSummary `json:"sync_summary"`
	Data    SyncData    `json:"data"`
}
