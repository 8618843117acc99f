package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/poi-explorer/internal/domain"
	"github.com/poi-explorer/internal/domain/repository"
	"github.com/poi-explorer/internal/pkg/utils"
	"github.com/poi-explorer/internal/usecase/dto"
)

const (
	reasonMissingFields = "Name, latitude, and longitude are required"
	reasonBadCoords     = "Invalid latitude or longitude values"
)

// SyncUseCase - односторонняя сверка снимка клиента с состоянием сервера.
// Снимок трактуется как желаемое состояние целиком: новые элементы
// создаются, известные обновляются, отсутствующие удаляются.
//
// Фазы (create -> update -> delete) выполняются без общей транзакции;
// каждый элемент изолирован, ошибка одного не прерывает остальные.
// Два конкурентных sync одного пользователя не сериализуются - это
// известное и принятое ограничение.
type SyncUseCase struct {
	poiRepo    repository.POIRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

func NewSyncUseCase(
	poiRepo repository.POIRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *SyncUseCase {
	return &SyncUseCase{
		poiRepo:    poiRepo,
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// SyncPOIs выполняет сверку и возвращает счётчики, затронутые записи,
// ошибки по элементам и полное состояние после сверки. Вызов целиком
// завершается ошибкой только если не удалось загрузить текущее состояние.
func (uc *SyncUseCase) SyncPOIs(
	ctx context.Context,
	userID int64,
	req dto.SyncRequest,
) (*dto.SyncResponse, error) {
	// 1. Текущее состояние, индекс по id
	existing, err := uc.poiRepo.GetAllByUser(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to load existing POIs for sync",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return nil, err
	}

	existingByID := make(map[int64]*domain.POI, len(existing))
	for _, poi := range existing {
		existingByID[poi.ID] = poi
	}

	// 2-3. Валидация и классификация
	var (
		toCreate   []dto.SyncPOI
		toUpdate   []dto.SyncPOI
		syncErrors []dto.SyncError
	)

	// id, пришедшие в снимке, защищают существующие записи от удаления.
	// Учитываются и id невалидных элементов: клиент знает про запись,
	// даже если прислал её битой.
	batchIDs := make(map[int64]struct{}, len(req.POIs))
	for _, item := range req.POIs {
		if item.ID != nil {
			batchIDs[*item.ID] = struct{}{}
		}
	}

	for _, item := range req.POIs {
		if reason, ok := validateSyncPOI(item); !ok {
			itemCopy := item
			syncErrors = append(syncErrors, dto.SyncError{
				POI:   &itemCopy,
				Error: reason,
			})
			continue
		}

		if item.ID != nil {
			if _, ok := existingByID[*item.ID]; ok {
				toUpdate = append(toUpdate, item)
				continue
			}
		}
		toCreate = append(toCreate, item)
	}

	// 4. Удаление по отсутствию в снимке
	var toDelete []int64
	for _, poi := range existing {
		if _, ok := batchIDs[poi.ID]; !ok {
			toDelete = append(toDelete, poi.ID)
		}
	}

	// 5. Выполнение фаз: create -> update -> delete
	var (
		created []*domain.POI
		updated []*domain.POI
		deleted []int64
	)

	for _, item := range toCreate {
		poi, err := uc.createOne(ctx, userID, item)
		if err != nil {
			itemCopy := item
			syncErrors = append(syncErrors, dto.SyncError{
				POI:   &itemCopy,
				Error: err.Error(),
			})
			continue
		}
		created = append(created, poi)
	}

	for _, item := range toUpdate {
		poi, err := uc.updateOne(ctx, item)
		if err != nil {
			itemCopy := item
			syncErrors = append(syncErrors, dto.SyncError{
				POI:   &itemCopy,
				Error: err.Error(),
			})
			continue
		}
		updated = append(updated, poi)
	}

	for _, id := range toDelete {
		if err := uc.poiRepo.Delete(ctx, id); err != nil {
			poiID := id
			syncErrors = append(syncErrors, dto.SyncError{
				POIID: &poiID,
				Error: err.Error(),
			})
			continue
		}
		deleted = append(deleted, id)
	}

	// 6. Полное состояние после всех фаз
	finalState, err := uc.poiRepo.GetAllByUser(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to reload POIs after sync",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return nil, err
	}

	resp := &dto.SyncResponse{
		Summary: dto.SyncSummary{
			Created: len(created),
			Updated: len(updated),
			Deleted: len(deleted),
			Errors:  len(syncErrors),
		},
		Data: dto.SyncData{
			POIs:    finalState,
			Created: emptyIfNilPOIs(created),
			Updated: emptyIfNilPOIs(updated),
			Deleted: emptyIfNilIDs(deleted),
			Errors:  emptyIfNilErrors(syncErrors),
		},
	}

	uc.publishSyncEvent(ctx, userID, resp.Summary)

	return resp, nil
}

// createOne создаёт запись из элемента снимка и перечитывает её
func (uc *SyncUseCase) createOne(ctx context.Context, userID int64, item dto.SyncPOI) (*domain.POI, error) {
	id, err := uc.poiRepo.Create(ctx, domain.POICreate{
		UserID:      userID,
		Name:        item.Name,
		Description: stringOrEmpty(item.Description),
		Latitude:    item.Latitude.Float64(),
		Longitude:   item.Longitude.Float64(),
		Category:    categoryOrDefault(item.Category),
		IsVisited:   item.IsVisited.Bool(),
		ClientID:    item.ClientID,
	})
	if err != nil {
		return nil, err
	}
	return uc.poiRepo.GetByID(ctx, id)
}

// updateOne целиком замещает поля существующей записи полями элемента
// снимка (sync - не частичный patch: отсутствующие поля получают
// значения по умолчанию)
func (uc *SyncUseCase) updateOne(ctx context.Context, item dto.SyncPOI) (*domain.POI, error) {
	name := item.Name
	description := stringOrEmpty(item.Description)
	lat := item.Latitude.Float64()
	lon := item.Longitude.Float64()
	category := categoryOrDefault(item.Category)
	visited := item.IsVisited.Bool()

	patch := domain.POIPatch{
		Name:        &name,
		Description: &description,
		Latitude:    &lat,
		Longitude:   &lon,
		Category:    &category,
		IsVisited:   &visited,
		ClientID:    item.ClientID,
	}

	if err := uc.poiRepo.Update(ctx, *item.ID, patch); err != nil {
		return nil, err
	}
	return uc.poiRepo.GetByID(ctx, *item.ID)
}

// publishSyncEvent - best effort: статистика не должна ломать sync
func (uc *SyncUseCase) publishSyncEvent(ctx context.Context, userID int64, summary dto.SyncSummary) {
	if uc.streamRepo == nil {
		return
	}

	event := domain.SyncEvent{
		UserID:   userID,
		Created:  summary.Created,
		Updated:  summary.Updated,
		Deleted:  summary.Deleted,
		Errors:   summary.Errors,
		SyncedAt: time.Now().UTC(),
	}

	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamPOISync, event); err != nil {
		uc.logger.Warn("Failed to publish sync event",
			zap.Int64("user_id", userID),
			zap.Error(err))
	}
}

func validateSyncPOI(item dto.SyncPOI) (string, bool) {
	if item.Name == "" || item.Latitude == nil || item.Longitude == nil {
		return reasonMissingFields, false
	}
	if !utils.ValidateCoordinates(item.Latitude.Float64(), item.Longitude.Float64()) {
		return reasonBadCoords, false
	}
	return "", true
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func categoryOrDefault(s *string) string {
	if s == nil || *s == "" {
		return domain.DefaultCategory
	}
	return *s
}

func emptyIfNilPOIs(pois []*domain.POI) []*domain.POI {
	if pois == nil {
		return []*domain.POI{}
	}
	return pois
}

func emptyIfNilIDs(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}

func emptyIfNilErrors(errs []dto.SyncError) []dto.SyncError {
	if errs == nil {
		return []dto.SyncError{}
	}
	return errs
}
