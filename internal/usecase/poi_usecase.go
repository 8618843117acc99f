package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/poi-explorer/internal/domain"
	"github.com/poi-explorer/internal/domain/repository"
	"github.com/poi-explorer/internal/pkg/errors"
	"github.com/poi-explorer/internal/pkg/utils"
	"github.com/poi-explorer/internal/usecase/dto"
)

// POIUseCase - CRUD операции над POI с проверкой принадлежности
type POIUseCase struct {
	poiRepo repository.POIRepository
	logger  *zap.Logger
}

func NewPOIUseCase(
	poiRepo repository.POIRepository,
	logger *zap.Logger,
) *POIUseCase {
	return &POIUseCase{
		poiRepo: poiRepo,
		logger:  logger,
	}
}

func (uc *POIUseCase) GetAll(ctx context.Context, userID int64, categories []string) ([]*domain.POI, error) {
	if len(categories) > 0 {
		return uc.poiRepo.GetAllByUserAndCategories(ctx, userID, categories)
	}
	return uc.poiRepo.GetAllByUser(ctx, userID)
}

// GetByID возвращает POI, если он принадлежит пользователю
func (uc *POIUseCase) GetByID(ctx context.Context, userID, poiID int64) (*domain.POI, error) {
	poi, err := uc.poiRepo.GetByID(ctx, poiID)
	if err != nil {
		return nil, err
	}

	if poi.UserID != userID {
		return nil, errors.ErrForbidden
	}

	return poi, nil
}

func (uc *POIUseCase) Create(ctx context.Context, userID int64, req dto.CreatePOIRequest) (*domain.POI, error) {
	if req.Latitude == nil || req.Longitude == nil {
		return nil, errors.ErrValidation
	}

	lat := req.Latitude.Float64()
	lon := req.Longitude.Float64()
	if !utils.ValidateCoordinates(lat, lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	category := req.Category
	if category == "" {
		category = domain.DefaultCategory
	}

	id, err := uc.poiRepo.Create(ctx, domain.POICreate{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Latitude:    lat,
		Longitude:   lon,
		Category:    category,
		IsVisited:   req.IsVisited.Bool(),
		ClientID:    req.ClientID,
	})
	if err != nil {
		uc.logger.Error("Failed to create POI",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return nil, err
	}

	return uc.poiRepo.GetByID(ctx, id)
}

// Update применяет только присутствующие поля запроса; updated_at
// обновляется даже для пустого запроса
func (uc *POIUseCase) Update(ctx context.Context, userID, poiID int64, req dto.UpdatePOIRequest) (*domain.POI, error) {
	// Ownership check before touching anything
	if _, err := uc.GetByID(ctx, userID, poiID); err != nil {
		return nil, err
	}

	patch := domain.POIPatch{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
	}
	if req.Latitude != nil {
		lat := req.Latitude.Float64()
		if lat < -90 || lat > 90 {
			return nil, errors.ErrInvalidCoordinates
		}
		patch.Latitude = &lat
	}
	if req.Longitude != nil {
		lon := req.Longitude.Float64()
		if lon < -180 || lon > 180 {
			return nil, errors.ErrInvalidCoordinates
		}
		patch.Longitude = &lon
	}
	if req.IsVisited != nil {
		visited := req.IsVisited.Bool()
		patch.IsVisited = &visited
	}

	if err := uc.poiRepo.Update(ctx, poiID, patch); err != nil {
		uc.logger.Error("Failed to update POI",
			zap.Int64("id", poiID),
			zap.Error(err))
		return nil, err
	}

	return uc.poiRepo.GetByID(ctx, poiID)
}

func (uc *POIUseCase) Delete(ctx context.Context, userID, poiID int64) error {
	if _, err := uc.GetByID(ctx, userID, poiID); err != nil {
		return err
	}

	if err := uc.poiRepo.Delete(ctx, poiID); err != nil {
		uc.logger.Error("Failed to delete POI",
			zap.Int64("id", poiID),
			zap.Error(err))
		return err
	}

	return nil
}
