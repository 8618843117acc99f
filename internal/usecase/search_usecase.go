package usecase

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/poi-explorer/internal/domain"
	"github.com/poi-explorer/internal/domain/repository"
	"github.com/poi-explorer/internal/pkg/errors"
	"github.com/poi-explorer/internal/pkg/utils"
	"github.com/poi-explorer/internal/usecase/dto"
)

// SearchUseCase - поиск POI в радиусе от точки. Линейный проход по всем
// POI пользователя: пространственного индекса нет намеренно, объёмы
// на пользователя небольшие.
type SearchUseCase struct {
	poiRepo repository.POIRepository
	logger  *zap.Logger
}

func NewSearchUseCase(
	poiRepo repository.POIRepository,
	logger *zap.Logger,
) *SearchUseCase {
	return &SearchUseCase{
		poiRepo: poiRepo,
		logger:  logger,
	}
}

// FindNearby возвращает POI пользователя на расстоянии <= radiusKm от
// центра, с заполненным Distance, ближайшие первыми. Граница радиуса
// включительна.
func (uc *SearchUseCase) FindNearby(
	ctx context.Context,
	userID int64,
	req dto.NearbyRequest,
) ([]*domain.POI, error) {
	if !utils.ValidateCoordinates(req.Latitude, req.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}
	if !utils.ValidateRadius(req.RadiusKm) {
		return nil, errors.ErrInvalidRadius
	}

	pois, err := uc.poiRepo.GetAllByUser(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to load POIs for nearby search",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return nil, err
	}

	nearby := make([]*domain.POI, 0, len(pois))
	for _, poi := range pois {
		distance := utils.HaversineDistance(
			req.Latitude, req.Longitude,
			poi.Latitude, poi.Longitude,
		)
		if distance > req.RadiusKm {
			continue
		}

		d := distance
		poi.Distance = &d
		nearby = append(nearby, poi)
	}

	// Stable: при равных расстояниях сохраняется порядок выдачи стора
	sort.SliceStable(nearby, func(i, j int) bool {
		return *nearby[i].Distance < *nearby[j].Distance
	})

	return nearby, nil
}
