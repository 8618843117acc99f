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

const distanceUnit = "kilometers"

// DistanceUseCase - расстояние между двумя POI пользователя или двумя
// произвольными точками
type DistanceUseCase struct {
	poiRepo repository.POIRepository
	logger  *zap.Logger
}

func NewDistanceUseCase(
	poiRepo repository.POIRepository,
	logger *zap.Logger,
) *DistanceUseCase {
	return &DistanceUseCase{
		poiRepo: poiRepo,
		logger:  logger,
	}
}

func (uc *DistanceUseCase) BetweenPOIs(
	ctx context.Context,
	userID int64,
	req dto.POIDistanceRequest,
) (*dto.POIDistanceResponse, error) {
	poi1, err := uc.loadOwned(ctx, userID, req.POIID1, "POI 1")
	if err != nil {
		return nil, err
	}
	poi2, err := uc.loadOwned(ctx, userID, req.POIID2, "POI 2")
	if err != nil {
		return nil, err
	}

	distance := utils.HaversineDistance(
		poi1.Latitude, poi1.Longitude,
		poi2.Latitude, poi2.Longitude,
	)

	return &dto.POIDistanceResponse{
		POI1:     poiSummary(poi1),
		POI2:     poiSummary(poi2),
		Distance: distance,
		Unit:     distanceUnit,
	}, nil
}

func (uc *DistanceUseCase) BetweenCoordinates(
	req dto.CoordinateDistanceRequest,
) (*dto.CoordinateDistanceResponse, error) {
	if req.Lat1 == nil || req.Lon1 == nil || req.Lat2 == nil || req.Lon2 == nil {
		return nil, errors.ErrValidation
	}

	lat1, lon1 := req.Lat1.Float64(), req.Lon1.Float64()
	lat2, lon2 := req.Lat2.Float64(), req.Lon2.Float64()

	if !utils.ValidateCoordinates(lat1, lon1) || !utils.ValidateCoordinates(lat2, lon2) {
		return nil, errors.ErrInvalidCoordinates
	}

	distance := utils.HaversineDistance(lat1, lon1, lat2, lon2)

	return &dto.CoordinateDistanceResponse{
		Point1:   dto.PointSummary{Latitude: lat1, Longitude: lon1},
		Point2:   dto.PointSummary{Latitude: lat2, Longitude: lon2},
		Distance: distance,
		Unit:     distanceUnit,
	}, nil
}

// loadOwned возвращает POI пользователя; в текст NotFound попадает метка,
// чтобы клиент знал, какой из двух id не нашёлся
func (uc *DistanceUseCase) loadOwned(ctx context.Context, userID, poiID int64, label string) (*domain.POI, error) {
	poi, err := uc.poiRepo.GetByID(ctx, poiID)
	if err != nil {
		if err == errors.ErrPOINotFound {
			return nil, errors.ErrPOINotFound.WithMessage(label + " not found")
		}
		return nil, err
	}

	if poi.UserID != userID {
		return nil, errors.ErrForbidden
	}

	return poi, nil
}

func poiSummary(poi *domain.POI) dto.POISummary {
	return dto.POISummary{
		ID:        poi.ID,
		Name:      poi.Name,
		Latitude:  poi.Latitude,
		Longitude: poi.Longitude,
	}
}
