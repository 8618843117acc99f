package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/poi-explorer/internal/domain"
	apperrors "github.com/poi-explorer/internal/pkg/errors"
	"github.com/poi-explorer/internal/usecase"
	"github.com/poi-explorer/internal/usecase/dto"
)

func TestDistanceUseCase_BetweenPOIs(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	const userID int64 = 7

	t.Run("computes rounded distance between two own POIs", func(t *testing.T) {
		mockPOI := &MockPOIRepository{}
		uc := usecase.NewDistanceUseCase(mockPOI, logger)

		barcelona := &domain.POI{ID: 1, UserID: userID, Name: "Barcelona", Latitude: 41.3851, Longitude: 2.1734}
		madrid := &domain.POI{ID: 2, UserID: userID, Name: "Madrid", Latitude: 40.4168, Longitude: -3.7038}
		mockPOI.On("GetByID", ctx, int64(1)).Return(barcelona, nil)
		mockPOI.On("GetByID", ctx, int64(2)).Return(madrid, nil)

		resp, err := uc.BetweenPOIs(ctx, userID, dto.POIDistanceRequest{POIID1: 1, POIID2: 2})

		assert.NoError(t, err)
		assert.Equal(t, "kilometers", resp.Unit)
		assert.InDelta(t, 505, resp.Distance, 5)
		assert.Equal(t, int64(1), resp.POI1.ID)
		assert.Equal(t, "Madrid", resp.POI2.Name)
	})

	t.Run("zero distance for the same POI twice", func(t *testing.T) {
		mockPOI := &MockPOIRepository{}
		uc := usecase.NewDistanceUseCase(mockPOI, logger)

		poi := &domain.POI{ID: 1, UserID: userID, Latitude: 41.3851, Longitude: 2.1734}
		mockPOI.On("GetByID", ctx, int64(1)).Return(poi, nil)

		resp, err := uc.BetweenPOIs(ctx, userID, dto.POIDistanceRequest{POIID1: 1, POIID2: 1})

		assert.NoError(t, err)
		assert.Equal(t, float64(0), resp.Distance)
	})

	t.Run("missing POI names which id was not found", func(t *testing.T) {
		mockPOI := &MockPOIRepository{}
		uc := usecase.NewDistanceUseCase(mockPOI, logger)

		poi := &domain.POI{ID: 1, UserID: userID, Latitude: 41, Longitude: 2}
		mockPOI.On("GetByID", ctx, int64(1)).Return(poi, nil)
		mockPOI.On("GetByID", ctx, int64(404)).Return(nil, apperrors.ErrPOINotFound)

		_, err := uc.BetweenPOIs(ctx, userID, dto.POIDistanceRequest{POIID1: 1, POIID2: 404})

		appErr, ok := err.(*apperrors.AppError)
		assert.True(t, ok)
		assert.Equal(t, apperrors.ErrPOINotFound.Code, appErr.Code)
		assert.Equal(t, "POI 2 not found", appErr.Message)
	})

	t.Run("rejects POIs belonging to another user", func(t *testing.T) {
		mockPOI := &MockPOIRepository{}
		uc := usecase.NewDistanceUseCase(mockPOI, logger)

		foreign := &domain.POI{ID: 1, UserID: 99, Latitude: 41, Longitude: 2}
		mockPOI.On("GetByID", ctx, int64(1)).Return(foreign, nil)

		_, err := uc.BetweenPOIs(ctx, userID, dto.POIDistanceRequest{POIID1: 1, POIID2: 2})

		assert.Equal(t, apperrors.ErrForbidden, err)
	})
}

func TestDistanceUseCase_BetweenCoordinates(t *testing.T) {
	logger := zap.NewNop()

	uc := usecase.NewDistanceUseCase(&MockPOIRepository{}, logger)

	t.Run("computes distance between two points", func(t *testing.T) {
		resp, err := uc.BetweenCoordinates(dto.CoordinateDistanceRequest{
			Lat1: ptrCoord(0), Lon1: ptrCoord(0),
			Lat2: ptrCoord(0), Lon2: ptrCoord(1),
		})

		assert.NoError(t, err)
		assert.Equal(t, 111.19, resp.Distance)
		assert.Equal(t, "kilometers", resp.Unit)
		assert.Equal(t, float64(1), resp.Point2.Longitude)
	})

	t.Run("rejects missing coordinates", func(t *testing.T) {
		_, err := uc.BetweenCoordinates(dto.CoordinateDistanceRequest{
			Lat1: ptrCoord(0), Lon1: ptrCoord(0), Lat2: ptrCoord(0),
		})
		assert.Equal(t, apperrors.ErrValidation, err)
	})

	t.Run("rejects out-of-range coordinates", func(t *testing.T) {
		_, err := uc.BetweenCoordinates(dto.CoordinateDistanceRequest{
			Lat1: ptrCoord(90.5), Lon1: ptrCoord(0),
			Lat2: ptrCoord(0), Lon2: ptrCoord(0),
		})
		assert.Equal(t, apperrors.ErrInvalidCoordinates, err)
	})
}
