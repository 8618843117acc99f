package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/poi-explorer/internal/domain"
	apperrors "github.com/poi-explorer/internal/pkg/errors"
	"github.com/poi-explorer/internal/usecase"
	"github.com/poi-explorer/internal/usecase/dto"
)

func TestSyncUseCase_SyncPOIs(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	const userID int64 = 7

	t.Run("mixed batch: update known, create new, delete missing", func(t *testing.T) {
		mockPOI := &MockPOIRepository{}
		mockStream := &MockStreamRepository{}
		uc := usecase.NewSyncUseCase(mockPOI, mockStream, logger)

		// Server holds A (id=1) and B (id=2). Snapshot carries A (changed)
		// and a brand new C, so B must go.
		poiA := &domain.POI{ID: 1, UserID: userID, Name: "Home", Latitude: 41.38, Longitude: 2.17}
		poiB := &domain.POI{ID: 2, UserID: userID, Name: "Office", Latitude: 41.40, Longitude: 2.20}

		mockPOI.On("GetAllByUser", ctx, userID).
			Return([]*domain.POI{poiA, poiB}, nil).Once()

		req := dto.SyncRequest{POIs: []dto.SyncPOI{
			{ID: ptrInt64(1), Name: "Home Sweet Home", Latitude: ptrCoord(41.38), Longitude: ptrCoord(2.17)},
			{Name: "Gym", Latitude: ptrCoord(41.39), Longitude: ptrCoord(2.18)},
		}}

		createdC := &domain.POI{ID: 3, UserID: userID, Name: "Gym", Latitude: 41.39, Longitude: 2.18}
		updatedA := &domain.POI{ID: 1, UserID: userID, Name: "Home Sweet Home", Latitude: 41.38, Longitude: 2.17}

		mockPOI.On("Create", ctx, mock.MatchedBy(func(c domain.POICreate) bool {
			return c.Name == "Gym" && c.UserID == userID && c.Category == domain.DefaultCategory
		})).Return(int64(3), nil)
		mockPOI.On("GetByID", ctx, int64(3)).Return(createdC, nil)

		mockPOI.On("Update", ctx, int64(1), mock.MatchedBy(func(p domain.POIPatch) bool {
			return p.Name != nil && *p.Name == "Home Sweet Home" &&
				p.Description != nil && p.Category != nil && p.IsVisited != nil
		})).Return(nil)
		mockPOI.On("GetByID", ctx, int64(1)).Return(updatedA, nil)

		mockPOI.On("Delete", ctx, int64(2)).Return(nil)

		mockPOI.On("GetAllByUser", ctx, userID).
			Return([]*domain.POI{updatedA, createdC}, nil).Once()

		mockStream.On("PublishToStream", ctx, domain.StreamPOISync, mock.Anything).Return(nil)

		resp, err := uc.SyncPOIs(ctx, userID, req)

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.Summary.Created)
		assert.Equal(t, 1, resp.Summary.Updated)
		assert.Equal(t, 1, resp.Summary.Deleted)
		assert.Equal(t, 0, resp.Summary.Errors)
		assert.Len(t, resp.Data.POIs, 2)
		assert.Equal(t, []int64{2}, resp.Data.Deleted)
		mockPOI.AssertExpectations(t)
		mockStream.AssertExpectations(t)
	})

	t.Run("invalid item is reported and does not block others", func(t *testing.T) {
		mockPOI := &MockPOIRepository{}
		uc := usecase.NewSyncUseCase(mockPOI, nil, logger)

		mockPOI.On("GetAllByUser", ctx, userID).
			Return([]*domain.POI{}, nil).Once()

		req := dto.SyncRequest{POIs: []dto.SyncPOI{
			{Name: "", Latitude: ptrCoord(41), Longitude: ptrCoord(2)},
			{Name: "Bad coords", Latitude: ptrCoord(95), Longitude: ptrCoord(2)},
			{Name: "Good", Latitude: ptrCoord(41), Longitude: ptrCoord(2)},
		}}

		good := &domain.POI{ID: 10, UserID: userID, Name: "Good", Latitude: 41, Longitude: 2}
		mockPOI.On("Create", ctx, mock.Anything).Return(int64(10), nil).Once()
		mockPOI.On("GetByID", ctx, int64(10)).Return(good, nil)
		mockPOI.On("GetAllByUser", ctx, userID).
			Return([]*domain.POI{good}, nil).Once()

		resp, err := uc.SyncPOIs(ctx, userID, req)

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.Summary.Created)
		assert.Equal(t, 2, resp.Summary.Errors)
		assert.Len(t, resp.Data.Errors, 2)
		assert.Equal(t, "Name, latitude, and longitude are required", resp.Data.Errors[0].Error)
		assert.Equal(t, "Invalid latitude or longitude values", resp.Data.Errors[1].Error)
		mockPOI.AssertExpectations(t)
	})

	t.Run("invalid item with known id still protects it from deletion", func(t *testing.T) {
		mockPOI := &MockPOIRepository{}
		uc := usecase.NewSyncUseCase(mockPOI, nil, logger)

		existing := &domain.POI{ID: 5, UserID: userID, Name: "Keeper", Latitude: 41, Longitude: 2}
		mockPOI.On("GetAllByUser", ctx, userID).
			Return([]*domain.POI{existing}, nil).Twice()

		// The client knows about id=5 even though the payload is broken,
		// so the row must survive. No Delete call expected.
		req := dto.SyncRequest{POIs: []dto.SyncPOI{
			{ID: ptrInt64(5), Name: "", Latitude: nil, Longitude: nil},
		}}

		resp, err := uc.SyncPOIs(ctx, userID, req)

		assert.NoError(t, err)
		assert.Equal(t, 0, resp.Summary.Deleted)
		assert.Equal(t, 1, resp.Summary.Errors)
		mockPOI.AssertNotCalled(t, "Delete", ctx, int64(5))
		mockPOI.AssertExpectations(t)
	})

	t.Run("identical second sync reports every known item as updated", func(t *testing.T) {
		mockPOI := &MockPOIRepository{}
		uc := usecase.NewSyncUseCase(mockPOI, nil, logger)

		existing := &domain.POI{ID: 1, UserID: userID, Name: "Home", Latitude: 41.38, Longitude: 2.17}
		mockPOI.On("GetAllByUser", ctx, userID).
			Return([]*domain.POI{existing}, nil).Twice()
		mockPOI.On("Update", ctx, int64(1), mock.Anything).Return(nil)
		mockPOI.On("GetByID", ctx, int64(1)).Return(existing, nil)

		req := dto.SyncRequest{POIs: []dto.SyncPOI{
			{ID: ptrInt64(1), Name: "Home", Latitude: ptrCoord(41.38), Longitude: ptrCoord(2.17)},
		}}

		resp, err := uc.SyncPOIs(ctx, userID, req)

		assert.NoError(t, err)
		assert.Equal(t, 0, resp.Summary.Created)
		assert.Equal(t, 1, resp.Summary.Updated)
		assert.Equal(t, 0, resp.Summary.Deleted)
		mockPOI.AssertExpectations(t)
	})

	t.Run("storage failure on one item is captured, others proceed", func(t *testing.T) {
		mockPOI := &MockPOIRepository{}
		uc := usecase.NewSyncUseCase(mockPOI, nil, logger)

		mockPOI.On("GetAllByUser", ctx, userID).
			Return([]*domain.POI{}, nil).Once()

		req := dto.SyncRequest{POIs: []dto.SyncPOI{
			{Name: "Fails", Latitude: ptrCoord(41), Longitude: ptrCoord(2)},
			{Name: "Works", Latitude: ptrCoord(42), Longitude: ptrCoord(3)},
		}}

		mockPOI.On("Create", ctx, mock.MatchedBy(func(c domain.POICreate) bool {
			return c.Name == "Fails"
		})).Return(int64(0), errors.New("constraint violation"))

		works := &domain.POI{ID: 11, UserID: userID, Name: "Works", Latitude: 42, Longitude: 3}
		mockPOI.On("Create", ctx, mock.MatchedBy(func(c domain.POICreate) bool {
			return c.Name == "Works"
		})).Return(int64(11), nil)
		mockPOI.On("GetByID", ctx, int64(11)).Return(works, nil)

		mockPOI.On("GetAllByUser", ctx, userID).
			Return([]*domain.POI{works}, nil).Once()

		resp, err := uc.SyncPOIs(ctx, userID, req)

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.Summary.Created)
		assert.Equal(t, 1, resp.Summary.Errors)
		assert.Equal(t, "constraint violation", resp.Data.Errors[0].Error)
		mockPOI.AssertExpectations(t)
	})

	t.Run("empty snapshot deletes everything", func(t *testing.T) {
		mockPOI := &MockPOIRepository{}
		uc := usecase.NewSyncUseCase(mockPOI, nil, logger)

		poiA := &domain.POI{ID: 1, UserID: userID, Name: "A", Latitude: 41, Longitude: 2}
		poiB := &domain.POI{ID: 2, UserID: userID, Name: "B", Latitude: 42, Longitude: 3}
		mockPOI.On("GetAllByUser", ctx, userID).
			Return([]*domain.POI{poiA, poiB}, nil).Once()
		mockPOI.On("Delete", ctx, int64(1)).Return(nil)
		mockPOI.On("Delete", ctx, int64(2)).Return(nil)
		mockPOI.On("GetAllByUser", ctx, userID).
			Return([]*domain.POI{}, nil).Once()

		resp, err := uc.SyncPOIs(ctx, userID, dto.SyncRequest{POIs: []dto.SyncPOI{}})

		assert.NoError(t, err)
		assert.Equal(t, 2, resp.Summary.Deleted)
		assert.Empty(t, resp.Data.POIs)
		mockPOI.AssertExpectations(t)
	})

	t.Run("initial load failure aborts the whole sync", func(t *testing.T) {
		mockPOI := &MockPOIRepository{}
		uc := usecase.NewSyncUseCase(mockPOI, nil, logger)

		mockPOI.On("GetAllByUser", ctx, userID).
			Return(nil, apperrors.ErrDatabaseError).Once()

		resp, err := uc.SyncPOIs(ctx, userID, dto.SyncRequest{POIs: []dto.SyncPOI{}})

		assert.Nil(t, resp)
		assert.Equal(t, apperrors.ErrDatabaseError, err)
	})

	t.Run("stream publish failure does not fail the sync", func(t *testing.T) {
		mockPOI := &MockPOIRepository{}
		mockStream := &MockStreamRepository{}
		uc := usecase.NewSyncUseCase(mockPOI, mockStream, logger)

		mockPOI.On("GetAllByUser", ctx, userID).
			Return([]*domain.POI{}, nil).Twice()
		mockStream.On("PublishToStream", ctx, domain.StreamPOISync, mock.Anything).
			Return(errors.New("redis down"))

		resp, err := uc.SyncPOIs(ctx, userID, dto.SyncRequest{POIs: []dto.SyncPOI{}})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		mockStream.AssertExpectations(t)
	})
}
