package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/poi-explorer/internal/domain"
	"github.com/poi-explorer/internal/usecase/dto"
)

// MockPOIRepository is a mock of POIRepository
type MockPOIRepository struct {
	mock.Mock
}

func (m *MockPOIRepository) Create(ctx context.Context, poi domain.POICreate) (int64, error) {
	args := m.Called(ctx, poi)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPOIRepository) GetByID(ctx context.Context, id int64) (*domain.POI, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.POI), args.Error(1)
}

func (m *MockPOIRepository) GetAllByUser(ctx context.Context, userID int64) ([]*domain.POI, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.POI), args.Error(1)
}

func (m *MockPOIRepository) GetAllByUserAndCategories(ctx context.Context, userID int64, categories []string) ([]*domain.POI, error) {
	args := m.Called(ctx, userID, categories)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.POI), args.Error(1)
}

func (m *MockPOIRepository) Update(ctx context.Context, id int64, patch domain.POIPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockPOIRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepository is a mock of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user domain.UserCreate) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id int64, patch domain.UserPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockStatsRepository is a mock of StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) RecordSync(ctx context.Context, event *domain.SyncEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockStatsRepository) GetSyncStats(ctx context.Context, userID int64) (*domain.SyncStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncStats), args.Error(1)
}

func ptrString(s string) *string {
	return &s
}

func ptrInt64(v int64) *int64 {
	return &v
}

func ptrCoord(v float64) *dto.Coordinate {
	c := dto.Coordinate(v)
	return &c
}
