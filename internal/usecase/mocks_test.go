package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/location-loader/internal/domain"
	"github.com/location-loader/internal/domain/repository"
)

// MockLocationRepository is a mock of LocationRepository
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) Begin(ctx context.Context) (repository.LocationBatch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.LocationBatch), args.Error(1)
}

func (m *MockLocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.LocationRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocationRecord), args.Error(1)
}

// MockLocationBatch is a mock of LocationBatch
type MockLocationBatch struct {
	mock.Mock
}

func (m *MockLocationBatch) Insert(ctx context.Context, record *domain.LocationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockLocationBatch) Finalize() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockLocationBatch) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetReport(ctx context.Context, id uuid.UUID) (*domain.ImportReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportReport), args.Error(1)
}

func (m *MockCacheRepository) SetReport(ctx context.Context, report *domain.ImportReport, ttl time.Duration) error {
	args := m.Called(ctx, report, ttl)
	return args.Error(0)
}
