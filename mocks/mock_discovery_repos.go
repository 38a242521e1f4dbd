package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"wayfare/internal/domain"
)

// MockHighlightRepo is a mock implementation of port.HighlightRepository.
type MockHighlightRepo struct {
	mock.Mock
}

func (m *MockHighlightRepo) Upsert(ctx context.Context, h *domain.Highlight) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHighlightRepo) GetByID(ctx context.Context, tripID, highlightID uuid.UUID) (*domain.Highlight, error) {
	args := m.Called(ctx, tripID, highlightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Highlight), args.Error(1)
}

func (m *MockHighlightRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Highlight, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Highlight), args.Error(1)
}

func (m *MockHighlightRepo) SetCompleted(ctx context.Context, tripID, highlightID uuid.UUID, completed bool, completedBy domain.StringList) error {
	args := m.Called(ctx, tripID, highlightID, completed, completedBy)
	return args.Error(0)
}

func (m *MockHighlightRepo) Delete(ctx context.Context, tripID, highlightID uuid.UUID) error {
	args := m.Called(ctx, tripID, highlightID)
	return args.Error(0)
}

// MockRestaurantRepo is a mock implementation of port.RestaurantRepository.
type MockRestaurantRepo struct {
	mock.Mock
}

func (m *MockRestaurantRepo) Upsert(ctx context.Context, r *domain.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRestaurantRepo) GetByID(ctx context.Context, tripID, restaurantID uuid.UUID) (*domain.Restaurant, error) {
	args := m.Called(ctx, tripID, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Restaurant, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepo) Delete(ctx context.Context, tripID, restaurantID uuid.UUID) error {
	args := m.Called(ctx, tripID, restaurantID)
	return args.Error(0)
}

// MockPackingRepo is a mock implementation of port.PackingRepository.
type MockPackingRepo struct {
	mock.Mock
}

func (m *MockPackingRepo) Upsert(ctx context.Context, item *domain.PackingItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPackingRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PackingItem), args.Error(1)
}

func (m *MockPackingRepo) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	args := m.Called(ctx, tripID, itemID)
	return args.Error(0)
}

// MockStampRepo is a mock implementation of port.StampRepository.
type MockStampRepo struct {
	mock.Mock
}

func (m *MockStampRepo) Upsert(ctx context.Context, stamp *domain.PassportStamp) error {
	args := m.Called(ctx, stamp)
	return args.Error(0)
}

func (m *MockStampRepo) GetByID(ctx context.Context, tripID, stampID uuid.UUID) (*domain.PassportStamp, error) {
	args := m.Called(ctx, tripID, stampID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PassportStamp), args.Error(1)
}

func (m *MockStampRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.PassportStamp, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PassportStamp), args.Error(1)
}

func (m *MockStampRepo) ListByHighlight(ctx context.Context, tripID, highlightID uuid.UUID) ([]domain.PassportStamp, error) {
	args := m.Called(ctx, tripID, highlightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PassportStamp), args.Error(1)
}

func (m *MockStampRepo) Delete(ctx context.Context, tripID, stampID uuid.UUID) error {
	args := m.Called(ctx, tripID, stampID)
	return args.Error(0)
}

func (m *MockStampRepo) UpsertEarned(ctx context.Context, earned *domain.EarnedStamp) error {
	args := m.Called(ctx, earned)
	return args.Error(0)
}

func (m *MockStampRepo) ListEarnedByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.EarnedStamp, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EarnedStamp), args.Error(1)
}

func (m *MockStampRepo) ListEarnedByMember(ctx context.Context, tripID, memberID uuid.UUID) ([]domain.EarnedStamp, error) {
	args := m.Called(ctx, tripID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EarnedStamp), args.Error(1)
}

// MockPhotoRepo is a mock implementation of port.PhotoRepository.
type MockPhotoRepo struct {
	mock.Mock
}

func (m *MockPhotoRepo) Create(ctx context.Context, photo *domain.PhotoEntry) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}

func (m *MockPhotoRepo) GetByID(ctx context.Context, tripID, photoID uuid.UUID) (*domain.PhotoEntry, error) {
	args := m.Called(ctx, tripID, photoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PhotoEntry), args.Error(1)
}

func (m *MockPhotoRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.PhotoEntry, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PhotoEntry), args.Error(1)
}

func (m *MockPhotoRepo) ListByDay(ctx context.Context, tripID uuid.UUID, dayIndex int) ([]domain.PhotoEntry, error) {
	args := m.Called(ctx, tripID, dayIndex)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PhotoEntry), args.Error(1)
}

func (m *MockPhotoRepo) Delete(ctx context.Context, tripID, photoID uuid.UUID) error {
	args := m.Called(ctx, tripID, photoID)
	return args.Error(0)
}
