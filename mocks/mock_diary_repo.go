package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"wayfare/internal/domain"
)

// MockDiaryRepo is a mock implementation of port.DiaryRepository.
type MockDiaryRepo struct {
	mock.Mock
}

func (m *MockDiaryRepo) Upsert(ctx context.Context, entry *domain.DiaryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockDiaryRepo) GetByID(ctx context.Context, tripID, entryID uuid.UUID) (*domain.DiaryEntry, error) {
	args := m.Called(ctx, tripID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DiaryEntry), args.Error(1)
}

func (m *MockDiaryRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.DiaryEntry, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DiaryEntry), args.Error(1)
}

func (m *MockDiaryRepo) ListByDay(ctx context.Context, tripID uuid.UUID, dayIndex int) ([]domain.DiaryEntry, error) {
	args := m.Called(ctx, tripID, dayIndex)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DiaryEntry), args.Error(1)
}

func (m *MockDiaryRepo) Delete(ctx context.Context, tripID, entryID uuid.UUID) error {
	args := m.Called(ctx, tripID, entryID)
	return args.Error(0)
}
