package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"wayfare/internal/domain"
)

// MockMemberRepo is a mock implementation of port.MemberRepository.
type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) Create(ctx context.Context, member *domain.FamilyMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepo) GetByID(ctx context.Context, tripID, memberID uuid.UUID) (*domain.FamilyMember, error) {
	args := m.Called(ctx, tripID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FamilyMember), args.Error(1)
}

func (m *MockMemberRepo) GetByEmail(ctx context.Context, tripID uuid.UUID, email string) (*domain.FamilyMember, error) {
	args := m.Called(ctx, tripID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FamilyMember), args.Error(1)
}

func (m *MockMemberRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.FamilyMember, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FamilyMember), args.Error(1)
}

func (m *MockMemberRepo) Update(ctx context.Context, member *domain.FamilyMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepo) Delete(ctx context.Context, tripID, memberID uuid.UUID) error {
	args := m.Called(ctx, tripID, memberID)
	return args.Error(0)
}
