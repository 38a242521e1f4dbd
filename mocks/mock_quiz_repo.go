package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"wayfare/internal/domain"
)

// MockQuizRepo is a mock implementation of port.QuizRepository.
type MockQuizRepo struct {
	mock.Mock
}

func (m *MockQuizRepo) UpsertQuestion(ctx context.Context, q *domain.QuizQuestion) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuizRepo) GetQuestion(ctx context.Context, tripID, questionID uuid.UUID) (*domain.QuizQuestion, error) {
	args := m.Called(ctx, tripID, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizQuestion), args.Error(1)
}

func (m *MockQuizRepo) ListQuestions(ctx context.Context, tripID uuid.UUID) ([]domain.QuizQuestion, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizQuestion), args.Error(1)
}

func (m *MockQuizRepo) DeleteQuestion(ctx context.Context, tripID, questionID uuid.UUID) error {
	args := m.Called(ctx, tripID, questionID)
	return args.Error(0)
}

func (m *MockQuizRepo) UpsertAnswer(ctx context.Context, a *domain.QuizAnswer) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockQuizRepo) ListAnswersByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.QuizAnswer, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizAnswer), args.Error(1)
}

func (m *MockQuizRepo) ListAnswersByMember(ctx context.Context, tripID, memberID uuid.UUID) ([]domain.QuizAnswer, error) {
	args := m.Called(ctx, tripID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizAnswer), args.Error(1)
}
