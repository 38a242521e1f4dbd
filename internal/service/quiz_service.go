package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wayfare/internal/domain"
	"wayfare/internal/port"
)

// QuizResult is one member's score on the trip quiz.
type QuizResult struct {
	MemberID uuid.UUID `json:"member_id"`
	Answered int       `json:"answered"`
	Correct  int       `json:"correct"`
}

// QuizService defines the trip quiz contract: admins manage questions, members
// submit answers and compare scores.
type QuizService interface {
	UpsertQuestion(ctx context.Context, q *domain.QuizQuestion) error
	ListQuestions(ctx context.Context, tripID uuid.UUID) ([]domain.QuizQuestion, error)
	DeleteQuestion(ctx context.Context, tripID, questionID uuid.UUID) error

	SubmitAnswer(ctx context.Context, tripID, questionID, memberID uuid.UUID, answerIndex int) (*domain.QuizAnswer, error)
	MemberAnswers(ctx context.Context, tripID, memberID uuid.UUID) ([]domain.QuizAnswer, error)
	Results(ctx context.Context, tripID uuid.UUID) ([]QuizResult, error)
}

type quizService struct {
	quizRepo port.QuizRepository
}

// NewQuizService creates the quiz service.
func NewQuizService(quizRepo port.QuizRepository) QuizService {
	return &quizService{quizRepo: quizRepo}
}

func (s *quizService) UpsertQuestion(ctx context.Context, q *domain.QuizQuestion) error {
	if len(q.Options) < 2 {
		return fmt.Errorf("a quiz question needs at least 2 options, got %d", len(q.Options))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("correct_index %d is out of range for %d options", q.CorrectIndex, len(q.Options))
	}
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return s.quizRepo.UpsertQuestion(ctx, q)
}

func (s *quizService) ListQuestions(ctx context.Context, tripID uuid.UUID) ([]domain.QuizQuestion, error) {
	return s.quizRepo.ListQuestions(ctx, tripID)
}

func (s *quizService) DeleteQuestion(ctx context.Context, tripID, questionID uuid.UUID) error {
	return s.quizRepo.DeleteQuestion(ctx, tripID, questionID)
}

// SubmitAnswer grades the answer against the question and stores it under the
// member+question pair, so re-answering replaces the previous attempt.
func (s *quizService) SubmitAnswer(ctx context.Context, tripID, questionID, memberID uuid.UUID, answerIndex int) (*domain.QuizAnswer, error) {
	q, err := s.quizRepo.GetQuestion(ctx, tripID, questionID)
	if err != nil {
		return nil, err
	}
	if answerIndex < 0 || answerIndex >= len(q.Options) {
		return nil, fmt.Errorf("answer_index %d is out of range for %d options", answerIndex, len(q.Options))
	}

	answer := &domain.QuizAnswer{
		ID:          domain.QuizAnswerID(memberID, questionID),
		TripID:      tripID,
		QuestionID:  questionID,
		MemberID:    memberID,
		AnswerIndex: answerIndex,
		Correct:     answerIndex == q.CorrectIndex,
		AnsweredAt:  time.Now().UTC(),
	}
	if err := s.quizRepo.UpsertAnswer(ctx, answer); err != nil {
		return nil, err
	}
	return answer, nil
}

func (s *quizService) MemberAnswers(ctx context.Context, tripID, memberID uuid.UUID) ([]domain.QuizAnswer, error) {
	return s.quizRepo.ListAnswersByMember(ctx, tripID, memberID)
}

// Results aggregates per-member scores across every answered question.
func (s *quizService) Results(ctx context.Context, tripID uuid.UUID) ([]QuizResult, error) {
	answers, err := s.quizRepo.ListAnswersByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	byMember := make(map[uuid.UUID]*QuizResult)
	var order []uuid.UUID
	for _, a := range answers {
		r, ok := byMember[a.MemberID]
		if !ok {
			r = &QuizResult{MemberID: a.MemberID}
			byMember[a.MemberID] = r
			order = append(order, a.MemberID)
		}
		r.Answered++
		if a.Correct {
			r.Correct++
		}
	}

	results := make([]QuizResult, 0, len(order))
	for _, id := range order {
		results = append(results, *byMember[id])
	}
	return results, nil
}
