package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"wayfare/internal/domain"
	"wayfare/internal/port"
)

// quizRepo persists quiz questions and member answers.
type quizRepo struct {
	db *sqlx.DB
}

// NewQuizRepo creates a new PostgreSQL-backed QuizRepository.
func NewQuizRepo(db *sqlx.DB) port.QuizRepository {
	return &quizRepo{db: db}
}

func (r *quizRepo) UpsertQuestion(ctx context.Context, q *domain.QuizQuestion) error {
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO quiz_questions (
		id, trip_id, question, question_he, options, correct_index, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO UPDATE SET
		question = EXCLUDED.question, question_he = EXCLUDED.question_he,
		options = EXCLUDED.options, correct_index = EXCLUDED.correct_index`

	_, err := r.db.ExecContext(ctx, query,
		q.ID, q.TripID, q.Question, q.QuestionHe, q.Options, q.CorrectIndex, q.CreatedAt)
	if err != nil {
		return fmt.Errorf("quizRepo.UpsertQuestion: %w", err)
	}
	return nil
}

func (r *quizRepo) GetQuestion(ctx context.Context, tripID, questionID uuid.UUID) (*domain.QuizQuestion, error) {
	var q domain.QuizQuestion
	err := r.db.GetContext(ctx, &q,
		"SELECT * FROM quiz_questions WHERE id = $1 AND trip_id = $2", questionID, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("quizRepo.GetQuestion: %w", err)
	}
	return &q, nil
}

func (r *quizRepo) ListQuestions(ctx context.Context, tripID uuid.UUID) ([]domain.QuizQuestion, error) {
	var questions []domain.QuizQuestion
	err := r.db.SelectContext(ctx, &questions,
		"SELECT * FROM quiz_questions WHERE trip_id = $1 ORDER BY created_at", tripID)
	if err != nil {
		return nil, fmt.Errorf("quizRepo.ListQuestions: %w", err)
	}
	return questions, nil
}

func (r *quizRepo) DeleteQuestion(ctx context.Context, tripID, questionID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM quiz_questions WHERE id = $1 AND trip_id = $2", questionID, tripID)
	if err != nil {
		return fmt.Errorf("quizRepo.DeleteQuestion: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *quizRepo) UpsertAnswer(ctx context.Context, a *domain.QuizAnswer) error {
	if a.AnsweredAt.IsZero() {
		a.AnsweredAt = time.Now().UTC()
	}

	// Re-answering replaces the member's previous answer for the question.
	query := `INSERT INTO quiz_answers (
		id, trip_id, question_id, member_id, answer_index, correct, answered_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO UPDATE SET
		answer_index = EXCLUDED.answer_index, correct = EXCLUDED.correct,
		answered_at = EXCLUDED.answered_at`

	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.TripID, a.QuestionID, a.MemberID, a.AnswerIndex, a.Correct, a.AnsweredAt)
	if err != nil {
		return fmt.Errorf("quizRepo.UpsertAnswer: %w", err)
	}
	return nil
}

func (r *quizRepo) ListAnswersByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.QuizAnswer, error) {
	var answers []domain.QuizAnswer
	err := r.db.SelectContext(ctx, &answers,
		"SELECT * FROM quiz_answers WHERE trip_id = $1 ORDER BY answered_at", tripID)
	if err != nil {
		return nil, fmt.Errorf("quizRepo.ListAnswersByTrip: %w", err)
	}
	return answers, nil
}

func (r *quizRepo) ListAnswersByMember(ctx context.Context, tripID, memberID uuid.UUID) ([]domain.QuizAnswer, error) {
	var answers []domain.QuizAnswer
	err := r.db.SelectContext(ctx, &answers,
		"SELECT * FROM quiz_answers WHERE trip_id = $1 AND member_id = $2 ORDER BY answered_at",
		tripID, memberID)
	if err != nil {
		return nil, fmt.Errorf("quizRepo.ListAnswersByMember: %w", err)
	}
	return answers, nil
}
