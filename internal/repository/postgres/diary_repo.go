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

// diaryRepo persists travel log entries.
type diaryRepo struct {
	db *sqlx.DB
}

// NewDiaryRepo creates a new PostgreSQL-backed DiaryRepository.
func NewDiaryRepo(db *sqlx.DB) port.DiaryRepository {
	return &diaryRepo{db: db}
}

func (r *diaryRepo) Upsert(ctx context.Context, e *domain.DiaryEntry) error {
	now := time.Now().UTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now

	query := `INSERT INTO diary_entries (
		id, trip_id, member_id, day_index, content, content_he, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (id) DO UPDATE SET
		day_index = EXCLUDED.day_index, content = EXCLUDED.content,
		content_he = EXCLUDED.content_he, updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.TripID, e.MemberID, e.DayIndex, e.Content, e.ContentHe,
		e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("diaryRepo.Upsert: %w", err)
	}
	return nil
}

func (r *diaryRepo) GetByID(ctx context.Context, tripID, entryID uuid.UUID) (*domain.DiaryEntry, error) {
	var e domain.DiaryEntry
	err := r.db.GetContext(ctx, &e,
		"SELECT * FROM diary_entries WHERE id = $1 AND trip_id = $2", entryID, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("diaryRepo.GetByID: %w", err)
	}
	return &e, nil
}

func (r *diaryRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.DiaryEntry, error) {
	var entries []domain.DiaryEntry
	err := r.db.SelectContext(ctx, &entries,
		"SELECT * FROM diary_entries WHERE trip_id = $1 ORDER BY day_index, created_at", tripID)
	if err != nil {
		return nil, fmt.Errorf("diaryRepo.ListByTrip: %w", err)
	}
	return entries, nil
}

func (r *diaryRepo) ListByDay(ctx context.Context, tripID uuid.UUID, dayIndex int) ([]domain.DiaryEntry, error) {
	var entries []domain.DiaryEntry
	err := r.db.SelectContext(ctx, &entries,
		"SELECT * FROM diary_entries WHERE trip_id = $1 AND day_index = $2 ORDER BY created_at",
		tripID, dayIndex)
	if err != nil {
		return nil, fmt.Errorf("diaryRepo.ListByDay: %w", err)
	}
	return entries, nil
}

func (r *diaryRepo) Delete(ctx context.Context, tripID, entryID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM diary_entries WHERE id = $1 AND trip_id = $2", entryID, tripID)
	if err != nil {
		return fmt.Errorf("diaryRepo.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
