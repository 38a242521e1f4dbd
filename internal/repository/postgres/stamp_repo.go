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

type stampRepo struct {
	db *sqlx.DB
}

// NewStampRepo creates a new PostgreSQL-backed StampRepository.
func NewStampRepo(db *sqlx.DB) port.StampRepository {
	return &stampRepo{db: db}
}

func (r *stampRepo) Upsert(ctx context.Context, s *domain.PassportStamp) error {
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now

	query := `INSERT INTO passport_stamps (
		id, trip_id, day_index, title, title_he, description, description_he,
		icon, location, earn_condition, highlight_id, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (id) DO UPDATE SET
		day_index = EXCLUDED.day_index, title = EXCLUDED.title, title_he = EXCLUDED.title_he,
		description = EXCLUDED.description, description_he = EXCLUDED.description_he,
		icon = EXCLUDED.icon, location = EXCLUDED.location,
		earn_condition = EXCLUDED.earn_condition, highlight_id = EXCLUDED.highlight_id,
		updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.TripID, s.DayIndex, s.Title, s.TitleHe, s.Description, s.DescriptionHe,
		s.Icon, s.Location, s.EarnCondition, s.HighlightID, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("stampRepo.Upsert: %w", err)
	}
	return nil
}

func (r *stampRepo) GetByID(ctx context.Context, tripID, stampID uuid.UUID) (*domain.PassportStamp, error) {
	var s domain.PassportStamp
	err := r.db.GetContext(ctx, &s,
		"SELECT * FROM passport_stamps WHERE id = $1 AND trip_id = $2", stampID, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("stampRepo.GetByID: %w", err)
	}
	return &s, nil
}

func (r *stampRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.PassportStamp, error) {
	var stamps []domain.PassportStamp
	err := r.db.SelectContext(ctx, &stamps,
		"SELECT * FROM passport_stamps WHERE trip_id = $1 ORDER BY day_index, title", tripID)
	if err != nil {
		return nil, fmt.Errorf("stampRepo.ListByTrip: %w", err)
	}
	return stamps, nil
}

func (r *stampRepo) ListByHighlight(ctx context.Context, tripID, highlightID uuid.UUID) ([]domain.PassportStamp, error) {
	var stamps []domain.PassportStamp
	err := r.db.SelectContext(ctx, &stamps,
		"SELECT * FROM passport_stamps WHERE trip_id = $1 AND highlight_id = $2", tripID, highlightID)
	if err != nil {
		return nil, fmt.Errorf("stampRepo.ListByHighlight: %w", err)
	}
	return stamps, nil
}

func (r *stampRepo) Delete(ctx context.Context, tripID, stampID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM passport_stamps WHERE id = $1 AND trip_id = $2", stampID, tripID)
	if err != nil {
		return fmt.Errorf("stampRepo.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *stampRepo) UpsertEarned(ctx context.Context, e *domain.EarnedStamp) error {
	// Earning is idempotent: the deterministic id makes a re-earn a no-op.
	query := `INSERT INTO earned_stamps (id, trip_id, stamp_id, member_id, earned_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (id) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query, e.ID, e.TripID, e.StampID, e.MemberID, e.EarnedAt)
	if err != nil {
		return fmt.Errorf("stampRepo.UpsertEarned: %w", err)
	}
	return nil
}

func (r *stampRepo) ListEarnedByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.EarnedStamp, error) {
	var earned []domain.EarnedStamp
	err := r.db.SelectContext(ctx, &earned,
		"SELECT * FROM earned_stamps WHERE trip_id = $1 ORDER BY earned_at", tripID)
	if err != nil {
		return nil, fmt.Errorf("stampRepo.ListEarnedByTrip: %w", err)
	}
	return earned, nil
}

func (r *stampRepo) ListEarnedByMember(ctx context.Context, tripID, memberID uuid.UUID) ([]domain.EarnedStamp, error) {
	var earned []domain.EarnedStamp
	err := r.db.SelectContext(ctx, &earned,
		"SELECT * FROM earned_stamps WHERE trip_id = $1 AND member_id = $2 ORDER BY earned_at",
		tripID, memberID)
	if err != nil {
		return nil, fmt.Errorf("stampRepo.ListEarnedByMember: %w", err)
	}
	return earned, nil
}
