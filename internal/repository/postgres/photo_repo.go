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

type photoRepo struct {
	db *sqlx.DB
}

// NewPhotoRepo creates a new PostgreSQL-backed PhotoRepository.
func NewPhotoRepo(db *sqlx.DB) port.PhotoRepository {
	return &photoRepo{db: db}
}

func (r *photoRepo) Create(ctx context.Context, p *domain.PhotoEntry) error {
	p.CreatedAt = time.Now().UTC()

	query := `INSERT INTO photos (
		id, trip_id, day_index, member_id, object_key, caption, caption_he, taken_at, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.TripID, p.DayIndex, p.MemberID, p.ObjectKey, p.Caption, p.CaptionHe,
		p.TakenAt, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("photoRepo.Create: %w", err)
	}
	return nil
}

func (r *photoRepo) GetByID(ctx context.Context, tripID, photoID uuid.UUID) (*domain.PhotoEntry, error) {
	var p domain.PhotoEntry
	err := r.db.GetContext(ctx, &p,
		"SELECT * FROM photos WHERE id = $1 AND trip_id = $2", photoID, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("photoRepo.GetByID: %w", err)
	}
	return &p, nil
}

func (r *photoRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.PhotoEntry, error) {
	var photos []domain.PhotoEntry
	err := r.db.SelectContext(ctx, &photos,
		"SELECT * FROM photos WHERE trip_id = $1 ORDER BY taken_at DESC", tripID)
	if err != nil {
		return nil, fmt.Errorf("photoRepo.ListByTrip: %w", err)
	}
	return photos, nil
}

func (r *photoRepo) ListByDay(ctx context.Context, tripID uuid.UUID, dayIndex int) ([]domain.PhotoEntry, error) {
	var photos []domain.PhotoEntry
	err := r.db.SelectContext(ctx, &photos,
		"SELECT * FROM photos WHERE trip_id = $1 AND day_index = $2 ORDER BY taken_at DESC",
		tripID, dayIndex)
	if err != nil {
		return nil, fmt.Errorf("photoRepo.ListByDay: %w", err)
	}
	return photos, nil
}

func (r *photoRepo) Delete(ctx context.Context, tripID, photoID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM photos WHERE id = $1 AND trip_id = $2", photoID, tripID)
	if err != nil {
		return fmt.Errorf("photoRepo.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
