package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"wayfare/internal/domain"
	"wayfare/internal/port"
)

type tripRepo struct {
	db *sqlx.DB
}

// NewTripRepo creates a new PostgreSQL-backed TripRepository.
func NewTripRepo(db *sqlx.DB) port.TripRepository {
	return &tripRepo{db: db}
}

func (r *tripRepo) Create(ctx context.Context, trip *domain.Trip) error {
	now := time.Now().UTC()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	query := `INSERT INTO trips (
		id, code, name, start_date, end_date, admin_pin_hash,
		ai_provider, ai_model, ai_api_key, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		trip.ID, trip.Code, trip.Name, trip.StartDate, trip.EndDate, trip.AdminPINHash,
		trip.AIProvider, trip.AIModel, trip.AIAPIKey, trip.CreatedAt, trip.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "code") {
			return domain.ErrDuplicateTripCode
		}
		return fmt.Errorf("tripRepo.Create: %w", err)
	}
	return nil
}

func (r *tripRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error) {
	var trip domain.Trip
	err := r.db.GetContext(ctx, &trip, "SELECT * FROM trips WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTripNotFound
		}
		return nil, fmt.Errorf("tripRepo.GetByID: %w", err)
	}
	return &trip, nil
}

func (r *tripRepo) GetByCode(ctx context.Context, code string) (*domain.Trip, error) {
	var trip domain.Trip
	err := r.db.GetContext(ctx, &trip, "SELECT * FROM trips WHERE code = $1", code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTripNotFound
		}
		return nil, fmt.Errorf("tripRepo.GetByCode: %w", err)
	}
	return &trip, nil
}

func (r *tripRepo) Update(ctx context.Context, trip *domain.Trip) error {
	trip.UpdatedAt = time.Now().UTC()

	query := `UPDATE trips SET
		name = $2, start_date = $3, end_date = $4, admin_pin_hash = $5, updated_at = $6
	WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		trip.ID, trip.Name, trip.StartDate, trip.EndDate, trip.AdminPINHash, trip.UpdatedAt)
	if err != nil {
		return fmt.Errorf("tripRepo.Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrTripNotFound
	}
	return nil
}

func (r *tripRepo) SetAIConfig(ctx context.Context, tripID uuid.UUID, provider, model, apiKey string) error {
	query := `UPDATE trips SET
		ai_provider = $2, ai_model = $3, ai_api_key = $4, updated_at = $5
	WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, tripID, provider, model, apiKey, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("tripRepo.SetAIConfig: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrTripNotFound
	}
	return nil
}

func (r *tripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM trips WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("tripRepo.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrTripNotFound
	}
	return nil
}
