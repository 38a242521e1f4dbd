package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"wayfare/internal/domain"
	"wayfare/internal/port"
)

// rentalCarRepo persists rental car bookings.
type rentalCarRepo struct {
	db *sqlx.DB
}

// NewRentalCarRepo creates a new PostgreSQL-backed RentalCarRepository.
func NewRentalCarRepo(db *sqlx.DB) port.RentalCarRepository {
	return &rentalCarRepo{db: db}
}

func (r *rentalCarRepo) Upsert(ctx context.Context, c *domain.RentalCar) error {
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	query := `INSERT INTO rental_cars (
		id, trip_id, company, car_model, pickup_location, pickup_time,
		dropoff_location, dropoff_time, confirmation_code, notes,
		created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (id) DO UPDATE SET
		company = EXCLUDED.company, car_model = EXCLUDED.car_model,
		pickup_location = EXCLUDED.pickup_location, pickup_time = EXCLUDED.pickup_time,
		dropoff_location = EXCLUDED.dropoff_location, dropoff_time = EXCLUDED.dropoff_time,
		confirmation_code = EXCLUDED.confirmation_code, notes = EXCLUDED.notes,
		updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.TripID, c.Company, c.CarModel, c.PickupLocation, c.PickupTime,
		c.DropoffLocation, c.DropoffTime, c.ConfirmationCode, c.Notes,
		c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("rentalCarRepo.Upsert: %w", err)
	}
	return nil
}

func (r *rentalCarRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.RentalCar, error) {
	var cars []domain.RentalCar
	err := r.db.SelectContext(ctx, &cars,
		"SELECT * FROM rental_cars WHERE trip_id = $1 ORDER BY pickup_time NULLS LAST, created_at", tripID)
	if err != nil {
		return nil, fmt.Errorf("rentalCarRepo.ListByTrip: %w", err)
	}
	return cars, nil
}

func (r *rentalCarRepo) Delete(ctx context.Context, tripID, carID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM rental_cars WHERE id = $1 AND trip_id = $2", carID, tripID)
	if err != nil {
		return fmt.Errorf("rentalCarRepo.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
