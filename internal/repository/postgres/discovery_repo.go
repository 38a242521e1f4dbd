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

// highlightRepo persists highlights.
type highlightRepo struct {
	db *sqlx.DB
}

// NewHighlightRepo creates a new PostgreSQL-backed HighlightRepository.
func NewHighlightRepo(db *sqlx.DB) port.HighlightRepository {
	return &highlightRepo{db: db}
}

func (r *highlightRepo) Upsert(ctx context.Context, h *domain.Highlight) error {
	now := time.Now().UTC()
	if h.CreatedAt.IsZero() {
		h.CreatedAt = now
	}
	h.UpdatedAt = now

	query := `INSERT INTO highlights (
		id, trip_id, day_index, name, name_he, description, description_he,
		category, address, opening_hours, ticket_info, completed, completed_by,
		created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	ON CONFLICT (id) DO UPDATE SET
		day_index = EXCLUDED.day_index, name = EXCLUDED.name, name_he = EXCLUDED.name_he,
		description = EXCLUDED.description, description_he = EXCLUDED.description_he,
		category = EXCLUDED.category, address = EXCLUDED.address,
		opening_hours = EXCLUDED.opening_hours, ticket_info = EXCLUDED.ticket_info,
		completed = EXCLUDED.completed, completed_by = EXCLUDED.completed_by,
		updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		h.ID, h.TripID, h.DayIndex, h.Name, h.NameHe, h.Description, h.DescriptionHe,
		h.Category, h.Address, h.OpeningHours, h.TicketInfo, h.Completed, h.CompletedBy,
		h.CreatedAt, h.UpdatedAt)
	if err != nil {
		return fmt.Errorf("highlightRepo.Upsert: %w", err)
	}
	return nil
}

func (r *highlightRepo) GetByID(ctx context.Context, tripID, highlightID uuid.UUID) (*domain.Highlight, error) {
	var h domain.Highlight
	err := r.db.GetContext(ctx, &h,
		"SELECT * FROM highlights WHERE id = $1 AND trip_id = $2", highlightID, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("highlightRepo.GetByID: %w", err)
	}
	return &h, nil
}

func (r *highlightRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Highlight, error) {
	var highlights []domain.Highlight
	err := r.db.SelectContext(ctx, &highlights,
		"SELECT * FROM highlights WHERE trip_id = $1 ORDER BY day_index, name", tripID)
	if err != nil {
		return nil, fmt.Errorf("highlightRepo.ListByTrip: %w", err)
	}
	return highlights, nil
}

func (r *highlightRepo) SetCompleted(ctx context.Context, tripID, highlightID uuid.UUID, completed bool, completedBy domain.StringList) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE highlights SET completed = $3, completed_by = $4, updated_at = $5
		 WHERE id = $1 AND trip_id = $2`,
		highlightID, tripID, completed, completedBy, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("highlightRepo.SetCompleted: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *highlightRepo) Delete(ctx context.Context, tripID, highlightID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM highlights WHERE id = $1 AND trip_id = $2", highlightID, tripID)
	if err != nil {
		return fmt.Errorf("highlightRepo.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// restaurantRepo persists restaurants.
type restaurantRepo struct {
	db *sqlx.DB
}

// NewRestaurantRepo creates a new PostgreSQL-backed RestaurantRepository.
func NewRestaurantRepo(db *sqlx.DB) port.RestaurantRepository {
	return &restaurantRepo{db: db}
}

func (r *restaurantRepo) Upsert(ctx context.Context, rest *domain.Restaurant) error {
	now := time.Now().UTC()
	if rest.CreatedAt.IsZero() {
		rest.CreatedAt = now
	}
	rest.UpdatedAt = now

	query := `INSERT INTO restaurants (
		id, trip_id, day_index, name, name_he, cuisine, address, city, phone,
		price_range, ratings, notes, visited, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	ON CONFLICT (id) DO UPDATE SET
		day_index = EXCLUDED.day_index, name = EXCLUDED.name, name_he = EXCLUDED.name_he,
		cuisine = EXCLUDED.cuisine, address = EXCLUDED.address, city = EXCLUDED.city,
		phone = EXCLUDED.phone, price_range = EXCLUDED.price_range,
		ratings = EXCLUDED.ratings, notes = EXCLUDED.notes, visited = EXCLUDED.visited,
		updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		rest.ID, rest.TripID, rest.DayIndex, rest.Name, rest.NameHe, rest.Cuisine,
		rest.Address, rest.City, rest.Phone, rest.PriceRange, rest.Ratings, rest.Notes,
		rest.Visited, rest.CreatedAt, rest.UpdatedAt)
	if err != nil {
		return fmt.Errorf("restaurantRepo.Upsert: %w", err)
	}
	return nil
}

func (r *restaurantRepo) GetByID(ctx context.Context, tripID, restaurantID uuid.UUID) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.db.GetContext(ctx, &rest,
		"SELECT * FROM restaurants WHERE id = $1 AND trip_id = $2", restaurantID, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("restaurantRepo.GetByID: %w", err)
	}
	return &rest, nil
}

func (r *restaurantRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant
	err := r.db.SelectContext(ctx, &restaurants,
		"SELECT * FROM restaurants WHERE trip_id = $1 ORDER BY name", tripID)
	if err != nil {
		return nil, fmt.Errorf("restaurantRepo.ListByTrip: %w", err)
	}
	return restaurants, nil
}

func (r *restaurantRepo) Delete(ctx context.Context, tripID, restaurantID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM restaurants WHERE id = $1 AND trip_id = $2", restaurantID, tripID)
	if err != nil {
		return fmt.Errorf("restaurantRepo.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// packingRepo persists packing list items.
type packingRepo struct {
	db *sqlx.DB
}

// NewPackingRepo creates a new PostgreSQL-backed PackingRepository.
func NewPackingRepo(db *sqlx.DB) port.PackingRepository {
	return &packingRepo{db: db}
}

func (r *packingRepo) Upsert(ctx context.Context, item *domain.PackingItem) error {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO packing_items (id, trip_id, text, text_he, checked, category, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO UPDATE SET
		text = EXCLUDED.text, text_he = EXCLUDED.text_he,
		checked = EXCLUDED.checked, category = EXCLUDED.category`

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.TripID, item.Text, item.TextHe, item.Checked, item.Category, item.CreatedAt)
	if err != nil {
		return fmt.Errorf("packingRepo.Upsert: %w", err)
	}
	return nil
}

func (r *packingRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error) {
	var items []domain.PackingItem
	err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM packing_items WHERE trip_id = $1 ORDER BY category, created_at", tripID)
	if err != nil {
		return nil, fmt.Errorf("packingRepo.ListByTrip: %w", err)
	}
	return items, nil
}

func (r *packingRepo) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM packing_items WHERE id = $1 AND trip_id = $2", itemID, tripID)
	if err != nil {
		return fmt.Errorf("packingRepo.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
