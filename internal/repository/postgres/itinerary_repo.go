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

// dayRepo persists itinerary days.
type dayRepo struct {
	db *sqlx.DB
}

// NewDayRepo creates a new PostgreSQL-backed DayRepository.
func NewDayRepo(db *sqlx.DB) port.DayRepository {
	return &dayRepo{db: db}
}

func (r *dayRepo) Upsert(ctx context.Context, d *domain.TripDay) error {
	query := `INSERT INTO trip_days (id, trip_id, day_index, date, location, location_he, notes)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO UPDATE SET
		day_index = EXCLUDED.day_index, date = EXCLUDED.date,
		location = EXCLUDED.location, location_he = EXCLUDED.location_he,
		notes = EXCLUDED.notes`

	_, err := r.db.ExecContext(ctx, query,
		d.ID, d.TripID, d.DayIndex, d.Date, d.Location, d.LocationHe, d.Notes)
	if err != nil {
		return fmt.Errorf("dayRepo.Upsert: %w", err)
	}
	return nil
}

func (r *dayRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.TripDay, error) {
	var days []domain.TripDay
	err := r.db.SelectContext(ctx, &days,
		"SELECT * FROM trip_days WHERE trip_id = $1 ORDER BY day_index", tripID)
	if err != nil {
		return nil, fmt.Errorf("dayRepo.ListByTrip: %w", err)
	}
	return days, nil
}

func (r *dayRepo) Delete(ctx context.Context, tripID, dayID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM trip_days WHERE id = $1 AND trip_id = $2", dayID, tripID)
	if err != nil {
		return fmt.Errorf("dayRepo.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// flightRepo persists flights.
type flightRepo struct {
	db *sqlx.DB
}

// NewFlightRepo creates a new PostgreSQL-backed FlightRepository.
func NewFlightRepo(db *sqlx.DB) port.FlightRepository {
	return &flightRepo{db: db}
}

func (r *flightRepo) Upsert(ctx context.Context, f *domain.Flight) error {
	now := time.Now().UTC()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	f.UpdatedAt = now

	query := `INSERT INTO flights (
		id, trip_id, day_index, airline, flight_number,
		departure_airport, departure_airport_code, arrival_airport, arrival_airport_code,
		departure_time, arrival_time, terminal, gate, confirmation_code,
		boarding_pass_key, notes, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	ON CONFLICT (id) DO UPDATE SET
		day_index = EXCLUDED.day_index, airline = EXCLUDED.airline,
		flight_number = EXCLUDED.flight_number,
		departure_airport = EXCLUDED.departure_airport,
		departure_airport_code = EXCLUDED.departure_airport_code,
		arrival_airport = EXCLUDED.arrival_airport,
		arrival_airport_code = EXCLUDED.arrival_airport_code,
		departure_time = EXCLUDED.departure_time, arrival_time = EXCLUDED.arrival_time,
		terminal = EXCLUDED.terminal, gate = EXCLUDED.gate,
		confirmation_code = EXCLUDED.confirmation_code,
		boarding_pass_key = EXCLUDED.boarding_pass_key,
		notes = EXCLUDED.notes, updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		f.ID, f.TripID, f.DayIndex, f.Airline, f.FlightNumber,
		f.DepartureAirport, f.DepartureAirportCode, f.ArrivalAirport, f.ArrivalAirportCode,
		f.DepartureTime, f.ArrivalTime, f.Terminal, f.Gate, f.ConfirmationCode,
		f.BoardingPassKey, f.Notes, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("flightRepo.Upsert: %w", err)
	}
	return nil
}

func (r *flightRepo) GetByID(ctx context.Context, tripID, flightID uuid.UUID) (*domain.Flight, error) {
	var f domain.Flight
	err := r.db.GetContext(ctx, &f,
		"SELECT * FROM flights WHERE id = $1 AND trip_id = $2", flightID, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("flightRepo.GetByID: %w", err)
	}
	return &f, nil
}

func (r *flightRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Flight, error) {
	var flights []domain.Flight
	err := r.db.SelectContext(ctx, &flights,
		"SELECT * FROM flights WHERE trip_id = $1 ORDER BY departure_time", tripID)
	if err != nil {
		return nil, fmt.Errorf("flightRepo.ListByTrip: %w", err)
	}
	return flights, nil
}

func (r *flightRepo) Delete(ctx context.Context, tripID, flightID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM flights WHERE id = $1 AND trip_id = $2", flightID, tripID)
	if err != nil {
		return fmt.Errorf("flightRepo.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// hotelRepo persists hotels.
type hotelRepo struct {
	db *sqlx.DB
}

// NewHotelRepo creates a new PostgreSQL-backed HotelRepository.
func NewHotelRepo(db *sqlx.DB) port.HotelRepository {
	return &hotelRepo{db: db}
}

func (r *hotelRepo) Upsert(ctx context.Context, h *domain.Hotel) error {
	now := time.Now().UTC()
	if h.CreatedAt.IsZero() {
		h.CreatedAt = now
	}
	h.UpdatedAt = now

	query := `INSERT INTO hotels (
		id, trip_id, day_index_start, day_index_end, name, address, city,
		check_in, check_out, confirmation_code, phone, wifi_password, notes,
		created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	ON CONFLICT (id) DO UPDATE SET
		day_index_start = EXCLUDED.day_index_start, day_index_end = EXCLUDED.day_index_end,
		name = EXCLUDED.name, address = EXCLUDED.address, city = EXCLUDED.city,
		check_in = EXCLUDED.check_in, check_out = EXCLUDED.check_out,
		confirmation_code = EXCLUDED.confirmation_code, phone = EXCLUDED.phone,
		wifi_password = EXCLUDED.wifi_password, notes = EXCLUDED.notes,
		updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		h.ID, h.TripID, h.DayIndexStart, h.DayIndexEnd, h.Name, h.Address, h.City,
		h.CheckIn, h.CheckOut, h.ConfirmationCode, h.Phone, h.WifiPassword, h.Notes,
		h.CreatedAt, h.UpdatedAt)
	if err != nil {
		return fmt.Errorf("hotelRepo.Upsert: %w", err)
	}
	return nil
}

func (r *hotelRepo) GetByID(ctx context.Context, tripID, hotelID uuid.UUID) (*domain.Hotel, error) {
	var h domain.Hotel
	err := r.db.GetContext(ctx, &h,
		"SELECT * FROM hotels WHERE id = $1 AND trip_id = $2", hotelID, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("hotelRepo.GetByID: %w", err)
	}
	return &h, nil
}

func (r *hotelRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Hotel, error) {
	var hotels []domain.Hotel
	err := r.db.SelectContext(ctx, &hotels,
		"SELECT * FROM hotels WHERE trip_id = $1 ORDER BY day_index_start", tripID)
	if err != nil {
		return nil, fmt.Errorf("hotelRepo.ListByTrip: %w", err)
	}
	return hotels, nil
}

func (r *hotelRepo) Delete(ctx context.Context, tripID, hotelID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM hotels WHERE id = $1 AND trip_id = $2", hotelID, tripID)
	if err != nil {
		return fmt.Errorf("hotelRepo.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// drivingRepo persists driving segments.
type drivingRepo struct {
	db *sqlx.DB
}

// NewDrivingRepo creates a new PostgreSQL-backed DrivingRepository.
func NewDrivingRepo(db *sqlx.DB) port.DrivingRepository {
	return &drivingRepo{db: db}
}

func (r *drivingRepo) Upsert(ctx context.Context, s *domain.DrivingSegment) error {
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now

	query := `INSERT INTO driving_segments (
		id, trip_id, day_index, from_place, to_place, distance_km, duration_minutes,
		notes, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (id) DO UPDATE SET
		day_index = EXCLUDED.day_index, from_place = EXCLUDED.from_place,
		to_place = EXCLUDED.to_place, distance_km = EXCLUDED.distance_km,
		duration_minutes = EXCLUDED.duration_minutes, notes = EXCLUDED.notes,
		updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.TripID, s.DayIndex, s.FromPlace, s.ToPlace, s.DistanceKm, s.DurationMinutes,
		s.Notes, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("drivingRepo.Upsert: %w", err)
	}
	return nil
}

func (r *drivingRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.DrivingSegment, error) {
	var segs []domain.DrivingSegment
	err := r.db.SelectContext(ctx, &segs,
		"SELECT * FROM driving_segments WHERE trip_id = $1 ORDER BY day_index", tripID)
	if err != nil {
		return nil, fmt.Errorf("drivingRepo.ListByTrip: %w", err)
	}
	return segs, nil
}

func (r *drivingRepo) Delete(ctx context.Context, tripID, segID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM driving_segments WHERE id = $1 AND trip_id = $2", segID, tripID)
	if err != nil {
		return fmt.Errorf("drivingRepo.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
