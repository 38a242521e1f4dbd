package service

import (
	"context"

	"github.com/google/uuid"

	"wayfare/internal/domain"
	"wayfare/internal/port"
)

// ItineraryView bundles everything the day-by-day screen needs.
type ItineraryView struct {
	Days    []domain.TripDay        `json:"days"`
	Flights []domain.Flight         `json:"flights"`
	Hotels  []domain.Hotel          `json:"hotels"`
	Driving []domain.DrivingSegment `json:"driving"`
	Cars    []domain.RentalCar      `json:"cars"`
}

// ItineraryService defines the itinerary management contract: days, flights,
// hotels, driving segments, and rental cars.
type ItineraryService interface {
	View(ctx context.Context, tripID uuid.UUID) (*ItineraryView, error)

	UpsertDay(ctx context.Context, day *domain.TripDay) error
	DeleteDay(ctx context.Context, tripID, dayID uuid.UUID) error

	UpsertFlight(ctx context.Context, flight *domain.Flight) error
	DeleteFlight(ctx context.Context, tripID, flightID uuid.UUID) error

	UpsertHotel(ctx context.Context, hotel *domain.Hotel) error
	DeleteHotel(ctx context.Context, tripID, hotelID uuid.UUID) error

	UpsertDriving(ctx context.Context, seg *domain.DrivingSegment) error
	DeleteDriving(ctx context.Context, tripID, segID uuid.UUID) error

	UpsertRentalCar(ctx context.Context, car *domain.RentalCar) error
	DeleteRentalCar(ctx context.Context, tripID, carID uuid.UUID) error
}

type itineraryService struct {
	dayRepo     port.DayRepository
	flightRepo  port.FlightRepository
	hotelRepo   port.HotelRepository
	drivingRepo port.DrivingRepository
	rentalRepo  port.RentalCarRepository
}

// NewItineraryService creates the itinerary service.
func NewItineraryService(
	dayRepo port.DayRepository,
	flightRepo port.FlightRepository,
	hotelRepo port.HotelRepository,
	drivingRepo port.DrivingRepository,
	rentalRepo port.RentalCarRepository,
) ItineraryService {
	return &itineraryService{
		dayRepo:     dayRepo,
		flightRepo:  flightRepo,
		hotelRepo:   hotelRepo,
		drivingRepo: drivingRepo,
		rentalRepo:  rentalRepo,
	}
}

func (s *itineraryService) View(ctx context.Context, tripID uuid.UUID) (*ItineraryView, error) {
	days, err := s.dayRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	flights, err := s.flightRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	hotels, err := s.hotelRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	driving, err := s.drivingRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	cars, err := s.rentalRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return &ItineraryView{Days: days, Flights: flights, Hotels: hotels, Driving: driving, Cars: cars}, nil
}

func (s *itineraryService) UpsertDay(ctx context.Context, day *domain.TripDay) error {
	if day.ID == uuid.Nil {
		day.ID = uuid.New()
	}
	return s.dayRepo.Upsert(ctx, day)
}

func (s *itineraryService) DeleteDay(ctx context.Context, tripID, dayID uuid.UUID) error {
	return s.dayRepo.Delete(ctx, tripID, dayID)
}

func (s *itineraryService) UpsertFlight(ctx context.Context, flight *domain.Flight) error {
	if flight.ID == uuid.Nil {
		flight.ID = uuid.New()
	}
	return s.flightRepo.Upsert(ctx, flight)
}

func (s *itineraryService) DeleteFlight(ctx context.Context, tripID, flightID uuid.UUID) error {
	return s.flightRepo.Delete(ctx, tripID, flightID)
}

func (s *itineraryService) UpsertHotel(ctx context.Context, hotel *domain.Hotel) error {
	if hotel.ID == uuid.Nil {
		hotel.ID = uuid.New()
	}
	return s.hotelRepo.Upsert(ctx, hotel)
}

func (s *itineraryService) DeleteHotel(ctx context.Context, tripID, hotelID uuid.UUID) error {
	return s.hotelRepo.Delete(ctx, tripID, hotelID)
}

func (s *itineraryService) UpsertDriving(ctx context.Context, seg *domain.DrivingSegment) error {
	if seg.ID == uuid.Nil {
		seg.ID = uuid.New()
	}
	return s.drivingRepo.Upsert(ctx, seg)
}

func (s *itineraryService) DeleteDriving(ctx context.Context, tripID, segID uuid.UUID) error {
	return s.drivingRepo.Delete(ctx, tripID, segID)
}

func (s *itineraryService) UpsertRentalCar(ctx context.Context, car *domain.RentalCar) error {
	if car.ID == uuid.Nil {
		car.ID = uuid.New()
	}
	return s.rentalRepo.Upsert(ctx, car)
}

func (s *itineraryService) DeleteRentalCar(ctx context.Context, tripID, carID uuid.UUID) error {
	return s.rentalRepo.Delete(ctx, tripID, carID)
}
