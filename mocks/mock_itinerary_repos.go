package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"wayfare/internal/domain"
)

// MockDayRepo is a mock implementation of port.DayRepository.
type MockDayRepo struct {
	mock.Mock
}

func (m *MockDayRepo) Upsert(ctx context.Context, day *domain.TripDay) error {
	args := m.Called(ctx, day)
	return args.Error(0)
}

func (m *MockDayRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.TripDay, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TripDay), args.Error(1)
}

func (m *MockDayRepo) Delete(ctx context.Context, tripID, dayID uuid.UUID) error {
	args := m.Called(ctx, tripID, dayID)
	return args.Error(0)
}

// MockFlightRepo is a mock implementation of port.FlightRepository.
type MockFlightRepo struct {
	mock.Mock
}

func (m *MockFlightRepo) Upsert(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepo) GetByID(ctx context.Context, tripID, flightID uuid.UUID) (*domain.Flight, error) {
	args := m.Called(ctx, tripID, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Flight, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepo) Delete(ctx context.Context, tripID, flightID uuid.UUID) error {
	args := m.Called(ctx, tripID, flightID)
	return args.Error(0)
}

// MockHotelRepo is a mock implementation of port.HotelRepository.
type MockHotelRepo struct {
	mock.Mock
}

func (m *MockHotelRepo) Upsert(ctx context.Context, hotel *domain.Hotel) error {
	args := m.Called(ctx, hotel)
	return args.Error(0)
}

func (m *MockHotelRepo) GetByID(ctx context.Context, tripID, hotelID uuid.UUID) (*domain.Hotel, error) {
	args := m.Called(ctx, tripID, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Hotel, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockHotelRepo) Delete(ctx context.Context, tripID, hotelID uuid.UUID) error {
	args := m.Called(ctx, tripID, hotelID)
	return args.Error(0)
}

// MockDrivingRepo is a mock implementation of port.DrivingRepository.
type MockDrivingRepo struct {
	mock.Mock
}

func (m *MockDrivingRepo) Upsert(ctx context.Context, seg *domain.DrivingSegment) error {
	args := m.Called(ctx, seg)
	return args.Error(0)
}

func (m *MockDrivingRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.DrivingSegment, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DrivingSegment), args.Error(1)
}

func (m *MockDrivingRepo) Delete(ctx context.Context, tripID, segID uuid.UUID) error {
	args := m.Called(ctx, tripID, segID)
	return args.Error(0)
}

// MockRentalCarRepo is a mock implementation of port.RentalCarRepository.
type MockRentalCarRepo struct {
	mock.Mock
}

func (m *MockRentalCarRepo) Upsert(ctx context.Context, car *domain.RentalCar) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *MockRentalCarRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.RentalCar, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalCar), args.Error(1)
}

func (m *MockRentalCarRepo) Delete(ctx context.Context, tripID, carID uuid.UUID) error {
	args := m.Called(ctx, tripID, carID)
	return args.Error(0)
}
