package port

import (
	"context"

	"github.com/google/uuid"

	"wayfare/internal/domain"
)

// TripRepository defines the contract for trip persistence.
type TripRepository interface {
	Create(ctx context.Context, trip *domain.Trip) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error)
	GetByCode(ctx context.Context, code string) (*domain.Trip, error)
	Update(ctx context.Context, trip *domain.Trip) error
	// SetAIConfig overwrites the trip's AI provider settings wholesale.
	SetAIConfig(ctx context.Context, tripID uuid.UUID, provider, model, apiKey string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MemberRepository defines the contract for family member persistence.
// All query methods include tripID to enforce trip isolation at the data layer.
type MemberRepository interface {
	Create(ctx context.Context, member *domain.FamilyMember) error
	GetByID(ctx context.Context, tripID, memberID uuid.UUID) (*domain.FamilyMember, error)
	GetByEmail(ctx context.Context, tripID uuid.UUID, email string) (*domain.FamilyMember, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.FamilyMember, error)
	Update(ctx context.Context, member *domain.FamilyMember) error
	Delete(ctx context.Context, tripID, memberID uuid.UUID) error
}

// DayRepository defines the contract for itinerary day persistence.
type DayRepository interface {
	Upsert(ctx context.Context, day *domain.TripDay) error
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.TripDay, error)
	Delete(ctx context.Context, tripID, dayID uuid.UUID) error
}

// FlightRepository defines the contract for flight persistence.
type FlightRepository interface {
	Upsert(ctx context.Context, flight *domain.Flight) error
	GetByID(ctx context.Context, tripID, flightID uuid.UUID) (*domain.Flight, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Flight, error)
	Delete(ctx context.Context, tripID, flightID uuid.UUID) error
}

// HotelRepository defines the contract for hotel persistence.
type HotelRepository interface {
	Upsert(ctx context.Context, hotel *domain.Hotel) error
	GetByID(ctx context.Context, tripID, hotelID uuid.UUID) (*domain.Hotel, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Hotel, error)
	Delete(ctx context.Context, tripID, hotelID uuid.UUID) error
}

// DrivingRepository defines the contract for driving segment persistence.
type DrivingRepository interface {
	Upsert(ctx context.Context, seg *domain.DrivingSegment) error
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.DrivingSegment, error)
	Delete(ctx context.Context, tripID, segID uuid.UUID) error
}

// RentalCarRepository defines the contract for rental car persistence.
type RentalCarRepository interface {
	Upsert(ctx context.Context, car *domain.RentalCar) error
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.RentalCar, error)
	Delete(ctx context.Context, tripID, carID uuid.UUID) error
}

// HighlightRepository defines the contract for highlight persistence.
type HighlightRepository interface {
	Upsert(ctx context.Context, h *domain.Highlight) error
	GetByID(ctx context.Context, tripID, highlightID uuid.UUID) (*domain.Highlight, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Highlight, error)
	SetCompleted(ctx context.Context, tripID, highlightID uuid.UUID, completed bool, completedBy domain.StringList) error
	Delete(ctx context.Context, tripID, highlightID uuid.UUID) error
}

// RestaurantRepository defines the contract for restaurant persistence.
type RestaurantRepository interface {
	Upsert(ctx context.Context, r *domain.Restaurant) error
	GetByID(ctx context.Context, tripID, restaurantID uuid.UUID) (*domain.Restaurant, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Restaurant, error)
	Delete(ctx context.Context, tripID, restaurantID uuid.UUID) error
}

// PackingRepository defines the contract for packing list persistence.
type PackingRepository interface {
	Upsert(ctx context.Context, item *domain.PackingItem) error
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error)
	Delete(ctx context.Context, tripID, itemID uuid.UUID) error
}

// StampRepository defines the contract for passport stamp persistence.
type StampRepository interface {
	Upsert(ctx context.Context, stamp *domain.PassportStamp) error
	GetByID(ctx context.Context, tripID, stampID uuid.UUID) (*domain.PassportStamp, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.PassportStamp, error)
	ListByHighlight(ctx context.Context, tripID, highlightID uuid.UUID) ([]domain.PassportStamp, error)
	Delete(ctx context.Context, tripID, stampID uuid.UUID) error

	UpsertEarned(ctx context.Context, earned *domain.EarnedStamp) error
	ListEarnedByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.EarnedStamp, error)
	ListEarnedByMember(ctx context.Context, tripID, memberID uuid.UUID) ([]domain.EarnedStamp, error)
}

// QuizRepository defines the contract for trip quiz persistence.
type QuizRepository interface {
	UpsertQuestion(ctx context.Context, q *domain.QuizQuestion) error
	GetQuestion(ctx context.Context, tripID, questionID uuid.UUID) (*domain.QuizQuestion, error)
	ListQuestions(ctx context.Context, tripID uuid.UUID) ([]domain.QuizQuestion, error)
	DeleteQuestion(ctx context.Context, tripID, questionID uuid.UUID) error

	UpsertAnswer(ctx context.Context, a *domain.QuizAnswer) error
	ListAnswersByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.QuizAnswer, error)
	ListAnswersByMember(ctx context.Context, tripID, memberID uuid.UUID) ([]domain.QuizAnswer, error)
}

// DiaryRepository defines the contract for travel log persistence.
type DiaryRepository interface {
	Upsert(ctx context.Context, entry *domain.DiaryEntry) error
	GetByID(ctx context.Context, tripID, entryID uuid.UUID) (*domain.DiaryEntry, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.DiaryEntry, error)
	ListByDay(ctx context.Context, tripID uuid.UUID, dayIndex int) ([]domain.DiaryEntry, error)
	Delete(ctx context.Context, tripID, entryID uuid.UUID) error
}

// PhotoRepository defines the contract for photo feed persistence.
type PhotoRepository interface {
	Create(ctx context.Context, photo *domain.PhotoEntry) error
	GetByID(ctx context.Context, tripID, photoID uuid.UUID) (*domain.PhotoEntry, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.PhotoEntry, error)
	ListByDay(ctx context.Context, tripID uuid.UUID, dayIndex int) ([]domain.PhotoEntry, error)
	Delete(ctx context.Context, tripID, photoID uuid.UUID) error
}
