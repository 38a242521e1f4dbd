package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Trip represents a shared family trip identified by a short join code.
type Trip struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Code         string    `db:"code" json:"code"`
	Name         string    `db:"name" json:"name"`
	StartDate    time.Time `db:"start_date" json:"start_date"`
	EndDate      time.Time `db:"end_date" json:"end_date"`
	AdminPINHash string    `db:"admin_pin_hash" json:"-"`
	AIProvider   string    `db:"ai_provider" json:"ai_provider"`
	AIModel      string    `db:"ai_model" json:"ai_model"`
	AIAPIKey     string    `db:"ai_api_key" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// FamilyMember represents one traveler on a trip. Virtual members share a
// device (kids on the family tablet) and have no email of their own.
type FamilyMember struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	TripID     uuid.UUID  `db:"trip_id" json:"trip_id"`
	Name       string     `db:"name" json:"name"`
	NameHe     string     `db:"name_he" json:"name_he"`
	Emoji      string     `db:"emoji" json:"emoji"`
	DeviceType DeviceType `db:"device_type" json:"device_type"`
	Email      string     `db:"email" json:"email"`
	IsVirtual  bool       `db:"is_virtual" json:"is_virtual"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

// TripDay is one calendar day of the itinerary.
type TripDay struct {
	ID         uuid.UUID `db:"id" json:"id"`
	TripID     uuid.UUID `db:"trip_id" json:"trip_id"`
	DayIndex   int       `db:"day_index" json:"day_index"`
	Date       time.Time `db:"date" json:"date"`
	Location   string    `db:"location" json:"location"`
	LocationHe string    `db:"location_he" json:"location_he"`
	Notes      string    `db:"notes" json:"notes"`
}

// Flight represents one flight segment.
type Flight struct {
	ID                   uuid.UUID `db:"id" json:"id"`
	TripID               uuid.UUID `db:"trip_id" json:"trip_id"`
	DayIndex             int       `db:"day_index" json:"day_index"`
	Airline              string    `db:"airline" json:"airline"`
	FlightNumber         string    `db:"flight_number" json:"flight_number"`
	DepartureAirport     string    `db:"departure_airport" json:"departure_airport"`
	DepartureAirportCode string    `db:"departure_airport_code" json:"departure_airport_code"`
	ArrivalAirport       string    `db:"arrival_airport" json:"arrival_airport"`
	ArrivalAirportCode   string    `db:"arrival_airport_code" json:"arrival_airport_code"`
	DepartureTime        time.Time `db:"departure_time" json:"departure_time"`
	ArrivalTime          time.Time `db:"arrival_time" json:"arrival_time"`
	Terminal             string    `db:"terminal" json:"terminal"`
	Gate                 string    `db:"gate" json:"gate"`
	ConfirmationCode     string    `db:"confirmation_code" json:"confirmation_code"`
	BoardingPassKey      string    `db:"boarding_pass_key" json:"boarding_pass_key"`
	Notes                string    `db:"notes" json:"notes"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}

// Hotel represents a stay spanning one or more itinerary days.
type Hotel struct {
	ID               uuid.UUID `db:"id" json:"id"`
	TripID           uuid.UUID `db:"trip_id" json:"trip_id"`
	DayIndexStart    int       `db:"day_index_start" json:"day_index_start"`
	DayIndexEnd      int       `db:"day_index_end" json:"day_index_end"`
	Name             string    `db:"name" json:"name"`
	Address          string    `db:"address" json:"address"`
	City             string    `db:"city" json:"city"`
	CheckIn          time.Time `db:"check_in" json:"check_in"`
	CheckOut         time.Time `db:"check_out" json:"check_out"`
	ConfirmationCode string    `db:"confirmation_code" json:"confirmation_code"`
	Phone            string    `db:"phone" json:"phone"`
	WifiPassword     string    `db:"wifi_password" json:"wifi_password"`
	Notes            string    `db:"notes" json:"notes"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// DrivingSegment represents one driving leg of the trip.
type DrivingSegment struct {
	ID              uuid.UUID `db:"id" json:"id"`
	TripID          uuid.UUID `db:"trip_id" json:"trip_id"`
	DayIndex        int       `db:"day_index" json:"day_index"`
	FromPlace       string    `db:"from_place" json:"from"`
	ToPlace         string    `db:"to_place" json:"to"`
	DistanceKm      *float64  `db:"distance_km" json:"distance_km"`
	DurationMinutes *int      `db:"duration_minutes" json:"duration_minutes"`
	Notes           string    `db:"notes" json:"notes"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Highlight represents an attraction or activity.
type Highlight struct {
	ID            uuid.UUID         `db:"id" json:"id"`
	TripID        uuid.UUID         `db:"trip_id" json:"trip_id"`
	DayIndex      int               `db:"day_index" json:"day_index"`
	Name          string            `db:"name" json:"name"`
	NameHe        string            `db:"name_he" json:"name_he"`
	Description   string            `db:"description" json:"description"`
	DescriptionHe string            `db:"description_he" json:"description_he"`
	Category      HighlightCategory `db:"category" json:"category"`
	Address       string            `db:"address" json:"address"`
	OpeningHours  string            `db:"opening_hours" json:"opening_hours"`
	TicketInfo    string            `db:"ticket_info" json:"ticket_info"`
	Completed     bool              `db:"completed" json:"completed"`
	CompletedBy   StringList        `db:"completed_by" json:"completed_by"`
	CreatedAt     time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time         `db:"updated_at" json:"updated_at"`
}

// Restaurant represents a restaurant on the trip wishlist.
type Restaurant struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	TripID     uuid.UUID  `db:"trip_id" json:"trip_id"`
	DayIndex   *int       `db:"day_index" json:"day_index"`
	Name       string     `db:"name" json:"name"`
	NameHe     string     `db:"name_he" json:"name_he"`
	Cuisine    string     `db:"cuisine" json:"cuisine"`
	Address    string     `db:"address" json:"address"`
	City       string     `db:"city" json:"city"`
	Phone      string     `db:"phone" json:"phone"`
	PriceRange PriceRange `db:"price_range" json:"price_range"`
	Ratings    RatingMap  `db:"ratings" json:"ratings"`
	Notes      string     `db:"notes" json:"notes"`
	Visited    bool       `db:"visited" json:"visited"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

// PackingItem represents one packing checklist entry. Category is either
// "shared" or a member ID.
type PackingItem struct {
	ID        uuid.UUID `db:"id" json:"id"`
	TripID    uuid.UUID `db:"trip_id" json:"trip_id"`
	Text      string    `db:"text" json:"text"`
	TextHe    string    `db:"text_he" json:"text_he"`
	Checked   bool      `db:"checked" json:"checked"`
	Category  string    `db:"category" json:"category"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// PassportStamp is an earnable achievement tied to a trip day. When
// HighlightID is set, the stamp is auto-earned for members who complete
// the linked highlight.
type PassportStamp struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	TripID        uuid.UUID  `db:"trip_id" json:"trip_id"`
	DayIndex      int        `db:"day_index" json:"day_index"`
	Title         string     `db:"title" json:"title"`
	TitleHe       string     `db:"title_he" json:"title_he"`
	Description   string     `db:"description" json:"description"`
	DescriptionHe string     `db:"description_he" json:"description_he"`
	Icon          string     `db:"icon" json:"icon"`
	Location      string     `db:"location" json:"location"`
	EarnCondition string     `db:"earn_condition" json:"earn_condition"`
	HighlightID   *uuid.UUID `db:"highlight_id" json:"highlight_id"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// EarnedStamp records a member earning a stamp. The ID is the deterministic
// pair "<memberID>_<stampID>" so re-earning is an idempotent upsert.
type EarnedStamp struct {
	ID       string    `db:"id" json:"id"`
	TripID   uuid.UUID `db:"trip_id" json:"trip_id"`
	StampID  uuid.UUID `db:"stamp_id" json:"stamp_id"`
	MemberID uuid.UUID `db:"member_id" json:"member_id"`
	EarnedAt time.Time `db:"earned_at" json:"earned_at"`
}

// EarnedStampID builds the deterministic earned-stamp ID.
func EarnedStampID(memberID, stampID uuid.UUID) string {
	return fmt.Sprintf("%s_%s", memberID, stampID)
}

// PhotoEntry represents one photo in the shared trip feed. ObjectKey is the
// S3 key; download URLs are presigned on read.
type PhotoEntry struct {
	ID        uuid.UUID `db:"id" json:"id"`
	TripID    uuid.UUID `db:"trip_id" json:"trip_id"`
	DayIndex  int       `db:"day_index" json:"day_index"`
	MemberID  uuid.UUID `db:"member_id" json:"member_id"`
	ObjectKey string    `db:"object_key" json:"object_key"`
	Caption   string    `db:"caption" json:"caption"`
	CaptionHe string    `db:"caption_he" json:"caption_he"`
	TakenAt   time.Time `db:"taken_at" json:"taken_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// RentalCar represents a car booking for part of the trip.
type RentalCar struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	TripID           uuid.UUID  `db:"trip_id" json:"trip_id"`
	Company          string     `db:"company" json:"company"`
	CarModel         string     `db:"car_model" json:"car_model"`
	PickupLocation   string     `db:"pickup_location" json:"pickup_location"`
	PickupTime       *time.Time `db:"pickup_time" json:"pickup_time"`
	DropoffLocation  string     `db:"dropoff_location" json:"dropoff_location"`
	DropoffTime      *time.Time `db:"dropoff_time" json:"dropoff_time"`
	ConfirmationCode string     `db:"confirmation_code" json:"confirmation_code"`
	Notes            string     `db:"notes" json:"notes"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

// QuizQuestion is one multiple-choice trip quiz question. CorrectIndex points
// into Options.
type QuizQuestion struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	TripID       uuid.UUID  `db:"trip_id" json:"trip_id"`
	Question     string     `db:"question" json:"question"`
	QuestionHe   string     `db:"question_he" json:"question_he"`
	Options      StringList `db:"options" json:"options"`
	CorrectIndex int        `db:"correct_index" json:"correct_index"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// QuizAnswer records one member's answer to a quiz question. The ID is the
// deterministic pair "<memberID>_<questionID>", so re-answering replaces the
// previous answer instead of stacking attempts.
type QuizAnswer struct {
	ID          string    `db:"id" json:"id"`
	TripID      uuid.UUID `db:"trip_id" json:"trip_id"`
	QuestionID  uuid.UUID `db:"question_id" json:"question_id"`
	MemberID    uuid.UUID `db:"member_id" json:"member_id"`
	AnswerIndex int       `db:"answer_index" json:"answer_index"`
	Correct     bool      `db:"correct" json:"correct"`
	AnsweredAt  time.Time `db:"answered_at" json:"answered_at"`
}

// QuizAnswerID builds the deterministic quiz answer ID.
func QuizAnswerID(memberID, questionID uuid.UUID) string {
	return fmt.Sprintf("%s_%s", memberID, questionID)
}

// DiaryEntry is one travel log note written by a member on a trip day.
type DiaryEntry struct {
	ID        uuid.UUID `db:"id" json:"id"`
	TripID    uuid.UUID `db:"trip_id" json:"trip_id"`
	MemberID  uuid.UUID `db:"member_id" json:"member_id"`
	DayIndex  int       `db:"day_index" json:"day_index"`
	Content   string    `db:"content" json:"content"`
	ContentHe string    `db:"content_he" json:"content_he"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// StringList is a []string stored as a JSONB column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("StringList.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(b, l)
}

// RatingMap maps member ID to a 1-5 rating, stored as a JSONB column.
type RatingMap map[string]int

// Value implements driver.Valuer.
func (m RatingMap) Value() (driver.Value, error) {
	if m == nil {
		m = RatingMap{}
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner.
func (m *RatingMap) Scan(src interface{}) error {
	if src == nil {
		*m = RatingMap{}
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("RatingMap.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(b, m)
}
