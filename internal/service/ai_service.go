package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"wayfare/internal/ai"
	"wayfare/internal/config"
	"wayfare/internal/domain"
	"wayfare/internal/port"
)

// AnalyzeInput is the DTO for an AI import analysis request.
type AnalyzeInput struct {
	TripID uuid.UUID
	Target ai.ImportTarget
	Extra  string
	Images []port.ImageAttachment
}

// SuggestInput is the DTO for an AI suggestion request.
type SuggestInput struct {
	TripID uuid.UUID
	Kind   ai.SuggestionKind
}

// AIService defines the AI import and suggestion contract.
type AIService interface {
	AnalyzeImport(ctx context.Context, input *AnalyzeInput) ([]ai.ImportResult, error)
	Suggest(ctx context.Context, input *SuggestInput) ([]ai.Suggestion, error)
	SaveImports(ctx context.Context, tripID uuid.UUID, target ai.ImportTarget, results []ai.ImportResult) (int, error)
	SaveSuggestions(ctx context.Context, tripID uuid.UUID, suggestions []ai.Suggestion) (int, error)
}

type aiService struct {
	cfg         *config.AIConfig
	tripRepo    port.TripRepository
	memberRepo  port.MemberRepository
	dayRepo     port.DayRepository
	flightRepo  port.FlightRepository
	hotelRepo   port.HotelRepository
	drivingRepo port.DrivingRepository
	highlights  port.HighlightRepository
	restaurants port.RestaurantRepository
	stamps      port.StampRepository
	locker      port.Locker
}

// NewAIService creates the AI import/suggestion service.
func NewAIService(
	cfg *config.AIConfig,
	tripRepo port.TripRepository,
	memberRepo port.MemberRepository,
	dayRepo port.DayRepository,
	flightRepo port.FlightRepository,
	hotelRepo port.HotelRepository,
	drivingRepo port.DrivingRepository,
	highlightRepo port.HighlightRepository,
	restaurantRepo port.RestaurantRepository,
	stampRepo port.StampRepository,
	locker port.Locker,
) AIService {
	return &aiService{
		cfg:         cfg,
		tripRepo:    tripRepo,
		memberRepo:  memberRepo,
		dayRepo:     dayRepo,
		flightRepo:  flightRepo,
		hotelRepo:   hotelRepo,
		drivingRepo: drivingRepo,
		highlights:  highlightRepo,
		restaurants: restaurantRepo,
		stamps:      stampRepo,
		locker:      locker,
	}
}

// clientFor resolves the effective provider settings for a trip and builds a
// client. Trip-level settings win; empty fields fall back to server config.
func (s *aiService) clientFor(trip *domain.Trip) (port.AIClient, error) {
	effective := s.cfg.AIProviderConfig
	if trip.AIProvider != "" {
		effective.Provider = trip.AIProvider
		// A trip that picked its own provider must bring its own key and
		// model; the server defaults belong to the server's provider.
		effective.APIKey = trip.AIAPIKey
		effective.Model = trip.AIModel
	} else if trip.AIAPIKey != "" {
		effective.APIKey = trip.AIAPIKey
	}
	return ai.NewClient(&effective)
}

func (s *aiService) lockKey(tripID uuid.UUID) string {
	return fmt.Sprintf("ai:trip:%s", tripID)
}

// withTripLock runs fn while holding the trip's AI lock. One model request in
// flight per trip; a concurrent caller gets ErrAnalyzeInFlight.
func (s *aiService) withTripLock(ctx context.Context, tripID uuid.UUID, fn func() error) error {
	key := s.lockKey(tripID)
	ttl := time.Duration(s.cfg.LockTTLSecs) * time.Second

	acquired, err := s.locker.Acquire(ctx, key, ttl)
	if err != nil {
		return fmt.Errorf("acquiring AI lock: %w", err)
	}
	if !acquired {
		return domain.ErrAnalyzeInFlight
	}
	defer func() {
		if err := s.locker.Release(context.WithoutCancel(ctx), key); err != nil {
			log.Printf("releasing AI lock %s: %v", key, err)
		}
	}()

	return fn()
}

func (s *aiService) AnalyzeImport(ctx context.Context, input *AnalyzeInput) ([]ai.ImportResult, error) {
	if !ai.ValidImportTargets[input.Target] {
		return nil, fmt.Errorf("%w: unknown import target %q", domain.ErrNotFound, input.Target)
	}

	trip, err := s.tripRepo.GetByID(ctx, input.TripID)
	if err != nil {
		return nil, err
	}

	client, err := s.clientFor(trip)
	if err != nil {
		return nil, err
	}

	prompt := ai.BuildImportPrompt(input.Target, input.Extra)

	var results []ai.ImportResult
	err = s.withTripLock(ctx, input.TripID, func() error {
		raw, err := client.Invoke(ctx, prompt, input.Images)
		if err != nil {
			return err
		}
		results, err = ai.ParseImport(raw)
		return err
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (s *aiService) Suggest(ctx context.Context, input *SuggestInput) ([]ai.Suggestion, error) {
	if !ai.ValidSuggestionKinds[input.Kind] {
		return nil, fmt.Errorf("%w: unknown suggestion kind %q", domain.ErrNotFound, input.Kind)
	}

	trip, err := s.tripRepo.GetByID(ctx, input.TripID)
	if err != nil {
		return nil, err
	}

	client, err := s.clientFor(trip)
	if err != nil {
		return nil, err
	}

	sc, err := s.buildSuggestContext(ctx, trip, input.Kind)
	if err != nil {
		return nil, err
	}
	prompt := ai.BuildSuggestPrompt(input.Kind, sc)

	var suggestions []ai.Suggestion
	err = s.withTripLock(ctx, input.TripID, func() error {
		raw, err := client.Invoke(ctx, prompt, nil)
		if err != nil {
			return err
		}
		suggestions, err = ai.ExtractSuggestions(raw, input.Kind)
		return err
	})
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}

// buildSuggestContext loads the itinerary state that grounds a suggestion
// prompt, including existing entity names so the model avoids duplicates.
func (s *aiService) buildSuggestContext(ctx context.Context, trip *domain.Trip, kind ai.SuggestionKind) (ai.SuggestContext, error) {
	sc := ai.SuggestContext{TripName: trip.Name}

	days, err := s.dayRepo.ListByTrip(ctx, trip.ID)
	if err != nil {
		return sc, err
	}
	sc.Days = days

	hotels, err := s.hotelRepo.ListByTrip(ctx, trip.ID)
	if err != nil {
		return sc, err
	}
	sc.Hotels = hotels

	driving, err := s.drivingRepo.ListByTrip(ctx, trip.ID)
	if err != nil {
		return sc, err
	}
	sc.Driving = driving

	members, err := s.memberRepo.ListByTrip(ctx, trip.ID)
	if err != nil {
		return sc, err
	}
	sc.Party = describeParty(members)

	switch kind {
	case ai.SuggestRestaurant:
		existing, err := s.restaurants.ListByTrip(ctx, trip.ID)
		if err != nil {
			return sc, err
		}
		for _, r := range existing {
			sc.Existing = append(sc.Existing, r.Name)
		}
	case ai.SuggestHighlight:
		existing, err := s.highlights.ListByTrip(ctx, trip.ID)
		if err != nil {
			return sc, err
		}
		for _, h := range existing {
			sc.Existing = append(sc.Existing, h.Name)
		}
	case ai.SuggestStamp:
		existing, err := s.stamps.ListByTrip(ctx, trip.ID)
		if err != nil {
			return sc, err
		}
		for _, st := range existing {
			sc.Existing = append(sc.Existing, st.Title)
		}
	}
	return sc, nil
}

// describeParty summarizes the travelers for the prompt, e.g.
// "6 travelers (4 sharing a family device)".
func describeParty(members []domain.FamilyMember) string {
	if len(members) == 0 {
		return ""
	}
	virtual := 0
	for _, m := range members {
		if m.IsVirtual {
			virtual++
		}
	}
	desc := fmt.Sprintf("%d travelers", len(members))
	if virtual > 0 {
		desc += fmt.Sprintf(" (%d sharing a family device)", virtual)
	}
	return desc
}

// SaveImports persists accepted import records sequentially. Records the user
// deselected are skipped. Returns how many were saved.
func (s *aiService) SaveImports(ctx context.Context, tripID uuid.UUID, target ai.ImportTarget, results []ai.ImportResult) (int, error) {
	saved := 0
	for _, r := range results {
		if !r.Accepted {
			continue
		}
		if err := s.saveImportRecord(ctx, tripID, target, r); err != nil {
			return saved, fmt.Errorf("saving import %s: %w", r.ID, err)
		}
		saved++
	}
	return saved, nil
}

// rowID derives the persisted row UUID from the batch record id, with the
// trip as the UUID namespace. Replaying the same accepted batch after a
// partial failure hits the same rows, so the upserts stay idempotent.
func rowID(tripID uuid.UUID, recordID string) uuid.UUID {
	if recordID == "" {
		return uuid.New()
	}
	return uuid.NewSHA1(tripID, []byte(recordID))
}

func (s *aiService) saveImportRecord(ctx context.Context, tripID uuid.UUID, target ai.ImportTarget, r ai.ImportResult) error {
	id := rowID(tripID, r.ID)
	switch target {
	case ai.ImportRestaurant:
		return s.restaurants.Upsert(ctx, restaurantFromFields(id, tripID, r.Data))
	case ai.ImportHighlight:
		return s.highlights.Upsert(ctx, highlightFromFields(id, tripID, r.Data))
	case ai.ImportHotel:
		return s.hotelRepo.Upsert(ctx, hotelFromFields(id, tripID, r.Data))
	case ai.ImportFlight:
		return s.flightRepo.Upsert(ctx, flightFromFields(id, tripID, r.Data))
	default:
		return fmt.Errorf("%w: unknown import target %q", domain.ErrNotFound, target)
	}
}

// SaveSuggestions persists accepted suggestions sequentially, skipping the
// ones the user did not opt into. Returns how many were saved.
func (s *aiService) SaveSuggestions(ctx context.Context, tripID uuid.UUID, suggestions []ai.Suggestion) (int, error) {
	saved := 0
	for _, sg := range suggestions {
		if !sg.Accepted {
			continue
		}
		if err := s.saveSuggestionRecord(ctx, tripID, sg); err != nil {
			return saved, fmt.Errorf("saving suggestion %s: %w", sg.ID, err)
		}
		saved++
	}
	return saved, nil
}

func (s *aiService) saveSuggestionRecord(ctx context.Context, tripID uuid.UUID, sg ai.Suggestion) error {
	id := rowID(tripID, sg.ID)
	switch sg.Kind {
	case ai.SuggestRestaurant:
		rest := restaurantFromFields(id, tripID, sg.Data)
		if rest.Notes == "" {
			rest.Notes = sg.Rationale
		}
		return s.restaurants.Upsert(ctx, rest)
	case ai.SuggestHighlight:
		h := highlightFromFields(id, tripID, sg.Data)
		if h.Description == "" {
			h.Description = sg.Rationale
		}
		return s.highlights.Upsert(ctx, h)
	case ai.SuggestStamp:
		return s.stamps.Upsert(ctx, stampFromFields(id, tripID, sg.Data))
	default:
		return fmt.Errorf("%w: unknown suggestion kind %q", domain.ErrNotFound, sg.Kind)
	}
}

// Field-map coercion helpers. The model's output is untyped JSON; missing,
// null, and wrongly typed fields all coerce to the zero value.

func getString(data map[string]interface{}, key string) string {
	s, _ := data[key].(string)
	return s
}

func getInt(data map[string]interface{}, key string) int {
	f, _ := data[key].(float64)
	return int(f)
}

// parseTime accepts full RFC 3339 as well as the zone-less ISO form the
// prompts ask for ("2026-03-24T14:30:00").
func parseTime(data map[string]interface{}, key string) time.Time {
	s := getString(data, key)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}

func restaurantFromFields(id, tripID uuid.UUID, data map[string]interface{}) *domain.Restaurant {
	pr := domain.PriceRange(getString(data, "priceRange"))
	if !domain.ValidPriceRanges[pr] {
		pr = ""
	}
	return &domain.Restaurant{
		ID:         id,
		TripID:     tripID,
		Name:       getString(data, "name"),
		NameHe:     getString(data, "nameHe"),
		Cuisine:    getString(data, "cuisine"),
		Address:    getString(data, "address"),
		City:       getString(data, "city"),
		Phone:      getString(data, "phone"),
		PriceRange: pr,
		Ratings:    domain.RatingMap{},
		Notes:      getString(data, "notes"),
	}
}

func highlightFromFields(id, tripID uuid.UUID, data map[string]interface{}) *domain.Highlight {
	cat := domain.HighlightCategory(getString(data, "category"))
	if !domain.ValidHighlightCategories[cat] {
		cat = domain.CategoryOther
	}
	return &domain.Highlight{
		ID:           id,
		TripID:       tripID,
		DayIndex:     getInt(data, "dayIndex"),
		Name:         getString(data, "name"),
		NameHe:       getString(data, "nameHe"),
		Description:  getString(data, "description"),
		Category:     cat,
		Address:      getString(data, "address"),
		OpeningHours: getString(data, "openingHours"),
		TicketInfo:   getString(data, "ticketInfo"),
		CompletedBy:  domain.StringList{},
	}
}

func hotelFromFields(id, tripID uuid.UUID, data map[string]interface{}) *domain.Hotel {
	return &domain.Hotel{
		ID:               id,
		TripID:           tripID,
		Name:             getString(data, "name"),
		Address:          getString(data, "address"),
		City:             getString(data, "city"),
		CheckIn:          parseTime(data, "checkIn"),
		CheckOut:         parseTime(data, "checkOut"),
		ConfirmationCode: getString(data, "confirmationCode"),
		Phone:            getString(data, "phone"),
	}
}

func flightFromFields(id, tripID uuid.UUID, data map[string]interface{}) *domain.Flight {
	return &domain.Flight{
		ID:                   id,
		TripID:               tripID,
		Airline:              getString(data, "airline"),
		FlightNumber:         getString(data, "flightNumber"),
		DepartureAirport:     getString(data, "departureAirport"),
		DepartureAirportCode: strings.ToUpper(getString(data, "departureAirportCode")),
		ArrivalAirport:       getString(data, "arrivalAirport"),
		ArrivalAirportCode:   strings.ToUpper(getString(data, "arrivalAirportCode")),
		DepartureTime:        parseTime(data, "departureTime"),
		ArrivalTime:          parseTime(data, "arrivalTime"),
		Terminal:             getString(data, "terminal"),
		ConfirmationCode:     getString(data, "confirmationCode"),
	}
}

func stampFromFields(id, tripID uuid.UUID, data map[string]interface{}) *domain.PassportStamp {
	return &domain.PassportStamp{
		ID:            id,
		TripID:        tripID,
		DayIndex:      getInt(data, "dayIndex"),
		Title:         getString(data, "title"),
		TitleHe:       getString(data, "titleHe"),
		Description:   getString(data, "description"),
		Icon:          getString(data, "icon"),
		Location:      getString(data, "location"),
		EarnCondition: getString(data, "earnCondition"),
	}
}
