package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wayfare/internal/ai"
	"wayfare/internal/config"
	"wayfare/internal/domain"
	"wayfare/internal/port"
	"wayfare/internal/service"
	"wayfare/mocks"
)

// scriptedClient returns a canned model response and counts invocations.
type scriptedClient struct {
	response   string
	err        error
	calls      int
	lastPrompt string
}

func (c *scriptedClient) Invoke(_ context.Context, prompt string, _ []port.ImageAttachment) (string, error) {
	c.calls++
	c.lastPrompt = prompt
	return c.response, c.err
}

type aiServiceFixture struct {
	svc         service.AIService
	client      *scriptedClient
	tripRepo    *mocks.MockTripRepo
	memberRepo  *mocks.MockMemberRepo
	dayRepo     *mocks.MockDayRepo
	flightRepo  *mocks.MockFlightRepo
	hotelRepo   *mocks.MockHotelRepo
	drivingRepo *mocks.MockDrivingRepo
	highlights  *mocks.MockHighlightRepo
	restaurants *mocks.MockRestaurantRepo
	stamps      *mocks.MockStampRepo
	locker      *mocks.MockLocker
	trip        *domain.Trip
}

// newAIServiceFixture wires the service against a scripted provider registered
// under a per-test name, so the factory registry never collides across tests.
func newAIServiceFixture(t *testing.T, response string) *aiServiceFixture {
	f := &aiServiceFixture{
		client:      &scriptedClient{response: response},
		tripRepo:    new(mocks.MockTripRepo),
		memberRepo:  new(mocks.MockMemberRepo),
		dayRepo:     new(mocks.MockDayRepo),
		flightRepo:  new(mocks.MockFlightRepo),
		hotelRepo:   new(mocks.MockHotelRepo),
		drivingRepo: new(mocks.MockDrivingRepo),
		highlights:  new(mocks.MockHighlightRepo),
		restaurants: new(mocks.MockRestaurantRepo),
		stamps:      new(mocks.MockStampRepo),
		locker:      new(mocks.MockLocker),
	}

	providerName := fmt.Sprintf("scripted-%s", t.Name())
	ai.Register(providerName, func(_ *config.AIProviderConfig) (port.AIClient, error) {
		return f.client, nil
	})

	f.trip = &domain.Trip{
		ID:         uuid.New(),
		Code:       "ABCD23",
		Name:       "Greece 2026",
		AIProvider: providerName,
		AIAPIKey:   "trip-key",
	}

	cfg := &config.AIConfig{
		AIProviderConfig: config.AIProviderConfig{Provider: "gemini"},
		LockTTLSecs:      120,
	}
	f.svc = service.NewAIService(
		cfg,
		f.tripRepo, f.memberRepo,
		f.dayRepo, f.flightRepo, f.hotelRepo, f.drivingRepo,
		f.highlights, f.restaurants, f.stamps,
		f.locker,
	)
	return f
}

func (f *aiServiceFixture) expectLockCycle() {
	key := fmt.Sprintf("ai:trip:%s", f.trip.ID)
	f.locker.On("Acquire", mock.Anything, key, 120*time.Second).Return(true, nil)
	f.locker.On("Release", mock.Anything, key).Return(nil)
}

func TestAIService_AnalyzeImport_Flight(t *testing.T) {
	raw := `[{"airline":"Aegean","flightNumber":"A3 933","departureAirportCode":"tlv","arrivalAirportCode":"ath"}]`
	f := newAIServiceFixture(t, "```json\n"+raw+"\n```")

	f.tripRepo.On("GetByID", mock.Anything, f.trip.ID).Return(f.trip, nil)
	f.expectLockCycle()

	results, err := f.svc.AnalyzeImport(context.Background(), &service.AnalyzeInput{
		TripID: f.trip.ID,
		Target: ai.ImportFlight,
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Aegean", results[0].Data["airline"])
	assert.True(t, results[0].Accepted)
	assert.False(t, results[0].Edited)
	assert.Equal(t, 1, f.client.calls)
	f.locker.AssertExpectations(t)
}

func TestAIService_AnalyzeImport_UnknownTarget(t *testing.T) {
	f := newAIServiceFixture(t, "[]")

	_, err := f.svc.AnalyzeImport(context.Background(), &service.AnalyzeInput{
		TripID: f.trip.ID,
		Target: "boarding-pass",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, f.client.calls)
}

func TestAIService_AnalyzeImport_LockHeld(t *testing.T) {
	f := newAIServiceFixture(t, "[]")

	f.tripRepo.On("GetByID", mock.Anything, f.trip.ID).Return(f.trip, nil)
	key := fmt.Sprintf("ai:trip:%s", f.trip.ID)
	f.locker.On("Acquire", mock.Anything, key, 120*time.Second).Return(false, nil)

	_, err := f.svc.AnalyzeImport(context.Background(), &service.AnalyzeInput{
		TripID: f.trip.ID,
		Target: ai.ImportRestaurant,
	})

	assert.ErrorIs(t, err, domain.ErrAnalyzeInFlight)
	// The model is never called while another request holds the lock.
	assert.Equal(t, 0, f.client.calls)
	f.locker.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
}

func TestAIService_AnalyzeImport_ParseErrorPropagates(t *testing.T) {
	f := newAIServiceFixture(t, "the model rambled instead of emitting JSON")

	f.tripRepo.On("GetByID", mock.Anything, f.trip.ID).Return(f.trip, nil)
	f.expectLockCycle()

	_, err := f.svc.AnalyzeImport(context.Background(), &service.AnalyzeInput{
		TripID: f.trip.ID,
		Target: ai.ImportHotel,
	})

	var parseErr *ai.ParseError
	assert.ErrorAs(t, err, &parseErr)
	// The lock is still released on the error path.
	f.locker.AssertExpectations(t)
}

func TestAIService_Suggest_BuildsContextFromItinerary(t *testing.T) {
	raw := `[{"name":"Taverna Psaras","rationale":"Classic Plaka spot"}]`
	f := newAIServiceFixture(t, raw)

	f.tripRepo.On("GetByID", mock.Anything, f.trip.ID).Return(f.trip, nil)
	f.dayRepo.On("ListByTrip", mock.Anything, f.trip.ID).Return([]domain.TripDay{
		{Location: "Athens", Date: time.Date(2026, 3, 24, 0, 0, 0, 0, time.UTC)},
	}, nil)
	f.hotelRepo.On("ListByTrip", mock.Anything, f.trip.ID).Return([]domain.Hotel{}, nil)
	f.drivingRepo.On("ListByTrip", mock.Anything, f.trip.ID).Return([]domain.DrivingSegment{}, nil)
	f.memberRepo.On("ListByTrip", mock.Anything, f.trip.ID).Return([]domain.FamilyMember{
		{Name: "Dana"}, {Name: "Noam", IsVirtual: true},
	}, nil)
	f.restaurants.On("ListByTrip", mock.Anything, f.trip.ID).Return([]domain.Restaurant{
		{Name: "Acropolis Grill"},
	}, nil)
	f.expectLockCycle()

	suggestions, err := f.svc.Suggest(context.Background(), &service.SuggestInput{
		TripID: f.trip.ID,
		Kind:   ai.SuggestRestaurant,
	})

	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, ai.SuggestRestaurant, suggestions[0].Kind)
	assert.Equal(t, "Classic Plaka spot", suggestions[0].Rationale)
	assert.False(t, suggestions[0].Accepted)

	assert.Contains(t, f.client.lastPrompt, "Athens")
	assert.Contains(t, f.client.lastPrompt, "2 travelers (1 sharing a family device)")
	assert.Contains(t, f.client.lastPrompt, "Acropolis Grill")
}

func TestAIService_Suggest_UnknownKind(t *testing.T) {
	f := newAIServiceFixture(t, "[]")

	_, err := f.svc.Suggest(context.Background(), &service.SuggestInput{
		TripID: f.trip.ID,
		Kind:   "museum",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAIService_SaveImports_SkipsDeselected(t *testing.T) {
	f := newAIServiceFixture(t, "")

	f.flightRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(fl *domain.Flight) bool {
		return fl.Airline == "Aegean" && fl.DepartureAirportCode == "TLV"
	})).Return(nil).Once()

	results := []ai.ImportResult{
		{
			ID:       "import-1700000000000-0",
			Accepted: true,
			Data: map[string]interface{}{
				"airline":              "Aegean",
				"departureAirportCode": "tlv",
				"departureTime":        "2026-03-24T14:30:00",
			},
		},
		{
			ID:       "import-1700000000000-1",
			Accepted: false,
			Data:     map[string]interface{}{"airline": "El Al"},
		},
	}

	saved, err := f.svc.SaveImports(context.Background(), f.trip.ID, ai.ImportFlight, results)

	require.NoError(t, err)
	assert.Equal(t, 1, saved)
	f.flightRepo.AssertExpectations(t)
}

func TestAIService_SaveImports_CoercesLooseFields(t *testing.T) {
	f := newAIServiceFixture(t, "")

	f.restaurants.On("Upsert", mock.Anything, mock.MatchedBy(func(r *domain.Restaurant) bool {
		// Null name coerces to empty, an out-of-range price range is dropped.
		return r.Name == "" && r.PriceRange == domain.PriceRange("") && r.Cuisine == "Greek"
	})).Return(nil).Once()

	results := []ai.ImportResult{
		{
			Accepted: true,
			Data: map[string]interface{}{
				"name":       nil,
				"cuisine":    "Greek",
				"priceRange": "$$$$$",
			},
		},
	}

	saved, err := f.svc.SaveImports(context.Background(), f.trip.ID, ai.ImportRestaurant, results)

	require.NoError(t, err)
	assert.Equal(t, 1, saved)
	f.restaurants.AssertExpectations(t)
}

func TestAIService_SaveImports_ReplayHitsSameRows(t *testing.T) {
	f := newAIServiceFixture(t, "")

	var seen []uuid.UUID
	f.flightRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Flight")).
		Run(func(args mock.Arguments) { seen = append(seen, args.Get(1).(*domain.Flight).ID) }).
		Return(nil)

	results := []ai.ImportResult{
		{
			ID:       "import-1700000000000-0",
			Accepted: true,
			Data:     map[string]interface{}{"airline": "Aegean"},
		},
		{
			ID:       "import-1700000000000-1",
			Accepted: true,
			Data:     map[string]interface{}{"airline": "El Al"},
		},
	}

	// First save, then a replay after a simulated partial failure.
	_, err := f.svc.SaveImports(context.Background(), f.trip.ID, ai.ImportFlight, results)
	require.NoError(t, err)
	_, err = f.svc.SaveImports(context.Background(), f.trip.ID, ai.ImportFlight, results)
	require.NoError(t, err)

	require.Len(t, seen, 4)
	// Same batch record, same row: the replay upserts instead of duplicating.
	assert.Equal(t, seen[0], seen[2])
	assert.Equal(t, seen[1], seen[3])
	// Distinct batch records still land on distinct rows.
	assert.NotEqual(t, seen[0], seen[1])
}

func TestAIService_SaveSuggestions_RoutesByKind(t *testing.T) {
	f := newAIServiceFixture(t, "")

	f.restaurants.On("Upsert", mock.Anything, mock.MatchedBy(func(r *domain.Restaurant) bool {
		return r.Name == "Taverna Psaras" && r.Notes == "Classic Plaka spot"
	})).Return(nil).Once()
	f.highlights.On("Upsert", mock.Anything, mock.MatchedBy(func(h *domain.Highlight) bool {
		return h.Name == "Acropolis" && h.Category == domain.CategoryRuins
	})).Return(nil).Once()
	f.stamps.On("Upsert", mock.Anything, mock.MatchedBy(func(st *domain.PassportStamp) bool {
		return st.Title == "Beach Day"
	})).Return(nil).Once()

	suggestions := []ai.Suggestion{
		{
			Kind:      ai.SuggestRestaurant,
			Accepted:  true,
			Rationale: "Classic Plaka spot",
			Data:      map[string]interface{}{"name": "Taverna Psaras"},
		},
		{
			Kind:     ai.SuggestHighlight,
			Accepted: true,
			Data:     map[string]interface{}{"name": "Acropolis", "category": "ruins"},
		},
		{
			Kind:     ai.SuggestStamp,
			Accepted: true,
			Data:     map[string]interface{}{"title": "Beach Day"},
		},
		{
			Kind:     ai.SuggestRestaurant,
			Accepted: false,
			Data:     map[string]interface{}{"name": "Skipped"},
		},
	}

	saved, err := f.svc.SaveSuggestions(context.Background(), f.trip.ID, suggestions)

	require.NoError(t, err)
	assert.Equal(t, 3, saved)
	f.restaurants.AssertExpectations(t)
	f.highlights.AssertExpectations(t)
	f.stamps.AssertExpectations(t)
}
