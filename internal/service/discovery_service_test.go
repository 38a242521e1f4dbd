package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wayfare/internal/domain"
	"wayfare/internal/service"
	"wayfare/mocks"
)

type discoveryFixture struct {
	svc         service.DiscoveryService
	highlights  *mocks.MockHighlightRepo
	restaurants *mocks.MockRestaurantRepo
	packing     *mocks.MockPackingRepo
	stamps      *mocks.MockStampRepo
}

func newDiscoveryFixture() *discoveryFixture {
	f := &discoveryFixture{
		highlights:  new(mocks.MockHighlightRepo),
		restaurants: new(mocks.MockRestaurantRepo),
		packing:     new(mocks.MockPackingRepo),
		stamps:      new(mocks.MockStampRepo),
	}
	f.svc = service.NewDiscoveryService(f.highlights, f.restaurants, f.packing, f.stamps)
	return f
}

func TestDiscoveryService_CompleteHighlight_EarnsLinkedStamps(t *testing.T) {
	f := newDiscoveryFixture()
	tripID, highlightID, memberID := uuid.New(), uuid.New(), uuid.New()
	stampID := uuid.New()

	f.highlights.On("GetByID", mock.Anything, tripID, highlightID).Return(&domain.Highlight{
		ID:          highlightID,
		TripID:      tripID,
		Name:        "Acropolis",
		CompletedBy: domain.StringList{},
	}, nil)
	f.highlights.On("SetCompleted", mock.Anything, tripID, highlightID, true,
		domain.StringList{memberID.String()}).Return(nil)
	f.stamps.On("ListByHighlight", mock.Anything, tripID, highlightID).Return([]domain.PassportStamp{
		{ID: stampID, TripID: tripID, Title: "History Buff"},
	}, nil)
	f.stamps.On("UpsertEarned", mock.Anything, mock.MatchedBy(func(e *domain.EarnedStamp) bool {
		return e.ID == domain.EarnedStampID(memberID, stampID) &&
			e.StampID == stampID && e.MemberID == memberID
	})).Return(nil)

	err := f.svc.CompleteHighlight(context.Background(), tripID, highlightID, memberID)

	require.NoError(t, err)
	f.highlights.AssertExpectations(t)
	f.stamps.AssertExpectations(t)
}

func TestDiscoveryService_CompleteHighlight_MemberAppendIsIdempotent(t *testing.T) {
	f := newDiscoveryFixture()
	tripID, highlightID, memberID := uuid.New(), uuid.New(), uuid.New()

	f.highlights.On("GetByID", mock.Anything, tripID, highlightID).Return(&domain.Highlight{
		ID:          highlightID,
		CompletedBy: domain.StringList{memberID.String()},
	}, nil)
	// Completing again does not duplicate the member in the list.
	f.highlights.On("SetCompleted", mock.Anything, tripID, highlightID, true,
		domain.StringList{memberID.String()}).Return(nil)
	f.stamps.On("ListByHighlight", mock.Anything, tripID, highlightID).Return([]domain.PassportStamp{}, nil)

	err := f.svc.CompleteHighlight(context.Background(), tripID, highlightID, memberID)

	require.NoError(t, err)
	f.highlights.AssertExpectations(t)
}

func TestDiscoveryService_UncompleteHighlight_KeepsOtherMembers(t *testing.T) {
	f := newDiscoveryFixture()
	tripID, highlightID := uuid.New(), uuid.New()
	leaving, staying := uuid.New(), uuid.New()

	f.highlights.On("GetByID", mock.Anything, tripID, highlightID).Return(&domain.Highlight{
		ID:          highlightID,
		CompletedBy: domain.StringList{leaving.String(), staying.String()},
	}, nil)
	// Still completed because another member remains.
	f.highlights.On("SetCompleted", mock.Anything, tripID, highlightID, true,
		domain.StringList{staying.String()}).Return(nil)

	err := f.svc.UncompleteHighlight(context.Background(), tripID, highlightID, leaving)

	require.NoError(t, err)
	f.highlights.AssertExpectations(t)
	// Earned stamps are never revoked on undo.
	f.stamps.AssertNotCalled(t, "UpsertEarned", mock.Anything, mock.Anything)
}

func TestDiscoveryService_UncompleteHighlight_LastMemberClearsFlag(t *testing.T) {
	f := newDiscoveryFixture()
	tripID, highlightID, memberID := uuid.New(), uuid.New(), uuid.New()

	f.highlights.On("GetByID", mock.Anything, tripID, highlightID).Return(&domain.Highlight{
		ID:          highlightID,
		CompletedBy: domain.StringList{memberID.String()},
	}, nil)
	f.highlights.On("SetCompleted", mock.Anything, tripID, highlightID, false,
		domain.StringList{}).Return(nil)

	err := f.svc.UncompleteHighlight(context.Background(), tripID, highlightID, memberID)

	require.NoError(t, err)
	f.highlights.AssertExpectations(t)
}

func TestDiscoveryService_RateRestaurant(t *testing.T) {
	f := newDiscoveryFixture()
	tripID, restaurantID, memberID := uuid.New(), uuid.New(), uuid.New()

	f.restaurants.On("GetByID", mock.Anything, tripID, restaurantID).Return(&domain.Restaurant{
		ID:      restaurantID,
		Name:    "Taverna Psaras",
		Ratings: domain.RatingMap{},
	}, nil)
	f.restaurants.On("Upsert", mock.Anything, mock.MatchedBy(func(r *domain.Restaurant) bool {
		return r.Ratings[memberID.String()] == 5 && r.Visited
	})).Return(nil)

	err := f.svc.RateRestaurant(context.Background(), tripID, restaurantID, memberID, 5)

	require.NoError(t, err)
	f.restaurants.AssertExpectations(t)
}

func TestDiscoveryService_RateRestaurant_RejectsOutOfRange(t *testing.T) {
	f := newDiscoveryFixture()

	err := f.svc.RateRestaurant(context.Background(), uuid.New(), uuid.New(), uuid.New(), 6)

	assert.Error(t, err)
	f.restaurants.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestDiscoveryService_UpsertHighlight_NormalizesCategory(t *testing.T) {
	f := newDiscoveryFixture()

	f.highlights.On("Upsert", mock.Anything, mock.MatchedBy(func(h *domain.Highlight) bool {
		return h.ID != uuid.Nil && h.Category == domain.CategoryOther && h.CompletedBy != nil
	})).Return(nil)

	err := f.svc.UpsertHighlight(context.Background(), &domain.Highlight{
		Name:     "Mystery Spot",
		Category: "unmapped",
	})

	require.NoError(t, err)
	f.highlights.AssertExpectations(t)
}
