package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wayfare/internal/domain"
	"wayfare/internal/port"
)

// DiscoveryService defines the contract for highlights, restaurants, and the
// packing list.
type DiscoveryService interface {
	UpsertHighlight(ctx context.Context, h *domain.Highlight) error
	ListHighlights(ctx context.Context, tripID uuid.UUID) ([]domain.Highlight, error)
	CompleteHighlight(ctx context.Context, tripID, highlightID, memberID uuid.UUID) error
	UncompleteHighlight(ctx context.Context, tripID, highlightID, memberID uuid.UUID) error
	DeleteHighlight(ctx context.Context, tripID, highlightID uuid.UUID) error

	UpsertRestaurant(ctx context.Context, r *domain.Restaurant) error
	ListRestaurants(ctx context.Context, tripID uuid.UUID) ([]domain.Restaurant, error)
	RateRestaurant(ctx context.Context, tripID, restaurantID, memberID uuid.UUID, rating int) error
	DeleteRestaurant(ctx context.Context, tripID, restaurantID uuid.UUID) error

	UpsertPackingItem(ctx context.Context, item *domain.PackingItem) error
	ListPackingItems(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error)
	DeletePackingItem(ctx context.Context, tripID, itemID uuid.UUID) error
}

type discoveryService struct {
	highlights  port.HighlightRepository
	restaurants port.RestaurantRepository
	packing     port.PackingRepository
	stamps      port.StampRepository
}

// NewDiscoveryService creates the discovery service.
func NewDiscoveryService(
	highlightRepo port.HighlightRepository,
	restaurantRepo port.RestaurantRepository,
	packingRepo port.PackingRepository,
	stampRepo port.StampRepository,
) DiscoveryService {
	return &discoveryService{
		highlights:  highlightRepo,
		restaurants: restaurantRepo,
		packing:     packingRepo,
		stamps:      stampRepo,
	}
}

func (s *discoveryService) UpsertHighlight(ctx context.Context, h *domain.Highlight) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.CompletedBy == nil {
		h.CompletedBy = domain.StringList{}
	}
	if !domain.ValidHighlightCategories[h.Category] {
		h.Category = domain.CategoryOther
	}
	return s.highlights.Upsert(ctx, h)
}

func (s *discoveryService) ListHighlights(ctx context.Context, tripID uuid.UUID) ([]domain.Highlight, error) {
	return s.highlights.ListByTrip(ctx, tripID)
}

// CompleteHighlight marks a highlight done for a member and auto-earns any
// passport stamps linked to it. Completing an already-completed highlight is
// a no-op for that member.
func (s *discoveryService) CompleteHighlight(ctx context.Context, tripID, highlightID, memberID uuid.UUID) error {
	h, err := s.highlights.GetByID(ctx, tripID, highlightID)
	if err != nil {
		return err
	}

	memberKey := memberID.String()
	completedBy := h.CompletedBy
	found := false
	for _, id := range completedBy {
		if id == memberKey {
			found = true
			break
		}
	}
	if !found {
		completedBy = append(completedBy, memberKey)
	}

	if err := s.highlights.SetCompleted(ctx, tripID, highlightID, true, completedBy); err != nil {
		return err
	}

	linked, err := s.stamps.ListByHighlight(ctx, tripID, highlightID)
	if err != nil {
		return err
	}
	for _, stamp := range linked {
		earned := &domain.EarnedStamp{
			ID:       domain.EarnedStampID(memberID, stamp.ID),
			TripID:   tripID,
			StampID:  stamp.ID,
			MemberID: memberID,
			EarnedAt: time.Now().UTC(),
		}
		if err := s.stamps.UpsertEarned(ctx, earned); err != nil {
			return fmt.Errorf("earning stamp %s: %w", stamp.ID, err)
		}
	}
	return nil
}

// UncompleteHighlight removes a member from the completed set. The highlight
// stays completed while anyone else remains on it. Earned stamps are kept;
// the passport records what happened, not current state.
func (s *discoveryService) UncompleteHighlight(ctx context.Context, tripID, highlightID, memberID uuid.UUID) error {
	h, err := s.highlights.GetByID(ctx, tripID, highlightID)
	if err != nil {
		return err
	}

	memberKey := memberID.String()
	remaining := make(domain.StringList, 0, len(h.CompletedBy))
	for _, id := range h.CompletedBy {
		if id != memberKey {
			remaining = append(remaining, id)
		}
	}
	return s.highlights.SetCompleted(ctx, tripID, highlightID, len(remaining) > 0, remaining)
}

func (s *discoveryService) DeleteHighlight(ctx context.Context, tripID, highlightID uuid.UUID) error {
	return s.highlights.Delete(ctx, tripID, highlightID)
}

func (s *discoveryService) UpsertRestaurant(ctx context.Context, r *domain.Restaurant) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Ratings == nil {
		r.Ratings = domain.RatingMap{}
	}
	return s.restaurants.Upsert(ctx, r)
}

func (s *discoveryService) ListRestaurants(ctx context.Context, tripID uuid.UUID) ([]domain.Restaurant, error) {
	return s.restaurants.ListByTrip(ctx, tripID)
}

// RateRestaurant records one member's 1-5 rating, replacing any previous
// rating by the same member.
func (s *discoveryService) RateRestaurant(ctx context.Context, tripID, restaurantID, memberID uuid.UUID, rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", rating)
	}
	r, err := s.restaurants.GetByID(ctx, tripID, restaurantID)
	if err != nil {
		return err
	}
	if r.Ratings == nil {
		r.Ratings = domain.RatingMap{}
	}
	r.Ratings[memberID.String()] = rating
	r.Visited = true
	return s.restaurants.Upsert(ctx, r)
}

func (s *discoveryService) DeleteRestaurant(ctx context.Context, tripID, restaurantID uuid.UUID) error {
	return s.restaurants.Delete(ctx, tripID, restaurantID)
}

func (s *discoveryService) UpsertPackingItem(ctx context.Context, item *domain.PackingItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.Category == "" {
		item.Category = "shared"
	}
	return s.packing.Upsert(ctx, item)
}

func (s *discoveryService) ListPackingItems(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error) {
	return s.packing.ListByTrip(ctx, tripID)
}

func (s *discoveryService) DeletePackingItem(ctx context.Context, tripID, itemID uuid.UUID) error {
	return s.packing.Delete(ctx, tripID, itemID)
}
