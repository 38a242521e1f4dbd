package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wayfare/internal/domain"
	"wayfare/internal/middleware"
	"wayfare/internal/service"
)

// DiscoveryHandler handles highlight, restaurant, and packing list endpoints.
type DiscoveryHandler struct {
	discoveryService service.DiscoveryService
}

// NewDiscoveryHandler creates a new DiscoveryHandler.
func NewDiscoveryHandler(discoveryService service.DiscoveryService) *DiscoveryHandler {
	return &DiscoveryHandler{discoveryService: discoveryService}
}

// ListHighlights handles GET /api/v1/trip/highlights
func (h *DiscoveryHandler) ListHighlights(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	highlights, err := h.discoveryService.ListHighlights(c.Request.Context(), tripID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, highlights)
}

// UpsertHighlight handles PUT /api/v1/trip/highlights
func (h *DiscoveryHandler) UpsertHighlight(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	var highlight domain.Highlight
	if err := c.ShouldBindJSON(&highlight); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid highlight payload")
		return
	}
	highlight.TripID = tripID

	if err := h.discoveryService.UpsertHighlight(c.Request.Context(), &highlight); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, highlight)
}

// CompleteHighlight handles POST /api/v1/trip/highlights/:id/complete
func (h *DiscoveryHandler) CompleteHighlight(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	highlightID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid highlight ID")
		return
	}

	var req struct {
		MemberID string `json:"member_id" binding:"required"`
		Undo     bool   `json:"undo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "member_id is required")
		return
	}
	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid member ID")
		return
	}

	if req.Undo {
		err = h.discoveryService.UncompleteHighlight(c.Request.Context(), tripID, highlightID, memberID)
	} else {
		err = h.discoveryService.CompleteHighlight(c.Request.Context(), tripID, highlightID, memberID)
	}
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"completed": !req.Undo})
}

// DeleteHighlight handles DELETE /api/v1/trip/highlights/:id
func (h *DiscoveryHandler) DeleteHighlight(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}
	highlightID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid highlight ID")
		return
	}
	if err := h.discoveryService.DeleteHighlight(c.Request.Context(), tripID, highlightID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": highlightID})
}

// ListRestaurants handles GET /api/v1/trip/restaurants
func (h *DiscoveryHandler) ListRestaurants(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	restaurants, err := h.discoveryService.ListRestaurants(c.Request.Context(), tripID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, restaurants)
}

// UpsertRestaurant handles PUT /api/v1/trip/restaurants
func (h *DiscoveryHandler) UpsertRestaurant(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	var restaurant domain.Restaurant
	if err := c.ShouldBindJSON(&restaurant); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid restaurant payload")
		return
	}
	restaurant.TripID = tripID

	if err := h.discoveryService.UpsertRestaurant(c.Request.Context(), &restaurant); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, restaurant)
}

// RateRestaurant handles POST /api/v1/trip/restaurants/:id/rate
func (h *DiscoveryHandler) RateRestaurant(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid restaurant ID")
		return
	}

	var req struct {
		MemberID string `json:"member_id" binding:"required"`
		Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "member_id and rating (1-5) are required")
		return
	}
	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid member ID")
		return
	}

	if err := h.discoveryService.RateRestaurant(c.Request.Context(), tripID, restaurantID, memberID, req.Rating); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"rated": req.Rating})
}

// DeleteRestaurant handles DELETE /api/v1/trip/restaurants/:id
func (h *DiscoveryHandler) DeleteRestaurant(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid restaurant ID")
		return
	}
	if err := h.discoveryService.DeleteRestaurant(c.Request.Context(), tripID, restaurantID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": restaurantID})
}

// ListPackingItems handles GET /api/v1/trip/packing
func (h *DiscoveryHandler) ListPackingItems(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	items, err := h.discoveryService.ListPackingItems(c.Request.Context(), tripID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, items)
}

// UpsertPackingItem handles PUT /api/v1/trip/packing
func (h *DiscoveryHandler) UpsertPackingItem(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	var item domain.PackingItem
	if err := c.ShouldBindJSON(&item); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid packing item payload")
		return
	}
	item.TripID = tripID

	if err := h.discoveryService.UpsertPackingItem(c.Request.Context(), &item); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, item)
}

// DeletePackingItem handles DELETE /api/v1/trip/packing/:id
func (h *DiscoveryHandler) DeletePackingItem(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid packing item ID")
		return
	}
	if err := h.discoveryService.DeletePackingItem(c.Request.Context(), tripID, itemID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": itemID})
}
