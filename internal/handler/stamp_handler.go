package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wayfare/internal/domain"
	"wayfare/internal/middleware"
	"wayfare/internal/service"
)

// StampHandler handles passport stamp endpoints.
type StampHandler struct {
	stampService service.StampService
}

// NewStampHandler creates a new StampHandler.
func NewStampHandler(stampService service.StampService) *StampHandler {
	return &StampHandler{stampService: stampService}
}

// List handles GET /api/v1/trip/stamps
func (h *StampHandler) List(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	stamps, err := h.stampService.ListByTrip(c.Request.Context(), tripID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, stamps)
}

// Upsert handles PUT /api/v1/trip/stamps
func (h *StampHandler) Upsert(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	var stamp domain.PassportStamp
	if err := c.ShouldBindJSON(&stamp); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid stamp payload")
		return
	}
	stamp.TripID = tripID

	if err := h.stampService.Upsert(c.Request.Context(), &stamp); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, stamp)
}

// Delete handles DELETE /api/v1/trip/stamps/:id
func (h *StampHandler) Delete(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}
	stampID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid stamp ID")
		return
	}
	if err := h.stampService.Delete(c.Request.Context(), tripID, stampID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": stampID})
}

// Earn handles POST /api/v1/trip/stamps/:id/earn
func (h *StampHandler) Earn(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	stampID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid stamp ID")
		return
	}

	var req struct {
		MemberID string `json:"member_id" binding:"required"`
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

	if err := h.stampService.Earn(c.Request.Context(), tripID, stampID, memberID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"earned": stampID})
}

// Passport handles GET /api/v1/trip/members/:id/passport
func (h *StampHandler) Passport(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid member ID")
		return
	}

	passport, err := h.stampService.Passport(c.Request.Context(), tripID, memberID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, passport)
}

// ListEarned handles GET /api/v1/trip/stamps/earned
func (h *StampHandler) ListEarned(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	earned, err := h.stampService.ListEarnedByTrip(c.Request.Context(), tripID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, earned)
}
