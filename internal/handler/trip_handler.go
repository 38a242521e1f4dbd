package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wayfare/internal/domain"
	"wayfare/internal/middleware"
	"wayfare/internal/service"
)

// TripHandler handles trip lifecycle and membership endpoints.
type TripHandler struct {
	tripService   service.TripService
	memberService service.MemberService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(tripService service.TripService, memberService service.MemberService) *TripHandler {
	return &TripHandler{tripService: tripService, memberService: memberService}
}

// Create handles POST /api/v1/trips
func (h *TripHandler) Create(c *gin.Context) {
	var req struct {
		Name      string `json:"name" binding:"required"`
		StartDate string `json:"start_date" binding:"required"`
		EndDate   string `json:"end_date" binding:"required"`
		AdminPIN  string `json:"admin_pin" binding:"required,min=4"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name, start_date, end_date, and admin_pin (min 4 chars) are required")
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_DATE", "start_date must be YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil || end.Before(start) {
		RespondError(c, http.StatusBadRequest, "INVALID_DATE", "end_date must be YYYY-MM-DD and not before start_date")
		return
	}

	trip, err := h.tripService.Create(c.Request.Context(), &service.CreateTripInput{
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
		AdminPIN:  req.AdminPIN,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, trip)
}

// Join handles POST /api/v1/trips/join
func (h *TripHandler) Join(c *gin.Context) {
	var req struct {
		Code  string `json:"code"`
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || (req.Code == "" && req.Token == "") {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "code or token is required")
		return
	}

	var trip *domain.Trip
	var err error
	if req.Token != "" {
		trip, err = h.tripService.RedeemJoinToken(c.Request.Context(), req.Token)
	} else {
		trip, err = h.tripService.JoinByCode(c.Request.Context(), req.Code)
	}
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, trip)
}

// Get handles GET /api/v1/trip
func (h *TripHandler) Get(c *gin.Context) {
	trip, err := middleware.GetTrip(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}
	RespondOK(c, trip)
}

// Update handles PUT /api/v1/trip
func (h *TripHandler) Update(c *gin.Context) {
	trip, err := middleware.GetTrip(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	var req struct {
		Name      string `json:"name" binding:"required"`
		StartDate string `json:"start_date" binding:"required"`
		EndDate   string `json:"end_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name, start_date, and end_date are required")
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_DATE", "start_date must be YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil || end.Before(start) {
		RespondError(c, http.StatusBadRequest, "INVALID_DATE", "end_date must be YYYY-MM-DD and not before start_date")
		return
	}

	trip.Name = req.Name
	trip.StartDate = start
	trip.EndDate = end
	if err := h.tripService.Update(c.Request.Context(), trip); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, trip)
}

// Invite handles POST /api/v1/trip/invites
func (h *TripHandler) Invite(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	var req struct {
		Email string `json:"email" binding:"required,email"`
		Name  string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "a valid email is required")
		return
	}

	err = h.tripService.InviteMember(c.Request.Context(), &service.InviteMemberInput{
		TripID: tripID,
		Email:  req.Email,
		Name:   req.Name,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"invited": req.Email})
}

// ListMembers handles GET /api/v1/trip/members
func (h *TripHandler) ListMembers(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	members, err := h.memberService.ListByTrip(c.Request.Context(), tripID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, members)
}

// CreateMember handles POST /api/v1/trip/members
func (h *TripHandler) CreateMember(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	var req struct {
		Name       string `json:"name" binding:"required"`
		NameHe     string `json:"name_he"`
		Emoji      string `json:"emoji"`
		DeviceType string `json:"device_type"`
		Email      string `json:"email"`
		IsVirtual  bool   `json:"is_virtual"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name is required")
		return
	}

	member, err := h.memberService.Create(c.Request.Context(), &service.CreateMemberInput{
		TripID:     tripID,
		Name:       req.Name,
		NameHe:     req.NameHe,
		Emoji:      req.Emoji,
		DeviceType: domain.DeviceType(req.DeviceType),
		Email:      req.Email,
		IsVirtual:  req.IsVirtual,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, member)
}

// UpdateMember handles PUT /api/v1/trip/members/:id
func (h *TripHandler) UpdateMember(c *gin.Context) {
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

	member, err := h.memberService.GetByID(c.Request.Context(), tripID, memberID)
	if err != nil {
		HandleError(c, err)
		return
	}

	var req struct {
		Name       string `json:"name" binding:"required"`
		NameHe     string `json:"name_he"`
		Emoji      string `json:"emoji"`
		DeviceType string `json:"device_type"`
		Email      string `json:"email"`
		IsVirtual  bool   `json:"is_virtual"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name is required")
		return
	}

	member.Name = req.Name
	member.NameHe = req.NameHe
	member.Emoji = req.Emoji
	member.DeviceType = domain.DeviceType(req.DeviceType)
	member.Email = req.Email
	member.IsVirtual = req.IsVirtual

	if err := h.memberService.Update(c.Request.Context(), member); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, member)
}

// DeleteMember handles DELETE /api/v1/trip/members/:id
func (h *TripHandler) DeleteMember(c *gin.Context) {
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

	if err := h.memberService.Delete(c.Request.Context(), tripID, memberID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": memberID})
}
