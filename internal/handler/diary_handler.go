package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wayfare/internal/domain"
	"wayfare/internal/middleware"
	"wayfare/internal/service"
)

// DiaryHandler handles travel log endpoints.
type DiaryHandler struct {
	diaryService service.DiaryService
}

// NewDiaryHandler creates a new DiaryHandler.
func NewDiaryHandler(diaryService service.DiaryService) *DiaryHandler {
	return &DiaryHandler{diaryService: diaryService}
}

// List handles GET /api/v1/trip/diary. An optional ?day=N query narrows the
// listing to one trip day.
func (h *DiaryHandler) List(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	if day := c.Query("day"); day != "" {
		dayIndex, err := strconv.Atoi(day)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "day must be an integer")
			return
		}
		entries, err := h.diaryService.ListByDay(c.Request.Context(), tripID, dayIndex)
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondOK(c, entries)
		return
	}

	entries, err := h.diaryService.ListByTrip(c.Request.Context(), tripID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, entries)
}

// Upsert handles PUT /api/v1/trip/diary
func (h *DiaryHandler) Upsert(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	var entry domain.DiaryEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid diary entry payload")
		return
	}
	entry.TripID = tripID

	if err := h.diaryService.UpsertEntry(c.Request.Context(), &entry); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, entry)
}

// Delete handles DELETE /api/v1/trip/diary/:id
func (h *DiaryHandler) Delete(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid diary entry ID")
		return
	}

	if err := h.diaryService.DeleteEntry(c.Request.Context(), tripID, entryID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": entryID})
}
