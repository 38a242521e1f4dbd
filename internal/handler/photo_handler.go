package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wayfare/internal/middleware"
	"wayfare/internal/service"
)

// PhotoHandler handles trip photo feed endpoints.
type PhotoHandler struct {
	photoService service.PhotoService
}

// NewPhotoHandler creates a new PhotoHandler.
func NewPhotoHandler(photoService service.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

// Upload handles POST /api/v1/trip/photos (multipart form).
func (h *PhotoHandler) Upload(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	memberID, err := uuid.Parse(c.PostForm("member_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "member_id form field is required")
		return
	}

	dayIndex, _ := strconv.Atoi(c.PostForm("day_index"))

	var takenAt time.Time
	if v := c.PostForm("taken_at"); v != "" {
		takenAt, _ = time.Parse(time.RFC3339, v)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "file form field is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "could not read uploaded file")
		return
	}
	defer file.Close()

	photo, err := h.photoService.Upload(c.Request.Context(), &service.UploadPhotoInput{
		TripID:      tripID,
		MemberID:    memberID,
		DayIndex:    dayIndex,
		Caption:     c.PostForm("caption"),
		CaptionHe:   c.PostForm("caption_he"),
		TakenAt:     takenAt,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, photo)
}

// List handles GET /api/v1/trip/photos with an optional ?day= filter.
func (h *PhotoHandler) List(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	if dayStr := c.Query("day"); dayStr != "" {
		day, err := strconv.Atoi(dayStr)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "day must be a number")
			return
		}
		photos, err := h.photoService.ListByDay(c.Request.Context(), tripID, day)
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondOK(c, photos)
		return
	}

	photos, err := h.photoService.ListByTrip(c.Request.Context(), tripID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, photos)
}

// Delete handles DELETE /api/v1/trip/photos/:id
func (h *PhotoHandler) Delete(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}
	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid photo ID")
		return
	}
	if err := h.photoService.Delete(c.Request.Context(), tripID, photoID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": photoID})
}
