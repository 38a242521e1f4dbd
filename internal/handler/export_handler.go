package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/middleware"
	"wayfare/internal/service"
)

// ExportHandler handles itinerary export endpoints.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ItineraryXLSX handles GET /api/v1/trip/export/itinerary.xlsx
func (h *ExportHandler) ItineraryXLSX(c *gin.Context) {
	trip, err := middleware.GetTrip(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", trip.Name+"-itinerary.xlsx"))

	if err := h.exportService.WriteItineraryXLSX(c.Request.Context(), trip.ID, c.Writer); err != nil {
		HandleError(c, err)
		return
	}
}
