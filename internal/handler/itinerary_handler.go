package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wayfare/internal/domain"
	"wayfare/internal/middleware"
	"wayfare/internal/service"
)

// ItineraryHandler handles day, flight, hotel, driving, and rental car
// endpoints.
type ItineraryHandler struct {
	itineraryService service.ItineraryService
}

// NewItineraryHandler creates a new ItineraryHandler.
func NewItineraryHandler(itineraryService service.ItineraryService) *ItineraryHandler {
	return &ItineraryHandler{itineraryService: itineraryService}
}

// View handles GET /api/v1/trip/itinerary
func (h *ItineraryHandler) View(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	view, err := h.itineraryService.View(c.Request.Context(), tripID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// UpsertDay handles PUT /api/v1/trip/days
func (h *ItineraryHandler) UpsertDay(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	var day domain.TripDay
	if err := c.ShouldBindJSON(&day); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid day payload")
		return
	}
	day.TripID = tripID

	if err := h.itineraryService.UpsertDay(c.Request.Context(), &day); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, day)
}

// DeleteDay handles DELETE /api/v1/trip/days/:id
func (h *ItineraryHandler) DeleteDay(c *gin.Context) {
	h.deleteByID(c, h.itineraryService.DeleteDay, "invalid day ID")
}

// UpsertFlight handles PUT /api/v1/trip/flights
func (h *ItineraryHandler) UpsertFlight(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	var flight domain.Flight
	if err := c.ShouldBindJSON(&flight); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid flight payload")
		return
	}
	flight.TripID = tripID

	if err := h.itineraryService.UpsertFlight(c.Request.Context(), &flight); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, flight)
}

// DeleteFlight handles DELETE /api/v1/trip/flights/:id
func (h *ItineraryHandler) DeleteFlight(c *gin.Context) {
	h.deleteByID(c, h.itineraryService.DeleteFlight, "invalid flight ID")
}

// UpsertHotel handles PUT /api/v1/trip/hotels
func (h *ItineraryHandler) UpsertHotel(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	var hotel domain.Hotel
	if err := c.ShouldBindJSON(&hotel); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid hotel payload")
		return
	}
	hotel.TripID = tripID

	if err := h.itineraryService.UpsertHotel(c.Request.Context(), &hotel); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, hotel)
}

// DeleteHotel handles DELETE /api/v1/trip/hotels/:id
func (h *ItineraryHandler) DeleteHotel(c *gin.Context) {
	h.deleteByID(c, h.itineraryService.DeleteHotel, "invalid hotel ID")
}

// UpsertDriving handles PUT /api/v1/trip/driving
func (h *ItineraryHandler) UpsertDriving(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	var seg domain.DrivingSegment
	if err := c.ShouldBindJSON(&seg); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid driving payload")
		return
	}
	seg.TripID = tripID

	if err := h.itineraryService.UpsertDriving(c.Request.Context(), &seg); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, seg)
}

// DeleteDriving handles DELETE /api/v1/trip/driving/:id
func (h *ItineraryHandler) DeleteDriving(c *gin.Context) {
	h.deleteByID(c, h.itineraryService.DeleteDriving, "invalid driving segment ID")
}

// UpsertRentalCar handles PUT /api/v1/trip/cars
func (h *ItineraryHandler) UpsertRentalCar(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	var car domain.RentalCar
	if err := c.ShouldBindJSON(&car); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid rental car payload")
		return
	}
	car.TripID = tripID

	if err := h.itineraryService.UpsertRentalCar(c.Request.Context(), &car); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, car)
}

// DeleteRentalCar handles DELETE /api/v1/trip/cars/:id
func (h *ItineraryHandler) DeleteRentalCar(c *gin.Context) {
	h.deleteByID(c, h.itineraryService.DeleteRentalCar, "invalid rental car ID")
}

// deleteByID factors the shared shape of the itinerary delete endpoints.
func (h *ItineraryHandler) deleteByID(c *gin.Context, del func(ctx context.Context, tripID, id uuid.UUID) error, invalidMsg string) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", invalidMsg)
		return
	}

	if err := del(c.Request.Context(), tripID, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}
