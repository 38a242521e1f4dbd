package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wayfare/internal/domain"
	"wayfare/internal/port"
)

// Context keys set by TripResolver.
const (
	ContextKeyTrip   = "trip"
	ContextKeyTripID = "trip_id"
)

// HeaderTripCode carries the trip join code on every trip-scoped request.
const HeaderTripCode = "X-Trip-Code"

// TripResolver returns middleware that resolves the X-Trip-Code header to a
// trip and stores it in the request context. Requests without a valid code
// are rejected before reaching any handler.
func TripResolver(tripRepo port.TripRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.GetHeader(HeaderTripCode)
		if code == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "TRIP_CODE_REQUIRED", "message": "X-Trip-Code header required"},
			})
			return
		}

		trip, err := tripRepo.GetByCode(c.Request.Context(), code)
		if err != nil {
			status := http.StatusInternalServerError
			apiCode, msg := "INTERNAL_ERROR", "an internal error occurred"
			if errors.Is(err, domain.ErrTripNotFound) {
				status, apiCode, msg = http.StatusUnauthorized, "INVALID_TRIP_CODE", "unknown trip code"
			}
			c.AbortWithStatusJSON(status, gin.H{
				"success": false,
				"error":   gin.H{"code": apiCode, "message": msg},
			})
			return
		}

		c.Set(ContextKeyTrip, trip)
		c.Set(ContextKeyTripID, trip.ID)
		c.Next()
	}
}

// GetTrip returns the trip resolved by TripResolver.
func GetTrip(c *gin.Context) (*domain.Trip, error) {
	v, exists := c.Get(ContextKeyTrip)
	if !exists {
		return nil, errors.New("trip not found in context")
	}
	trip, ok := v.(*domain.Trip)
	if !ok {
		return nil, errors.New("invalid trip in context")
	}
	return trip, nil
}

// GetTripID returns the trip ID resolved by TripResolver.
func GetTripID(c *gin.Context) (uuid.UUID, error) {
	v, exists := c.Get(ContextKeyTripID)
	if !exists {
		return uuid.Nil, errors.New("trip ID not found in context")
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("invalid trip ID in context")
	}
	return id, nil
}
