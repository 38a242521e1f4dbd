package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/ai"
	"wayfare/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// wantsHebrew reports whether the client asked for Hebrew error messages.
func wantsHebrew(c *gin.Context) bool {
	return c.Query("lang") == "he"
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	var rateLimited *ai.RateLimitError
	var parseErr *ai.ParseError
	var providerErr *ai.ProviderError

	switch {
	case errors.Is(err, domain.ErrTripNotFound):
		return http.StatusNotFound, "TRIP_NOT_FOUND", "trip not found"
	case errors.Is(err, domain.ErrMemberNotFound):
		return http.StatusNotFound, "MEMBER_NOT_FOUND", "family member not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrInvalidJoinCode):
		return http.StatusUnauthorized, "INVALID_JOIN_CODE", "unknown trip code"
	case errors.Is(err, domain.ErrInvalidJoinToken):
		return http.StatusUnauthorized, "INVALID_JOIN_TOKEN", "invitation link is invalid or expired"
	case errors.Is(err, domain.ErrInvalidAdminPIN):
		return http.StatusUnauthorized, "INVALID_ADMIN_PIN", "wrong admin PIN"
	case errors.Is(err, domain.ErrDuplicateTripCode):
		return http.StatusConflict, "DUPLICATE_TRIP_CODE", "trip code already exists"
	case errors.Is(err, domain.ErrUnsupportedImageType):
		return http.StatusBadRequest, "UNSUPPORTED_IMAGE_TYPE", "unsupported image type; allowed: jpeg, png, webp"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrAnalyzeInFlight):
		return http.StatusConflict, "AI_REQUEST_IN_FLIGHT", "an AI request is already running for this trip"
	case errors.Is(err, ai.ErrMissingCredential):
		return http.StatusBadRequest, "AI_NOT_CONFIGURED", "AI provider is not configured"
	case errors.Is(err, ai.ErrUnknownProvider):
		return http.StatusBadRequest, "AI_UNKNOWN_PROVIDER", "unknown AI provider"
	case errors.As(err, &rateLimited):
		return http.StatusTooManyRequests, "RATE_LIMITED", "AI provider rate limit hit"
	case errors.As(err, &parseErr):
		return http.StatusUnprocessableEntity, "AI_PARSE_ERROR", "could not parse AI response"
	case errors.As(err, &providerErr):
		return http.StatusBadGateway, "AI_PROVIDER_ERROR", "AI provider request failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}

// HandleAIError is HandleError with the user-facing message localized through
// the AI error classifier, so the client can show it directly.
func HandleAIError(c *gin.Context, err error) {
	status, code, _ := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] ai error: %v", requestID, err)
	}
	RespondError(c, status, code, ai.ErrorMessage(err, wantsHebrew(c)))
}
