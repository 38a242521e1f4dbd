package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"wayfare/internal/ai"
	"wayfare/internal/domain"
	"wayfare/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"trip not found", domain.ErrTripNotFound, http.StatusNotFound, "TRIP_NOT_FOUND"},
		{"member not found", domain.ErrMemberNotFound, http.StatusNotFound, "MEMBER_NOT_FOUND"},
		{"generic not found", domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"invalid join code", domain.ErrInvalidJoinCode, http.StatusUnauthorized, "INVALID_JOIN_CODE"},
		{"invalid join token", domain.ErrInvalidJoinToken, http.StatusUnauthorized, "INVALID_JOIN_TOKEN"},
		{"invalid admin pin", domain.ErrInvalidAdminPIN, http.StatusUnauthorized, "INVALID_ADMIN_PIN"},
		{"duplicate trip code", domain.ErrDuplicateTripCode, http.StatusConflict, "DUPLICATE_TRIP_CODE"},
		{"unsupported image", domain.ErrUnsupportedImageType, http.StatusBadRequest, "UNSUPPORTED_IMAGE_TYPE"},
		{"file too large", domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{"analyze in flight", domain.ErrAnalyzeInFlight, http.StatusConflict, "AI_REQUEST_IN_FLIGHT"},
		{"missing credential", ai.ErrMissingCredential, http.StatusBadRequest, "AI_NOT_CONFIGURED"},
		{"unknown provider", ai.ErrUnknownProvider, http.StatusBadRequest, "AI_UNKNOWN_PROVIDER"},
		{"rate limited", ai.NewRateLimitError("gemini", errors.New("429"), 30), http.StatusTooManyRequests, "RATE_LIMITED"},
		{"parse error", &ai.ParseError{Raw: "x", Err: errors.New("bad")}, http.StatusUnprocessableEntity, "AI_PARSE_ERROR"},
		{"provider error", &ai.ProviderError{Provider: "groq", Status: 500, Body: "boom"}, http.StatusBadGateway, "AI_PROVIDER_ERROR"},
		{"unclassified", errors.New("disk on fire"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, code, msg := handler.MapDomainError(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantCode, code)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestMapDomainError_UnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("loading trip: %w", domain.ErrTripNotFound)

	status, code, _ := handler.MapDomainError(wrapped)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "TRIP_NOT_FOUND", code)
}
