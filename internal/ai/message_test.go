package ai_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"wayfare/internal/ai"
)

func TestErrorMessage_MissingCredential(t *testing.T) {
	wrapped := fmt.Errorf("invoking: %w", ai.ErrMissingCredential)

	assert.Equal(t, "Configure AI provider in Admin settings first", ai.ErrorMessage(wrapped, false))
	assert.Equal(t, "הגדר ספק AI בדף הניהול תחילה", ai.ErrorMessage(wrapped, true))
}

func TestErrorMessage_RateLimited(t *testing.T) {
	err := ai.NewRateLimitError("groq", errors.New("429"), 30)

	assert.Equal(t, "Rate limit hit — wait a minute and retry", ai.ErrorMessage(err, false))
	assert.Equal(t, "חריגת מגבלת קצב — נסה שוב עוד דקה", ai.ErrorMessage(err, true))
}

func TestErrorMessage_ParseError(t *testing.T) {
	err := &ai.ParseError{Raw: "garbage", Err: errors.New("invalid character")}

	assert.Equal(t, "Could not parse AI response — try again", ai.ErrorMessage(err, false))
	assert.Equal(t, "לא ניתן לפרסר את תשובת ה-AI", ai.ErrorMessage(err, true))
}

func TestErrorMessage_PassthroughForUnclassified(t *testing.T) {
	err := errors.New("connection refused")

	// Unclassified errors pass through verbatim in both locales.
	assert.Equal(t, "connection refused", ai.ErrorMessage(err, false))
	assert.Equal(t, "connection refused", ai.ErrorMessage(err, true))
}

func TestErrorMessage_ProviderErrorPassthrough(t *testing.T) {
	err := &ai.ProviderError{Provider: "claude", Status: 500, Body: "overloaded"}

	msg := ai.ErrorMessage(err, false)
	assert.Contains(t, msg, "claude")
	assert.Contains(t, msg, "500")
}

func TestErrorMessage_BucketSelectionIsLocaleIndependent(t *testing.T) {
	errs := []error{
		ai.ErrMissingCredential,
		ai.NewRateLimitError("gemini", errors.New("429"), 0),
		&ai.ParseError{Raw: "x", Err: errors.New("bad")},
		errors.New("other"),
	}
	for _, err := range errs {
		en := ai.ErrorMessage(err, false)
		he := ai.ErrorMessage(err, true)
		assert.NotEmpty(t, en)
		assert.NotEmpty(t, he)
	}
}
