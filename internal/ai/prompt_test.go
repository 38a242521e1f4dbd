package ai_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wayfare/internal/ai"
	"wayfare/internal/domain"
)

func TestBuildImportPrompt_SchemaPerTarget(t *testing.T) {
	tests := []struct {
		target ai.ImportTarget
		fields []string
	}{
		{ai.ImportRestaurant, []string{`"name"`, `"cuisine"`, `"priceRange"`, `"$"|"$$"|"$$$"`}},
		{ai.ImportHighlight, []string{`"category"`, `"beach"|"ruins"|"museum"|"food"|"kids-fun"|"nature"|"shopping"|"viewpoint"|"other"`, `"openingHours"`, `"ticketInfo"`}},
		{ai.ImportHotel, []string{`"checkIn"`, `"checkOut"`, `"confirmationCode"`}},
		{ai.ImportFlight, []string{`"airline"`, `"flightNumber"`, `"departureAirportCode"`, `(IATA)`, `"arrivalTime"`}},
	}

	for _, tt := range tests {
		t.Run(string(tt.target), func(t *testing.T) {
			prompt := ai.BuildImportPrompt(tt.target, "")
			for _, field := range tt.fields {
				assert.Contains(t, prompt, field)
			}
			assert.Contains(t, prompt, "Extract all "+string(tt.target)+" records")
		})
	}
}

func TestBuildImportPrompt_Rules(t *testing.T) {
	prompt := ai.BuildImportPrompt(ai.ImportFlight, "")

	assert.Contains(t, prompt, "Return ONLY a valid JSON array")
	assert.Contains(t, prompt, "return [] if none found")
	assert.Contains(t, prompt, "Use null for fields you cannot determine")
	assert.Contains(t, prompt, `"2026-03-24T14:30:00"`)
	assert.NotContains(t, prompt, "ADDITIONAL CONTEXT FROM THE USER")
}

func TestBuildImportPrompt_ExtraContext(t *testing.T) {
	prompt := ai.BuildImportPrompt(ai.ImportRestaurant, "booking confirmation for March 24")

	assert.Contains(t, prompt, "ADDITIONAL CONTEXT FROM THE USER:")
	assert.Contains(t, prompt, "booking confirmation for March 24")
	// Extra context is appended after the rules block.
	assert.Greater(t,
		strings.Index(prompt, "ADDITIONAL CONTEXT"),
		strings.Index(prompt, "RULES:"))
}

func suggestTestContext() ai.SuggestContext {
	return ai.SuggestContext{
		TripName: "Greece 2026",
		Party:    "2 adults + 4 kids, ages 4-14",
		Days: []domain.TripDay{
			{DayIndex: 0, Date: time.Date(2026, 3, 24, 0, 0, 0, 0, time.UTC), Location: "Athens"},
			{DayIndex: 1, Date: time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC), Location: "Nafplio"},
		},
		Hotels: []domain.Hotel{
			{Name: "Electra Palace", City: "Athens", DayIndexStart: 0, DayIndexEnd: 1},
		},
		Driving: []domain.DrivingSegment{
			{DayIndex: 1, FromPlace: "Athens", ToPlace: "Nafplio"},
		},
		Existing: []string{"Acropolis", "Plaka"},
	}
}

func TestBuildSuggestPrompt_RendersContext(t *testing.T) {
	prompt := ai.BuildSuggestPrompt(ai.SuggestHighlight, suggestTestContext())

	assert.Contains(t, prompt, "Greece 2026 (2 adults + 4 kids, ages 4-14)")
	assert.Contains(t, prompt, "  - Day 1 (2026-03-24): Athens")
	assert.Contains(t, prompt, "  - Day 2 (2026-03-25): Nafplio")
	assert.Contains(t, prompt, "  - Electra Palace, Athens (Days 1–2)")
	assert.Contains(t, prompt, "  - Day 2: Athens → Nafplio")
	assert.Contains(t, prompt, "ALREADY IN APP (avoid suggesting these): Acropolis, Plaka")
	assert.Contains(t, prompt, "Return ONLY a valid JSON array")
}

func TestBuildSuggestPrompt_EmptyContext(t *testing.T) {
	prompt := ai.BuildSuggestPrompt(ai.SuggestRestaurant, ai.SuggestContext{TripName: "Test"})

	assert.Contains(t, prompt, "(a family)")
	assert.Contains(t, prompt, "  (none yet)")
	assert.NotContains(t, prompt, "ALREADY IN APP")
}

func TestBuildSuggestPrompt_SchemaAndCountPerKind(t *testing.T) {
	tests := []struct {
		kind   ai.SuggestionKind
		schema string
		count  string
	}{
		{ai.SuggestRestaurant, `"rationale"`, "3–5 restaurants per hotel location"},
		{ai.SuggestHighlight, `"category"`, "3–5 attractions per location"},
		{ai.SuggestStamp, `"earnCondition"`, "one unique stamp achievement per trip day"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			prompt := ai.BuildSuggestPrompt(tt.kind, suggestTestContext())
			assert.Contains(t, prompt, tt.schema)
			assert.Contains(t, prompt, tt.count)
		})
	}
}
