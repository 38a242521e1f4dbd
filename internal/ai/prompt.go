package ai

import (
	"fmt"
	"strings"
)

// importSchemas holds the fixed extraction schema block per import target.
// These blocks are part of the prompt contract: field names, types, and
// enumerated value sets are reproduced exactly in tests.
var importSchemas = map[ImportTarget]string{
	ImportRestaurant: `Array of:
{ "name": string, "nameHe": string|null, "cuisine": string|null, "address": string|null,
  "city": string|null, "phone": string|null, "priceRange": "$"|"$$"|"$$$"|null, "notes": string|null }`,

	ImportHighlight: `Array of:
{ "name": string, "nameHe": string|null,
  "category": "beach"|"ruins"|"museum"|"food"|"kids-fun"|"nature"|"shopping"|"viewpoint"|"other",
  "description": string|null, "address": string|null, "openingHours": string|null, "ticketInfo": string|null }`,

	ImportHotel: `Array of:
{ "name": string, "address": string, "city": string,
  "checkIn": string (ISO datetime), "checkOut": string (ISO datetime),
  "confirmationCode": string|null, "phone": string|null }`,

	ImportFlight: `Array of:
{ "airline": string, "flightNumber": string,
  "departureAirport": string, "departureAirportCode": string (IATA),
  "arrivalAirport": string, "arrivalAirportCode": string (IATA),
  "departureTime": string (ISO), "arrivalTime": string (ISO),
  "terminal": string|null, "confirmationCode": string|null }`,
}

// BuildImportPrompt returns the extraction prompt for the given target.
// The extra argument is optional free text the user pasted alongside the
// uploaded images; empty means no extra context.
func BuildImportPrompt(target ImportTarget, extra string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `You are a travel data extractor for a family trip planning app.

TASK: Extract all %s records visible in the provided content.

OUTPUT FORMAT:
%s

RULES:
- Return ONLY a valid JSON array — no markdown, no explanation
- Include all %ss found; return [] if none found
- Use null for fields you cannot determine
- Dates: ISO 8601 format (e.g. "2026-03-24T14:30:00")`,
		target, importSchemas[target], target)

	if extra != "" {
		fmt.Fprintf(&b, "\n\nADDITIONAL CONTEXT FROM THE USER:\n%s", extra)
	}
	return b.String()
}

// suggestSchemas holds the fixed output schema block per suggestion kind.
var suggestSchemas = map[SuggestionKind]string{
	SuggestRestaurant: `Array of:
{ "name": string, "cuisine": string, "city": string, "address": string|null,
  "priceRange": "$"|"$$"|"$$$", "notes": string, "rationale": string }`,

	SuggestHighlight: `Array of:
{ "name": string, "category": "beach"|"ruins"|"museum"|"food"|"kids-fun"|"nature"|"shopping"|"viewpoint"|"other",
  "description": string, "city": string|null, "address": string|null, "rationale": string }`,

	SuggestStamp: `Array of:
{ "title": string, "icon": string (single emoji), "location": string,
  "description": string, "earnCondition": string, "dayIndex": number, "rationale": string }`,
}

// suggestCounts holds the per-kind quantity band asked of the model.
var suggestCounts = map[SuggestionKind]string{
	SuggestRestaurant: "3–5 restaurants per hotel location (vary by meal type and price)",
	SuggestHighlight:  "3–5 attractions per location (mix: must-see, kid-friendly, hidden gem)",
	SuggestStamp:      "one unique stamp achievement per trip day",
}

// BuildSuggestPrompt returns the suggestion prompt for the given kind,
// rendering the itinerary context as human-readable lines.
func BuildSuggestPrompt(kind SuggestionKind, sc SuggestContext) string {
	dayLines := make([]string, 0, len(sc.Days))
	for _, d := range sc.Days {
		dayLines = append(dayLines, fmt.Sprintf("  - Day %d (%s): %s",
			d.DayIndex+1, d.Date.Format("2006-01-02"), d.Location))
	}

	hotelLines := make([]string, 0, len(sc.Hotels))
	for _, h := range sc.Hotels {
		hotelLines = append(hotelLines, fmt.Sprintf("  - %s, %s (Days %d–%d)",
			h.Name, h.City, h.DayIndexStart+1, h.DayIndexEnd+1))
	}

	driveLines := make([]string, 0, len(sc.Driving))
	for _, d := range sc.Driving {
		driveLines = append(driveLines, fmt.Sprintf("  - Day %d: %s → %s",
			d.DayIndex+1, d.FromPlace, d.ToPlace))
	}

	party := sc.Party
	if party == "" {
		party = "a family"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a travel assistant planning a family trip: %s (%s).\n\n", sc.TripName, party)
	fmt.Fprintf(&b, "ITINERARY:\n%s\n\n", joinOrNone(dayLines))
	fmt.Fprintf(&b, "HOTELS:\n%s\n\n", joinOrNone(hotelLines))
	fmt.Fprintf(&b, "DRIVING ROUTES:\n%s\n\n", joinOrNone(driveLines))
	if len(sc.Existing) > 0 {
		fmt.Fprintf(&b, "ALREADY IN APP (avoid suggesting these): %s\n\n", strings.Join(sc.Existing, ", "))
	}
	fmt.Fprintf(&b, "TASK: Suggest %s. Use real place names. Be specific and practical.\n\n", suggestCounts[kind])
	fmt.Fprintf(&b, "OUTPUT FORMAT:\n%s\n\n", suggestSchemas[kind])
	b.WriteString("Return ONLY a valid JSON array — no markdown, no explanation.")
	return b.String()
}

func joinOrNone(lines []string) string {
	if len(lines) == 0 {
		return "  (none yet)"
	}
	return strings.Join(lines, "\n")
}
