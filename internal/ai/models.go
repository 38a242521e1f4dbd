package ai

import "wayfare/internal/domain"

// ImportTarget selects which extraction schema an import prompt uses.
type ImportTarget string

const (
	ImportRestaurant ImportTarget = "restaurant"
	ImportHighlight  ImportTarget = "highlight"
	ImportHotel      ImportTarget = "hotel"
	ImportFlight     ImportTarget = "flight"
)

// ValidImportTargets is the closed set of import targets.
var ValidImportTargets = map[ImportTarget]bool{
	ImportRestaurant: true,
	ImportHighlight:  true,
	ImportHotel:      true,
	ImportFlight:     true,
}

// SuggestionKind selects which suggestion schema a suggest prompt uses.
type SuggestionKind string

const (
	SuggestRestaurant SuggestionKind = "restaurant"
	SuggestHighlight  SuggestionKind = "highlight"
	SuggestStamp      SuggestionKind = "passport-stamp"
)

// ValidSuggestionKinds is the closed set of suggestion kinds.
var ValidSuggestionKinds = map[SuggestionKind]bool{
	SuggestRestaurant: true,
	SuggestHighlight:  true,
	SuggestStamp:      true,
}

// ImportResult is one extracted record awaiting user review. Imports are
// opt-out: records default to accepted.
type ImportResult struct {
	ID       string                 `json:"id"`
	Data     map[string]interface{} `json:"data"`
	Accepted bool                   `json:"accepted"`
	Edited   bool                   `json:"edited"`
}

// Suggestion is one AI-proposed entity awaiting user review. Suggestions are
// opt-in: records default to not accepted.
type Suggestion struct {
	ID        string                 `json:"id"`
	Kind      SuggestionKind         `json:"kind"`
	Data      map[string]interface{} `json:"data"`
	Rationale string                 `json:"rationale"`
	Accepted  bool                   `json:"accepted"`
}

// SuggestContext bundles the itinerary state a suggestion prompt is built
// from: known days, hotels, driving legs, and entity names the model should
// not duplicate.
type SuggestContext struct {
	TripName string
	Party    string // e.g. "2 adults + 4 kids, ages 4-14"
	Days     []domain.TripDay
	Hotels   []domain.Hotel
	Driving  []domain.DrivingSegment
	Existing []string
}
