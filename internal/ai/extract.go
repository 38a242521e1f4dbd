package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// fencedBlock matches a markdown code fence, optionally tagged "json".
var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ExtractJSON pulls the likely JSON payload out of a freeform model
// completion. A fenced code block wins; otherwise the text is sliced from the
// earliest '[' or '{'; otherwise it is returned unchanged and strict parsing
// will fail downstream. Idempotent on already-clean JSON.
func ExtractJSON(text string) string {
	if m := fencedBlock.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	arrStart := strings.Index(text, "[")
	objStart := strings.Index(text, "{")
	start := objStart
	if arrStart != -1 && (objStart == -1 || arrStart < objStart) {
		start = arrStart
	}
	if start != -1 {
		return text[start:]
	}
	return text
}

// decodeRecordArray strictly parses cleaned text into a list of field maps.
// A single top-level object is tolerated and wrapped in a one-element list;
// anything else that fails to parse is a ParseError with no partial result.
func decodeRecordArray(cleaned string) ([]map[string]interface{}, error) {
	var items []map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &items); err == nil {
		return items, nil
	}
	var single map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &single); err != nil {
		return nil, &ParseError{Raw: cleaned, Err: err}
	}
	return []map[string]interface{}{single}, nil
}

// ParseImport converts a raw model completion into import results. Each
// record gets a batch-locally-unique id and defaults to accepted, unedited.
// No schema validation is applied: the prompt's schema is a hint to the
// model, not an enforced contract.
func ParseImport(raw string) ([]ImportResult, error) {
	items, err := decodeRecordArray(ExtractJSON(raw))
	if err != nil {
		return nil, err
	}
	batch := time.Now().UnixMilli()
	results := make([]ImportResult, 0, len(items))
	for i, item := range items {
		results = append(results, ImportResult{
			ID:       fmt.Sprintf("import-%d-%d", batch, i),
			Data:     item,
			Accepted: true,
			Edited:   false,
		})
	}
	return results, nil
}

// ExtractSuggestions converts a raw model completion into suggestions of the
// given kind. Records default to not accepted; the rationale field is lifted
// out of the parsed object when present.
func ExtractSuggestions(raw string, kind SuggestionKind) ([]Suggestion, error) {
	items, err := decodeRecordArray(ExtractJSON(raw))
	if err != nil {
		return nil, err
	}
	batch := time.Now().UnixMilli()
	suggestions := make([]Suggestion, 0, len(items))
	for i, item := range items {
		rationale, _ := item["rationale"].(string)
		suggestions = append(suggestions, Suggestion{
			ID:        fmt.Sprintf("suggest-%d-%d", batch, i),
			Kind:      kind,
			Data:      item,
			Rationale: rationale,
			Accepted:  false,
		})
	}
	return suggestions, nil
}
