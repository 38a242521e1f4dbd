package ai_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfare/internal/ai"
)

func TestExtractJSON_FencedBlock(t *testing.T) {
	raw := "Here are the results:\n```json\n[1,2]\n```\nhope that helps"
	assert.Equal(t, "[1,2]", ai.ExtractJSON(raw))
}

func TestExtractJSON_FencedBlockNoTag(t *testing.T) {
	raw := "```\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, ai.ExtractJSON(raw))
}

func TestExtractJSON_SlicesFromFirstBracket(t *testing.T) {
	raw := `The extracted data is: [{"name": "x"}]`
	assert.Equal(t, `[{"name": "x"}]`, ai.ExtractJSON(raw))
}

func TestExtractJSON_ObjectBeforeArray(t *testing.T) {
	raw := `note {"a": [1]}`
	assert.Equal(t, `{"a": [1]}`, ai.ExtractJSON(raw))
}

func TestExtractJSON_NoJSONReturnsUnchanged(t *testing.T) {
	raw := "I could not find any data, sorry."
	assert.Equal(t, raw, ai.ExtractJSON(raw))
}

func TestExtractJSON_Idempotent(t *testing.T) {
	inputs := []string{
		`[{"name":"x"}]`,
		`{"name":"x"}`,
		"noise ```json\n[1,2]\n``` trailing",
	}
	for _, in := range inputs {
		once := ai.ExtractJSON(in)
		assert.Equal(t, once, ai.ExtractJSON(once))
	}
}

func TestParseImport_Array(t *testing.T) {
	raw := `[{"name":"Taverna","cuisine":"Greek"},{"name":"Ouzeri"}]`

	results, err := ai.ParseImport(raw)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Taverna", results[0].Data["name"])
	assert.True(t, results[0].Accepted)
	assert.False(t, results[0].Edited)
	assert.True(t, strings.HasPrefix(results[0].ID, "import-"))
	assert.True(t, strings.HasSuffix(results[0].ID, "-0"))
	assert.True(t, strings.HasSuffix(results[1].ID, "-1"))
}

func TestParseImport_SingleObjectWrapped(t *testing.T) {
	raw := `{"name":"Taverna"}`

	results, err := ai.ParseImport(raw)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Taverna", results[0].Data["name"])
}

func TestParseImport_EmptyArray(t *testing.T) {
	results, err := ai.ParseImport("[]")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestParseImport_InvalidJSON(t *testing.T) {
	results, err := ai.ParseImport("not json at all")
	assert.Nil(t, results)

	var parseErr *ai.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "not json at all", parseErr.Raw)
}

func TestParseImport_TruncatedArrayNoPartialResults(t *testing.T) {
	raw := `[{"name":"a"},{"name":"b"`

	results, err := ai.ParseImport(raw)
	assert.Nil(t, results)

	var parseErr *ai.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestExtractSuggestions_Defaults(t *testing.T) {
	raw := "```json\n[{\"name\":\"Acropolis\",\"rationale\":\"iconic ruins\"}]\n```"

	suggestions, err := ai.ExtractSuggestions(raw, ai.SuggestHighlight)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)

	s := suggestions[0]
	assert.Equal(t, ai.SuggestHighlight, s.Kind)
	assert.Equal(t, "iconic ruins", s.Rationale)
	assert.False(t, s.Accepted)
	assert.True(t, strings.HasPrefix(s.ID, "suggest-"))
}

func TestExtractSuggestions_MissingRationale(t *testing.T) {
	suggestions, err := ai.ExtractSuggestions(`[{"name":"x"}]`, ai.SuggestRestaurant)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Empty(t, suggestions[0].Rationale)
}
