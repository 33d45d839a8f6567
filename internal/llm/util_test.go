package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain JSON untouched",
			input:    `{"a": 1}`,
			expected: `{"a": 1}`,
		},
		{
			name:     "json fence",
			input:    "```json\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "generic fence",
			input:    "```\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "fence with language identifier",
			input:    "```javascript\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n{\"a\": 1}\n  ",
			expected: `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestExtractFirstJSON_Object(t *testing.T) {
	out := ExtractFirstJSON(`Sure! Here is the result: {"question": "What is Go?"} Hope it helps.`)
	assert.Equal(t, `{"question": "What is Go?"}`, out)
	assert.True(t, json.Valid([]byte(out)))
}

func TestExtractFirstJSON_Array(t *testing.T) {
	out := ExtractFirstJSON(`preamble [1, 2, {"x": 3}] postamble`)
	assert.Equal(t, `[1, 2, {"x": 3}]`, out)
}

func TestExtractFirstJSON_NestedBraces(t *testing.T) {
	out := ExtractFirstJSON(`{"outer": {"inner": {"deep": 1}}} trailing {`)
	require.True(t, json.Valid([]byte(out)))
	assert.Equal(t, `{"outer": {"inner": {"deep": 1}}}`, out)
}

func TestExtractFirstJSON_BracesInsideStrings(t *testing.T) {
	out := ExtractFirstJSON(`{"text": "a } brace and a \" quote"}`)
	assert.Equal(t, `{"text": "a } brace and a \" quote"}`, out)
	assert.True(t, json.Valid([]byte(out)))
}

func TestExtractFirstJSON_CodeFencedWithGarbage(t *testing.T) {
	out := ExtractFirstJSON("Here you go:\n```json\n{\"a\": 1}\n```\nLet me know!")
	assert.Equal(t, `{"a": 1}`, out)
}

func TestExtractFirstJSON_NoJSON(t *testing.T) {
	assert.Equal(t, "", ExtractFirstJSON("I cannot answer that."))
	assert.Equal(t, "", ExtractFirstJSON(""))
}

func TestExtractFirstJSON_Unbalanced(t *testing.T) {
	assert.Equal(t, "", ExtractFirstJSON(`{"a": {"b": 1}`))
}
