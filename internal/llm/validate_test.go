package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labelSchema() *Schema {
	return &Schema{
		Name:        "test-career-label",
		Description: "A career label",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"label":      map[string]any{"type": "string", "enum": []any{"Doctor", "Lawyer", "Nurse"}},
				"confidence": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
				"reasons": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"label"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"label":"Doctor","confidence":0.8,"reasons":["biology"]}`, false},
		{"optional fields omitted", `{"label":"Nurse"}`, false},
		{"missing required", `{"confidence":0.5}`, true},
		{"wrong type", `{"label":42}`, true},
		{"not in enum", `{"label":"Astronaut"}`, true},
		{"out of range", `{"label":"Doctor","confidence":2}`, true},
		{"wrong item type", `{"label":"Doctor","reasons":[1,2]}`, true},
		{"malformed", `{"label":`, true},
		{"empty", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(labelSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var inv *ErrInvalidResponse
			assert.ErrorAs(t, err, &inv)
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	assert.NoError(t, validateResponse(nil, json.RawMessage(`not even json`)))
}

func TestDecodeResponse(t *testing.T) {
	var out struct {
		Label      string  `json:"label"`
		Confidence float64 `json:"confidence"`
	}

	resp := &Response{Content: json.RawMessage(`{"label":"Lawyer","confidence":0.4}`)}
	require.NoError(t, DecodeResponse(labelSchema(), resp, &out))
	assert.Equal(t, "Lawyer", out.Label)
	assert.InDelta(t, 0.4, out.Confidence, 1e-9)

	var inv *ErrInvalidResponse
	assert.ErrorAs(t, DecodeResponse(labelSchema(), nil, &out), &inv)
	assert.ErrorAs(t, DecodeResponse(labelSchema(), &Response{Content: json.RawMessage(`{}`)}, &out), &inv)
}
