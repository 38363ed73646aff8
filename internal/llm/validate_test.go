package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func feedbackSchema() *Schema {
	return &Schema{
		Name: "validate-feedback",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"reply": map[string]any{"type": "string", "minLength": 1},
				"level": map[string]any{"type": "string", "enum": []string{"beginner", "intermediate", "advanced"}},
				"scores": map[string]any{
					"type":     "object",
					"required": []string{"pronunciation"},
					"properties": map[string]any{
						"pronunciation": map[string]any{"type": "number", "minimum": 0, "maximum": 10},
					},
				},
				"vocab": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
			"required": []string{"reply"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"minimal", `{"reply":"Good job"}`, true},
		{"full", `{"reply":"ok","level":"advanced","scores":{"pronunciation":8.5},"vocab":["rhythm"]}`, true},
		{"missing reply", `{"level":"beginner"}`, false},
		{"empty reply", `{"reply":""}`, false},
		{"bad enum", `{"reply":"x","level":"expert"}`, false},
		{"score out of range", `{"reply":"x","scores":{"pronunciation":11}}`, false},
		{"nested required", `{"reply":"x","scores":{}}`, false},
		{"array item type", `{"reply":"x","vocab":[1,2]}`, false},
		{"malformed", `{reply}`, false},
		{"empty", ``, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(feedbackSchema(), json.RawMessage(tt.raw))
			if tt.valid {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("err = %v, want ErrInvalidResponse", err)
			}
			if string(invalid.Content) != tt.raw {
				t.Errorf("content = %q, want %q", invalid.Content, tt.raw)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema rejected input: %v", err)
	}
}
