package service

import (
	"encoding/json"
	"fmt"

	"github.com/goalaura/goalaura-backend/internal/infrastructure/llm"
)

type validator interface {
	Validate() error
}

// decodeValidated parses a model response into a schema struct and rejects
// anything missing required fields. The brace-scan recovery inside
// ExtractJSON is the only leniency.
func decodeValidated(text string, v validator) error {
	raw, err := llm.ExtractJSON(text)
	if err != nil {
		return fmt.Errorf("service: %w (model said %q)", err, snippet(text))
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("service: decode model response: %w", err)
	}
	if err := v.Validate(); err != nil {
		return fmt.Errorf("service: model response failed validation: %w", err)
	}
	return nil
}

func snippet(s string) string {
	if len(s) <= 120 {
		return s
	}
	return s[:120] + "..."
}
