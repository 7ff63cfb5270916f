package llm

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrBadJSON means the model response contained no parseable JSON object even
// after brace-scan recovery.
var ErrBadJSON = errors.New("llm: response is not valid JSON")

// ExtractJSON returns the JSON object embedded in a model response. Strict
// parse first; if the model wrapped the object in prose or code fences, fall
// back to the substring between the first '{' and the last '}'.
func ExtractJSON(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if json.Valid([]byte(trimmed)) {
		return trimmed, nil
	}
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end <= start {
		return "", ErrBadJSON
	}
	candidate := trimmed[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return "", ErrBadJSON
	}
	return candidate, nil
}
