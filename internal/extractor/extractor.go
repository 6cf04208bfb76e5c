// Package extractor pulls the JSON object out of free-form model output.
package extractor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/you-humble/pcbuilder/internal/model"
)

// Span returns the text between the first '{' and the last '}', inclusive.
// Prose around the object is ignored; braces inside that prose widen the span.
func Span(text string) (string, error) {
	start := strings.Index(text, "{")
	if start < 0 {
		return "", model.ErrNoJSONFound
	}

	end := strings.LastIndex(text, "}")
	if end < start {
		return "", model.ErrNoJSONFound
	}

	return text[start : end+1], nil
}

// Extract decodes the span found by Span into out.
func Extract(text string, out any) error {
	span, err := Span(text)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(span), out); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidJSON, err)
	}

	return nil
}

// ExtractRaw validates the span and returns it undecoded.
func ExtractRaw(text string) (json.RawMessage, error) {
	span, err := Span(text)
	if err != nil {
		return nil, err
	}

	if !json.Valid([]byte(span)) {
		return nil, model.ErrInvalidJSON
	}

	return json.RawMessage(span), nil
}
