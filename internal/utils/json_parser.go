package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DecodeJSONDocument parses AI output that must be exactly one JSON value.
// Surrounding whitespace and a BOM are tolerated; markdown fences, prose
// before or after the value, or a second value are rejected. Numbers are
// kept as json.Number so integers and decimals survive unchanged.
func DecodeJSONDocument(input string) (any, error) {
	s := strings.TrimSpace(strings.TrimPrefix(input, "\ufeff"))
	if s == "" {
		return nil, fmt.Errorf("empty input")
	}

	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w (input: %s)", err, TruncateString(s, 100))
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected content after JSON value (input: %s)", TruncateString(s, 100))
	}

	return doc, nil
}

// TruncateString truncates a string to maxLen bytes
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
