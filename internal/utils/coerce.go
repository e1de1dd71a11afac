package utils

import (
	"math"
	"strconv"
	"strings"
)

var (
	truthyTokens = map[string]bool{"1": true, "true": true, "t": true, "si": true, "sí": true, "yes": true, "y": true}
	falsyTokens  = map[string]bool{"0": true, "false": true, "f": true, "no": true, "n": true}
)

// ParseString trims a cell; empty means unknown
func ParseString(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	return &s
}

// ParseFloat parses a number leniently, accepting a comma as decimal separator.
// Unparsable or non-finite input is unknown.
func ParseFloat(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return FiniteOrNil(v)
}

// ParseInt parses a whole number; fractional values are unknown rather than truncated
func ParseInt(raw string) *int {
	f := ParseFloat(raw)
	if f == nil || *f != math.Trunc(*f) || math.Abs(*f) > math.MaxInt32 {
		return nil
	}
	v := int(*f)
	return &v
}

// ParseBool maps Spanish/English truthy and falsy tokens, case-insensitively.
// Anything else is unknown.
func ParseBool(raw string) *bool {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case truthyTokens[s]:
		v := true
		return &v
	case falsyTokens[s]:
		v := false
		return &v
	}
	return nil
}

// FiniteOrNil drops NaN and infinities
func FiniteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
