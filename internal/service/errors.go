package service

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned for blank utterances before any backend call
var ErrEmptyInput = errors.New("empty message")

// ErrGenerationDisabled is returned when no generation backend is configured
var ErrGenerationDisabled = errors.New("generation backend is not configured (missing LLM_API_KEY)")

// ValidationError reports a plan document that parsed but does not have the expected shape
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid plan: %s: %v", e.Reason, e.Err)
	}
	return "invalid plan: " + e.Reason
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// MalformedOutputError reports backend output that is not a single JSON document
type MalformedOutputError struct {
	Output string
	Err    error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("generation output is not valid JSON: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}

// GenerationError reports a failed call to the generation backend
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation backend call failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
