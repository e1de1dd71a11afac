package service

import (
	"context"
)

// Generator is the text-generation backend used by the intent resolver.
// Implementations return the raw completion text; they do not parse it.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// Ensure OpenAIClient implements Generator
var _ Generator = (*OpenAIClient)(nil)
