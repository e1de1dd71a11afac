package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"inmo-assistant/internal/metrics"
	"inmo-assistant/internal/model"
	"inmo-assistant/internal/utils"

	"go.uber.org/zap"
)

// Resolver turns one user utterance into a validated plan with a single
// generation round trip. It keeps no conversation state and never retries.
type Resolver struct {
	generator Generator
	validator *PlanValidator
	prompt    string
	logger    *zap.Logger
}

// NewResolver creates a resolver using the embedded planner prompt
func NewResolver(generator Generator, validator *PlanValidator, logger *zap.Logger) *Resolver {
	return &Resolver{
		generator: generator,
		validator: validator,
		prompt:    PlannerPrompt(),
		logger:    logger,
	}
}

// Resolve returns the plan for utterance. Errors are ErrEmptyInput,
// *GenerationError, *MalformedOutputError or *ValidationError.
func (r *Resolver) Resolve(ctx context.Context, utterance string) (*model.Plan, error) {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		metrics.PlanFailures.WithLabelValues("empty_input").Inc()
		return nil, ErrEmptyInput
	}

	start := time.Now()
	raw, err := r.generator.Generate(ctx, r.prompt, utterance)
	metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.PlanFailures.WithLabelValues("generation").Inc()
		r.logger.Warn("generation call failed", zap.Error(err))
		return nil, &GenerationError{Err: err}
	}

	doc, err := utils.DecodeJSONDocument(raw)
	if err != nil {
		metrics.PlanFailures.WithLabelValues("malformed_output").Inc()
		r.logger.Warn("generation output is not JSON",
			zap.String("output", utils.TruncateString(raw, 200)),
			zap.Error(err),
		)
		return nil, &MalformedOutputError{Output: raw, Err: err}
	}

	plan, err := r.validator.ValidateDocument(doc)
	if err != nil {
		metrics.PlanFailures.WithLabelValues("validation").Inc()
		r.logger.Warn("generation output rejected", zap.Error(err))
		return nil, err
	}

	metrics.PlansResolved.WithLabelValues(string(plan.Intent)).Inc()
	r.logger.Debug("plan resolved",
		zap.String("intent", string(plan.Intent)),
		zap.String("prompt_version", PromptVersion),
		zap.Duration("took", time.Since(start)),
	)

	return plan, nil
}

// IsUnderstandingError reports errors that mean the backend answered but the
// answer could not be used
func IsUnderstandingError(err error) bool {
	var validationErr *ValidationError
	var malformedErr *MalformedOutputError
	return errors.As(err, &validationErr) || errors.As(err, &malformedErr)
}
