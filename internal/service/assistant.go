package service

import (
	"context"
	"time"

	"inmo-assistant/internal/model"

	"go.uber.org/zap"
)

const (
	defaultPhotoCount  = 10
	missingRefQuestion = "¿Cuál es la referencia del inmueble?"
)

// Assistant answers one utterance: it resolves the plan and then runs the
// catalog lookup or search the intent asks for
type Assistant struct {
	resolver *Resolver
	matcher  *Matcher
	catalog  CatalogReader
	maxLimit int
	logger   *zap.Logger
}

// NewAssistant creates a new assistant
func NewAssistant(resolver *Resolver, matcher *Matcher, catalog CatalogReader, maxLimit int, logger *zap.Logger) *Assistant {
	return &Assistant{
		resolver: resolver,
		matcher:  matcher,
		catalog:  catalog,
		maxLimit: maxLimit,
		logger:   logger,
	}
}

// Answer resolves utterance and dispatches on the plan intent.
// Resolver errors are returned unchanged.
func (a *Assistant) Answer(ctx context.Context, utterance string) (*model.Reply, error) {
	startTime := time.Now()

	plan, err := a.resolver.Resolve(ctx, utterance)
	if err != nil {
		return nil, err
	}

	reply := a.Dispatch(plan)
	reply.Took = time.Since(startTime).Milliseconds()

	a.logger.Info("utterance answered",
		zap.String("intent", string(plan.Intent)),
		zap.String("kind", string(reply.Kind)),
		zap.Int("listings", len(reply.Listings)),
		zap.Int64("took_ms", reply.Took),
	)

	return reply, nil
}

// Dispatch builds the reply for an already validated plan
func (a *Assistant) Dispatch(plan *model.Plan) *model.Reply {
	reply := &model.Reply{Plan: plan, NeedFields: plan.NeedFields}

	switch {
	case plan.Intent == model.IntentSearch:
		count := plan.ResultCount
		if count < 1 {
			count = 1
		}
		if a.maxLimit > 0 && count > a.maxLimit {
			count = a.maxLimit
		}
		reply.Listings = a.matcher.Search(plan.Filters, count)
		reply.Kind = model.ReplyListings
		if len(reply.Listings) == 0 {
			reply.Kind = model.ReplyNoResults
		}

	case plan.Intent.IDScoped():
		// without a reference the matching engine is never consulted
		if plan.ListingID == nil {
			reply.Kind = model.ReplyClarification
			reply.Questions = clarificationQuestions(plan, missingRefQuestion)
			break
		}
		listing, ok := a.catalog.GetByID(*plan.ListingID)
		if !ok {
			reply.Kind = model.ReplyNotFound
			break
		}
		reply.Listings = []model.Property{*listing}
		reply.Kind = model.ReplyListing
		if plan.Intent == model.IntentPhotosMore {
			reply.Photos = firstPhotos(listing, plan.ResultCount)
			reply.Kind = model.ReplyPhotos
			if len(reply.Photos) == 0 {
				reply.Kind = model.ReplyNoResults
			}
		}

	case plan.Clarification != nil && len(plan.Clarification.Questions) > 0:
		reply.Kind = model.ReplyClarification
		reply.Questions = plan.Clarification.Questions

	default:
		reply.Kind = model.ReplyUnsupported
	}

	return reply
}

func clarificationQuestions(plan *model.Plan, fallback string) []string {
	if plan.Clarification != nil && len(plan.Clarification.Questions) > 0 {
		return plan.Clarification.Questions
	}
	return []string{fallback}
}

func firstPhotos(p *model.Property, count int) []string {
	if count <= 0 {
		count = defaultPhotoCount
	}
	if len(p.Photos) < count {
		count = len(p.Photos)
	}
	photos := make([]string, count)
	copy(photos, p.Photos[:count])
	return photos
}
