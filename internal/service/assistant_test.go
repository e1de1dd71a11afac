package service

import (
	"context"
	"testing"

	"inmo-assistant/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// countingCatalog records full scans so tests can tell whether matching ran
type countingCatalog struct {
	CatalogReader
	scans int
}

func (c *countingCatalog) All() []model.Property {
	c.scans++
	return c.CatalogReader.All()
}

func newTestAssistant(t *testing.T, output string) (*Assistant, *countingCatalog) {
	t.Helper()
	catalog := &countingCatalog{CatalogReader: loadFixtureCatalog(t)}
	resolver := newTestResolver(t, &fakeGenerator{output: output})
	return NewAssistant(resolver, NewMatcher(catalog), catalog, 50, zaptest.NewLogger(t)), catalog
}

func TestAssistant_Answer(t *testing.T) {
	tests := []struct {
		name      string
		output    string
		wantKind  model.ReplyKind
		wantIDs   []string
		wantScans int
	}{
		{
			name:      "search",
			output:    `{"intent":"SEARCH","filters":{"operation_type":"alquiler"},"result_count":2}`,
			wantKind:  model.ReplyListings,
			wantIDs:   []string{"A-1", "C-1"},
			wantScans: 1,
		},
		{
			name:      "search without matches",
			output:    `{"intent":"SEARCH","filters":{"address_municipality":"cadiz"}}`,
			wantKind:  model.ReplyNoResults,
			wantIDs:   []string{},
			wantScans: 1,
		},
		{
			name:     "get by id",
			output:   `{"intent":"GET_BY_ID","listing_id":"D-1"}`,
			wantKind: model.ReplyListing,
			wantIDs:  []string{"D-1"},
		},
		{
			name:     "price of a listing",
			output:   `{"intent":"PRICE","listing_id":" B-1 "}`,
			wantKind: model.ReplyListing,
			wantIDs:  []string{"B-1"},
		},
		{
			name:     "unknown reference",
			output:   `{"intent":"DETAILS","listing_id":"Z-9"}`,
			wantKind: model.ReplyNotFound,
			wantIDs:  []string{},
		},
		{
			name:     "id-scoped intent without a reference",
			output:   `{"intent":"GET_BY_ID","listing_id":null}`,
			wantKind: model.ReplyClarification,
			wantIDs:  []string{},
		},
		{
			name:     "clarification on other intents",
			output:   `{"intent":"OTHER","clarification":{"questions":["¿Buscas compra o alquiler?"]}}`,
			wantKind: model.ReplyClarification,
			wantIDs:  []string{},
		},
		{
			name:     "contact agent is not handled here",
			output:   `{"intent":"CONTACT_AGENT"}`,
			wantKind: model.ReplyUnsupported,
			wantIDs:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assistant, catalog := newTestAssistant(t, tt.output)

			reply, err := assistant.Answer(context.Background(), "mensaje")
			require.NoError(t, err)

			assert.Equal(t, tt.wantKind, reply.Kind)
			assert.Equal(t, tt.wantIDs, listingIDs(reply.Listings))
			assert.Equal(t, tt.wantScans, catalog.scans)
			assert.NotNil(t, reply.Plan)
		})
	}
}

func TestAssistant_MissingReferenceNeverSearches(t *testing.T) {
	for _, intent := range []string{"GET_BY_ID", "PHOTOS_MORE", "DETAILS", "LOCATION", "PRICE", "AVAILABILITY"} {
		t.Run(intent, func(t *testing.T) {
			assistant, catalog := newTestAssistant(t, `{"intent":"`+intent+`","listing_id":null,"filters":{"operation_type":"venta"}}`)

			reply, err := assistant.Answer(context.Background(), "dame más info")
			require.NoError(t, err)

			assert.Equal(t, model.ReplyClarification, reply.Kind)
			assert.Equal(t, []string{missingRefQuestion}, reply.Questions)
			assert.Equal(t, 0, catalog.scans)
		})
	}
}

func TestAssistant_PhotosMore(t *testing.T) {
	assistant, _ := newTestAssistant(t, `{"intent":"PHOTOS_MORE","listing_id":"B-1","result_count":2,"need_fields":["fotos"]}`)

	reply, err := assistant.Answer(context.Background(), "más fotos del B-1")
	require.NoError(t, err)

	assert.Equal(t, model.ReplyPhotos, reply.Kind)
	assert.Equal(t, []string{"https://example.com/b-1/cover.jpg", "https://example.com/b-1/2.jpg"}, reply.Photos)
	assert.Equal(t, []string{"photos"}, reply.NeedFields)

	assistant, _ = newTestAssistant(t, `{"intent":"PHOTOS_MORE","listing_id":"E-1"}`)
	reply, err = assistant.Answer(context.Background(), "fotos del E-1")
	require.NoError(t, err)
	assert.Equal(t, model.ReplyNoResults, reply.Kind)
	assert.Empty(t, reply.Photos)
}

func TestAssistant_SearchLimitIsCapped(t *testing.T) {
	catalog := loadFixtureCatalog(t)
	resolver := newTestResolver(t, &fakeGenerator{output: `{"intent":"SEARCH","result_count":40}`})
	assistant := NewAssistant(resolver, NewMatcher(catalog), catalog, 2, zaptest.NewLogger(t))

	reply, err := assistant.Answer(context.Background(), "todo")
	require.NoError(t, err)
	assert.Len(t, reply.Listings, 2)
}

func TestAssistant_PropagatesResolverErrors(t *testing.T) {
	assistant, _ := newTestAssistant(t, `no json`)

	reply, err := assistant.Answer(context.Background(), "hola")
	assert.Nil(t, reply)
	assert.True(t, IsUnderstandingError(err))

	_, err = assistant.Answer(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmptyInput)
}
