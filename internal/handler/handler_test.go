package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inmo-assistant/internal/model"
	"inmo-assistant/internal/repository"
	"inmo-assistant/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

type stubGenerator struct {
	output string
	err    error
	delay  time.Duration
}

func (g *stubGenerator) Generate(ctx context.Context, system, user string) (string, error) {
	if g.delay > 0 {
		select {
		case <-time.After(g.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return g.output, g.err
}

func setupRouter(t *testing.T, gen service.Generator, timeout time.Duration) (*gin.Engine, *repository.Catalog) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zaptest.NewLogger(t)

	catalog := repository.NewCatalog(logger)
	source := repository.NewCSVSource("../repository/testdata/catalog.csv")
	_, err := catalog.Load(context.Background(), source)
	require.NoError(t, err)

	validator, err := service.NewPlanValidator()
	require.NoError(t, err)

	matcher := service.NewMatcher(catalog)
	resolver := service.NewResolver(gen, validator, logger)
	assistant := service.NewAssistant(resolver, matcher, catalog, 50, logger)

	assistantHandler := NewAssistantHandler(resolver, assistant, timeout, logger)
	searchHandler := NewSearchHandler(matcher, catalog, validator, 10, 50)
	catalogHandler := NewCatalogHandler(catalog, source, zap.NewNop())

	router := gin.New()
	v1 := router.Group("/api/v1")
	{
		v1.POST("/plan", assistantHandler.Plan)
		v1.POST("/ask", assistantHandler.Ask)
		v1.POST("/search", searchHandler.Search)
		v1.GET("/listings/:id", searchHandler.GetListing)
		v1.POST("/catalog/reload", catalogHandler.Reload)
	}
	return router, catalog
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPlanEndpoint(t *testing.T) {
	router, _ := setupRouter(t, &stubGenerator{output: `{"intent":"GET_BY_ID","listing_id":"A-1"}`}, time.Second)

	w := doJSON(router, http.MethodPost, "/api/v1/plan", `{"message":"info del A-1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var plan model.Plan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Equal(t, model.IntentGetByID, plan.Intent)
	assert.Equal(t, "A-1", *plan.ListingID)
	assert.Contains(t, w.Body.String(), `"has_parking":null`)
}

func TestPlanEndpoint_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		gen      *stubGenerator
		body     string
		wantCode int
	}{
		{"missing message", &stubGenerator{}, `{}`, http.StatusBadRequest},
		{"blank message", &stubGenerator{}, `{"message":"   "}`, http.StatusBadRequest},
		{"malformed output", &stubGenerator{output: `{"intent":"SEARCH"} gracias`}, `{"message":"hola"}`, http.StatusUnprocessableEntity},
		{"invalid plan", &stubGenerator{output: `{"intent":"NOPE"}`}, `{"message":"hola"}`, http.StatusUnprocessableEntity},
		{"backend failure", &stubGenerator{err: errors.New("503 from upstream")}, `{"message":"hola"}`, http.StatusBadGateway},
		{"backend timeout", &stubGenerator{delay: time.Second, output: `{"intent":"OTHER"}`}, `{"message":"hola"}`, http.StatusGatewayTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupRouter(t, tt.gen, 50*time.Millisecond)
			w := doJSON(router, http.MethodPost, "/api/v1/plan", tt.body)
			assert.Equal(t, tt.wantCode, w.Code, w.Body.String())
		})
	}
}

func TestAskEndpoint(t *testing.T) {
	router, _ := setupRouter(t, &stubGenerator{output: `{"intent":"SEARCH","filters":{"has_parking":"si","operation_type":"venta"}}`}, time.Second)

	w := doJSON(router, http.MethodPost, "/api/v1/ask", `{"message":"casas en venta con garaje"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var reply model.Reply
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	assert.Equal(t, model.ReplyListings, reply.Kind)
	require.Len(t, reply.Listings, 2)
	assert.Equal(t, "B-1", reply.Listings[0].ListingID)
	assert.Equal(t, "D-1", reply.Listings[1].ListingID)
}

func TestSearchEndpoint(t *testing.T) {
	router, _ := setupRouter(t, &stubGenerator{}, time.Second)

	w := doJSON(router, http.MethodPost, "/api/v1/search", `{"filters":{"address_municipality":"MÁLAGA","price_min":"500","price_max":600},"limit":5}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "C-1", resp.Results[0].ListingID)
	assert.Equal(t, "málaga", *resp.Filters.Municipality)

	w = doJSON(router, http.MethodPost, "/api/v1/search", `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Total)

	w = doJSON(router, http.MethodPost, "/api/v1/search", `{"filters":{"terrace":{"yes":true}}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetListingEndpoint(t *testing.T) {
	router, _ := setupRouter(t, &stubGenerator{}, time.Second)

	w := doJSON(router, http.MethodGet, "/api/v1/listings/B-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `"listing_id":"B-1"`))

	w = doJSON(router, http.MethodGet, "/api/v1/listings/NOPE", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReloadEndpoint(t *testing.T) {
	router, catalog := setupRouter(t, &stubGenerator{}, time.Second)
	catalog.Replace(nil)

	w := doJSON(router, http.MethodPost, "/api/v1/catalog/reload", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.ReloadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Records)
	assert.Equal(t, 5, catalog.Len())
}
