package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"inmo-assistant/internal/model"
	"inmo-assistant/internal/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// fakeCatalog serves a fixed record slice
type fakeCatalog struct {
	items []model.Property
}

func (c *fakeCatalog) All() []model.Property {
	return c.items
}

func (c *fakeCatalog) GetByID(id string) (*model.Property, bool) {
	id = strings.TrimSpace(id)
	for i := range c.items {
		if c.items[i].ListingID == id {
			return &c.items[i], true
		}
	}
	return nil, false
}

// fakeGenerator returns a canned completion and records what it was sent
type fakeGenerator struct {
	output string
	err    error
	calls  int
	system string
	user   string
}

func (g *fakeGenerator) Generate(ctx context.Context, system, user string) (string, error) {
	g.calls++
	g.system = system
	g.user = user
	return g.output, g.err
}

var errBackendDown = errors.New("backend down")

func loadFixtureCatalog(t *testing.T) *repository.Catalog {
	t.Helper()
	catalog := repository.NewCatalog(zaptest.NewLogger(t))
	_, err := catalog.Load(context.Background(), repository.NewCSVSource("../repository/testdata/catalog.csv"))
	require.NoError(t, err)
	return catalog
}

func newTestValidator(t *testing.T) *PlanValidator {
	t.Helper()
	v, err := NewPlanValidator()
	require.NoError(t, err)
	return v
}

func listingIDs(items []model.Property) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ListingID)
	}
	return ids
}

func strPtr(v string) *string {
	return &v
}

func float64Ptr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}
