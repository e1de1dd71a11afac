package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"inmo-assistant/internal/metrics"
	"inmo-assistant/internal/model"

	"go.uber.org/zap"
)

// ErrMissingIDColumn is returned by sources whose columns do not include listing_id
var ErrMissingIDColumn = errors.New("catalog source has no listing_id column")

// Source yields raw catalog rows keyed by column name
type Source interface {
	Name() string
	Rows(ctx context.Context) ([]map[string]string, error)
}

// LoadError reports a catalog source that could not be read or parsed.
// The previously loaded catalog stays active.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load catalog from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

type snapshot struct {
	records []model.Property
	byID    map[string]int
}

// Catalog holds the in-memory property records. Readers always see one
// complete snapshot; Load swaps snapshots atomically.
type Catalog struct {
	current atomic.Pointer[snapshot]
	logger  *zap.Logger
}

// NewCatalog creates an empty catalog
func NewCatalog(logger *zap.Logger) *Catalog {
	c := &Catalog{logger: logger}
	c.current.Store(newSnapshot(nil))
	return c
}

// Load reads every row of the source and replaces the catalog with the result.
// Rows without a listing_id are dropped.
func (c *Catalog) Load(ctx context.Context, src Source) (int, error) {
	rows, err := src.Rows(ctx)
	if err != nil {
		metrics.CatalogLoads.WithLabelValues("error").Inc()
		return 0, &LoadError{Source: src.Name(), Err: err}
	}

	records := make([]model.Property, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		property, ok := BuildProperty(row)
		if !ok {
			dropped++
			continue
		}
		records = append(records, property)
	}

	c.Replace(records)
	metrics.CatalogLoads.WithLabelValues("ok").Inc()

	c.logger.Info("catalog loaded",
		zap.String("source", src.Name()),
		zap.Int("records", len(records)),
		zap.Int("dropped", dropped),
	)

	return len(records), nil
}

// Replace swaps in an already normalized record set
func (c *Catalog) Replace(records []model.Property) {
	snap := newSnapshot(records)
	c.current.Store(snap)
	metrics.CatalogRecords.Set(float64(len(snap.records)))
}

// All returns copies of the records in source order
func (c *Catalog) All() []model.Property {
	snap := c.current.Load()
	out := make([]model.Property, len(snap.records))
	for i := range snap.records {
		out[i] = cloneProperty(snap.records[i])
	}
	return out
}

// Len returns the number of records in the active catalog
func (c *Catalog) Len() int {
	return len(c.current.Load().records)
}

// GetByID finds a record by exact listing id after trimming whitespace
func (c *Catalog) GetByID(id string) (*model.Property, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, false
	}
	snap := c.current.Load()
	idx, ok := snap.byID[id]
	if !ok {
		return nil, false
	}
	property := cloneProperty(snap.records[idx])
	return &property, true
}

func newSnapshot(records []model.Property) *snapshot {
	snap := &snapshot{
		records: make([]model.Property, 0, len(records)),
		byID:    make(map[string]int, len(records)),
	}
	for _, record := range records {
		record.ListingID = strings.TrimSpace(record.ListingID)
		if record.ListingID == "" {
			continue
		}
		snap.records = append(snap.records, cloneProperty(record))
		// first occurrence wins for duplicated ids
		if _, exists := snap.byID[record.ListingID]; !exists {
			snap.byID[record.ListingID] = len(snap.records) - 1
		}
	}
	return snap
}

// cloneProperty copies the photo slice so callers never share it with a snapshot
func cloneProperty(p model.Property) model.Property {
	if p.Photos != nil {
		p.Photos = append([]string(nil), p.Photos...)
	}
	return p
}
