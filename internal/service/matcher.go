package service

import (
	"math"
	"sort"
	"time"

	"inmo-assistant/internal/metrics"
	"inmo-assistant/internal/model"
	"inmo-assistant/internal/utils"
)

// DefaultSearchLimit is used when the caller passes a non-positive limit
const DefaultSearchLimit = 10

// CatalogReader is the read side of the catalog store
type CatalogReader interface {
	All() []model.Property
	GetByID(id string) (*model.Property, bool)
}

// Matcher filters and ranks catalog records in memory
type Matcher struct {
	catalog CatalogReader
}

// NewMatcher creates a new matcher over the given catalog
func NewMatcher(catalog CatalogReader) *Matcher {
	return &Matcher{catalog: catalog}
}

// Search returns the first limit records that satisfy every non-null filter,
// ordered by photo count, the price heuristic and area. Exact ties keep catalog order.
func (m *Matcher) Search(filters model.Filters, limit int) []model.Property {
	start := time.Now()
	defer func() { metrics.SearchDuration.Observe(time.Since(start).Seconds()) }()

	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	records := m.catalog.All()
	matches := make([]model.Property, 0, len(records))
	for i := range records {
		if Matches(&records[i], &filters) {
			matches = append(matches, records[i])
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return compareListings(&matches[i], &matches[j]) < 0
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// Matches reports whether a record satisfies every non-null filter
func Matches(p *model.Property, f *model.Filters) bool {
	for _, name := range model.StringFilterFields {
		want := utils.FoldPtr(f.Text(name))
		if want == "" {
			continue
		}
		if utils.FoldPtr(p.Text(name)) != want {
			return false
		}
	}

	if !inRange(p.Price, f.PriceMin, f.PriceMax) {
		return false
	}
	if !inRange(p.AreaM2, f.AreaMin, f.AreaMax) {
		return false
	}
	if !atLeast(p.Bedrooms, f.BedroomsMin) {
		return false
	}
	if !atLeast(p.Bathrooms, f.BathroomsMin) {
		return false
	}

	for _, name := range model.FlagFilterFields {
		want := f.Flag(name)
		if want == nil {
			continue
		}
		got := p.Flag(name)
		if got == nil || *got != *want {
			return false
		}
	}

	return true
}

func inRange(value, min, max *float64) bool {
	if min == nil && max == nil {
		return true
	}
	if value == nil {
		return false
	}
	if min != nil && *value < *min {
		return false
	}
	if max != nil && *value > *max {
		return false
	}
	return true
}

func atLeast(value *float64, min *float64) bool {
	if min == nil {
		return true
	}
	if value == nil {
		return false
	}
	return *value >= *min
}

// compareListings orders a before b when it returns a negative number
func compareListings(a, b *model.Property) int {
	photosA, photosB := intOr(a.PhotoCount, 0), intOr(b.PhotoCount, 0)
	if photosA != photosB {
		if photosA > photosB {
			return -1
		}
		return 1
	}

	if c := comparePrice(a, b); c != 0 {
		return c
	}

	areaA, areaB := floatOr(a.AreaM2, 0), floatOr(b.AreaM2, 0)
	switch {
	case areaA > areaB:
		return -1
	case areaA < areaB:
		return 1
	}
	return 0
}

// comparePrice puts cheaper rentals first and pricier sales first.
// A missing price sorts last in both groups.
func comparePrice(a, b *model.Property) int {
	rentalA, rentalB := isRental(a), isRental(b)
	priceA, priceB := rankingPrice(a, rentalA), rankingPrice(b, rentalB)

	if !rentalA && !rentalB {
		priceA, priceB = priceB, priceA
	}
	switch {
	case priceA < priceB:
		return -1
	case priceA > priceB:
		return 1
	}
	return 0
}

func isRental(p *model.Property) bool {
	switch utils.FoldPtr(p.OperationType) {
	case "alquiler", "rent", "rental":
		return true
	}
	return false
}

func rankingPrice(p *model.Property, rental bool) float64 {
	if p.Price != nil {
		return *p.Price
	}
	if rental {
		return math.Inf(1)
	}
	return math.Inf(-1)
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func floatOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
