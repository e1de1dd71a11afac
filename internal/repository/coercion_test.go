package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhotos(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "  ", nil},
		{"pipe joined", "a.jpg|b.jpg| a.jpg |", []string{"a.jpg", "b.jpg"}},
		{"comma joined", "a.jpg, b.jpg", []string{"a.jpg", "b.jpg"}},
		{"space joined", "a.jpg  b.jpg\tc.jpg", []string{"a.jpg", "b.jpg", "c.jpg"}},
		{"json array", `["a.jpg", "b.jpg", "a.jpg", null, ""]`, []string{"a.jpg", "b.jpg"}},
		{"empty json array", "[]", nil},
		{"json array of blanks", `[" ", null]`, nil},
		{"broken json falls back to delimiters", `[a.jpg|b.jpg`, []string{"[a.jpg", "b.jpg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhotos(tt.input))
		})
	}
}

func TestBuildProperty(t *testing.T) {
	t.Run("missing id is dropped", func(t *testing.T) {
		_, ok := BuildProperty(map[string]string{"listing_id": "  ", "price": "100"})
		assert.False(t, ok)
	})

	t.Run("unknown values are never zero", func(t *testing.T) {
		p, ok := BuildProperty(map[string]string{
			"listing_id":  "Q-1",
			"price":       "",
			"bedrooms":    "dos",
			"has_parking": "quizas",
			"title":       "   ",
		})
		require.True(t, ok)
		assert.Nil(t, p.Price)
		assert.Nil(t, p.Bedrooms)
		assert.Nil(t, p.HasParking)
		assert.Nil(t, p.Title)
	})

	t.Run("fractional room counts are kept", func(t *testing.T) {
		p, ok := BuildProperty(map[string]string{"listing_id": "Q-5", "bedrooms": "2.5", "bathrooms": "1,5"})
		require.True(t, ok)
		require.NotNil(t, p.Bedrooms)
		require.NotNil(t, p.Bathrooms)
		assert.Equal(t, 2.5, *p.Bedrooms)
		assert.Equal(t, 1.5, *p.Bathrooms)
	})

	t.Run("empty json photo array means no photos", func(t *testing.T) {
		p, ok := BuildProperty(map[string]string{"listing_id": "Q-6", "photos": "[]"})
		require.True(t, ok)
		assert.Nil(t, p.Photos)
		assert.Nil(t, p.PhotoCount)
		assert.Nil(t, p.PrimaryImageURL)
	})

	t.Run("column aliases", func(t *testing.T) {
		p, ok := BuildProperty(map[string]string{
			"listing_id": "Q-2",
			"photo_urls": "x.jpg|y.jpg",
			"main_image": "cover.jpg",
		})
		require.True(t, ok)
		assert.Equal(t, []string{"x.jpg", "y.jpg"}, p.Photos)
		require.NotNil(t, p.PrimaryImageURL)
		assert.Equal(t, "cover.jpg", *p.PrimaryImageURL)
	})

	t.Run("explicit photo count and price per m2 win", func(t *testing.T) {
		p, ok := BuildProperty(map[string]string{
			"listing_id":   "Q-3",
			"photos":       "x.jpg",
			"photo_count":  "12",
			"price":        "1000",
			"area_m2":      "0",
			"price_per_m2": "7,5",
		})
		require.True(t, ok)
		assert.Equal(t, 12, *p.PhotoCount)
		assert.Equal(t, 7.5, *p.PricePerM2)
	})

	t.Run("zero area leaves price per m2 unknown", func(t *testing.T) {
		p, ok := BuildProperty(map[string]string{"listing_id": "Q-4", "price": "1000", "area_m2": "0"})
		require.True(t, ok)
		assert.Nil(t, p.PricePerM2)
	})
}
