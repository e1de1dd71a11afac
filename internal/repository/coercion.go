package repository

import (
	"encoding/json"
	"fmt"
	"strings"

	"inmo-assistant/internal/model"
	"inmo-assistant/internal/utils"
)

// fieldCoercer applies one raw cell to a property. Every coercer is built
// from a pure cell -> typed value | unknown parser.
type fieldCoercer func(p *model.Property, cell string)

func text(set func(p *model.Property, v *string)) fieldCoercer {
	return func(p *model.Property, cell string) { set(p, utils.ParseString(cell)) }
}

func number(set func(p *model.Property, v *float64)) fieldCoercer {
	return func(p *model.Property, cell string) { set(p, utils.ParseFloat(cell)) }
}

func integer(set func(p *model.Property, v *int)) fieldCoercer {
	return func(p *model.Property, cell string) { set(p, utils.ParseInt(cell)) }
}

func flag(set func(p *model.Property, v *bool)) fieldCoercer {
	return func(p *model.Property, cell string) { set(p, utils.ParseBool(cell)) }
}

// coercionTable maps canonical column names onto typed property fields.
// Photos, primary image, photo count and price per m2 are derived afterwards.
var coercionTable = map[string]fieldCoercer{
	"title":                text(func(p *model.Property, v *string) { p.Title = v }),
	"description":          text(func(p *model.Property, v *string) { p.Description = v }),
	"operation_type":       text(func(p *model.Property, v *string) { p.OperationType = v }),
	"property_type":        text(func(p *model.Property, v *string) { p.PropertyType = v }),
	"price":                number(func(p *model.Property, v *float64) { p.Price = v }),
	"area_m2":              number(func(p *model.Property, v *float64) { p.AreaM2 = v }),
	"bedrooms":             number(func(p *model.Property, v *float64) { p.Bedrooms = v }),
	"bathrooms":            number(func(p *model.Property, v *float64) { p.Bathrooms = v }),
	"price_per_m2":         number(func(p *model.Property, v *float64) { p.PricePerM2 = v }),
	"photo_count":          integer(func(p *model.Property, v *int) { p.PhotoCount = v }),
	"address_municipality": text(func(p *model.Property, v *string) { p.Municipality = v }),
	"neighborhood":         text(func(p *model.Property, v *string) { p.Neighborhood = v }),
	"has_elevator":         flag(func(p *model.Property, v *bool) { p.HasElevator = v }),
	"has_parking":          flag(func(p *model.Property, v *bool) { p.HasParking = v }),
	"furnished":            flag(func(p *model.Property, v *bool) { p.Furnished = v }),
	"exterior":             flag(func(p *model.Property, v *bool) { p.Exterior = v }),
	"terrace":              flag(func(p *model.Property, v *bool) { p.Terrace = v }),
	"storage_room":         flag(func(p *model.Property, v *bool) { p.StorageRoom = v }),
	"air_conditioning":     flag(func(p *model.Property, v *bool) { p.AirConditioning = v }),
	"pets_allowed":         flag(func(p *model.Property, v *bool) { p.PetsAllowed = v }),
	"reference_url":        text(func(p *model.Property, v *string) { p.ReferenceURL = v }),
	"primary_image_url":    text(func(p *model.Property, v *string) { p.PrimaryImageURL = v }),
}

// BuildProperty converts one raw row into a property. It reports false for
// rows without a listing_id.
func BuildProperty(row map[string]string) (model.Property, bool) {
	listingID := strings.TrimSpace(row["listing_id"])
	if listingID == "" {
		return model.Property{}, false
	}

	p := model.Property{ListingID: listingID}
	for column, coerce := range coercionTable {
		if cell, ok := row[column]; ok {
			coerce(&p, cell)
		}
	}

	rawPhotos, ok := row["photos"]
	if !ok || strings.TrimSpace(rawPhotos) == "" {
		rawPhotos = row["photo_urls"]
	}
	p.Photos = NormalizePhotos(rawPhotos)

	if p.PrimaryImageURL == nil {
		p.PrimaryImageURL = utils.ParseString(row["main_image"])
	}
	if p.PrimaryImageURL == nil && len(p.Photos) > 0 {
		first := p.Photos[0]
		p.PrimaryImageURL = &first
	}

	if p.PhotoCount == nil && len(p.Photos) > 0 {
		count := len(p.Photos)
		p.PhotoCount = &count
	}

	if p.PricePerM2 == nil && p.Price != nil && p.AreaM2 != nil && *p.AreaM2 > 0 {
		p.PricePerM2 = utils.FiniteOrNil(*p.Price / *p.AreaM2)
	}

	return p, true
}

// NormalizePhotos accepts a JSON array or a delimiter-joined list ("|", then
// ",", then whitespace) and returns the trimmed, de-duplicated URLs in order.
// A cell that parses as a JSON array is taken as is, even when it is empty.
func NormalizePhotos(raw string) []string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	var urls []string
	parsed := false
	if strings.HasPrefix(s, "[") {
		var items []any
		if err := json.Unmarshal([]byte(s), &items); err == nil {
			parsed = true
			for _, item := range items {
				if item == nil {
					continue
				}
				if url := strings.TrimSpace(fmt.Sprint(item)); url != "" {
					urls = append(urls, url)
				}
			}
		}
	}

	if !parsed {
		var parts []string
		switch {
		case strings.Contains(s, "|"):
			parts = strings.Split(s, "|")
		case strings.Contains(s, ","):
			parts = strings.Split(s, ",")
		default:
			parts = strings.Fields(s)
		}
		for _, part := range parts {
			if url := strings.TrimSpace(part); url != "" {
				urls = append(urls, url)
			}
		}
	}

	seen := make(map[string]bool, len(urls))
	unique := make([]string, 0, len(urls))
	for _, url := range urls {
		if seen[url] {
			continue
		}
		seen[url] = true
		unique = append(unique, url)
	}
	if len(unique) == 0 {
		return nil
	}
	return unique
}
