package model

import "strings"

// Property is one normalized real-estate listing of the catalog.
// Nil pointers mean "unknown"; they are never coerced to zero values.
type Property struct {
	ListingID   string  `json:"listing_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`

	OperationType *string `json:"operation_type"` // e.g. alquiler / venta, original case
	PropertyType  *string `json:"property_type"`

	Price      *float64 `json:"price"`
	AreaM2     *float64 `json:"area_m2"`
	Bedrooms   *float64 `json:"bedrooms"`
	Bathrooms  *float64 `json:"bathrooms"`
	PricePerM2 *float64 `json:"price_per_m2"`

	Municipality *string `json:"address_municipality"`
	Neighborhood *string `json:"neighborhood"`

	HasElevator     *bool `json:"has_elevator"`
	HasParking      *bool `json:"has_parking"`
	Furnished       *bool `json:"furnished"`
	Exterior        *bool `json:"exterior"`
	Terrace         *bool `json:"terrace"`
	StorageRoom     *bool `json:"storage_room"`
	AirConditioning *bool `json:"air_conditioning"`
	PetsAllowed     *bool `json:"pets_allowed"`

	ReferenceURL    *string  `json:"reference_url"`
	PrimaryImageURL *string  `json:"primary_image_url"`
	Photos          []string `json:"photos"`
	PhotoCount      *int     `json:"photo_count"`
}

// JoinedPhotos returns the photo list in its canonical "|"-joined form
func (p *Property) JoinedPhotos() string {
	return strings.Join(p.Photos, "|")
}

// Flag returns the tri-state value of a canonical amenity flag
func (p *Property) Flag(name string) *bool {
	switch name {
	case FlagElevator:
		return p.HasElevator
	case FlagParking:
		return p.HasParking
	case FlagFurnished:
		return p.Furnished
	case FlagExterior:
		return p.Exterior
	case FlagTerrace:
		return p.Terrace
	case FlagStorageRoom:
		return p.StorageRoom
	case FlagAirConditioning:
		return p.AirConditioning
	case FlagPetsAllowed:
		return p.PetsAllowed
	}
	return nil
}

// Text returns the value of a canonical string field used by equality filters
func (p *Property) Text(name string) *string {
	switch name {
	case FieldOperationType:
		return p.OperationType
	case FieldPropertyType:
		return p.PropertyType
	case FieldMunicipality:
		return p.Municipality
	case FieldNeighborhood:
		return p.Neighborhood
	}
	return nil
}
