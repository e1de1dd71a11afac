package model

// Intent is the resolved purpose of a user message
type Intent string

const (
	IntentGetByID      Intent = "GET_BY_ID"
	IntentSearch       Intent = "SEARCH"
	IntentDetails      Intent = "DETAILS"
	IntentPhotosMore   Intent = "PHOTOS_MORE"
	IntentLocation     Intent = "LOCATION"
	IntentPrice        Intent = "PRICE"
	IntentAvailability Intent = "AVAILABILITY"
	IntentContactAgent Intent = "CONTACT_AGENT"
	IntentOther        Intent = "OTHER"
)

// Intents lists every recognized intent in schema order
var Intents = []Intent{
	IntentGetByID,
	IntentSearch,
	IntentDetails,
	IntentPhotosMore,
	IntentLocation,
	IntentPrice,
	IntentAvailability,
	IntentContactAgent,
	IntentOther,
}

// Valid reports whether the intent belongs to the fixed enumeration
func (i Intent) Valid() bool {
	for _, known := range Intents {
		if i == known {
			return true
		}
	}
	return false
}

// IDScoped reports whether the intent refers to a single listing
func (i Intent) IDScoped() bool {
	switch i {
	case IntentGetByID, IntentDetails, IntentPhotosMore, IntentLocation, IntentPrice, IntentAvailability:
		return true
	}
	return false
}

// Canonical filter field names
const (
	FieldOperationType = "operation_type"
	FieldPropertyType  = "property_type"
	FieldMunicipality  = "address_municipality"
	FieldNeighborhood  = "neighborhood"

	FieldPriceMin     = "price_min"
	FieldPriceMax     = "price_max"
	FieldBedroomsMin  = "bedrooms_min"
	FieldBathroomsMin = "bathrooms_min"
	FieldAreaMin      = "area_min"
	FieldAreaMax      = "area_max"

	FlagElevator        = "has_elevator"
	FlagParking         = "has_parking"
	FlagFurnished       = "furnished"
	FlagExterior        = "exterior"
	FlagTerrace         = "terrace"
	FlagStorageRoom     = "storage_room"
	FlagAirConditioning = "air_conditioning"
	FlagPetsAllowed     = "pets_allowed"
)

// StringFilterFields are compared case- and accent-insensitively
var StringFilterFields = []string{FieldOperationType, FieldPropertyType, FieldMunicipality, FieldNeighborhood}

// NumberFilterFields are numeric range bounds
var NumberFilterFields = []string{FieldPriceMin, FieldPriceMax, FieldBedroomsMin, FieldBathroomsMin, FieldAreaMin, FieldAreaMax}

// FlagFilterFields are tri-state amenity flags
var FlagFilterFields = []string{
	FlagElevator, FlagParking, FlagFurnished, FlagExterior,
	FlagTerrace, FlagStorageRoom, FlagAirConditioning, FlagPetsAllowed,
}

// Filters is the fixed-shape set of optional search constraints.
// Every key is always present when serialized; nil means unconstrained.
type Filters struct {
	OperationType *string `json:"operation_type"`
	PropertyType  *string `json:"property_type"`
	Municipality  *string `json:"address_municipality"`
	Neighborhood  *string `json:"neighborhood"`

	PriceMin     *float64 `json:"price_min"`
	PriceMax     *float64 `json:"price_max"`
	BedroomsMin  *float64 `json:"bedrooms_min"`
	BathroomsMin *float64 `json:"bathrooms_min"`
	AreaMin      *float64 `json:"area_min"`
	AreaMax      *float64 `json:"area_max"`

	HasElevator     *bool `json:"has_elevator"`
	HasParking      *bool `json:"has_parking"`
	Furnished       *bool `json:"furnished"`
	Exterior        *bool `json:"exterior"`
	Terrace         *bool `json:"terrace"`
	StorageRoom     *bool `json:"storage_room"`
	AirConditioning *bool `json:"air_conditioning"`
	PetsAllowed     *bool `json:"pets_allowed"`
}

// Text returns the string filter stored under a canonical name
func (f *Filters) Text(name string) *string {
	switch name {
	case FieldOperationType:
		return f.OperationType
	case FieldPropertyType:
		return f.PropertyType
	case FieldMunicipality:
		return f.Municipality
	case FieldNeighborhood:
		return f.Neighborhood
	}
	return nil
}

// Flag returns the boolean filter stored under a canonical name
func (f *Filters) Flag(name string) *bool {
	switch name {
	case FlagElevator:
		return f.HasElevator
	case FlagParking:
		return f.HasParking
	case FlagFurnished:
		return f.Furnished
	case FlagExterior:
		return f.Exterior
	case FlagTerrace:
		return f.Terrace
	case FlagStorageRoom:
		return f.StorageRoom
	case FlagAirConditioning:
		return f.AirConditioning
	case FlagPetsAllowed:
		return f.PetsAllowed
	}
	return nil
}

// SetText stores a string filter under a canonical name
func (f *Filters) SetText(name string, v *string) {
	switch name {
	case FieldOperationType:
		f.OperationType = v
	case FieldPropertyType:
		f.PropertyType = v
	case FieldMunicipality:
		f.Municipality = v
	case FieldNeighborhood:
		f.Neighborhood = v
	}
}

// SetNumber stores a numeric filter under a canonical name
func (f *Filters) SetNumber(name string, v *float64) {
	switch name {
	case FieldPriceMin:
		f.PriceMin = v
	case FieldPriceMax:
		f.PriceMax = v
	case FieldBedroomsMin:
		f.BedroomsMin = v
	case FieldBathroomsMin:
		f.BathroomsMin = v
	case FieldAreaMin:
		f.AreaMin = v
	case FieldAreaMax:
		f.AreaMax = v
	}
}

// SetFlag stores a boolean filter under a canonical name
func (f *Filters) SetFlag(name string, v *bool) {
	switch name {
	case FlagElevator:
		f.HasElevator = v
	case FlagParking:
		f.HasParking = v
	case FlagFurnished:
		f.Furnished = v
	case FlagExterior:
		f.Exterior = v
	case FlagTerrace:
		f.Terrace = v
	case FlagStorageRoom:
		f.StorageRoom = v
	case FlagAirConditioning:
		f.AirConditioning = v
	case FlagPetsAllowed:
		f.PetsAllowed = v
	}
}

// Clarification carries follow-up questions for an underspecified plan
type Clarification struct {
	Questions []string `json:"questions"`
}

// DefaultResultCount is used when the plan does not say how many results to return
const DefaultResultCount = 3

// Plan is the validated, typed representation of one user message
type Plan struct {
	Intent        Intent         `json:"intent"`
	ListingID     *string        `json:"listing_id"`
	Filters       Filters        `json:"filters"`
	NeedFields    []string       `json:"need_fields"`
	ResultCount   int            `json:"result_count"`
	Clarification *Clarification `json:"clarification"`
}
