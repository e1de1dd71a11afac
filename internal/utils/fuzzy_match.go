package utils

import (
	"strings"
)

// fieldAliases maps the words users (and the planner) use for listing
// attributes onto canonical field names. Keys are already folded.
var fieldAliases = map[string]string{
	"photos":         "photos",
	"photo":          "photos",
	"fotos":          "photos",
	"foto":           "photos",
	"images":         "photos",
	"imagenes":       "photos",
	"price":          "price",
	"precio":         "price",
	"cost":           "price",
	"coste":          "price",
	"address":        "address",
	"direccion":      "address",
	"ubicacion":      "address",
	"location":       "address",
	"zona":           "neighborhood",
	"barrio":         "neighborhood",
	"area":           "area_m2",
	"area_m2":        "area_m2",
	"m2":             "area_m2",
	"metros":         "area_m2",
	"superficie":     "area_m2",
	"bedrooms":       "bedrooms",
	"habitaciones":   "bedrooms",
	"dormitorios":    "bedrooms",
	"bathrooms":      "bathrooms",
	"banos":          "bathrooms",
	"description":    "description",
	"descripcion":    "description",
	"url":            "reference_url",
	"link":           "reference_url",
	"enlace":         "reference_url",
	"parking":        "has_parking",
	"garaje":         "has_parking",
	"ascensor":       "has_elevator",
	"elevator":       "has_elevator",
	"terraza":        "terrace",
	"trastero":       "storage_room",
	"mascotas":       "pets_allowed",
	"pets":           "pets_allowed",
	"amueblado":      "furnished",
	"aire":           "air_conditioning",
	"aa":             "air_conditioning",
	"availability":   "availability",
	"disponibilidad": "availability",
}

// CanonicalFieldName folds a requested field name and resolves known aliases.
// Unknown names come back folded so the mapping is a fixed point.
func CanonicalFieldName(name string) string {
	folded := FoldText(name)
	folded = strings.Join(strings.Fields(folded), "_")
	if canonical, ok := fieldAliases[folded]; ok {
		return canonical
	}
	return folded
}

// NormalizeFieldNames canonicalizes, drops empties and de-duplicates while keeping order
func NormalizeFieldNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		canonical := CanonicalFieldName(name)
		if canonical == "" || seen[canonical] {
			continue
		}
		seen[canonical] = true
		out = append(out, canonical)
	}
	return out
}
