package mapdisplay

import "strings"

// MapType is the display style requested from the map service, stored as the
// service's single-letter code.
type MapType string

const (
	MapTypeMap       MapType = "m"
	MapTypeSatellite MapType = "k"
	MapTypeHybrid    MapType = "h"
	MapTypeTerrain   MapType = "p"
)

// Static Maps API names for each map type. This table is an external
// contract; keep it in sync with the values the API accepts.
var staticMapTypes = map[MapType]string{
	MapTypeMap:       "roadmap",
	MapTypeSatellite: "satellite",
	MapTypeHybrid:    "hybrid",
	MapTypeTerrain:   "terrain",
}

var mapTypeLabels = map[MapType]string{
	MapTypeMap:       "Map",
	MapTypeSatellite: "Satellite",
	MapTypeHybrid:    "Hybrid",
	MapTypeTerrain:   "Terrain",
}

var mapTypeOrder = []MapType{MapTypeMap, MapTypeSatellite, MapTypeHybrid, MapTypeTerrain}

// MapTypes lists the known map types in display order.
func MapTypes() []MapType {
	out := make([]MapType, len(mapTypeOrder))
	copy(out, mapTypeOrder)
	return out
}

// ParseMapType resolves a stored code, falling back to MapTypeMap.
func ParseMapType(code string) MapType {
	return MapType(strings.TrimSpace(code)).Normalize()
}

// Valid reports whether t is one of the known codes.
func (t MapType) Valid() bool {
	_, ok := staticMapTypes[t]
	return ok
}

// Normalize returns t when it is known and MapTypeMap otherwise.
func (t MapType) Normalize() MapType {
	if t.Valid() {
		return t
	}
	return MapTypeMap
}

// StaticMapType returns the Static Maps API name for t.
func (t MapType) StaticMapType() string {
	return staticMapTypes[t.Normalize()]
}

// Label returns the English display label for t.
func (t MapType) Label() string {
	return mapTypeLabels[t.Normalize()]
}
