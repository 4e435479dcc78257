package models

// Coordinate is a WGS84 point. Pointer fields distinguish "never captured"
// from a genuine zero value; a point missing either component must never
// take part in distance computations.
type Coordinate struct {
	Latitude  *float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude *float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`
}

// Complete reports whether both components are present.
func (c Coordinate) Complete() bool {
	return c.Latitude != nil && c.Longitude != nil
}

// NewCoordinate builds a complete coordinate.
func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{Latitude: &lat, Longitude: &lon}
}
