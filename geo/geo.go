package geo

import (
	"fmt"
	"math"

	"github.com/anjith1/harvest-demand-link/schema"
)

// EarthRadiusKm is the mean radius of the earth in kilometers.
const EarthRadiusKm = 6371.0

var ErrInvalidCoordinates = fmt.Errorf("coordinates out of range")

// ValidCoordinates reports whether a latitude/longitude pair is within range.
func ValidCoordinates(latitude, longitude float64) bool {
	if math.IsNaN(latitude) || math.IsNaN(longitude) {
		return false
	}
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}

// Validate checks the coordinates of a location against the valid
// latitude/longitude ranges.
func Validate(loc schema.Location) error {
	if !ValidCoordinates(loc.Latitude, loc.Longitude) {
		return ErrInvalidCoordinates
	}
	return nil
}

// Distance returns the great-circle distance between two locations in
// kilometers, using the haversine formula.
func Distance(a, b schema.Location) float64 {
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Latitude*math.Pi/180)*math.Cos(b.Latitude*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
