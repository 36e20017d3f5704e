package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anjith1/harvest-demand-link/schema"
)

func TestDistanceIdentity(t *testing.T) {
	loc := schema.Location{Latitude: 27.7172, Longitude: 85.324}
	assert.Equal(t, 0.0, Distance(loc, loc))
}

func TestDistanceSymmetry(t *testing.T) {
	a := schema.Location{Latitude: 27.7172, Longitude: 85.324}
	b := schema.Location{Latitude: 28.2096, Longitude: 83.9856}
	assert.Equal(t, Distance(a, b), Distance(b, a))
}

func TestDistanceKnownPair(t *testing.T) {
	// Kathmandu to Pokhara is roughly 144 km in a straight line
	a := schema.Location{Latitude: 27.7172, Longitude: 85.324}
	b := schema.Location{Latitude: 28.2096, Longitude: 83.9856}

	d := Distance(a, b)
	assert.InDelta(t, 144, d, 5)
}

func TestDistanceShortRange(t *testing.T) {
	// two points ~1.5 km apart on the same diagonal
	a := schema.Location{Latitude: 10.00, Longitude: 10.00}
	b := schema.Location{Latitude: 10.01, Longitude: 10.01}

	d := Distance(a, b)
	assert.InDelta(t, 1.5, d, 0.2)
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(0, 0))
	assert.True(t, ValidCoordinates(-90, 180))
	assert.False(t, ValidCoordinates(90.1, 0))
	assert.False(t, ValidCoordinates(0, -180.1))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(schema.Location{Latitude: 27.7, Longitude: 85.3}))
	assert.Equal(t, ErrInvalidCoordinates, Validate(schema.Location{Latitude: 91, Longitude: 0}))
}
