package geoinfo

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/anjith1/harvest-demand-link/schema"
)

const geocodeTimeout = 5 * time.Second

var logEntry = log.WithField("prefix", "geoinfo")

// GeoInfo resolves a human readable place for request coordinates.
type GeoInfo interface {
	Get(schema.Location) ([]maps.GeocodingResult, error)
}

type mapsGeoInfo struct {
	client *maps.Client
}

// New builds a GeoInfo backed by the google maps geocoding api.
func New(apiKey string) (GeoInfo, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		logEntry.WithError(err).Error("new map client")
		return nil, err
	}

	return &mapsGeoInfo{client: client}, nil
}

// Get reverse-geocodes the coordinates of a location.
func (g *mapsGeoInfo) Get(loc schema.Location) ([]maps.GeocodingResult, error) {
	logEntry.WithFields(log.Fields{
		"lat": loc.Latitude,
		"lng": loc.Longitude,
	}).Debug("query geo info")

	ctx, cancel := context.WithTimeout(context.Background(), geocodeTimeout)
	defer cancel()

	return g.client.Geocode(ctx, &maps.GeocodingRequest{LatLng: &maps.LatLng{
		Lat: loc.Latitude,
		Lng: loc.Longitude,
	}})
}
