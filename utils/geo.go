package utils

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/anjith1/harvest-demand-link/external/geoinfo"
	"github.com/anjith1/harvest-demand-link/schema"
)

var ErrGeoClientNotInit = fmt.Errorf("geo location client is not initialized")
var ErrEmptyGeo = fmt.Errorf("empty geo info")

var geoClient geoinfo.GeoInfo

func InitGeoInfo(apiKey string) {
	c, err := geoinfo.New(apiKey)
	if nil != err {
		log.Panicf("get geo client with error: %s", err)
	}

	geoClient = c
}

func SetGeoClient(c geoinfo.GeoInfo) {
	geoClient = c
}

// EnrichLocation fills the political fields of a request location from
// reverse geocoding, and falls back to the formatted address as the display
// name when the consumer did not provide one. A location that already
// carries a country is returned untouched.
func EnrichLocation(loc schema.Location) (schema.Location, error) {
	if loc.Country != "" {
		return loc, nil
	}

	if geoClient == nil {
		return loc, ErrGeoClientNotInit
	}

	geos, err := geoClient.Get(loc)
	if nil != err {
		return loc, err
	}
	if len(geos) == 0 {
		return loc, ErrEmptyGeo
	}

	for _, a := range geos[0].AddressComponents {
		if len(a.Types) == 0 {
			continue
		}
		switch a.Types[0] {
		case "country":
			loc.Country = a.LongName
		case "administrative_area_level_2":
			loc.District = a.LongName
		case "administrative_area_level_1":
			if loc.District == "" {
				loc.District = a.LongName
			}
		}
	}

	if loc.Name == "" {
		loc.Name = geos[0].FormattedAddress
	}

	return loc, nil
}
