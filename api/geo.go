package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// parseGeoPosition splits a "lat;lng" header value into coordinates.
func parseGeoPosition(value string) (float64, float64, error) {
	parts := strings.Split(value, ";")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid geo-position value: %s", value)
	}

	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, err
	}

	long, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, err
	}

	return lat, long, nil
}

// updateGeoPositionMiddleware records the caller's last known position
// from the Geo-Position header on every authenticated request. The
// stored position feeds nearby ranking and the demand alert worker.
func (s *Server) updateGeoPositionMiddleware(c *gin.Context) {
	header := c.GetHeader("Geo-Position")
	accountNumber := c.GetString("requester")
	if header == "" || accountNumber == "" {
		c.Next()
		return
	}

	lat, long, err := parseGeoPosition(header)
	if err != nil {
		c.Error(err)
		c.Next()
		return
	}

	if err := s.mongoStore.UpdateFarmerPosition(accountNumber, lat, long); err != nil {
		c.Error(err)
	}
	c.Next()
}
