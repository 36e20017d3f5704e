package api

import (
	"net/http"
	"strconv"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/anjith1/harvest-demand-link/demand"
	"github.com/anjith1/harvest-demand-link/geo"
	"github.com/anjith1/harvest-demand-link/lifecycle"
	"github.com/anjith1/harvest-demand-link/schema"
	"github.com/anjith1/harvest-demand-link/store"
	"github.com/anjith1/harvest-demand-link/utils"
)

// createRequest is the API for a consumer to submit a necessity request
func (s *Server) createRequest(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		ConsumerName string               `json:"consumer_name"`
		Items        []schema.RequestItem `json:"items"`
		Urgency      string               `json:"urgency"`
		TimeNeeded   string               `json:"time_needed"`
		Location     struct {
			Name        string    `json:"name"`
			Coordinates []float64 `json:"coordinates"`
		} `json:"location"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if len(params.Location.Coordinates) != 2 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	location := schema.Location{
		Name:      params.Location.Name,
		Latitude:  params.Location.Coordinates[0],
		Longitude: params.Location.Coordinates[1],
	}

	// reverse geocoding is best effort; a request without political
	// fields is still a valid request
	if enriched, err := utils.EnrichLocation(location); err == nil {
		location = enriched
	} else {
		c.Error(err)
	}

	request, err := s.lifecycle.CreateRequest(lifecycle.CreateParams{
		ConsumerID:   requester,
		ConsumerName: params.ConsumerName,
		Items:        params.Items,
		Urgency:      params.Urgency,
		TimeNeeded:   params.TimeNeeded,
		Location:     location,
	})
	if err != nil {
		switch err {
		case lifecycle.ErrNoItems, lifecycle.ErrInvalidItem, lifecycle.ErrInvalidUrgency, lifecycle.ErrEmptyTimeNeeded, geo.ErrInvalidCoordinates:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	s.enqueue("broadcast_new_request", tasks.Arg{
		Type:  "string",
		Value: request.ID.String(),
	})

	c.JSON(http.StatusOK, gin.H{"result": request})
}

// listRequests is the API for browsing every request, newest first
func (s *Server) listRequests(c *gin.Context) {
	requests, err := s.lifecycle.ListAll()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// myRequests is the API for a consumer to list their own requests
func (s *Server) myRequests(c *gin.Context) {
	requester := c.GetString("requester")

	requests, err := s.lifecycle.ListByConsumer(requester)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// acceptedRequests is the API for a farmer to list the requests they
// committed to
func (s *Server) acceptedRequests(c *gin.Context) {
	requester := c.GetString("requester")

	requests, err := s.lifecycle.ListAcceptedBy(requester)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// nearbyRequests is the API for a farmer to list active requests ranked by
// distance from their position. The origin comes from the `lat`/`lng` query
// parameters, falling back to the farmer's last reported position.
func (s *Server) nearbyRequests(c *gin.Context) {
	requester := c.GetString("requester")

	origin, ok := s.rankOrigin(c, requester)
	if !ok {
		return
	}

	requests, err := s.lifecycle.ListActive()
	if shouldInterupt(err, c) {
		return
	}

	ranked, err := demand.RankByDistance(requests, origin)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": ranked})
}

func (s *Server) rankOrigin(c *gin.Context, requester string) (schema.Location, bool) {
	latParam := c.Query("lat")
	lngParam := c.Query("lng")

	if latParam != "" && lngParam != "" {
		lat, err := strconv.ParseFloat(latParam, 64)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return schema.Location{}, false
		}
		lng, err := strconv.ParseFloat(lngParam, 64)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return schema.Location{}, false
		}
		return schema.Location{Latitude: lat, Longitude: lng}, true
	}

	position, err := s.mongoStore.LastFarmerPosition(requester)
	if shouldInterupt(err, c) {
		return schema.Location{}, false
	}
	if position == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownFarmerLocation)
		return schema.Location{}, false
	}

	return schema.Location{
		Latitude:  position.Location.Coordinates[1],
		Longitude: position.Location.Coordinates[0],
	}, true
}

// acceptRequest is the API for a farmer to take a pending request
func (s *Server) acceptRequest(c *gin.Context) {
	id := c.Param("requestID")
	requester := c.GetString("requester")

	var params struct {
		DeliveryTime string `json:"delivery_time"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	request, err := s.lifecycle.Accept(id, requester, params.DeliveryTime)
	if err != nil {
		switch err {
		case lifecycle.ErrEmptyDeliveryTime:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		case store.ErrStatusConflict:
			abortWithEncoding(c, http.StatusConflict, errorRequestTaken, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	s.enqueue("notify_request_accepted", tasks.Arg{
		Type:  "string",
		Value: request.ID.String(),
	})

	c.JSON(http.StatusOK, gin.H{"result": request})
}

// rejectRequest is the API for a farmer to turn down a pending request
func (s *Server) rejectRequest(c *gin.Context) {
	id := c.Param("requestID")
	requester := c.GetString("requester")

	request, err := s.lifecycle.Reject(id, requester)
	if err != nil {
		switch err {
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		case store.ErrStatusConflict:
			abortWithEncoding(c, http.StatusConflict, errorRequestTaken, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": request})
}

// fulfillRequest is the API for the accepting farmer to close out a request
func (s *Server) fulfillRequest(c *gin.Context) {
	id := c.Param("requestID")
	requester := c.GetString("requester")

	request, err := s.lifecycle.Fulfill(id, requester)
	if err != nil {
		switch err {
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		case lifecycle.ErrInvalidTransition:
			abortWithEncoding(c, http.StatusConflict, errorInvalidTransition, err)
		case lifecycle.ErrNotAcceptedFarmer:
			abortWithEncoding(c, http.StatusForbidden, errorNotAcceptedFarmer, err)
		case store.ErrStatusConflict:
			abortWithEncoding(c, http.StatusConflict, errorRequestTaken, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": request})
}
