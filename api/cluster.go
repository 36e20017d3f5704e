package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anjith1/harvest-demand-link/demand"
)

// demandClusters is the API for the aggregated demand map. Clusters are
// computed on the fly from the active requests.
func (s *Server) demandClusters(c *gin.Context) {
	requests, err := s.lifecycle.ListActive()
	if shouldInterupt(err, c) {
		return
	}

	clusters, err := demand.ComputeClusters(requests)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"clusters": clusters})
}
