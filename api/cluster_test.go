package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/anjith1/harvest-demand-link/api/mocks"
	"github.com/anjith1/harvest-demand-link/schema"
)

func TestDemandClusters(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDemandStore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	s := testServer(d, m)

	requests := make([]schema.NecessityRequest, 0, 3)
	for i := 0; i < 3; i++ {
		requests = append(requests, schema.NecessityRequest{
			ID:     uuid.New(),
			Items:  schema.RequestItems{{Name: "Rice", Quantity: 10, Unit: "kg"}},
			Status: schema.RequestPending,
			Location: schema.Location{
				Latitude:  27.70 + float64(i)*0.01,
				Longitude: 85.30,
			},
		})
	}
	d.EXPECT().ListActive().Return(requests, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/clusters", s.demandClusters)

	req := httptest.NewRequest("GET", "/clusters", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Clusters []schema.Cluster `json:"clusters"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, jResp.Clusters, 1)
	assert.Equal(t, "Rice", jResp.Clusters[0].Item)
	assert.Equal(t, 3, jResp.Clusters[0].MemberCount)
	assert.Equal(t, 30.0, jResp.Clusters[0].TotalDemand)
}
