package demand

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/anjith1/harvest-demand-link/geo"
	"github.com/anjith1/harvest-demand-link/schema"
)

func riceRequest(lat, lng, qty float64) schema.NecessityRequest {
	return schema.NecessityRequest{
		ID:      uuid.New(),
		Items:   schema.RequestItems{{Name: "Rice", Quantity: qty, Unit: "kg"}},
		Urgency: schema.UrgencyMedium,
		Status:  schema.RequestPending,
		Location: schema.Location{
			Latitude:  lat,
			Longitude: lng,
		},
	}
}

func TestComputeClustersThreeNeighbors(t *testing.T) {
	requests := []schema.NecessityRequest{
		riceRequest(10.00, 10.00, 10),
		riceRequest(10.01, 10.01, 20),
		riceRequest(10.02, 10.02, 15),
	}

	clusters, err := ComputeClusters(requests)
	assert.NoError(t, err)
	assert.Len(t, clusters, 1)

	c := clusters[0]
	assert.Equal(t, "Rice", c.Item)
	assert.Equal(t, 3, c.MemberCount)
	assert.Equal(t, 45.0, c.TotalDemand)
	assert.Equal(t, schema.ClusterPriorityMedium, c.Priority)
	assert.InDelta(t, 10.01, c.Center.Latitude, 0.001)
	assert.InDelta(t, 10.01, c.Center.Longitude, 0.001)
}

func TestComputeClustersChainConnectivity(t *testing.T) {
	// a chain where the two ends are more than 10km apart but every hop
	// is within radius still forms a single cluster
	requests := []schema.NecessityRequest{
		riceRequest(10.00, 10.00, 5),
		riceRequest(10.06, 10.00, 5), // ~6.7km from the first
		riceRequest(10.12, 10.00, 5), // ~13.3km from the first
	}

	clusters, err := ComputeClusters(requests)
	assert.NoError(t, err)
	assert.Len(t, clusters, 1)
	assert.Equal(t, 3, clusters[0].MemberCount)
}

func TestComputeClustersTooFewMembers(t *testing.T) {
	requests := []schema.NecessityRequest{
		riceRequest(10.00, 10.00, 10),
		riceRequest(10.01, 10.01, 20),
	}

	clusters, err := ComputeClusters(requests)
	assert.NoError(t, err)
	assert.Empty(t, clusters)
}

func TestComputeClustersIsolatedRequest(t *testing.T) {
	requests := []schema.NecessityRequest{
		riceRequest(10.00, 10.00, 10),
		riceRequest(10.01, 10.01, 20),
		riceRequest(10.02, 10.02, 15),
		riceRequest(12.00, 12.00, 50), // no same-item neighbor within 10km
	}

	clusters, err := ComputeClusters(requests)
	assert.NoError(t, err)
	assert.Len(t, clusters, 1)
	assert.Equal(t, 3, clusters[0].MemberCount)
	assert.Equal(t, 45.0, clusters[0].TotalDemand)
}

func TestComputeClustersExcludesSettledRequests(t *testing.T) {
	rejected := riceRequest(10.00, 10.00, 10)
	rejected.Status = schema.RequestRejected
	fulfilled := riceRequest(10.01, 10.01, 20)
	fulfilled.Status = schema.RequestFulfilled

	requests := []schema.NecessityRequest{
		rejected,
		fulfilled,
		riceRequest(10.02, 10.02, 15),
	}

	clusters, err := ComputeClusters(requests)
	assert.NoError(t, err)
	assert.Empty(t, clusters)
}

func TestComputeClustersMultiItemRequest(t *testing.T) {
	multi := schema.NecessityRequest{
		ID: uuid.New(),
		Items: schema.RequestItems{
			{Name: "Rice", Quantity: 30, Unit: "kg"},
			{Name: "Maize", Quantity: 100, Unit: "kg"},
		},
		Urgency:  schema.UrgencyLow,
		Status:   schema.RequestPending,
		Location: schema.Location{Latitude: 10.005, Longitude: 10.005},
	}

	requests := []schema.NecessityRequest{
		riceRequest(10.00, 10.00, 10),
		riceRequest(10.01, 10.01, 20),
		multi,
	}

	clusters, err := ComputeClusters(requests)
	assert.NoError(t, err)
	// Maize has only one member, Rice has three with the multi-item
	// request contributing its rice quantity only
	assert.Len(t, clusters, 1)
	assert.Equal(t, "Rice", clusters[0].Item)
	assert.Equal(t, 60.0, clusters[0].TotalDemand)
}

func TestComputeClustersPriorityBySize(t *testing.T) {
	requests := []schema.NecessityRequest{
		riceRequest(10.00, 10.00, 1),
		riceRequest(10.01, 10.00, 1),
		riceRequest(10.02, 10.00, 1),
		riceRequest(10.03, 10.00, 1),
		riceRequest(10.04, 10.00, 1),
	}

	clusters, err := ComputeClusters(requests)
	assert.NoError(t, err)
	assert.Len(t, clusters, 1)
	assert.Equal(t, schema.ClusterPriorityHigh, clusters[0].Priority)
}

func TestComputeClustersPriorityByUrgency(t *testing.T) {
	urgent := riceRequest(10.00, 10.00, 1)
	urgent.Urgency = schema.UrgencyHigh

	requests := []schema.NecessityRequest{
		urgent,
		riceRequest(10.01, 10.00, 1),
		riceRequest(10.02, 10.00, 1),
	}

	clusters, err := ComputeClusters(requests)
	assert.NoError(t, err)
	assert.Len(t, clusters, 1)
	assert.Equal(t, schema.ClusterPriorityHigh, clusters[0].Priority)
}

func TestComputeClustersEmptyInput(t *testing.T) {
	clusters, err := ComputeClusters(nil)
	assert.NoError(t, err)
	assert.Empty(t, clusters)
}

func TestComputeClustersInvalidCoordinates(t *testing.T) {
	requests := []schema.NecessityRequest{
		riceRequest(95.0, 10.00, 10),
	}

	_, err := ComputeClusters(requests)
	assert.Equal(t, geo.ErrInvalidCoordinates, err)
}
