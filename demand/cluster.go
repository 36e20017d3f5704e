package demand

import (
	"sort"

	"github.com/anjith1/harvest-demand-link/geo"
	"github.com/anjith1/harvest-demand-link/schema"
)

const (
	// ClusterRadiusKm is the maximum great-circle distance between two
	// requests for them to count as neighbors of the same cluster.
	ClusterRadiusKm = 10.0

	// MinClusterMembers is the smallest connected component that qualifies
	// as a cluster.
	MinClusterMembers = 3

	// HighPriorityMembers is the component size at which a cluster is
	// flagged high priority regardless of member urgency.
	HighPriorityMembers = 5
)

type member struct {
	request  *schema.NecessityRequest
	quantity float64
}

// ComputeClusters groups active requests into per-item geographic clusters.
// Two same-item requests belong to the same cluster when they are connected
// through a chain of neighbors within ClusterRadiusKm of each other, so the
// result does not depend on input order. Rejected and fulfilled requests
// carry no outstanding demand and are skipped. A request listing several
// items contributes the item-specific quantity to each item's partition.
//
// The pairwise distance checks are O(n^2) per item partition, which is fine
// for the volumes we see. Bucket by geohash before comparing if that ever
// changes.
func ComputeClusters(requests []schema.NecessityRequest) ([]schema.Cluster, error) {
	partitions := map[string][]member{}

	for i := range requests {
		r := &requests[i]
		switch r.Status {
		case schema.RequestRejected, schema.RequestFulfilled:
			continue
		}

		if err := geo.Validate(r.Location); err != nil {
			return nil, err
		}

		for _, item := range r.Items {
			partitions[item.Name] = append(partitions[item.Name], member{
				request:  r,
				quantity: item.Quantity,
			})
		}
	}

	clusters := make([]schema.Cluster, 0)
	for item, members := range partitions {
		clusters = append(clusters, clusterPartition(item, members)...)
	}

	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].Item != clusters[j].Item {
			return clusters[i].Item < clusters[j].Item
		}
		return clusters[i].TotalDemand > clusters[j].TotalDemand
	})

	return clusters, nil
}

// clusterPartition finds the connected components of one item partition
// with union-find and keeps the ones large enough to qualify.
func clusterPartition(item string, members []member) []schema.Cluster {
	parent := make([]int, len(members))
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	union := func(i, j int) {
		ri, rj := find(i), find(j)
		if ri != rj {
			parent[ri] = rj
		}
	}

	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			if geo.Distance(members[i].request.Location, members[j].request.Location) <= ClusterRadiusKm {
				union(i, j)
			}
		}
	}

	components := map[int][]member{}
	for i := range members {
		root := find(i)
		components[root] = append(components[root], members[i])
	}

	clusters := make([]schema.Cluster, 0)
	for _, component := range components {
		if len(component) < MinClusterMembers {
			continue
		}
		clusters = append(clusters, buildCluster(item, component))
	}

	return clusters
}

func buildCluster(item string, component []member) schema.Cluster {
	var latSum, lngSum, totalDemand float64
	urgent := false
	ids := make([]string, 0, len(component))

	for _, m := range component {
		latSum += m.request.Location.Latitude
		lngSum += m.request.Location.Longitude
		totalDemand += m.quantity
		if m.request.Urgency == schema.UrgencyHigh {
			urgent = true
		}
		ids = append(ids, m.request.ID.String())
	}
	sort.Strings(ids)

	priority := schema.ClusterPriorityMedium
	if len(component) >= HighPriorityMembers || urgent {
		priority = schema.ClusterPriorityHigh
	}

	return schema.Cluster{
		Item: item,
		Center: schema.Location{
			Latitude:  latSum / float64(len(component)),
			Longitude: lngSum / float64(len(component)),
		},
		MemberRequestIDs: ids,
		MemberCount:      len(component),
		TotalDemand:      totalDemand,
		Priority:         priority,
	}
}
