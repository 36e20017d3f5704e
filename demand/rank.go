package demand

import (
	"sort"

	"github.com/anjith1/harvest-demand-link/geo"
	"github.com/anjith1/harvest-demand-link/schema"
)

// RankedRequest is a request together with its distance from the origin
// the ranking was computed for.
type RankedRequest struct {
	Request    schema.NecessityRequest `json:"request"`
	DistanceKm float64                 `json:"distance_km"`
}

// RankByDistance orders requests by great-circle distance from origin,
// closest first. Ties are broken by creation time, newest first, so the
// ordering is stable across calls regardless of input order.
func RankByDistance(requests []schema.NecessityRequest, origin schema.Location) ([]RankedRequest, error) {
	if err := geo.Validate(origin); err != nil {
		return nil, err
	}

	ranked := make([]RankedRequest, 0, len(requests))
	for _, r := range requests {
		if err := geo.Validate(r.Location); err != nil {
			return nil, err
		}
		ranked = append(ranked, RankedRequest{
			Request:    r,
			DistanceKm: geo.Distance(origin, r.Location),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].DistanceKm != ranked[j].DistanceKm {
			return ranked[i].DistanceKm < ranked[j].DistanceKm
		}
		return ranked[i].Request.CreatedAt.After(ranked[j].Request.CreatedAt)
	})

	return ranked, nil
}
