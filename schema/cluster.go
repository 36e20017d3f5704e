package schema

type ClusterPriority string

const (
	ClusterPriorityHigh   ClusterPriority = "high"
	ClusterPriorityMedium ClusterPriority = "medium"
)

// Cluster is a derived view of connected same-item demand. It is computed
// on the fly from active requests and never persisted.
type Cluster struct {
	Item             string          `json:"item"`
	Center           Location        `json:"center"`
	MemberRequestIDs []string        `json:"member_request_ids"`
	MemberCount      int             `json:"member_count"`
	TotalDemand      float64         `json:"total_demand"`
	Priority         ClusterPriority `json:"priority"`
}
