package partition

// ClusterID identifies a live cluster. Ids are allocated in increasing order
// and never reused once retired.
type ClusterID int

// NoCluster is the owner of a point that has not taken part in any merge.
const NoCluster ClusterID = -1

// Outcome reports which Union case applied.
type Outcome int

const (
	// Unchanged: both points already shared a cluster (or a == b).
	Unchanged Outcome = iota
	// Created: neither point had a cluster; a new one was allocated.
	Created
	// Extended: one unmerged point joined the other point's cluster.
	Extended
	// Merged: two different clusters were combined into one.
	Merged
)

// String returns the lower-case name of o.
func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Created:
		return "created"
	case Extended:
		return "extended"
	case Merged:
		return "merged"
	default:
		return "unknown"
	}
}
