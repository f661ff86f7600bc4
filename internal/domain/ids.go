package domain

import "fmt"

// Index widths for zero-padded identifiers. These are fixed so regeneration
// with identical parameters yields byte-identical identifiers, and they are
// declared once so the allocator and validators cannot drift apart.
const (
	ServerIndexWidth  = 4
	ClusterIndexWidth = 3
	WorkerIndexWidth  = 3
)

// Fixed element identifiers. Exactly one of each exists per document.
const (
	ModelID            = "id-model-dc-large"
	LocationID         = "id-loc-dc1"
	ServicePortfolioID = "id-techsvc-portfolio"
	ServiceK8sID       = "id-techsvc-k8s"
	NetworkCoreID      = "id-net-core"
	VLANServerID       = "id-vlan20-server"
	VLANMgmtID         = "id-vlan30-mgmt"
)

// Fixed property definition identifiers
const (
	PropertyDefCountID = "pd-count"
	PropertyDefTechID  = "pd-tech"
)

// Fixed relationship identifiers for the network backbone.
// Relationship identifiers use the r- prefix, a namespace disjoint from the
// id- element namespace.
const (
	RelLocationCoreID   = "r-loc-contains-core"
	RelCoreVLANServerID = "r-core-agg-vlan20"
	RelCoreVLANMgmtID   = "r-core-agg-vlan30"
)

// ServerID returns the identifier for server i (1-based)
func ServerID(i int) string {
	return fmt.Sprintf("id-dev-srv-%0*d", ServerIndexWidth, i)
}

// ClusterID returns the identifier for Kubernetes cluster c (1-based)
func ClusterID(c int) string {
	return fmt.Sprintf("id-node-k8s-cluster-%0*d", ClusterIndexWidth, c)
}

// WorkerID returns the identifier for worker w of cluster c (both 1-based)
func WorkerID(c, w int) string {
	return fmt.Sprintf("id-dev-k8s-worker-%0*d-%0*d", ClusterIndexWidth, c, WorkerIndexWidth, w)
}

// ServerVLANRelID returns the identifier of the server-to-VLAN association
func ServerVLANRelID(i int) string {
	return fmt.Sprintf("r-srv-%0*d-vlan", ServerIndexWidth, i)
}

// ServerPortfolioRelID returns the identifier of the server-to-portfolio realization
func ServerPortfolioRelID(i int) string {
	return fmt.Sprintf("r-srv-%0*d-portfolio", ServerIndexWidth, i)
}

// ClusterRealizeRelID returns the identifier of the cluster-to-platform realization
func ClusterRealizeRelID(c int) string {
	return fmt.Sprintf("r-k8s-%0*d-realize", ClusterIndexWidth, c)
}

// ClusterCoreRelID returns the identifier of the cluster-to-core association
func ClusterCoreRelID(c int) string {
	return fmt.Sprintf("r-k8s-%0*d-core", ClusterIndexWidth, c)
}

// WorkerClusterRelID returns the identifier of the worker-to-cluster association
func WorkerClusterRelID(c, w int) string {
	return fmt.Sprintf("r-wk-%0*d-%0*d-cluster", ClusterIndexWidth, c, WorkerIndexWidth, w)
}

// WorkerVLANRelID returns the identifier of the worker-to-VLAN association
func WorkerVLANRelID(c, w int) string {
	return fmt.Sprintf("r-wk-%0*d-%0*d-vlan", ClusterIndexWidth, c, WorkerIndexWidth, w)
}
