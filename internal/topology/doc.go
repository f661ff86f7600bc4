// Package topology assembles the datacenter model from numeric parameters.
//
// Assemble is a pure, single-pass function of three integers (server count,
// cluster count, workers per cluster) plus an injected generation timestamp.
// The timestamp only influences the documentation text; everything else,
// identifiers included, is byte-identical across runs with equal parameters.
//
// The fixed shape is: one location containing a core network that aggregates
// a server VLAN and a management VLAN; two technology services (a service
// portfolio and a Kubernetes container platform); N server devices attached
// to the server VLAN and realizing the portfolio; M cluster nodes realizing
// the container platform and associated with the core network; and optionally
// K worker devices per cluster attached to their cluster and the server VLAN.
//
// Elements are always created before any relationship that references them,
// which is what makes the assembled model pass domain.Model.Validate by
// construction.
package topology
