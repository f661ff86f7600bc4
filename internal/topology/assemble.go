package topology

import (
	"fmt"

	"archigen/internal/domain"
)

// Display strings for the fixed part of the topology. The model is German
// throughout; the language tag on every text node comes from the domain layer.
const (
	modelName = "Beispiel: Großes Rechenzentrum (Server + Kubernetes) – generiert"

	locationName     = "Rechenzentrum DC1"
	portfolioName    = "Service-Portfolio (250 Services)"
	k8sServiceName   = "Containerplattform (Kubernetes)"
	coreNetworkName  = "Core Netzwerk"
	serverVLANName   = "VLAN 20 – Server"
	mgmtVLANName     = "VLAN 30 – Management"
	organizationName = "Technology"

	portfolioServiceCount = "250"
	workerTechnology      = "Linux Worker Node"
	clusterTechnology     = "Kubernetes"
)

// Assemble builds the complete model for the given parameters. It validates
// the parameters first and the finished model last; a failed model validation
// means a bug in this package, not bad input.
func Assemble(p Params) (*domain.Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	m := domain.NewModel(domain.ModelID, modelName)
	m.SetDocumentation(fmt.Sprintf(
		"Generiertes Beispielmodell mit %d Servern und %d Kubernetes-Clustern (Workers/Cluster=%d). Erzeugt am %s.",
		p.Servers, p.Clusters, p.WorkersPerCluster, p.GeneratedAt.Format("2006-01-02T15:04:05")))

	// Location and services
	m.AddElement(domain.NewElement(domain.LocationID, domain.ElementTypeLocation, locationName))

	portfolio := domain.NewElement(domain.ServicePortfolioID, domain.ElementTypeTechnologyService, portfolioName)
	portfolio.AddProperty(domain.PropertyDefCountID, portfolioServiceCount)
	m.AddElement(portfolio)

	m.AddElement(domain.NewElement(domain.ServiceK8sID, domain.ElementTypeTechnologyService, k8sServiceName))

	// Networks and VLANs
	m.AddElement(domain.NewElement(domain.NetworkCoreID, domain.ElementTypeCommunicationNetwork, coreNetworkName))
	m.AddElement(domain.NewElement(domain.VLANServerID, domain.ElementTypeCommunicationNetwork, serverVLANName))
	m.AddElement(domain.NewElement(domain.VLANMgmtID, domain.ElementTypeCommunicationNetwork, mgmtVLANName))

	m.AddRelationship(domain.NewRelationship(domain.RelLocationCoreID, domain.RelationshipTypeComposition, domain.LocationID, domain.NetworkCoreID))
	m.AddRelationship(domain.NewRelationship(domain.RelCoreVLANServerID, domain.RelationshipTypeAggregation, domain.NetworkCoreID, domain.VLANServerID))
	m.AddRelationship(domain.NewRelationship(domain.RelCoreVLANMgmtID, domain.RelationshipTypeAggregation, domain.NetworkCoreID, domain.VLANMgmtID))

	// Servers
	serverIDs := make([]string, 0, p.Servers)
	for i := 1; i <= p.Servers; i++ {
		sid := domain.ServerID(i)
		serverIDs = append(serverIDs, sid)

		srv := domain.NewElement(sid, domain.ElementTypeDevice, fmt.Sprintf("Server %04d", i))
		srv.AddProperty(domain.PropertyDefTechID, serverTechnology(i))
		m.AddElement(srv)

		m.AddRelationship(domain.NewRelationship(domain.ServerVLANRelID(i), domain.RelationshipTypeAssociation, sid, domain.VLANServerID))
		m.AddRelationship(domain.NewRelationship(domain.ServerPortfolioRelID(i), domain.RelationshipTypeRealization, sid, domain.ServicePortfolioID))
	}

	// Kubernetes clusters and optional workers
	clusterIDs := make([]string, 0, p.Clusters)
	workerIDs := make([]string, 0, p.TotalWorkers())
	for c := 1; c <= p.Clusters; c++ {
		cid := domain.ClusterID(c)
		clusterIDs = append(clusterIDs, cid)

		cluster := domain.NewElement(cid, domain.ElementTypeNode, fmt.Sprintf("Kubernetes Cluster %03d", c))
		cluster.AddProperty(domain.PropertyDefTechID, clusterTechnology)
		m.AddElement(cluster)

		m.AddRelationship(domain.NewRelationship(domain.ClusterRealizeRelID(c), domain.RelationshipTypeRealization, cid, domain.ServiceK8sID))
		m.AddRelationship(domain.NewRelationship(domain.ClusterCoreRelID(c), domain.RelationshipTypeAssociation, cid, domain.NetworkCoreID))

		for w := 1; w <= p.WorkersPerCluster; w++ {
			wid := domain.WorkerID(c, w)
			workerIDs = append(workerIDs, wid)

			worker := domain.NewElement(wid, domain.ElementTypeDevice, fmt.Sprintf("K8s Worker %03d-%03d", c, w))
			worker.AddProperty(domain.PropertyDefTechID, workerTechnology)
			m.AddElement(worker)

			m.AddRelationship(domain.NewRelationship(domain.WorkerClusterRelID(c, w), domain.RelationshipTypeAssociation, wid, cid))
			m.AddRelationship(domain.NewRelationship(domain.WorkerVLANRelID(c, w), domain.RelationshipTypeAssociation, wid, domain.VLANServerID))
		}
	}

	m.AddOrganization(buildOrganization(serverIDs, clusterIDs, workerIDs))
	m.PropertyDefinitions = domain.StandardPropertyDefinitions()

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("assembled model failed validation: %w", err)
	}
	return m, nil
}

// serverTechnology alternates the server OS label by index parity. This is a
// content-generation policy for realistic-looking models, not a schema
// requirement.
func serverTechnology(i int) string {
	if i%2 == 0 {
		return "x86_64, Linux"
	}
	return "x86_64, Windows"
}

// buildOrganization builds the single grouping folder referencing every
// element, in the fixed rendering order: backbone first, then servers,
// clusters, and workers in creation order.
func buildOrganization(serverIDs, clusterIDs, workerIDs []string) *domain.OrganizationItem {
	folder := domain.NewOrganizationFolder(organizationName)

	for _, id := range []string{
		domain.LocationID,
		domain.ServicePortfolioID,
		domain.ServiceK8sID,
		domain.NetworkCoreID,
		domain.VLANServerID,
		domain.VLANMgmtID,
	} {
		folder.AddReference(id)
	}
	for _, id := range serverIDs {
		folder.AddReference(id)
	}
	for _, id := range clusterIDs {
		folder.AddReference(id)
	}
	for _, id := range workerIDs {
		folder.AddReference(id)
	}

	return folder
}
