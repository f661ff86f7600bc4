package codec

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archigen/internal/domain"
	"archigen/internal/topology"
)

func renderedModel(t *testing.T, servers, clusters, workers int) string {
	t.Helper()

	m, err := topology.Assemble(topology.Params{
		Servers:           servers,
		Clusters:          clusters,
		WorkersPerCluster: workers,
		GeneratedAt:       time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewAMEFFCodec().Export(m, &buf))
	return buf.String()
}

func TestAMEFFDeclarationAndNamespaces(t *testing.T) {
	out := renderedModel(t, 1, 1, 0)

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `xmlns="http://www.opengroup.org/xsd/archimate/3.0/"`)
	assert.Contains(t, out, `xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"`)
	assert.Contains(t, out, `xmlns:dc="http://purl.org/dc/elements/1.1/"`)
	assert.Contains(t, out, `xsi:schemaLocation="http://www.opengroup.org/xsd/archimate/3.0/ http://www.opengroup.org/xsd/archimate/3.0/archimate3_Diagram.xsd http://purl.org/dc/elements/1.1/ http://dublincore.org/schemas/xmls/qdc/2008/02/11/dc.xsd"`)
	assert.Contains(t, out, `identifier="id-model-dc-large"`)
}

func TestAMEFFTypeTagsAreUnprefixed(t *testing.T) {
	out := renderedModel(t, 2, 1, 1)

	for _, tag := range []string{
		`xsi:type="Location"`,
		`xsi:type="TechnologyService"`,
		`xsi:type="CommunicationNetwork"`,
		`xsi:type="Device"`,
		`xsi:type="Node"`,
		`xsi:type="Composition"`,
		`xsi:type="Aggregation"`,
		`xsi:type="Association"`,
		`xsi:type="Realization"`,
	} {
		assert.Contains(t, out, tag)
	}
	assert.NotContains(t, out, `xsi:type="archimate:`)
}

func TestAMEFFSectionOrder(t *testing.T) {
	out := renderedModel(t, 1, 1, 0)

	indexes := []int{
		strings.Index(out, "<name "),
		strings.Index(out, "<documentation "),
		strings.Index(out, "<elements>"),
		strings.Index(out, "<relationships>"),
		strings.Index(out, "<organizations>"),
		strings.Index(out, "<propertyDefinitions>"),
	}
	for i, idx := range indexes {
		require.GreaterOrEqual(t, idx, 0, "section %d missing", i)
		if i > 0 {
			assert.Greater(t, idx, indexes[i-1], "section %d out of order", i)
		}
	}
}

func TestAMEFFLocalizedText(t *testing.T) {
	out := renderedModel(t, 1, 1, 0)

	assert.Contains(t, out, `<name xml:lang="de">`)
	assert.Contains(t, out, `<documentation xml:lang="de">`)
	assert.Contains(t, out, `<value xml:lang="de">250</value>`)
	assert.Contains(t, out, `<label xml:lang="de">Technology</label>`)
	// Every text-bearing tag is language-tagged; a bare <name> would slip
	// past the importer's schema but violate the localization contract.
	assert.NotContains(t, out, "<name>")
	assert.NotContains(t, out, "<value>")
	assert.NotContains(t, out, "<label>")
}

func TestAMEFFIdentifierShapes(t *testing.T) {
	out := renderedModel(t, 2, 2, 1)

	for _, id := range []string{
		`identifier="id-loc-dc1"`,
		`identifier="id-techsvc-portfolio"`,
		`identifier="id-techsvc-k8s"`,
		`identifier="id-net-core"`,
		`identifier="id-vlan20-server"`,
		`identifier="id-vlan30-mgmt"`,
		`identifier="id-dev-srv-0001"`,
		`identifier="id-dev-srv-0002"`,
		`identifier="id-node-k8s-cluster-001"`,
		`identifier="id-dev-k8s-worker-002-001"`,
		`identifier="pd-count"`,
		`identifier="pd-tech"`,
		`identifier="r-loc-contains-core"`,
		`identifier="r-core-agg-vlan20"`,
		`identifier="r-srv-0001-vlan"`,
		`identifier="r-k8s-001-realize"`,
		`identifier="r-wk-002-001-cluster"`,
	} {
		assert.Contains(t, out, id)
	}
}

func TestAMEFFPropertiesAndOrganization(t *testing.T) {
	out := renderedModel(t, 1, 1, 0)

	assert.Contains(t, out, `<property propertyDefinitionRef="pd-count">`)
	assert.Contains(t, out, `<property propertyDefinitionRef="pd-tech">`)
	assert.Contains(t, out, `<propertyDefinition identifier="pd-count" type="string">`)
	assert.Contains(t, out, `<propertyDefinition identifier="pd-tech" type="string">`)
	assert.Contains(t, out, `identifierRef="id-dev-srv-0001"`)
	assert.Contains(t, out, `identifierRef="id-node-k8s-cluster-001"`)
}

func TestAMEFFRenderIsDeterministic(t *testing.T) {
	a := renderedModel(t, 3, 2, 1)
	b := renderedModel(t, 3, 2, 1)
	assert.Equal(t, a, b)
}

func TestAMEFFWorkerlessDocument(t *testing.T) {
	out := renderedModel(t, 2, 2, 0)

	assert.NotContains(t, out, "k8s-worker")
	assert.NotContains(t, out, "r-wk-")
	assert.Contains(t, out, `identifier="id-node-k8s-cluster-002"`)
}

func TestAMEFFRelationshipEndpoints(t *testing.T) {
	out := renderedModel(t, 1, 1, 1)

	assert.Contains(t, out, `source="id-loc-dc1" target="id-net-core"`)
	assert.Contains(t, out, `source="id-dev-srv-0001" target="id-vlan20-server"`)
	assert.Contains(t, out, `source="id-dev-k8s-worker-001-001" target="id-node-k8s-cluster-001"`)
}

func TestAMEFFExplicitNamespaces(t *testing.T) {
	ns := Namespaces{ArchiMate: "urn:a/", XSI: "urn:b", DC: "urn:c"}
	c := NewAMEFFCodecWithNamespaces(ns)

	m := domain.NewModel("id-m", "Modell")
	m.SetDocumentation("Doku")
	m.AddElement(domain.NewElement("id-a", domain.ElementTypeLocation, "A"))
	folder := domain.NewOrganizationFolder("Technology")
	folder.AddReference("id-a")
	m.AddOrganization(folder)
	m.PropertyDefinitions = domain.StandardPropertyDefinitions()
	require.NoError(t, m.Validate())

	var buf bytes.Buffer
	require.NoError(t, c.Export(m, &buf))

	assert.Contains(t, buf.String(), `xmlns="urn:a/"`)
	assert.Contains(t, buf.String(), `xmlns:xsi="urn:b"`)
	assert.Contains(t, buf.String(), `xsi:schemaLocation="urn:a/ urn:a/archimate3_Diagram.xsd urn:c`)
}
