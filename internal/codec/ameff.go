package codec

import (
	"encoding/xml"
	"fmt"
	"io"

	"archigen/internal/domain"
)

// Namespaces holds the namespace bindings the document declares. They are
// explicit renderer configuration rather than process-wide registrations so
// two renderers with different bindings can coexist.
type Namespaces struct {
	ArchiMate string
	XSI       string
	DC        string
}

// DefaultNamespaces returns the bindings the Archi AMEFF importer expects
func DefaultNamespaces() Namespaces {
	return Namespaces{
		ArchiMate: "http://www.opengroup.org/xsd/archimate/3.0/",
		XSI:       "http://www.w3.org/2001/XMLSchema-instance",
		DC:        "http://purl.org/dc/elements/1.1/",
	}
}

// SchemaLocation returns the xsi:schemaLocation attribute value. Archi's
// importer examples commonly pair the model namespace with the Diagram XSD.
func (ns Namespaces) SchemaLocation() string {
	return fmt.Sprintf("%s %sarchimate3_Diagram.xsd %s http://dublincore.org/schemas/xmls/qdc/2008/02/11/dc.xsd",
		ns.ArchiMate, ns.ArchiMate, ns.DC)
}

// AMEFFCodec renders a model as an ArchiMate Model Exchange Format document.
//
// Compatibility rules for Archi's importer: the ArchiMate namespace is the
// default namespace so entity tags are unprefixed, xsi:type values are
// unprefixed ("Device", not "archimate:Device"), every localized text node
// carries xml:lang, and the top-level sections appear in the order name,
// documentation, elements, relationships, organizations, propertyDefinitions.
type AMEFFCodec struct {
	ns Namespaces
}

// NewAMEFFCodec creates an AMEFF codec with the default namespace bindings
func NewAMEFFCodec() *AMEFFCodec {
	return &AMEFFCodec{ns: DefaultNamespaces()}
}

// NewAMEFFCodecWithNamespaces creates an AMEFF codec with explicit bindings
func NewAMEFFCodecWithNamespaces(ns Namespaces) *AMEFFCodec {
	return &AMEFFCodec{ns: ns}
}

// Format returns the codec format identifier
func (c *AMEFFCodec) Format() string {
	return "ameff"
}

// Serialization structs. Attribute and child order follows struct field
// order, which is how the section-order contract is enforced. Names that
// contain a colon are written verbatim by encoding/xml, which is exactly what
// the unprefixed-default-namespace layout needs.

type ameffText struct {
	Lang  string `xml:"xml:lang,attr"`
	Value string `xml:",chardata"`
}

type ameffProperty struct {
	DefinitionRef string    `xml:"propertyDefinitionRef,attr"`
	Value         ameffText `xml:"value"`
}

type ameffProperties struct {
	Properties []ameffProperty `xml:"property"`
}

type ameffElement struct {
	Identifier string           `xml:"identifier,attr"`
	Type       string           `xml:"xsi:type,attr"`
	Name       ameffText        `xml:"name"`
	Properties *ameffProperties `xml:"properties"`
}

type ameffElements struct {
	Elements []ameffElement `xml:"element"`
}

type ameffRelationship struct {
	Identifier string     `xml:"identifier,attr"`
	Type       string     `xml:"xsi:type,attr"`
	Source     string     `xml:"source,attr"`
	Target     string     `xml:"target,attr"`
	Name       *ameffText `xml:"name"`
}

type ameffRelationships struct {
	Relationships []ameffRelationship `xml:"relationship"`
}

type ameffItem struct {
	IdentifierRef string      `xml:"identifierRef,attr,omitempty"`
	Label         *ameffText  `xml:"label"`
	Items         []ameffItem `xml:"item"`
}

type ameffOrganizations struct {
	Items []ameffItem `xml:"item"`
}

type ameffPropertyDefinition struct {
	Identifier string    `xml:"identifier,attr"`
	Type       string    `xml:"type,attr"`
	Name       ameffText `xml:"name"`
}

type ameffPropertyDefinitions struct {
	Definitions []ameffPropertyDefinition `xml:"propertyDefinition"`
}

type ameffModel struct {
	XMLName        xml.Name                 `xml:"model"`
	XMLNS          string                   `xml:"xmlns,attr"`
	XMLNSXSI       string                   `xml:"xmlns:xsi,attr"`
	XMLNSDC        string                   `xml:"xmlns:dc,attr"`
	Identifier     string                   `xml:"identifier,attr"`
	SchemaLocation string                   `xml:"xsi:schemaLocation,attr"`
	Name           ameffText                `xml:"name"`
	Documentation  ameffText                `xml:"documentation"`
	Elements       ameffElements            `xml:"elements"`
	Relationships  ameffRelationships       `xml:"relationships"`
	Organizations  ameffOrganizations       `xml:"organizations"`
	PropertyDefs   ameffPropertyDefinitions `xml:"propertyDefinitions"`
}

// Export renders the model as an indented UTF-8 XML document
func (c *AMEFFCodec) Export(model *domain.Model, w io.Writer) error {
	doc := c.buildDocument(model)

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write XML declaration: %w", err)
	}

	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode AMEFF document: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("flush AMEFF document: %w", err)
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write trailing newline: %w", err)
	}
	return nil
}

// buildDocument maps the domain model onto the serialization structs
func (c *AMEFFCodec) buildDocument(model *domain.Model) *ameffModel {
	doc := &ameffModel{
		XMLNS:          c.ns.ArchiMate,
		XMLNSXSI:       c.ns.XSI,
		XMLNSDC:        c.ns.DC,
		Identifier:     model.ID,
		SchemaLocation: c.ns.SchemaLocation(),
		Name:           text(model.Name),
		Documentation:  text(model.Documentation),
	}

	doc.Elements.Elements = make([]ameffElement, 0, len(model.Elements))
	for _, el := range model.Elements {
		entry := ameffElement{
			Identifier: el.ID,
			Type:       string(el.Type),
			Name:       text(el.Name),
		}
		if len(el.Properties) > 0 {
			props := &ameffProperties{Properties: make([]ameffProperty, 0, len(el.Properties))}
			for _, p := range el.Properties {
				props.Properties = append(props.Properties, ameffProperty{
					DefinitionRef: p.DefinitionRef,
					Value:         text(p.Value),
				})
			}
			entry.Properties = props
		}
		doc.Elements.Elements = append(doc.Elements.Elements, entry)
	}

	doc.Relationships.Relationships = make([]ameffRelationship, 0, len(model.Relationships))
	for _, rel := range model.Relationships {
		entry := ameffRelationship{
			Identifier: rel.ID,
			Type:       string(rel.Type),
			Source:     rel.SourceID,
			Target:     rel.TargetID,
		}
		if rel.Name != nil {
			name := text(*rel.Name)
			entry.Name = &name
		}
		doc.Relationships.Relationships = append(doc.Relationships.Relationships, entry)
	}

	doc.Organizations.Items = make([]ameffItem, 0, len(model.Organizations))
	for _, org := range model.Organizations {
		doc.Organizations.Items = append(doc.Organizations.Items, organizationItem(org))
	}

	doc.PropertyDefs.Definitions = make([]ameffPropertyDefinition, 0, len(model.PropertyDefinitions))
	for _, def := range model.PropertyDefinitions {
		doc.PropertyDefs.Definitions = append(doc.PropertyDefs.Definitions, ameffPropertyDefinition{
			Identifier: def.ID,
			Type:       def.ValueType,
			Name:       text(def.Name),
		})
	}

	return doc
}

// organizationItem converts one organization node, recursing into children
func organizationItem(item *domain.OrganizationItem) ameffItem {
	entry := ameffItem{IdentifierRef: item.IdentifierRef}
	if item.Label != nil {
		label := text(*item.Label)
		entry.Label = &label
	}
	for i := range item.Items {
		entry.Items = append(entry.Items, organizationItem(&item.Items[i]))
	}
	return entry
}

func text(ls domain.LangString) ameffText {
	return ameffText{Lang: ls.Lang, Value: ls.Value}
}
