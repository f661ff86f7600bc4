package domain

// ElementType is the closed set of element type tags used in the document.
// Values are rendered verbatim as unprefixed xsi:type attributes; the Archi
// importer rejects prefixed forms like "archimate:Device".
type ElementType string

const (
	ElementTypeLocation             ElementType = "Location"
	ElementTypeTechnologyService    ElementType = "TechnologyService"
	ElementTypeCommunicationNetwork ElementType = "CommunicationNetwork"
	ElementTypeDevice               ElementType = "Device"
	ElementTypeNode                 ElementType = "Node"
)

// Element represents a typed node in the topology graph
type Element struct {
	ID         string      `json:"id"`
	Type       ElementType `json:"type"`
	Name       LangString  `json:"name"`
	Properties []Property  `json:"properties,omitempty"`
}

// NewElement creates a new element with a localized display name
func NewElement(id string, elementType ElementType, name string) *Element {
	return &Element{
		ID:   id,
		Type: elementType,
		Name: Localized(name),
	}
}

// AddProperty appends one property referencing a property definition.
// Multiple calls append in call order; there is no dedup or overwrite.
func (e *Element) AddProperty(definitionRef, value string) {
	e.Properties = append(e.Properties, Property{
		DefinitionRef: definitionRef,
		Value:         Localized(value),
	})
}
