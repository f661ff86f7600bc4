package domain

// Model is the root aggregate of one generated document. It is constructed in
// a single pass by the assembler and never mutated after assembly completes.
type Model struct {
	ID                  string               `json:"id"`
	Name                LangString           `json:"name"`
	Documentation       LangString           `json:"documentation"`
	Elements            []*Element           `json:"elements"`
	Relationships       []*Relationship      `json:"relationships"`
	Organizations       []*OrganizationItem  `json:"organizations"`
	PropertyDefinitions []PropertyDefinition `json:"property_definitions"`
}

// NewModel creates an empty model with a localized name
func NewModel(id, name string) *Model {
	return &Model{
		ID:   id,
		Name: Localized(name),
	}
}

// SetDocumentation sets the localized documentation text
func (m *Model) SetDocumentation(text string) {
	m.Documentation = Localized(text)
}

// AddElement registers an element. Insertion order is preserved verbatim in
// the rendered output.
func (m *Model) AddElement(el *Element) {
	m.Elements = append(m.Elements, el)
}

// AddRelationship registers a relationship in insertion order
func (m *Model) AddRelationship(rel *Relationship) {
	m.Relationships = append(m.Relationships, rel)
}

// AddOrganization appends a top-level organization folder
func (m *Model) AddOrganization(item *OrganizationItem) {
	m.Organizations = append(m.Organizations, item)
}

// ElementCount returns the number of elements of the given type
func (m *Model) ElementCount(elementType ElementType) int {
	count := 0
	for _, el := range m.Elements {
		if el.Type == elementType {
			count++
		}
	}
	return count
}
