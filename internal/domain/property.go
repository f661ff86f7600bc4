package domain

// PropertyValueType is the value type declared on property definitions.
// The target schema types all generated properties as strings; even the
// numeric service count is rendered as the localized string "250".
const PropertyValueType = "string"

// Property is a localized key-value annotation attached to an element.
// The key is declared once as a PropertyDefinition and referenced by ID.
type Property struct {
	DefinitionRef string     `json:"definition_ref"`
	Value         LangString `json:"value"`
}

// PropertyDefinition declares a property kind used anywhere in the document
type PropertyDefinition struct {
	ID        string     `json:"id"`
	ValueType string     `json:"value_type"`
	Name      LangString `json:"name"`
}

// NewPropertyDefinition creates a string-typed property definition
func NewPropertyDefinition(id, name string) PropertyDefinition {
	return PropertyDefinition{
		ID:        id,
		ValueType: PropertyValueType,
		Name:      Localized(name),
	}
}

// StandardPropertyDefinitions returns the two property kinds every generated
// document declares: a numeric count and a free-text technology label.
func StandardPropertyDefinitions() []PropertyDefinition {
	return []PropertyDefinition{
		NewPropertyDefinition(PropertyDefCountID, "count"),
		NewPropertyDefinition(PropertyDefTechID, "technology"),
	}
}
