package domain

// RelationshipType is the closed set of relationship type tags.
// Like element types, values are rendered as unprefixed xsi:type attributes.
type RelationshipType string

const (
	RelationshipTypeComposition RelationshipType = "Composition"
	RelationshipTypeAggregation RelationshipType = "Aggregation"
	RelationshipTypeAssociation RelationshipType = "Association"
	RelationshipTypeRealization RelationshipType = "Realization"
)

// Relationship represents a typed directed edge between two elements
type Relationship struct {
	ID       string           `json:"id"`
	Type     RelationshipType `json:"type"`
	SourceID string           `json:"source_id"`
	TargetID string           `json:"target_id"`
	Name     *LangString      `json:"name,omitempty"`
}

// NewRelationship creates a new relationship between two element identifiers.
// The endpoints must already exist in the model; the assembler guarantees this
// by creating every element before any edge that touches it.
func NewRelationship(id string, relType RelationshipType, sourceID, targetID string) *Relationship {
	return &Relationship{
		ID:       id,
		Type:     relType,
		SourceID: sourceID,
		TargetID: targetID,
	}
}

// SetName attaches an optional localized display name
func (r *Relationship) SetName(name string) {
	ls := Localized(name)
	r.Name = &ls
}
