package domain

// OrganizationItem is a node in the organization tree. An item is either a
// grouping folder (label set, children nested) or a leaf reference to an
// element identifier. The tree is navigation-only and carries no graph
// semantics, but its ordering is part of the rendering contract.
type OrganizationItem struct {
	Label         *LangString        `json:"label,omitempty"`
	IdentifierRef string             `json:"identifier_ref,omitempty"`
	Items         []OrganizationItem `json:"items,omitempty"`
}

// NewOrganizationFolder creates a grouping item with a localized label
func NewOrganizationFolder(label string) *OrganizationItem {
	ls := Localized(label)
	return &OrganizationItem{Label: &ls}
}

// AddReference appends a leaf reference to an element identifier
func (o *OrganizationItem) AddReference(identifierRef string) {
	o.Items = append(o.Items, OrganizationItem{IdentifierRef: identifierRef})
}

// References returns all leaf identifier references in document order
func (o *OrganizationItem) References() []string {
	var refs []string
	if o.IdentifierRef != "" {
		refs = append(refs, o.IdentifierRef)
	}
	for i := range o.Items {
		refs = append(refs, o.Items[i].References()...)
	}
	return refs
}
