package domain

import (
	"errors"
	"fmt"
)

// Validation errors. These indicate a bug in the assembler, not bad user
// input: the fixed assembly algorithm cannot produce them, so any detection
// must fail fast instead of emitting a malformed document.
var (
	ErrDuplicateIdentifier  = errors.New("duplicate identifier")
	ErrDanglingReference    = errors.New("dangling reference")
	ErrUnknownPropertyDef   = errors.New("unknown property definition")
	ErrOrganizationCoverage = errors.New("organization tree coverage mismatch")
	ErrIdentifierNamespaces = errors.New("element and relationship identifier namespaces overlap")
)

// Validate checks the model's referential integrity:
//
//   - element identifiers are pairwise distinct
//   - relationship identifiers are pairwise distinct and disjoint from
//     element identifiers
//   - every relationship endpoint resolves to an element
//   - every property's definition reference resolves to a declared
//     property definition
//   - the organization tree references every element exactly once and
//     references nothing else
func (m *Model) Validate() error {
	elementIDs := make(map[string]bool, len(m.Elements))
	for _, el := range m.Elements {
		if elementIDs[el.ID] {
			return fmt.Errorf("%w: element %q", ErrDuplicateIdentifier, el.ID)
		}
		elementIDs[el.ID] = true
	}

	relationshipIDs := make(map[string]bool, len(m.Relationships))
	for _, rel := range m.Relationships {
		if relationshipIDs[rel.ID] {
			return fmt.Errorf("%w: relationship %q", ErrDuplicateIdentifier, rel.ID)
		}
		relationshipIDs[rel.ID] = true
		if elementIDs[rel.ID] {
			return fmt.Errorf("%w: %q", ErrIdentifierNamespaces, rel.ID)
		}
		if !elementIDs[rel.SourceID] {
			return fmt.Errorf("%w: relationship %q source %q", ErrDanglingReference, rel.ID, rel.SourceID)
		}
		if !elementIDs[rel.TargetID] {
			return fmt.Errorf("%w: relationship %q target %q", ErrDanglingReference, rel.ID, rel.TargetID)
		}
	}

	definitionIDs := make(map[string]bool, len(m.PropertyDefinitions))
	for _, def := range m.PropertyDefinitions {
		if definitionIDs[def.ID] {
			return fmt.Errorf("%w: property definition %q", ErrDuplicateIdentifier, def.ID)
		}
		definitionIDs[def.ID] = true
	}
	for _, el := range m.Elements {
		for _, prop := range el.Properties {
			if !definitionIDs[prop.DefinitionRef] {
				return fmt.Errorf("%w: element %q references %q", ErrUnknownPropertyDef, el.ID, prop.DefinitionRef)
			}
		}
	}

	seen := make(map[string]int, len(elementIDs))
	for _, org := range m.Organizations {
		for _, ref := range org.References() {
			if !elementIDs[ref] {
				return fmt.Errorf("%w: organization item references %q", ErrDanglingReference, ref)
			}
			seen[ref]++
		}
	}
	for id, count := range seen {
		if count > 1 {
			return fmt.Errorf("%w: element %q referenced %d times", ErrOrganizationCoverage, id, count)
		}
	}
	for id := range elementIDs {
		if seen[id] == 0 {
			return fmt.Errorf("%w: element %q missing from tree", ErrOrganizationCoverage, id)
		}
	}

	return nil
}
