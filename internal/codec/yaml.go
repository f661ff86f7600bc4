package codec

import (
	"fmt"
	"io"

	"archigen/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec exports a flattened inventory view of the model, convenient for
// eyeballing large generated topologies without an ArchiMate tool
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// yamlInventory represents the YAML structure for the flattened model
type yamlInventory struct {
	Model         yamlModelMeta      `yaml:"model"`
	Elements      []yamlElement      `yaml:"elements"`
	Relationships []yamlRelationship `yaml:"relationships"`
}

type yamlModelMeta struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	Documentation string `yaml:"documentation,omitempty"`
}

type yamlElement struct {
	ID         string            `yaml:"id"`
	Type       string            `yaml:"type"`
	Name       string            `yaml:"name"`
	Properties map[string]string `yaml:"properties,omitempty"`
}

type yamlRelationship struct {
	ID     string `yaml:"id"`
	Type   string `yaml:"type"`
	Source string `yaml:"source"`
	Target string `yaml:"target"`
	Name   string `yaml:"name,omitempty"`
}

// Export exports the model as a YAML inventory
func (c *YAMLCodec) Export(model *domain.Model, w io.Writer) error {
	inv := yamlInventory{
		Model: yamlModelMeta{
			ID:            model.ID,
			Name:          model.Name.Value,
			Documentation: model.Documentation.Value,
		},
		Elements:      make([]yamlElement, 0, len(model.Elements)),
		Relationships: make([]yamlRelationship, 0, len(model.Relationships)),
	}

	for _, el := range model.Elements {
		entry := yamlElement{
			ID:   el.ID,
			Type: string(el.Type),
			Name: el.Name.Value,
		}
		if len(el.Properties) > 0 {
			entry.Properties = make(map[string]string, len(el.Properties))
			for _, p := range el.Properties {
				entry.Properties[p.DefinitionRef] = p.Value.Value
			}
		}
		inv.Elements = append(inv.Elements, entry)
	}

	for _, rel := range model.Relationships {
		entry := yamlRelationship{
			ID:     rel.ID,
			Type:   string(rel.Type),
			Source: rel.SourceID,
			Target: rel.TargetID,
		}
		if rel.Name != nil {
			entry.Name = rel.Name.Value
		}
		inv.Relationships = append(inv.Relationships, entry)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(&inv); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
