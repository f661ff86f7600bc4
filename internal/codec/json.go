package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"archigen/internal/domain"
)

// JSONCodec exports the raw model structure as JSON, mainly for debugging
// and for tools that want the graph without parsing XML
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// Export exports the model to indented JSON
func (c *JSONCodec) Export(model *domain.Model, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(model); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
