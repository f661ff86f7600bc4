package codec

import (
	"fmt"
	"io"

	"archigen/internal/domain"
)

// Exporter serializes an assembled model to an output format
type Exporter interface {
	Export(model *domain.Model, w io.Writer) error
	Format() string
}

// ForFormat returns the exporter for a format identifier
func ForFormat(format string) (Exporter, error) {
	switch format {
	case "ameff":
		return NewAMEFFCodec(), nil
	case "json":
		return NewJSONCodec(), nil
	case "yaml":
		return NewYAMLCodec(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %q", format)
	}
}
