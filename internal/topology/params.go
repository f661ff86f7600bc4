package topology

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate = validator.New()

// Default parameter values, matching the CLI defaults
const (
	DefaultServers           = 1000
	DefaultClusters          = 20
	DefaultWorkersPerCluster = 0
)

// Params are the immutable inputs of one assembly pass.
//
// GeneratedAt is injected rather than read from the clock so that tests can
// pin it: it feeds only the documentation text, which is the one permitted
// non-deterministic part of a generated document.
type Params struct {
	Servers           int       `validate:"min=1"`
	Clusters          int       `validate:"min=1"`
	WorkersPerCluster int       `validate:"min=0"`
	GeneratedAt       time.Time `validate:"-"`
}

// DefaultParams returns parameters matching the CLI defaults
func DefaultParams() Params {
	return Params{
		Servers:           DefaultServers,
		Clusters:          DefaultClusters,
		WorkersPerCluster: DefaultWorkersPerCluster,
	}
}

// TotalWorkers returns the total worker count across all clusters
func (p Params) TotalWorkers() int {
	return p.Clusters * p.WorkersPerCluster
}

// Validate checks parameter bounds and returns a descriptive error for the
// first violated bound
func (p Params) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return errors.New(boundMessage(verrs[0]))
	}
	return fmt.Errorf("validate parameters: %w", err)
}

// boundMessage maps a field error to the message the CLI prints
func boundMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Servers":
		return "servers must be >= 1"
	case "Clusters":
		return "k8s-clusters must be >= 1"
	case "WorkersPerCluster":
		return "k8s-workers-per-cluster must be >= 0"
	default:
		return fmt.Sprintf("%s: failed %s constraint", fe.Field(), fe.Tag())
	}
}
