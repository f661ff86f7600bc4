package repository

import (
	"context"
	"time"
)

// Run records one completed generation run
type Run struct {
	ID                string    `json:"id"`
	GeneratedAt       time.Time `json:"generated_at"`
	Servers           int       `json:"servers"`
	Clusters          int       `json:"clusters"`
	WorkersPerCluster int       `json:"workers_per_cluster"`
	OutputPath        string    `json:"output_path"`
	Format            string    `json:"format"`
	Elements          int       `json:"elements"`
	Relationships     int       `json:"relationships"`
}

// Catalog defines the data access interface for the run history
type Catalog interface {
	// RecordRun persists one run, assigning an ID if none is set
	RecordRun(ctx context.Context, run *Run) error

	// ListRuns returns the most recent runs, newest first
	ListRuns(ctx context.Context, limit int) ([]*Run, error)

	// Close releases resources
	Close() error
}
