package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"archigen/internal/repository"
)

// Catalog implements repository.Catalog using SQLite
type Catalog struct {
	db *sql.DB
}

// New creates a new SQLite catalog, migrating the schema if needed
func New(dbPath string) (*Catalog, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	cat := &Catalog{db: db}
	if err := cat.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return cat, nil
}

func (c *Catalog) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		generated_at DATETIME NOT NULL,
		servers INTEGER NOT NULL,
		clusters INTEGER NOT NULL,
		workers_per_cluster INTEGER NOT NULL,
		output_path TEXT NOT NULL,
		format TEXT NOT NULL,
		elements INTEGER NOT NULL,
		relationships INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_generated_at ON runs(generated_at);
	`

	_, err := c.db.Exec(schema)
	return err
}

// RecordRun persists one run, assigning a UUID if none is set
func (c *Catalog) RecordRun(ctx context.Context, run *repository.Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO runs (id, generated_at, servers, clusters, workers_per_cluster,
			output_path, format, elements, relationships)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.GeneratedAt.UTC().Format(time.RFC3339), run.Servers, run.Clusters,
		run.WorkersPerCluster, run.OutputPath, run.Format, run.Elements, run.Relationships)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	return nil
}

// ListRuns returns the most recent runs, newest first
func (c *Catalog) ListRuns(ctx context.Context, limit int) ([]*repository.Run, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, generated_at, servers, clusters, workers_per_cluster,
			output_path, format, elements, relationships
		FROM runs
		ORDER BY generated_at DESC, created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []*repository.Run
	for rows.Next() {
		var (
			run         repository.Run
			generatedAt string
		)
		if err := rows.Scan(&run.ID, &generatedAt, &run.Servers, &run.Clusters,
			&run.WorkersPerCluster, &run.OutputPath, &run.Format,
			&run.Elements, &run.Relationships); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.GeneratedAt, err = time.Parse(time.RFC3339, generatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse run timestamp: %w", err)
		}
		runs = append(runs, &run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return runs, nil
}

// Close releases the database handle
func (c *Catalog) Close() error {
	return c.db.Close()
}
