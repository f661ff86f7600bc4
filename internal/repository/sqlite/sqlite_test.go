package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archigen/internal/repository"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := New(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { cat.Close() })
	return cat
}

func testRun(generatedAt time.Time) *repository.Run {
	return &repository.Run{
		GeneratedAt:       generatedAt,
		Servers:           10,
		Clusters:          2,
		WorkersPerCluster: 1,
		OutputPath:        "out.xml",
		Format:            "ameff",
		Elements:          20,
		Relationships:     29,
	}
}

func TestRecordRunAssignsID(t *testing.T) {
	cat := testCatalog(t)
	ctx := context.Background()

	run := testRun(time.Now())
	require.NoError(t, cat.RecordRun(ctx, run))
	assert.NotEmpty(t, run.ID)
}

func TestRecordRunKeepsExplicitID(t *testing.T) {
	cat := testCatalog(t)
	ctx := context.Background()

	run := testRun(time.Now())
	run.ID = "run-fixed"
	require.NoError(t, cat.RecordRun(ctx, run))
	assert.Equal(t, "run-fixed", run.ID)
}

func TestListRunsNewestFirst(t *testing.T) {
	cat := testCatalog(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		run := testRun(base.Add(time.Duration(i) * time.Hour))
		run.Servers = 10 + i
		require.NoError(t, cat.RecordRun(ctx, run))
	}

	runs, err := cat.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	assert.Equal(t, 12, runs[0].Servers)
	assert.Equal(t, 11, runs[1].Servers)
	assert.Equal(t, 10, runs[2].Servers)
	assert.True(t, runs[0].GeneratedAt.After(runs[2].GeneratedAt))
}

func TestListRunsHonorsLimit(t *testing.T) {
	cat := testCatalog(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, cat.RecordRun(ctx, testRun(base.Add(time.Duration(i)*time.Minute))))
	}

	runs, err := cat.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestListRunsRoundTripsFields(t *testing.T) {
	cat := testCatalog(t)
	ctx := context.Background()

	generatedAt := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	run := testRun(generatedAt)
	require.NoError(t, cat.RecordRun(ctx, run))

	runs, err := cat.ListRuns(ctx, 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, run.ID, got.ID)
	assert.True(t, got.GeneratedAt.Equal(generatedAt))
	assert.Equal(t, 10, got.Servers)
	assert.Equal(t, 2, got.Clusters)
	assert.Equal(t, 1, got.WorkersPerCluster)
	assert.Equal(t, "out.xml", got.OutputPath)
	assert.Equal(t, "ameff", got.Format)
	assert.Equal(t, 20, got.Elements)
	assert.Equal(t, 29, got.Relationships)
}

func TestListRunsEmptyCatalog(t *testing.T) {
	cat := testCatalog(t)

	runs, err := cat.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
