package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	p := Default()

	if p.Servers != 1000 {
		t.Errorf("expected 1000 servers, got %d", p.Servers)
	}
	if p.K8sClusters != 20 {
		t.Errorf("expected 20 clusters, got %d", p.K8sClusters)
	}
	if p.K8sWorkersPerCluster != 0 {
		t.Errorf("expected 0 workers per cluster, got %d", p.K8sWorkersPerCluster)
	}
	if p.Out != DefaultOutputPath {
		t.Errorf("expected out %s, got %s", DefaultOutputPath, p.Out)
	}
	if p.Format != DefaultFormat {
		t.Errorf("expected format %s, got %s", DefaultFormat, p.Format)
	}
}

func TestLoadFromPath(t *testing.T) {
	t.Run("loads explicit values", func(t *testing.T) {
		path := writeProfile(t, `
servers: 50
k8s_clusters: 4
k8s_workers_per_cluster: 3
out: small.xml
format: yaml
`)
		p, err := LoadFromPath(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Servers != 50 || p.K8sClusters != 4 || p.K8sWorkersPerCluster != 3 {
			t.Errorf("unexpected parameters %+v", p)
		}
		if p.Out != "small.xml" || p.Format != "yaml" {
			t.Errorf("unexpected output settings %+v", p)
		}
		if p.Catalog != DefaultCatalogPath {
			t.Errorf("expected default catalog, got %s", p.Catalog)
		}
	})

	t.Run("fills missing values with defaults", func(t *testing.T) {
		path := writeProfile(t, "servers: 5\n")
		p, err := LoadFromPath(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Servers != 5 {
			t.Errorf("expected 5 servers, got %d", p.Servers)
		}
		if p.K8sClusters != 20 {
			t.Errorf("expected default clusters, got %d", p.K8sClusters)
		}
		if p.Out != DefaultOutputPath {
			t.Errorf("expected default out, got %s", p.Out)
		}
	})

	t.Run("keeps explicit zero worker count", func(t *testing.T) {
		path := writeProfile(t, "k8s_workers_per_cluster: 0\n")
		p, err := LoadFromPath(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.K8sWorkersPerCluster != 0 {
			t.Errorf("expected 0 workers per cluster, got %d", p.K8sWorkersPerCluster)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeProfile(t, "servers: [not a number\n")
		_, err := LoadFromPath(path)
		if err == nil {
			t.Error("expected error for malformed YAML")
		}
	})
}

func TestFindProfilePath(t *testing.T) {
	t.Run("env var takes precedence", func(t *testing.T) {
		path := writeProfile(t, "servers: 1\n")
		t.Setenv(EnvProfile, path)

		if got := FindProfilePath(); got != path {
			t.Errorf("expected %s, got %s", path, got)
		}
	})

	t.Run("nonexistent env var path is skipped", func(t *testing.T) {
		t.Setenv(EnvProfile, filepath.Join(t.TempDir(), "nope.yaml"))
		got := FindProfilePath()
		if got != "" && got != defaultProfileName {
			t.Errorf("unexpected path %s", got)
		}
	})
}

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "archigen.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	return path
}
