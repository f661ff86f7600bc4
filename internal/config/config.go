// Package config provides generation profiles for archigen.
//
// A profile is a YAML file that pins the parameters of a recurring generation
// run so they don't have to be repeated on the command line. CLI flags
// override profile values; profile values override built-in defaults.
//
// Profile locations (priority order):
//  1. --profile flag
//  2. $ARCHIGEN_PROFILE
//  3. ./archigen.yaml
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default output and catalog locations
const (
	DefaultOutputPath  = "dc_archimate_large_v2.xml"
	DefaultFormat      = "ameff"
	DefaultCatalogPath = "archigen.db"
)

// Profile holds the parameters of one generation run
type Profile struct {
	Servers              int    `yaml:"servers"`
	K8sClusters          int    `yaml:"k8s_clusters"`
	K8sWorkersPerCluster int    `yaml:"k8s_workers_per_cluster"`
	Out                  string `yaml:"out"`
	Format               string `yaml:"format"`
	Catalog              string `yaml:"catalog"`
}

// Default returns the built-in profile
func Default() *Profile {
	return &Profile{
		Servers:              1000,
		K8sClusters:          20,
		K8sWorkersPerCluster: 0,
		Out:                  DefaultOutputPath,
		Format:               DefaultFormat,
		Catalog:              DefaultCatalogPath,
	}
}

// Load finds and loads a profile, or returns defaults if none is found.
// The returned path is empty when defaults were used.
func Load() (*Profile, string, error) {
	path := FindProfilePath()
	if path == "" {
		return Default(), "", nil
	}
	p, err := LoadFromPath(path)
	return p, path, err
}

// LoadFromPath loads a profile from a specific path
func LoadFromPath(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}

	p.applyDefaults()
	return &p, nil
}

// applyDefaults fills in missing values with defaults. Worker count is the
// one parameter whose zero value is meaningful, so it is left alone.
func (p *Profile) applyDefaults() {
	defaults := Default()
	if p.Servers == 0 {
		p.Servers = defaults.Servers
	}
	if p.K8sClusters == 0 {
		p.K8sClusters = defaults.K8sClusters
	}
	if p.Out == "" {
		p.Out = defaults.Out
	}
	if p.Format == "" {
		p.Format = defaults.Format
	}
	if p.Catalog == "" {
		p.Catalog = defaults.Catalog
	}
}
