package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"archigen/internal/codec"
	"archigen/internal/config"
	"archigen/internal/domain"
	"archigen/internal/logging"
	"archigen/internal/repository"
	"archigen/internal/repository/sqlite"
	"archigen/internal/topology"
)

var (
	flagServers           int
	flagClusters          int
	flagWorkersPerCluster int
	flagOut               string
	flagFormat            string
	flagProfile           string
	flagCatalog           string
	flagNoCatalog         bool
)

func registerGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagServers, "servers", 1000, "number of server devices (>= 1)")
	cmd.Flags().IntVar(&flagClusters, "k8s-clusters", 20, "number of Kubernetes clusters (>= 1)")
	cmd.Flags().IntVar(&flagWorkersPerCluster, "k8s-workers-per-cluster", 0, "worker devices per cluster (>= 0, 0 omits workers)")
	cmd.Flags().StringVar(&flagOut, "out", config.DefaultOutputPath, "output file path")
	cmd.Flags().StringVar(&flagFormat, "format", config.DefaultFormat, "export format (ameff, json, yaml)")
	cmd.Flags().StringVar(&flagProfile, "profile", "", "YAML generation profile (flags override profile values)")
	cmd.Flags().StringVar(&flagCatalog, "catalog", config.DefaultCatalogPath, "run-history catalog database")
	cmd.Flags().BoolVar(&flagNoCatalog, "no-catalog", false, "skip recording the run in the catalog")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	profile, err := loadProfile(cmd)
	if err != nil {
		return err
	}

	params := topology.Params{
		Servers:           profile.Servers,
		Clusters:          profile.K8sClusters,
		WorkersPerCluster: profile.K8sWorkersPerCluster,
		GeneratedAt:       time.Now(),
	}
	if err := params.Validate(); err != nil {
		return err
	}

	exporter, err := codec.ForFormat(profile.Format)
	if err != nil {
		return err
	}

	logging.Logger.Debugw("assembling model",
		"servers", params.Servers,
		"clusters", params.Clusters,
		"workers_per_cluster", params.WorkersPerCluster)

	model, err := topology.Assemble(params)
	if err != nil {
		return err
	}

	if err := writeDocument(exporter, model, profile.Out); err != nil {
		return err
	}

	if !flagNoCatalog {
		recordRun(profile, params, len(model.Elements), len(model.Relationships))
	}

	fmt.Printf("Wrote: %s\n", profile.Out)
	fmt.Printf("Servers: %d, K8s clusters: %d, K8s workers total: %d\n",
		params.Servers, params.Clusters, params.TotalWorkers())
	return nil
}

// loadProfile resolves the effective parameters: built-in defaults, then the
// profile file, then any flag explicitly set on the command line.
func loadProfile(cmd *cobra.Command) (*config.Profile, error) {
	var (
		profile *config.Profile
		path    string
		err     error
	)
	if flagProfile != "" {
		profile, err = config.LoadFromPath(flagProfile)
		path = flagProfile
	} else {
		profile, path, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if path != "" {
		logging.Logger.Debugw("loaded profile", "path", path)
	}

	flags := cmd.Flags()
	if flags.Changed("servers") {
		profile.Servers = flagServers
	}
	if flags.Changed("k8s-clusters") {
		profile.K8sClusters = flagClusters
	}
	if flags.Changed("k8s-workers-per-cluster") {
		profile.K8sWorkersPerCluster = flagWorkersPerCluster
	}
	if flags.Changed("out") {
		profile.Out = flagOut
	}
	if flags.Changed("format") {
		profile.Format = flagFormat
	}
	if flags.Changed("catalog") {
		profile.Catalog = flagCatalog
	}
	return profile, nil
}

// writeDocument streams the rendered document to the output file. The file is
// only created after the model has been assembled and validated, so a failed
// run never leaves a truncated document behind from this side; an export error
// mid-stream still removes the partial file.
func writeDocument(exporter codec.Exporter, model *domain.Model, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	w := bufio.NewWriter(f)
	if err := exporter.Export(model, w); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("export %s: %w", exporter.Format(), err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("flush output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}

// recordRun appends the run to the catalog. The document is already on disk,
// so catalog failures are logged as warnings instead of failing the command.
func recordRun(profile *config.Profile, params topology.Params, elements, relationships int) {
	cat, err := sqlite.New(profile.Catalog)
	if err != nil {
		logging.Logger.Warnw("failed to open run catalog", "path", profile.Catalog, "error", err)
		return
	}
	defer cat.Close()

	run := &repository.Run{
		GeneratedAt:       params.GeneratedAt,
		Servers:           params.Servers,
		Clusters:          params.Clusters,
		WorkersPerCluster: params.WorkersPerCluster,
		OutputPath:        profile.Out,
		Format:            profile.Format,
		Elements:          elements,
		Relationships:     relationships,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := cat.RecordRun(ctx, run); err != nil {
		logging.Logger.Warnw("failed to record run", "path", profile.Catalog, "error", err)
		return
	}
	logging.Logger.Debugw("recorded run", "id", run.ID, "catalog", profile.Catalog)
}
