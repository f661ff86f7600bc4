package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"archigen/internal/logging"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "archigen",
	Short: "Generate large AMEFF (ArchiMate Exchange) XML models for Archi import",
	Long: `archigen synthesizes an ArchiMate Model Exchange Format document
describing a datacenter topology (location, networks, servers, Kubernetes
clusters and workers) at a size set by numeric parameters.

Running archigen without a subcommand generates a document:

  archigen --servers 500 --k8s-clusters 10 --out dc.xml
  archigen --k8s-workers-per-cluster 3 --format yaml --out dc.yaml
  archigen runs                 # list previously generated runs`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Initialize(verbose); err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	registerGenerateFlags(rootCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
