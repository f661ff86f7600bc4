package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"archigen/internal/config"
	"archigen/internal/repository/sqlite"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List previously generated runs from the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(flagCatalog); err != nil {
			return fmt.Errorf("no run catalog at %s", flagCatalog)
		}

		cat, err := sqlite.New(flagCatalog)
		if err != nil {
			return fmt.Errorf("open run catalog: %w", err)
		}
		defer cat.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		runs, err := cat.ListRuns(ctx, runsLimit)
		if err != nil {
			return fmt.Errorf("list runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded.")
			return nil
		}

		fmt.Printf("%-20s  %7s  %8s  %7s  %8s  %6s  %s\n",
			"GENERATED", "SERVERS", "CLUSTERS", "WORKERS", "ELEMENTS", "FORMAT", "OUTPUT")
		for _, run := range runs {
			fmt.Printf("%-20s  %7d  %8d  %7d  %8d  %6s  %s\n",
				run.GeneratedAt.Local().Format("2006-01-02 15:04:05"),
				run.Servers, run.Clusters, run.WorkersPerCluster,
				run.Elements, run.Format, run.OutputPath)
		}
		return nil
	},
}

func init() {
	runsCmd.Flags().StringVar(&flagCatalog, "catalog", config.DefaultCatalogPath, "run-history catalog database")
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "maximum number of runs to list")
}
