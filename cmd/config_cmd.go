// Package cmd implements the finledger CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/theirongolddev/finledger/internal/cli"
	"github.com/theirongolddev/finledger/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	status := "using defaults (no config file)"
	if config.Exists() {
		status = "loaded"
	}
	fmt.Fprintf(out, "  Config file: %s\n  Status: %s\n\n", config.ConfigPath(), status)

	fmt.Fprintln(out, "  [General]")
	fmt.Fprint(out, cli.RenderKeyValues([][2]string{
		{"Data directory", config.DataDir(cfg)},
		{"Snapshot", config.SnapshotPath(cfg)},
		{"Database", config.DatabasePath(cfg)},
		{"Currency", cfg.General.Currency},
	}))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	fmt.Fprint(out, cli.RenderKeyValues([][2]string{
		{"Theme", cfg.Appearance.Theme},
		{"Chart width", fmt.Sprint(cfg.Appearance.ChartWidth)},
	}))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Log]")
	fmt.Fprint(out, cli.RenderKeyValues([][2]string{{"Level", cfg.Log.Level}}))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  Run `finledger setup` to reconfigure.")
	return nil
}
