package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/theirongolddev/finledger/internal/ledger"
	"github.com/theirongolddev/finledger/internal/report"
)

var exportCmd = &cobra.Command{
	Use:   "export <file.pdf>",
	Short: "Write the summary and charts to a PDF file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]
	return withLedger(func(l *ledger.Ledger) error {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		if err := report.WritePDF(f, l.Summary(), cfg.General.Currency); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", path, err)
		}
		say(cmd, "Report written to %s", path)
		return nil
	})
}
