package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/theirongolddev/finledger/internal/config"
	"github.com/theirongolddev/finledger/internal/ledger"
	"github.com/theirongolddev/finledger/internal/model"
	"github.com/theirongolddev/finledger/internal/tui"
)

var (
	flagStatic bool
	flagWidth  int
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Chart expenses and the income/savings/deficit breakdown",
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().BoolVar(&flagStatic, "static", false, "Print the charts once instead of opening the viewer")
	chartCmd.Flags().IntVar(&flagWidth, "width", 0, "Width for --static output (default from config)")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, _ []string) error {
	return withLedger(func(l *ledger.Ledger) error {
		s := l.Summary()
		if flagStatic {
			return printStaticChart(cmd.OutOrStdout(), s)
		}
		return showChart(s)
	})
}

func printStaticChart(w io.Writer, s model.Summary) error {
	width := flagWidth
	if width <= 0 {
		width = cfg.Appearance.ChartWidth + 40
	}
	_, err := io.WriteString(w, tui.RenderStatic(s, cfg.General.Currency, width))
	return err
}

// showChart opens the full-screen chart viewer.
func showChart(s model.Summary) error {
	// Background fills need ANSI output even when terminal detection is unsure.
	lipgloss.SetColorProfile(termenv.TrueColor)
	info := fmt.Sprintf("%s  %s", cfg.General.Currency, config.SnapshotPath(cfg))
	return tui.Run(s, cfg.General.Currency, info)
}
