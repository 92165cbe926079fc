package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/theirongolddev/finledger/internal/cli"
	"github.com/theirongolddev/finledger/internal/ledger"
	"github.com/theirongolddev/finledger/internal/model"
	"github.com/theirongolddev/finledger/internal/report"
)

var (
	flagMarkdown      bool
	flagMarkdownStyle string
	flagPlain         bool
)

const summaryBarWidth = 30

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show income, savings, expenses and the savings goal",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Render a markdown report")
	summaryCmd.Flags().StringVar(&flagMarkdownStyle, "style", "auto", "glamour style for --markdown (auto, dark, light, notty)")
	summaryCmd.Flags().BoolVar(&flagPlain, "plain", false, "Plain text, one field per line")
	summaryCmd.MarkFlagsMutuallyExclusive("markdown", "plain")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	return withLedger(func(l *ledger.Ledger) error {
		s := l.Summary()
		out := cmd.OutOrStdout()
		cur := cfg.General.Currency

		switch {
		case flagPlain:
			return report.WriteText(out, s, cur)
		case flagMarkdown:
			rendered, err := cli.RenderMarkdown(report.Markdown(s, cur), flagMarkdownStyle, 80)
			if err != nil {
				return err
			}
			_, err = io.WriteString(out, rendered)
			return err
		default:
			_, err := io.WriteString(out, renderSummary(s, cur))
			return err
		}
	})
}

// renderSummary builds the styled summary shared by the summary command and
// the menu.
func renderSummary(s model.Summary, cur string) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(cli.RenderTitle("FINANCIAL SUMMARY"))
	b.WriteString("\n\n")

	b.WriteString(cli.RenderTable(cli.Table{
		Headers: []string{"", "Amount"},
		Rows: [][]string{
			{"Total Income", cli.FormatAmount(s.Income, cur)},
			{"Original Savings", cli.FormatAmount(s.OriginalSavings, cur)},
			{"Current Savings", cli.FormatAmount(s.Savings, cur)},
			{cli.SeparatorRow},
			{"Total Expenses", cli.FormatAmount(s.TotalExpenses, cur)},
			{"Deficit", cli.FormatAmount(s.Deficit, cur)},
			{"Remaining Budget", cli.FormatAmount(s.RemainingBudget, cur)},
			{cli.SeparatorRow},
			{"Savings Goal", cli.FormatAmount(s.SavingsGoal, cur)},
		},
	}))
	b.WriteString("\n")

	if len(s.Items) == 0 {
		b.WriteString("  No expenses recorded.\n")
	} else {
		rows := make([][]string, 0, len(s.Items)+2)
		for _, e := range s.Items {
			rows = append(rows, []string{e.Category, e.Description, cli.FormatAmount(e.Amount, cur)})
		}
		rows = append(rows, []string{cli.SeparatorRow})
		rows = append(rows, []string{"Total", "", cli.FormatAmount(s.TotalExpenses, cur)})
		b.WriteString(cli.RenderTable(cli.Table{
			Title:   "Expenses",
			Headers: []string{"Category", "Description", "Amount"},
			Rows:    rows,
		}))
		b.WriteString("\n")

		byCat := cli.Table{
			Title:   "By Category",
			Headers: []string{"Category", "Items", "Total", "Share"},
		}
		totals := report.CategoryTotals(s)
		for _, c := range totals {
			byCat.Rows = append(byCat.Rows, []string{
				c.Category, strconv.Itoa(c.Count), cli.FormatAmount(c.Total, cur), cli.FormatPercent(c.Share),
			})
		}
		b.WriteString(cli.RenderTable(byCat))
		b.WriteString("\n")
		b.WriteString(renderCategoryBars(totals, cur))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "  Savings goal  %s\n\n",
		cli.RenderProgressBar(cli.GoalProgress(s.Savings, s.SavingsGoal), 30))
	return b.String()
}

// renderCategoryBars draws one bar per category scaled to the largest.
func renderCategoryBars(totals []model.CategoryTotal, cur string) string {
	if len(totals) == 0 {
		return ""
	}
	labelW := 0
	for _, c := range totals {
		labelW = max(labelW, lipgloss.Width(c.Category))
	}
	top := totals[0].Total.InexactFloat64()

	var b strings.Builder
	for _, c := range totals {
		b.WriteString(cli.RenderHorizontalBar(c.Category, labelW, c.Total.InexactFloat64(), top, summaryBarWidth, cli.FormatAmount(c.Total, cur)))
		b.WriteString("\n")
	}
	return b.String()
}
