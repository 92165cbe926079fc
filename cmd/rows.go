package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/theirongolddev/finledger/internal/cli"
	"github.com/theirongolddev/finledger/internal/ledger"
	"github.com/theirongolddev/finledger/internal/model"
)

var flagRowsPlain bool

var rowsCmd = &cobra.Command{
	Use:   "rows",
	Short: "Print the raw rows of the expense database",
	RunE:  runRows,
}

func init() {
	rowsCmd.Flags().BoolVar(&flagRowsPlain, "plain", false, "One line per row, no table")
	rootCmd.AddCommand(rowsCmd)
}

func runRows(cmd *cobra.Command, _ []string) error {
	return withLedger(func(l *ledger.Ledger) error {
		rows, err := l.DatabaseRows()
		if err != nil {
			return err
		}
		count, err := l.RowCount()
		if err != nil {
			return err
		}
		return printRows(cmd.OutOrStdout(), rows, count, flagRowsPlain)
	})
}

func printRows(w io.Writer, rows []model.ExpenseRow, count int, plain bool) error {
	cur := cfg.General.Currency
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No expenses recorded in the database.")
		return err
	}

	if plain {
		for _, r := range rows {
			if _, err := fmt.Fprintf(w, "ID: %d, Category: %s, Description: %s, Amount: %s\n",
				r.ID, r.Category, r.Description, cli.FormatAmount(r.Amount, cur)); err != nil {
				return err
			}
		}
		return nil
	}

	table := cli.Table{
		Title:   "Database Contents",
		Headers: []string{"ID", "Category", "Description", "Amount"},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(r.ID, 10), r.Category, r.Description, cli.FormatAmount(r.Amount, cur),
		})
	}
	if _, err := io.WriteString(w, cli.RenderTable(table)); err != nil {
		return err
	}
	noun := "rows"
	if count == 1 {
		noun = "row"
	}
	_, err := fmt.Fprintf(w, "  %s %s\n", cli.FormatNumber(int64(count)), noun)
	return err
}
