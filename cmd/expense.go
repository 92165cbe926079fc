package cmd

import (
	"github.com/spf13/cobra"
	"github.com/theirongolddev/finledger/internal/cli"
	"github.com/theirongolddev/finledger/internal/ledger"
)

var expenseCmd = &cobra.Command{
	Use:   "add-expense <category> <description> <amount>",
	Short: "Record an expense under a category",
	Example: `  finledger add-expense Groceries "Weekly shop" 65.40
  finledger add-expense Rent April 900
  finledger add-expense -- Refund Shoes -40   # ignored: not a positive amount`,
	Args: cobra.ExactArgs(3),
	RunE: runAddExpense,
}

func init() {
	rootCmd.AddCommand(expenseCmd)
}

func runAddExpense(cmd *cobra.Command, args []string) error {
	amount, err := parseAmount(args[2])
	if err != nil {
		return err
	}
	return withLedger(func(l *ledger.Ledger) error {
		if err := l.AddExpense(args[0], args[1], amount); err != nil {
			return err
		}
		cur := cfg.General.Currency
		say(cmd, "Expense added. Total expenses: %s, savings: %s",
			cli.FormatAmount(l.TotalExpenses(), cur),
			cli.FormatAmount(l.Savings(), cur))
		return nil
	})
}
