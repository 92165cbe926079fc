package cmd

import (
	"github.com/spf13/cobra"
	"github.com/theirongolddev/finledger/internal/cli"
	"github.com/theirongolddev/finledger/internal/ledger"
)

var incomeCmd = &cobra.Command{
	Use:   "add-income <amount>",
	Short: "Add to the recorded income",
	Example: `  finledger add-income 4500
  finledger add-income -- -5   # ignored: not a positive amount`,
	Args: cobra.ExactArgs(1),
	RunE: runAddIncome,
}

func init() {
	rootCmd.AddCommand(incomeCmd)
}

func runAddIncome(cmd *cobra.Command, args []string) error {
	amount, err := parseAmount(args[0])
	if err != nil {
		return err
	}
	return withLedger(func(l *ledger.Ledger) error {
		if err := l.AddIncome(amount); err != nil {
			return err
		}
		say(cmd, "Income added. Total income: %s", cli.FormatAmount(l.Income(), cfg.General.Currency))
		return nil
	})
}
