package cmd

import (
	"github.com/spf13/cobra"
	"github.com/theirongolddev/finledger/internal/cli"
	"github.com/theirongolddev/finledger/internal/ledger"
)

var goalCmd = &cobra.Command{
	Use:   "set-goal <amount>",
	Short: "Set the savings goal",
	Example: `  finledger set-goal 6000
  finledger set-goal -- -1   # ignored: goals cannot be negative`,
	Args: cobra.ExactArgs(1),
	RunE: runSetGoal,
}

func init() {
	rootCmd.AddCommand(goalCmd)
}

func runSetGoal(cmd *cobra.Command, args []string) error {
	goal, err := parseAmount(args[0])
	if err != nil {
		return err
	}
	return withLedger(func(l *ledger.Ledger) error {
		if err := l.SetSavingsGoal(goal); err != nil {
			return err
		}
		say(cmd, "Savings goal: %s", cli.FormatAmount(l.SavingsGoal(), cfg.General.Currency))
		return nil
	})
}
