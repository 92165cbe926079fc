package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/theirongolddev/finledger/internal/config"
	"github.com/theirongolddev/finledger/internal/ledger"
	"github.com/theirongolddev/finledger/internal/logging"
	"github.com/theirongolddev/finledger/internal/store"
	"github.com/theirongolddev/finledger/internal/tui/theme"
)

var (
	flagDataDir  string
	flagCurrency string
	flagLogLevel string
	flagQuiet    bool
)

// Resolved by loadSettings before any command runs.
var (
	cfg    = config.DefaultConfig()
	logger = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:               "finledger",
	Short:             "Personal finance ledger",
	Long:              "Track income, savings, a savings goal and categorised expenses.\nRun without a command for the interactive menu.",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	RunE:              runMenu,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory holding the snapshot and database (default $XDG_DATA_HOME/finledger)")
	rootCmd.PersistentFlags().StringVarP(&flagCurrency, "currency", "c", "", "ISO currency code used to display amounts")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress confirmations and non-error logs")
}

// loadSettings layers .env, the config file, environment and flags, in that
// order, then builds the logger.
func loadSettings(_ *cobra.Command, _ []string) error {
	config.LoadEnv()

	c, err := config.Load()
	if err != nil {
		return err
	}
	if flagDataDir != "" {
		c.General.DataDir = flagDataDir
	}
	if flagCurrency != "" {
		c.General.Currency = strings.ToUpper(flagCurrency)
	}
	if flagLogLevel != "" {
		c.Log.Level = flagLogLevel
	}
	if flagQuiet {
		c.Log.Level = "error"
	}
	if err := c.Validate(); err != nil {
		return err
	}

	lg, err := logging.New(os.Stderr, c.Log.Level)
	if err != nil {
		return err
	}
	if !theme.Known(c.Appearance.Theme) {
		lg.Warn("unknown theme, using default", "theme", c.Appearance.Theme)
	}
	theme.SetActive(c.Appearance.Theme)

	cfg, logger = c, lg
	logger.Debug("settings loaded",
		"config", config.ConfigPath(),
		"snapshot", config.SnapshotPath(cfg),
		"database", config.DatabasePath(cfg),
	)
	return nil
}

// openLedger opens the expense database and loads the snapshot into a
// ledger. Callers must Close it.
func openLedger() (*ledger.Ledger, error) {
	st, err := store.Open(config.DatabasePath(cfg))
	if err != nil {
		return nil, fmt.Errorf("opening expense database: %w", err)
	}
	return ledger.Open(ledger.Options{
		SnapshotPath: config.SnapshotPath(cfg),
		Mirror:       st,
		Logger:       logger,
	})
}

// withLedger runs fn against an open ledger and closes it afterwards.
func withLedger(fn func(*ledger.Ledger) error) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer func() {
		if err := l.Close(); err != nil {
			logger.Warn("closing expense database", "err", err)
		}
	}()
	return fn(l)
}

// parseAmount reads a user-supplied number. Thousands separators and a
// leading currency symbol are not accepted, nor are amounts outside the
// range the ledger does arithmetic on.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("invalid amount: empty")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	if err := ledger.CheckAmount(d); err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// say prints a confirmation unless --quiet is set.
func say(cmd *cobra.Command, format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}

