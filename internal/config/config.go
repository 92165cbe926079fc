package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvDataDir  = "FINLEDGER_DATA_DIR"
	EnvCurrency = "FINLEDGER_CURRENCY"
	EnvLogLevel = "FINLEDGER_LOG_LEVEL"
)

// Config holds all finledger configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
}

// GeneralConfig holds where ledger data lives and how amounts are shown.
type GeneralConfig struct {
	DataDir      string `toml:"data_dir,omitempty"`
	SnapshotFile string `toml:"snapshot_file"`
	DatabaseFile string `toml:"database_file"`
	Currency     string `toml:"currency"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme      string `toml:"theme"`
	ChartWidth int    `toml:"chart_width"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			SnapshotFile: "finance_data.txt",
			DatabaseFile: "finance_data.db",
			Currency:     "USD",
		},
		Appearance: AppearanceConfig{
			Theme:      "flexoki-dark",
			ChartWidth: 40,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "finledger")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "finledger")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DefaultDataDir returns the XDG-compliant data directory.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "finledger")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "finledger")
}

// LoadEnv loads a .env file from the working directory, if any.
func LoadEnv() {
	_ = godotenv.Load()
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are applied on top.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDataDir); v != "" {
		cfg.General.DataDir = v
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		cfg.General.Currency = strings.ToUpper(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	var problems []string

	if money.GetCurrency(c.General.Currency) == nil {
		problems = append(problems, fmt.Sprintf("unknown currency %q", c.General.Currency))
	}
	if strings.TrimSpace(c.General.SnapshotFile) == "" {
		problems = append(problems, "snapshot_file is empty")
	}
	if strings.TrimSpace(c.General.DatabaseFile) == "" {
		problems = append(problems, "database_file is empty")
	}
	if c.Appearance.ChartWidth < 10 {
		problems = append(problems, fmt.Sprintf("chart_width %d is below 10", c.Appearance.ChartWidth))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// DataDir returns the configured data directory or the XDG default.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	return DefaultDataDir()
}

// SnapshotPath returns the full path of the snapshot file.
func SnapshotPath(cfg Config) string {
	return resolve(DataDir(cfg), cfg.General.SnapshotFile)
}

// DatabasePath returns the full path of the SQLite expense mirror.
func DatabasePath(cfg Config) string {
	return resolve(DataDir(cfg), cfg.General.DatabaseFile)
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
