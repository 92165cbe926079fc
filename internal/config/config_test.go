package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvCurrency, "")
	t.Setenv(EnvLogLevel, "")
	return dir
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if Exists() {
		t.Fatal("Exists() = true before any Save")
	}
	if cfg.General.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", cfg.General.Currency)
	}
	wantSnap := filepath.Join(dir, "data", "finledger", "finance_data.txt")
	if got := SnapshotPath(cfg); got != wantSnap {
		t.Errorf("SnapshotPath = %q, want %q", got, wantSnap)
	}
	wantDB := filepath.Join(dir, "data", "finledger", "finance_data.db")
	if got := DatabasePath(cfg); got != wantDB {
		t.Errorf("DatabasePath = %q, want %q", got, wantDB)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	isolate(t)

	cfg := DefaultConfig()
	cfg.General.DataDir = "/srv/ledger"
	cfg.General.Currency = "EUR"
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Log.Level = "debug"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Errorf("Load = %+v, want %+v", got, cfg)
	}
	if SnapshotPath(got) != filepath.Join("/srv/ledger", "finance_data.txt") {
		t.Errorf("SnapshotPath = %q", SnapshotPath(got))
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)

	cfg := DefaultConfig()
	cfg.General.DataDir = "/from/file"
	if err := Save(cfg); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvDataDir, "/from/env")
	t.Setenv(EnvCurrency, "gbp")

	got, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.General.DataDir != "/from/env" {
		t.Errorf("DataDir = %q, want /from/env", got.General.DataDir)
	}
	if got.General.Currency != "GBP" {
		t.Errorf("Currency = %q, want GBP", got.General.Currency)
	}
}

func TestLoad_BadTOML(t *testing.T) {
	isolate(t)
	if err := os.MkdirAll(ConfigDir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ConfigPath(), []byte("[general\ncurrency = "), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Fatalf("Load err = %v, want parsing error", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	cfg.General.Currency = "NOPE"
	cfg.General.SnapshotFile = " "
	cfg.Appearance.ChartWidth = 3
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	for _, want := range []string{"NOPE", "snapshot_file", "chart_width"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestAbsoluteFileNamesIgnoreDataDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DataDir = "/data"
	cfg.General.DatabaseFile = "/var/lib/ledger.db"
	if got := DatabasePath(cfg); got != "/var/lib/ledger.db" {
		t.Errorf("DatabasePath = %q, want /var/lib/ledger.db", got)
	}
}
