package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "INFO")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Debug("hidden detail")
	logger.Info("snapshot written", "path", "/tmp/finance_data.txt")

	out := buf.String()
	if strings.Contains(out, "hidden detail") {
		t.Errorf("debug line logged at info level: %q", out)
	}
	if !strings.Contains(out, "snapshot written") || !strings.Contains(out, "/tmp/finance_data.txt") {
		t.Errorf("info line missing: %q", out)
	}
	if !strings.Contains(out, "finledger") {
		t.Errorf("prefix missing: %q", out)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "chatty"); err == nil {
		t.Fatal("New(chatty) = nil error, want error")
	}
}
