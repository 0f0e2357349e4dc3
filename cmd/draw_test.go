package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/elzup/hash-omikuji/internal/history"
)

func TestRunDrawRecordsHistory(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	resetDrawFlags(t)
	flagUser = "alice"
	flagYear = 2026
	flagDate = "2026-01-01"

	if err := runDraw(drawCmd, nil); err != nil {
		t.Fatalf("runDraw: %v", err)
	}

	path := filepath.Join(tmp, ".hash-omikuji", "history.jsonl")
	n, err := history.Verify(path)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if n != 1 {
		t.Errorf("history has %d records, want 1", n)
	}
}

func TestRunDrawRefusedOffSeason(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	resetDrawFlags(t)
	flagUser = "alice"
	flagYear = 2026
	flagDate = "2026-07-15"

	if err := runDraw(drawCmd, nil); err == nil {
		t.Fatal("draw outside January 1st should be refused")
	}

	if _, err := os.Stat(filepath.Join(tmp, ".hash-omikuji", "history.jsonl")); err == nil {
		t.Error("refused draw still wrote history")
	}
}

func TestRunDrawNoHistoryFlag(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	resetDrawFlags(t)
	flagUser = "alice"
	flagYear = 2026
	flagDate = "2026-01-01"
	flagNoHistory = true

	if err := runDraw(drawCmd, nil); err != nil {
		t.Fatalf("runDraw: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmp, ".hash-omikuji", "history.jsonl")); err == nil {
		t.Error("--no-history still wrote history")
	}
}

// resetDrawFlags restores the package-level flag state after a test,
// since cobra flags are globals shared across tests.
func resetDrawFlags(t *testing.T) {
	t.Helper()
	prev := struct {
		year                     uint32
		user, date, cfg          string
		json, short, seed, force bool
		noHistory                bool
	}{flagYear, flagUser, flagDate, flagConfig, flagJSON, flagShort, flagSeed, flagForce, flagNoHistory}

	t.Cleanup(func() {
		flagYear, flagUser, flagDate, flagConfig = prev.year, prev.user, prev.date, prev.cfg
		flagJSON, flagShort, flagSeed, flagForce = prev.json, prev.short, prev.seed, prev.force
		flagNoHistory = prev.noHistory
	})

	flagUser, flagDate, flagConfig = "", "", ""
	flagJSON, flagShort, flagSeed, flagForce, flagNoHistory = false, false, false, false, false
}
