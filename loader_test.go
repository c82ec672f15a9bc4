package expense

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoadLedger_MissingFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "expenses.txt")

	ledger, err := LoadLedger(filename)
	if err != nil {
		t.Fatalf("LoadLedger() on a missing file returned an unexpected error: %v", err)
	}
	if ledger.Len() != 0 {
		t.Errorf("Len() of a never-written ledger. Got: %d, want: 0", ledger.Len())
	}
	if ledger.NextID() != 1 {
		t.Errorf("NextID() of a never-written ledger. Got: %d, want: 1", ledger.NextID())
	}
}

func TestSaveLoadLedger(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "expenses.txt")

	ledger := NewLedger()
	ledger.Insert("2024-01-01", "Coffee", decimal.RequireFromString("3.5"))
	ledger.Insert("2024-01-02", "Book", decimal.RequireFromString("12"))

	if err := SaveLedger(filename, ledger); err != nil {
		t.Fatalf("SaveLedger() returned an unexpected error: %v", err)
	}

	reloaded, err := LoadLedger(filename)
	if err != nil {
		t.Fatalf("LoadLedger() returned an unexpected error: %v", err)
	}
	if reloaded.Len() != 2 {
		t.Fatalf("Reloaded ledger record count. Got: %d, want: %d", reloaded.Len(), 2)
	}
	if reloaded.NextID() != 3 {
		t.Errorf("Reloaded ledger NextID(). Got: %d, want: %d", reloaded.NextID(), 3)
	}
}

func TestSaveLedger_CreatesDirectory(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "books", "expenses.txt")

	if err := SaveLedger(filename, NewLedger()); err != nil {
		t.Fatalf("SaveLedger() returned an unexpected error: %v", err)
	}
	if _, err := os.Stat(filename); err != nil {
		t.Errorf("SaveLedger() did not create the file: %v", err)
	}
}

func TestSaveLedger_PreservesUnknownDates(t *testing.T) {
	// A hand-edited file with a date this tool would never write must
	// round-trip unchanged.
	filename := filepath.Join(t.TempDir(), "expenses.txt")
	content := "1 someday Mystery purchase|5\n"
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	ledger, err := LoadLedger(filename)
	if err != nil {
		t.Fatalf("LoadLedger() returned an unexpected error: %v", err)
	}
	if err := SaveLedger(filename, ledger); err != nil {
		t.Fatalf("SaveLedger() returned an unexpected error: %v", err)
	}

	after, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != content {
		t.Errorf("Rewriting the ledger changed the file.\nGot:\n%s\nWant:\n%s", after, content)
	}
}
