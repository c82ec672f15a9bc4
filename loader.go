package expense

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFilename is the ledger file used when no other location is
// configured, resolved in the current directory.
const DefaultFilename = "expenses.txt"

// LoadLedger reads the ledger stored in filename.
//
// A missing file is not an error: it loads as an empty ledger, the state of
// a ledger that has never been written.
func LoadLedger(filename string) (*Ledger, error) {
	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return NewLedger(), nil
		}
		return nil, fmt.Errorf("could not open ledger file %q: %w", filename, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not read ledger file %q: %w", filename, err)
	}
	return ledger, nil
}

// SaveLedger rewrites filename with the full content of the ledger, creating
// the parent directory if needed.
func SaveLedger(filename string, ledger *Ledger) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create ledger directory %q: %w", dir, err)
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create ledger file %q: %w", filename, err)
	}
	defer f.Close()

	if err := EncodeLedger(f, ledger); err != nil {
		return fmt.Errorf("could not write ledger file %q: %w", filename, err)
	}
	return nil
}
