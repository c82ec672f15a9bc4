package agent

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"google.golang.org/genai"
)

// newTestLibrary builds the bookkeeper tools over a throwaway ledger file.
func newTestLibrary(t *testing.T) Library {
	t.Helper()
	ledgerFile := filepath.Join(t.TempDir(), "test_ledger.txt")
	content := "1 2024-01-05 Coffee|3.5\n2 2024-02-10 Book|12\n"
	if err := os.WriteFile(ledgerFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write ledger file: %v", err)
	}
	return NewLibrary(bookkeeperTools(ledgerFile))
}

func TestBookkeeperSummary(t *testing.T) {
	lib := newTestLibrary(t)

	resp := lib(context.Background(), &genai.FunctionCall{ID: "1", Name: "Summary", Args: map[string]any{}})

	if got, want := resp.Response["output"], "Total expenses: $15.50\n"; got != want {
		t.Errorf("Summary output. Got: %q, want: %q", got, want)
	}
}

func TestBookkeeperSummary_Month(t *testing.T) {
	lib := newTestLibrary(t)

	// Models send numbers as float64.
	resp := lib(context.Background(), &genai.FunctionCall{ID: "1", Name: "Summary", Args: map[string]any{"month": float64(2)}})

	if got, want := resp.Response["output"], "Total expenses for month 2: $12.00\n"; got != want {
		t.Errorf("Summary output. Got: %q, want: %q", got, want)
	}
}

func TestBookkeeperExpenses(t *testing.T) {
	lib := newTestLibrary(t)

	resp := lib(context.Background(), &genai.FunctionCall{ID: "1", Name: "Expenses", Args: map[string]any{}})

	output, _ := resp.Response["output"].(string)
	if !strings.Contains(output, "| 1 | 2024-01-05 | Coffee | $3.50 |") {
		t.Errorf("Expenses output is missing a record. Got:\n%s", output)
	}
}

func TestBookkeeperMonthlyReport(t *testing.T) {
	lib := newTestLibrary(t)

	resp := lib(context.Background(), &genai.FunctionCall{ID: "1", Name: "MonthlyReport", Args: map[string]any{}})

	output, _ := resp.Response["output"].(string)
	if !strings.Contains(output, "January") || !strings.Contains(output, "February") {
		t.Errorf("MonthlyReport output is missing months. Got:\n%s", output)
	}
}

func TestLibraryUnknownFunction(t *testing.T) {
	lib := newTestLibrary(t)

	resp := lib(context.Background(), &genai.FunctionCall{ID: "1", Name: "Bogus", Args: map[string]any{}})

	if got, want := resp.Response["error"], "unknown function Bogus"; got != want {
		t.Errorf("Unknown function response. Got: %q, want: %q", got, want)
	}
}

func TestParseMonth(t *testing.T) {
	testCases := []struct {
		name      string
		args      map[string]any
		wantMonth int
		wantHas   bool
		wantErr   bool
	}{
		{name: "absent", args: map[string]any{}, wantHas: false},
		{name: "number", args: map[string]any{"month": float64(3)}, wantMonth: 3, wantHas: true},
		{name: "numeric string", args: map[string]any{"month": "4"}, wantMonth: 4, wantHas: true},
		{name: "bad string", args: map[string]any{"month": "soon"}, wantErr: true},
		{name: "wrong type", args: map[string]any{"month": true}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			month, has, err := parseMonth(tc.args)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseMonth() error. Got: %v, wantErr: %v", err, tc.wantErr)
			}
			if tc.wantErr {
				return
			}
			if has != tc.wantHas {
				t.Errorf("parseMonth() has. Got: %v, want: %v", has, tc.wantHas)
			}
			if month != tc.wantMonth {
				t.Errorf("parseMonth() month. Got: %d, want: %d", month, tc.wantMonth)
			}
		})
	}
}
