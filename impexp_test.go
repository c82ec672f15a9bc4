package expense

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

// TestImportExportExpenses creates a very basic check that the import/export
// sequence is stable.
func TestImportExportExpenses(t *testing.T) {
	sample := `
{"id":1,"date":"2024-01-01","description":"Coffee","amount":3.5}
{"id":2,"date":"2024-01-02","description":"Netflix|Spotify bundle","amount":9.99}
`
	sample = strings.Trim(sample, "\n\t")

	ledger := NewLedger()
	count, err := ImportExpenses(strings.NewReader(sample), ledger)
	if err != nil {
		t.Fatalf("cannot import sample: %v", err)
	}
	if count != 2 {
		t.Fatalf("ImportExpenses() count. Got: %d, want: %d", count, 2)
	}

	sb := strings.Builder{}
	if err := ExportExpenses(&sb, ledger); err != nil {
		t.Errorf("ExportExpenses() has error %v", err)
	}
	got := strings.Trim(sb.String(), "\n\t")

	if got != sample {
		t.Errorf("export/import sequence is not stable got \n%s\n want \n%s\n", got, sample)
	}
}

func TestImportExpenses_FreshIdentifiers(t *testing.T) {
	ledger := NewLedger()
	ledger.Insert("2024-01-01", "Existing", decimal.New(1, 0))

	sample := `{"id":1,"date":"2024-02-02","description":"Imported","amount":5}`
	if _, err := ImportExpenses(strings.NewReader(sample), ledger); err != nil {
		t.Fatalf("cannot import sample: %v", err)
	}

	// The imported record must not collide with the existing id 1.
	wantIDs := []int{1, 2}
	i := 0
	for e := range ledger.Expenses() {
		if e.ID != wantIDs[i] {
			t.Errorf("Expense %d has wrong id. Got: %d, want: %d", i, e.ID, wantIDs[i])
		}
		i++
	}
}

func TestImportExpenses_BadLine(t *testing.T) {
	ledger := NewLedger()
	sample := `{"id":1,"date":"2024-02-02","description":"ok","amount":5}
this is not json
`
	count, err := ImportExpenses(strings.NewReader(sample), ledger)
	if err == nil {
		t.Fatalf("ImportExpenses() accepted a malformed line")
	}
	if count != 1 {
		t.Errorf("ImportExpenses() count before the error. Got: %d, want: %d", count, 1)
	}
}

func TestImportJSON(t *testing.T) {
	// A document shaped like a typical bank export, with amounts as
	// numbers, as strings, and with a comma decimal separator.
	document := `{
  "account": "FR76 0000 1111",
  "transactions": [
    {"bookingDate": "2024-03-01", "label": "CARD PAYMENT BAKERY", "amount": {"value": 4.8}},
    {"bookingDate": "2024-03-02", "label": "CARD PAYMENT TRANSIT", "amount": {"value": "2.10"}},
    {"bookingDate": "2024-03-03", "label": "CARD PAYMENT GROCER", "amount": {"value": "12,35"}}
  ]
}`
	mapping := JSONMapping{
		Records:     "$.transactions[*]",
		Date:        "$.bookingDate",
		Description: "$.label",
		Amount:      "$.amount.value",
	}

	ledger := NewLedger()
	count, err := ImportJSON(strings.NewReader(document), mapping, ledger)
	if err != nil {
		t.Fatalf("ImportJSON() returned an unexpected error: %v", err)
	}
	if count != 3 {
		t.Fatalf("ImportJSON() count. Got: %d, want: %d", count, 3)
	}

	want := []Expense{
		{ID: 1, Date: "2024-03-01", Description: "CARD PAYMENT BAKERY", Amount: decimal.RequireFromString("4.8")},
		{ID: 2, Date: "2024-03-02", Description: "CARD PAYMENT TRANSIT", Amount: decimal.RequireFromString("2.10")},
		{ID: 3, Date: "2024-03-03", Description: "CARD PAYMENT GROCER", Amount: decimal.RequireFromString("12.35")},
	}
	i := 0
	for e := range ledger.Expenses() {
		if !equalExpense(e, want[i]) {
			t.Errorf("Expense %d is wrong. Got: %+v, want: %+v", i, e, want[i])
		}
		i++
	}
}

func TestImportJSON_MissingField(t *testing.T) {
	document := `{"transactions": [{"bookingDate": "2024-03-01"}]}`
	mapping := JSONMapping{
		Records:     "$.transactions[*]",
		Date:        "$.bookingDate",
		Description: "$.label",
		Amount:      "$.amount",
	}

	ledger := NewLedger()
	if _, err := ImportJSON(strings.NewReader(document), mapping, ledger); err == nil {
		t.Fatalf("ImportJSON() accepted a record missing a mapped field")
	}
	if ledger.Len() != 0 {
		t.Errorf("Len() after a failed import. Got: %d, want: 0", ledger.Len())
	}
}
