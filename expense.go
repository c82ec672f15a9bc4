package expense

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Expense is a single spending record in the ledger.
//
// The date is kept as a plain string: records created by this tool are
// stamped in DateFormat, but records read from the file keep whatever their
// line held, so that hand-edited ledgers round-trip unchanged.
type Expense struct {
	ID          int
	Date        string
	Description string
	Amount      decimal.Decimal
}

// MarshalJSON implements the json.Marshaler interface for Expense, in the
// export format field order.
func (e Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("date", e.Date)
	w.Append("description", e.Description)
	w.Append("amount", e.Amount)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Expense.
func (e *Expense) UnmarshalJSON(data []byte) error {
	var j jexpense
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	e.ID = j.ID
	e.Date = j.Date
	e.Description = j.Description
	e.Amount = j.Amount
	return nil
}

// Filter is a predicate selecting expenses out of a ledger.
type Filter func(e Expense) bool

// InMonth returns a filter accepting expenses whose date falls in the given
// month, as read by MonthOf.
func InMonth(month int) Filter {
	return func(e Expense) bool { return MonthOf(e.Date) == month }
}
