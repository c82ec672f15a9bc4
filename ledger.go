package expense

import (
	"iter"

	"github.com/shopspring/decimal"
)

// Ledger holds the in-memory collection of expenses for one invocation.
//
// Records keep their collection order: file order for records read from
// disk, then append order for records created afterwards. Identifiers are
// never reused, even after a deletion, so that an id in a conversation or a
// script keeps pointing at the same purchase.
type Ledger struct {
	expenses []Expense
	nextID   int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{nextID: 1}
}

// Append adds an expense that already has an identifier, one read from a
// file or a previous export, and keeps the next free identifier strictly
// above every id seen so far.
func (l *Ledger) Append(e Expense) {
	l.expenses = append(l.expenses, e)
	if e.ID >= l.nextID {
		l.nextID = e.ID + 1
	}
}

// Insert creates an expense on the given date, assigns it the next free
// identifier and appends it to the ledger.
func (l *Ledger) Insert(date, description string, amount decimal.Decimal) Expense {
	e := Expense{
		ID:          l.nextID,
		Date:        date,
		Description: description,
		Amount:      amount,
	}
	l.expenses = append(l.expenses, e)
	l.nextID++
	return e
}

// Add creates an expense dated today and returns it.
//
// Add does not validate its arguments, rejecting blank descriptions or
// non-positive amounts is the command layer's job.
func (l *Ledger) Add(description string, amount decimal.Decimal) Expense {
	return l.Insert(Today(), description, amount)
}

// Expenses returns an iterator over the ledger in collection order.
//
// With no filter every expense is yielded, otherwise an expense is yielded
// when at least one filter accepts it.
func (l *Ledger) Expenses(filters ...Filter) iter.Seq[Expense] {
	return func(yield func(Expense) bool) {
		for _, e := range l.expenses {
			if !accept(e, filters) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

func accept(e Expense, filters []Filter) bool {
	if len(filters) == 0 {
		return true
	}
	for _, filter := range filters {
		if filter(e) {
			return true
		}
	}
	return false
}

// Sum totals the amounts of the expenses accepted by the filters, all of
// them when no filter is given.
func (l *Ledger) Sum(filters ...Filter) decimal.Decimal {
	total := decimal.Zero
	for e := range l.Expenses(filters...) {
		total = total.Add(e.Amount)
	}
	return total
}

// Delete removes the first expense with the given id and reports whether a
// record was removed.
func (l *Ledger) Delete(id int) bool {
	for i, e := range l.expenses {
		if e.ID == id {
			l.expenses = append(l.expenses[:i], l.expenses[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of expenses in the ledger.
func (l *Ledger) Len() int { return len(l.expenses) }

// NextID returns the identifier the next inserted expense will receive.
func (l *Ledger) NextID() int { return l.nextID }
