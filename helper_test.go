package expense

// equalExpense compares two expenses field by field, with decimal equality
// for the amount so that 3.5 and 3.50 compare equal.
func equalExpense(a, b Expense) bool {
	return a.ID == b.ID &&
		a.Date == b.Date &&
		a.Description == b.Description &&
		a.Amount.Equal(b.Amount)
}
