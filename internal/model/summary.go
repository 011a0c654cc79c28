package model

// Summary holds the derived totals over the full transaction collection.
// Balance is income minus expense; transfers contribute to neither side.
type Summary struct {
	Income  float64
	Expense float64
	Balance float64
}
