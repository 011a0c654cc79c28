package ledger

import "github.com/Veraticus/penny-wise/internal/model"

// Summary recomputes the derived totals from the full transaction
// collection on every call. Transfers are informational moves between named
// accounts and contribute to neither side.
func (l *Ledger) Summary() model.Summary {
	var s model.Summary
	for _, t := range l.transactions {
		switch t.Type {
		case model.TypeIncome:
			s.Income += t.Amount
		case model.TypeExpense:
			s.Expense += t.Amount
		}
	}
	s.Balance = s.Income - s.Expense
	return s
}
