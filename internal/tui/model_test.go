package tui

import (
	"context"
	"testing"

	"github.com/Veraticus/penny-wise/internal/ledger"
	"github.com/Veraticus/penny-wise/internal/model"
	"github.com/Veraticus/penny-wise/internal/storage"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	l := ledger.New(storage.NewMemoryStore())
	require.NoError(t, l.Load(context.Background()))

	return newModel(context.Background(), l)
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, model.TypeExpense, m.tab)
	assert.Equal(t, fieldAmount, m.focus)
	assert.NotEmpty(t, m.date.Value(), "date should default to today")
}

func TestCycleTab(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = updated.(Model)
	assert.Equal(t, model.TypeTransfer, m.tab)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = updated.(Model)
	assert.Equal(t, model.TypeIncome, m.tab)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = updated.(Model)
	assert.Equal(t, model.TypeExpense, m.tab)
}

func TestFieldNavigationWraps(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, fieldCategoryOrFrom, m.focus)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	assert.Equal(t, fieldAmount, m.focus)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	assert.Equal(t, fieldDate, m.focus)
}

func TestSubmitRejectsInvalidAmount(t *testing.T) {
	m := newTestModel(t)
	m.amount.SetValue("not-a-number")
	m.description.SetValue("lunch")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	assert.NotEmpty(t, m.errMsg)
	assert.Empty(t, m.ledger.Transactions(), "rejected submission must not change state")
}

func TestSubmitRecordsExpense(t *testing.T) {
	m := newTestModel(t)
	m.amount.SetValue("12.50")
	m.description.SetValue("lunch")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	require.Empty(t, m.errMsg)
	assert.NotEmpty(t, m.status)

	transactions := m.ledger.Transactions()
	require.Len(t, transactions, 1)
	assert.Equal(t, model.TypeExpense, transactions[0].Type)
	assert.InDelta(t, 12.50, transactions[0].Amount, 1e-9)

	// Form resets for the next entry.
	assert.Empty(t, m.amount.Value())
	assert.Empty(t, m.description.Value())
}

func TestSubmitRecordsTransfer(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = updated.(Model)
	require.Equal(t, model.TypeTransfer, m.tab)

	m.amount.SetValue("500")
	m.from.SetValue("Checking")
	m.to.SetValue("Savings")
	m.description.SetValue("stash")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	require.Empty(t, m.errMsg)

	transactions := m.ledger.Transactions()
	require.Len(t, transactions, 1)
	assert.Equal(t, model.TypeTransfer, transactions[0].Type)
	assert.Equal(t, "Checking → Savings", transactions[0].Label())

	s := m.ledger.Summary()
	assert.Zero(t, s.Balance, "transfers never change the balance")
}

func TestPickerCycling(t *testing.T) {
	m := newTestModel(t)

	// Focus the category picker on the expense tab.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	require.True(t, m.pickerFocused())

	expenseCount := len(m.ledger.CategoriesForType(model.TypeExpense))
	require.Greater(t, expenseCount, 1)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)
	assert.Equal(t, 1, m.catIdx)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(Model)
	assert.Equal(t, 0, m.catIdx)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(Model)
	assert.Equal(t, expenseCount-1, m.catIdx, "picker wraps backwards")
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewRenders(t *testing.T) {
	m := newTestModel(t)
	m.width = 100
	m.height = 40

	view := m.View()
	assert.Contains(t, view, "penny-wise")
	assert.Contains(t, view, "Balance")
	assert.Contains(t, view, "No transactions yet")
}
