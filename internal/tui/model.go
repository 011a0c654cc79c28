// Package tui implements the interactive single-screen tracker: a balance
// header, an add-transaction form with income/expense/transfer tabs, and a
// filterable transaction list.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/penny-wise/internal/ledger"
	"github.com/Veraticus/penny-wise/internal/model"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Form field positions. Fields 1 and 2 are the category/subcategory pickers
// on the income and expense tabs, and the from/to inputs on the transfer tab.
const (
	fieldAmount = iota
	fieldCategoryOrFrom
	fieldSubcategoryOrTo
	fieldDescription
	fieldDate
	fieldCount
)

var tabOrder = []model.TransactionType{
	model.TypeIncome,
	model.TypeExpense,
	model.TypeTransfer,
}

var typeFilters = []string{
	ledger.FilterAll,
	string(model.TypeIncome),
	string(model.TypeExpense),
	string(model.TypeTransfer),
}

// Model holds the tracker state.
type Model struct {
	ctx         context.Context
	ledger      *ledger.Ledger
	keymap      KeyMap
	amount      textinput.Model
	from        textinput.Model
	to          textinput.Model
	description textinput.Model
	date        textinput.Model
	status      string
	errMsg      string
	tab         model.TransactionType
	focus       int
	catIdx      int
	subIdx      int
	typeFiltIdx int
	catFiltIdx  int
	width       int
	height      int
	quitting    bool
}

func newModel(ctx context.Context, l *ledger.Ledger) Model {
	newInput := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		return in
	}

	m := Model{
		ctx:         ctx,
		ledger:      l,
		keymap:      DefaultKeyMap(),
		tab:         model.TypeExpense,
		amount:      newInput("0.00", 16),
		from:        newInput("Source account", 40),
		to:          newInput("Destination account", 40),
		description: newInput("Description", 80),
		date:        newInput("YYYY-MM-DD", 10),
	}
	m.date.SetValue(time.Now().Format("2006-01-02"))
	m.amount.Focus()

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, textinput.Blink)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit), key.Matches(msg, m.keymap.ForceQuit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keymap.CycleTab):
			m.cycleTab()
			return m, nil

		case key.Matches(msg, m.keymap.NextField):
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil

		case key.Matches(msg, m.keymap.PrevField):
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil

		case key.Matches(msg, m.keymap.CycleOption) && m.pickerFocused():
			m.cyclePicker(msg.String() == "right")
			return m, nil

		case key.Matches(msg, m.keymap.CycleTypeFilt):
			m.typeFiltIdx = (m.typeFiltIdx + 1) % len(typeFilters)
			return m, nil

		case key.Matches(msg, m.keymap.CycleCatFilt):
			m.catFiltIdx = (m.catFiltIdx + 1) % len(m.categoryFilters())
			return m, nil

		case key.Matches(msg, m.keymap.Submit):
			m.submit()
			return m, nil
		}
	}

	if in := m.focusedInput(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return m, cmd
	}
	return m, nil
}

// cycleTab advances to the next transaction type tab and resets the pickers,
// mirroring the form reset the tab switch implies.
func (m *Model) cycleTab() {
	for i, t := range tabOrder {
		if t == m.tab {
			m.tab = tabOrder[(i+1)%len(tabOrder)]
			break
		}
	}
	m.catIdx = 0
	m.subIdx = 0
	m.status = ""
	m.errMsg = ""
	m.setFocus(fieldAmount)
}

func (m *Model) setFocus(focus int) {
	m.focus = focus
	for _, in := range []*textinput.Model{&m.amount, &m.from, &m.to, &m.description, &m.date} {
		in.Blur()
	}
	if in := m.focusedInput(); in != nil {
		in.Focus()
	}
}

// focusedInput returns the text input under focus, or nil when a picker is
// focused instead.
func (m *Model) focusedInput() *textinput.Model {
	switch m.focus {
	case fieldAmount:
		return &m.amount
	case fieldCategoryOrFrom:
		if m.tab == model.TypeTransfer {
			return &m.from
		}
	case fieldSubcategoryOrTo:
		if m.tab == model.TypeTransfer {
			return &m.to
		}
	case fieldDescription:
		return &m.description
	case fieldDate:
		return &m.date
	}
	return nil
}

func (m *Model) pickerFocused() bool {
	if m.tab == model.TypeTransfer {
		return false
	}
	return m.focus == fieldCategoryOrFrom || m.focus == fieldSubcategoryOrTo
}

// cyclePicker moves the focused picker through its options. The subcategory
// picker includes a leading "(none)" choice; changing category resets it.
func (m *Model) cyclePicker(forward bool) {
	cats := m.ledger.CategoriesForType(m.tab)
	if len(cats) == 0 {
		return
	}

	step := -1
	if forward {
		step = 1
	}

	if m.focus == fieldCategoryOrFrom {
		m.catIdx = (m.catIdx + step + len(cats)) % len(cats)
		m.subIdx = 0
		return
	}

	options := len(cats[m.catIdx].Subcategories) + 1
	m.subIdx = (m.subIdx + step + options) % options
}

// submit validates the form and records the transaction. Validation failures
// leave all state unchanged and surface on the error line.
func (m *Model) submit() {
	m.status = ""
	m.errMsg = ""

	amount, err := model.ParseAmount(m.amount.Value())
	if err != nil {
		m.errMsg = err.Error()
		return
	}

	date, err := time.Parse("2006-01-02", m.date.Value())
	if err != nil {
		m.errMsg = fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", m.date.Value())
		return
	}

	var t model.Transaction
	if m.tab == model.TypeTransfer {
		t, err = model.NewTransfer(amount, m.from.Value(), m.to.Value(), m.description.Value(), date)
	} else {
		cats := m.ledger.CategoriesForType(m.tab)
		if len(cats) == 0 {
			m.errMsg = fmt.Sprintf("no %s categories exist yet", m.tab)
			return
		}
		cat := cats[m.catIdx]

		subcategory := ""
		if m.subIdx > 0 {
			subcategory = cat.Subcategories[m.subIdx-1]
		}

		if m.tab == model.TypeIncome {
			t, err = model.NewIncome(amount, cat.Name, subcategory, m.description.Value(), date)
		} else {
			t, err = model.NewExpense(amount, cat.Name, subcategory, m.description.Value(), date)
		}
	}
	if err != nil {
		m.errMsg = err.Error()
		return
	}

	if err := m.ledger.AddTransaction(m.ctx, t); err != nil {
		m.errMsg = err.Error()
		return
	}

	m.status = fmt.Sprintf("Recorded %s of %.2f", t.Type, t.Amount)
	m.amount.SetValue("")
	m.description.SetValue("")
	m.from.SetValue("")
	m.to.SetValue("")
	m.subIdx = 0
	m.setFocus(fieldAmount)
}

// categoryFilters returns the category filter cycle: "all" plus every
// category name.
func (m *Model) categoryFilters() []string {
	filters := []string{ledger.FilterAll}
	for _, cat := range m.ledger.Categories() {
		filters = append(filters, cat.Name)
	}
	return filters
}

// currentFilter builds the ledger filter from the two filter cursors.
func (m *Model) currentFilter() ledger.Filter {
	catFilters := m.categoryFilters()
	if m.catFiltIdx >= len(catFilters) {
		m.catFiltIdx = 0
	}
	return ledger.Filter{
		Type:     typeFilters[m.typeFiltIdx],
		Category: catFilters[m.catFiltIdx],
	}
}
