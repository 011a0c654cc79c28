package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/penny-wise/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// maxListed bounds the transaction list so the screen never scrolls.
const maxListed = 12

var (
	accentColor  = lipgloss.Color("#2ECC71")
	incomeColor  = lipgloss.Color("#4ECDC4")
	expenseColor = lipgloss.Color("#FF6B6B")
	subtleColor  = lipgloss.Color("#666666")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	summaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtleColor).
			Padding(0, 2).
			MarginRight(1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			Underline(true).
			MarginRight(2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(subtleColor).
				MarginRight(2)

	labelStyle = lipgloss.NewStyle().
			Width(14).
			Foreground(subtleColor)

	focusedLabelStyle = lipgloss.NewStyle().
				Width(14).
				Bold(true).
				Foreground(accentColor)

	incomeStyle  = lipgloss.NewStyle().Foreground(incomeColor)
	expenseStyle = lipgloss.NewStyle().Foreground(expenseColor)
	subtleStyle  = lipgloss.NewStyle().Foreground(subtleColor)
	errorStyle   = lipgloss.NewStyle().Foreground(expenseColor)
	statusStyle  = lipgloss.NewStyle().Foreground(accentColor)
)

// View renders the whole screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render("💰 penny-wise"),
		m.viewSummary(),
		m.viewTabs(),
		m.viewForm(),
		m.viewTransactions(),
		m.viewHelp(),
	}

	return strings.Join(sections, "\n\n") + "\n"
}

func (m Model) viewSummary() string {
	s := m.ledger.Summary()

	box := func(label string, value float64, style lipgloss.Style) string {
		return summaryBoxStyle.Render(fmt.Sprintf("%s\n%s",
			subtleStyle.Render(label),
			style.Render(fmt.Sprintf("%.2f", value))))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		box("Balance", s.Balance, titleStyle),
		box("Income", s.Income, incomeStyle),
		box("Expense", s.Expense, expenseStyle),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for _, t := range tabOrder {
		label := strings.ToUpper(string(t)[:1]) + string(t)[1:]
		if t == m.tab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewForm() string {
	row := func(field int, label, value string) string {
		style := labelStyle
		if m.focus == field {
			style = focusedLabelStyle
		}
		return style.Render(label) + value
	}

	rows := []string{
		row(fieldAmount, "Amount", m.amount.View()),
	}

	if m.tab == model.TypeTransfer {
		rows = append(rows,
			row(fieldCategoryOrFrom, "From", m.from.View()),
			row(fieldSubcategoryOrTo, "To", m.to.View()),
		)
	} else {
		rows = append(rows,
			row(fieldCategoryOrFrom, "Category", m.viewCategoryPicker()),
			row(fieldSubcategoryOrTo, "Subcategory", m.viewSubcategoryPicker()),
		)
	}

	rows = append(rows,
		row(fieldDescription, "Description", m.description.View()),
		row(fieldDate, "Date", m.date.View()),
	)

	if m.errMsg != "" {
		rows = append(rows, errorStyle.Render("✗ "+m.errMsg))
	} else if m.status != "" {
		rows = append(rows, statusStyle.Render("✓ "+m.status))
	}

	return strings.Join(rows, "\n")
}

func (m Model) viewCategoryPicker() string {
	cats := m.ledger.CategoriesForType(m.tab)
	if len(cats) == 0 {
		return subtleStyle.Render("(no categories)")
	}
	idx := m.catIdx
	if idx >= len(cats) {
		idx = 0
	}
	return fmt.Sprintf("‹ %s ›", cats[idx].Name)
}

func (m Model) viewSubcategoryPicker() string {
	cats := m.ledger.CategoriesForType(m.tab)
	if len(cats) == 0 || m.catIdx >= len(cats) {
		return subtleStyle.Render("(none)")
	}
	subs := cats[m.catIdx].Subcategories
	if m.subIdx == 0 || m.subIdx > len(subs) {
		return "‹ (none) ›"
	}
	return fmt.Sprintf("‹ %s ›", subs[m.subIdx-1])
}

func (m Model) viewTransactions() string {
	filter := m.currentFilter()
	transactions := m.ledger.FilteredTransactions(filter)

	header := fmt.Sprintf("%s  %s",
		titleStyle.Render("Transactions"),
		subtleStyle.Render(fmt.Sprintf("type=%s category=%s", filter.Type, filter.Category)))

	if len(transactions) == 0 {
		return header + "\n" + subtleStyle.Render("  No transactions yet")
	}

	rows := []string{header}
	for i, t := range transactions {
		if i == maxListed {
			rows = append(rows, subtleStyle.Render(fmt.Sprintf("  … %d more", len(transactions)-maxListed)))
			break
		}

		amount := t.SignedAmount()
		switch t.Type {
		case model.TypeIncome:
			amount = incomeStyle.Render(amount)
		case model.TypeExpense:
			amount = expenseStyle.Render(amount)
		}

		rows = append(rows, fmt.Sprintf("  %s  %-24s %s  %s",
			t.Date.Format("2006-01-02"),
			t.Description,
			subtleStyle.Render(t.Label()),
			amount))
	}

	return strings.Join(rows, "\n")
}

func (m Model) viewHelp() string {
	var parts []string
	for _, b := range m.keymap.ShortHelp() {
		parts = append(parts, fmt.Sprintf("%s %s", b.Help().Key, b.Help().Desc))
	}
	return subtleStyle.Render(strings.Join(parts, " • "))
}
