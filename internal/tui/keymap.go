package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	NextField     key.Binding
	PrevField     key.Binding
	CycleOption   key.Binding
	CycleTab      key.Binding
	Submit        key.Binding
	CycleTypeFilt key.Binding
	CycleCatFilt  key.Binding
	Quit          key.Binding
	ForceQuit     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("Tab/↓", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-Tab/↑", "previous field"),
		),
		CycleOption: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←/→", "cycle choice"),
		),
		CycleTab: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("Ctrl+T", "income/expense/transfer"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "add transaction"),
		),
		CycleTypeFilt: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("Ctrl+F", "cycle type filter"),
		),
		CycleCatFilt: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("Ctrl+G", "cycle category filter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.CycleTab, k.Submit, k.CycleTypeFilt, k.Quit}
}
