package tui

import (
	"context"
	"fmt"

	"github.com/Veraticus/penny-wise/internal/ledger"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive tracker over a hydrated ledger and blocks until
// the user quits.
func Run(ctx context.Context, l *ledger.Ledger) error {
	p := tea.NewProgram(newModel(ctx, l), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tracker exited with error: %w", err)
	}
	return nil
}
