package main

import (
	"github.com/Veraticus/penny-wise/internal/tui"
	"github.com/spf13/cobra"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive tracker",
		Long: `Open the full-screen tracker: balance summary, add-transaction form
with income/expense/transfer tabs, and a filterable transaction list.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			l, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.Run(ctx, l)
		},
	}
}
