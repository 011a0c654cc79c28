package main

import (
	"fmt"

	"github.com/Veraticus/penny-wise/internal/cli"
	"github.com/spf13/cobra"
)

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show income, expense, and balance totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			l, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s := l.Summary()

			fmt.Println(cli.FormatTitle("Balance"))
			fmt.Printf("  Total Income   %s\n", cli.IncomeStyle.Render(fmt.Sprintf("%.2f", s.Income)))
			fmt.Printf("  Total Expense  %s\n", cli.ExpenseStyle.Render(fmt.Sprintf("%.2f", s.Expense)))
			fmt.Printf("  Total Balance  %s\n", cli.HeaderStyle.Render(fmt.Sprintf("%.2f", s.Balance)))

			return nil
		},
	}
}
