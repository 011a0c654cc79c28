package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/Veraticus/penny-wise/internal/cli"
	"github.com/Veraticus/penny-wise/internal/ledger"
	"github.com/Veraticus/penny-wise/internal/model"
	"github.com/spf13/cobra"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Record and list transactions",
		Long:  `Add income, expense, and transfer transactions, and list them with filters.`,
	}

	cmd.AddCommand(txAddCmd())
	cmd.AddCommand(txListCmd())

	return cmd
}

func txAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
	}

	cmd.AddCommand(txAddIncomeCmd())
	cmd.AddCommand(txAddExpenseCmd())
	cmd.AddCommand(txAddTransferCmd())

	return cmd
}

// categorizedFlags holds the flags shared by the income and expense forms.
type categorizedFlags struct {
	amount      string
	category    string
	subcategory string
	description string
	date        string
}

func (f *categorizedFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.amount, "amount", "", "Amount (must be a positive number)")
	cmd.Flags().StringVar(&f.category, "category", "", "Category name")
	cmd.Flags().StringVar(&f.subcategory, "subcategory", "", "Subcategory name (optional)")
	cmd.Flags().StringVar(&f.description, "description", "", "Description")
	cmd.Flags().StringVar(&f.date, "date", "", "Date in YYYY-MM-DD form (default: today)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("description")
}

func txAddIncomeCmd() *cobra.Command {
	var flags categorizedFlags

	cmd := &cobra.Command{
		Use:   "income",
		Short: "Record an income transaction",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAddCategorized(cmd.Context(), model.TypeIncome, flags)
		},
	}

	flags.register(cmd)
	return cmd
}

func txAddExpenseCmd() *cobra.Command {
	var flags categorizedFlags

	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record an expense transaction",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAddCategorized(cmd.Context(), model.TypeExpense, flags)
		},
	}

	flags.register(cmd)
	return cmd
}

func runAddCategorized(ctx context.Context, txType model.TransactionType, flags categorizedFlags) error {
	amount, err := model.ParseAmount(flags.amount)
	if err != nil {
		return err
	}

	date, err := parseDate(flags.date)
	if err != nil {
		return err
	}

	var t model.Transaction
	if txType == model.TypeIncome {
		t, err = model.NewIncome(amount, flags.category, flags.subcategory, flags.description, date)
	} else {
		t, err = model.NewExpense(amount, flags.category, flags.subcategory, flags.description, date)
	}
	if err != nil {
		return err
	}

	l, cleanup, err := initLedger(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := l.AddTransaction(ctx, t); err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s of %.2f (%s)", txType, t.Amount, t.Label())))
	return nil
}

func txAddTransferCmd() *cobra.Command {
	var (
		amount      string
		fromAccount string
		toAccount   string
		description string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Record a transfer between accounts",
		Long:  `Record a move between two named accounts. Transfers never change the balance.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			parsed, err := model.ParseAmount(amount)
			if err != nil {
				return err
			}

			when, err := parseDate(date)
			if err != nil {
				return err
			}

			t, err := model.NewTransfer(parsed, fromAccount, toAccount, description, when)
			if err != nil {
				return err
			}

			l, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := l.AddTransaction(ctx, t); err != nil {
				return fmt.Errorf("failed to record transfer: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded transfer of %.2f (%s)", t.Amount, t.Label())))
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "Amount (must be a positive number)")
	cmd.Flags().StringVar(&fromAccount, "from", "", "Source account")
	cmd.Flags().StringVar(&toAccount, "to", "", "Destination account")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&date, "date", "", "Date in YYYY-MM-DD form (default: today)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func txListCmd() *cobra.Command {
	var (
		typeFilter     string
		categoryFilter string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if typeFilter != ledger.FilterAll {
				if _, err := model.ParseTransactionType(typeFilter); err != nil {
					return err
				}
			}

			l, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			transactions := l.FilteredTransactions(ledger.Filter{
				Type:     typeFilter,
				Category: categoryFilter,
			})

			if len(transactions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions yet."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Description"),
				cli.HeaderStyle.Render("Details"),
				cli.HeaderStyle.Render("Amount"))

			for _, t := range transactions {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					t.Date.Format("2006-01-02"),
					t.Type,
					t.Description,
					cli.SubtleStyle.Render(t.Label()),
					cli.StyleAmount(string(t.Type), t.SignedAmount()))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&typeFilter, "type", ledger.FilterAll, "Filter by type (all, income, expense, transfer)")
	cmd.Flags().StringVar(&categoryFilter, "category", ledger.FilterAll, "Filter by category name")

	return cmd
}

// parseDate parses a YYYY-MM-DD flag value, defaulting to today.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}

	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return date, nil
}
