package main

import (
	"fmt"

	"github.com/Veraticus/penny-wise/internal/cli"
	"github.com/spf13/cobra"
)

func subcategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subcategories",
		Short: "Manage subcategories within a category",
	}

	cmd.AddCommand(addSubcategoryCmd())
	cmd.AddCommand(deleteSubcategoryCmd())

	return cmd
}

func addSubcategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <category-id> <name>",
		Short: "Add a subcategory to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := l.AddSubcategory(ctx, args[0], args[1]); err != nil {
				return fmt.Errorf("failed to add subcategory: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added subcategory %q", args[1])))
			return nil
		},
	}
}

func deleteSubcategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <category-id> <name>",
		Short: "Delete a subcategory from a category",
		Long:  `Remove a subcategory by exact name. Removing a name that is not present is a no-op.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := l.DeleteSubcategory(ctx, args[0], args[1]); err != nil {
				return fmt.Errorf("failed to delete subcategory: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted subcategory %q", args[1])))
			return nil
		},
	}
}
