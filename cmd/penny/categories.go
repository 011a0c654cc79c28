package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/penny-wise/internal/cli"
	"github.com/Veraticus/penny-wise/internal/model"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage income and expense categories",
		Long:  `List, add, and delete the categories used to classify transactions.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		Long:  `Display all categories with their type and subcategories.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			l, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			categories := l.Categories()
			if len(categories) == 0 {
				fmt.Println(cli.InfoStyle.Render("No categories found. Use 'penny categories add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Subcategories"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 8),
				strings.Repeat("-", 16),
				strings.Repeat("-", 8),
				strings.Repeat("-", 32))

			for _, cat := range categories {
				subs := strings.Join(cat.Subcategories, ", ")
				if subs == "" {
					subs = cli.SubtleStyle.Render("(none)")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", cat.ID, cat.Name, cat.Type, subs)
			}

			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var categoryType string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Long:  `Create a new category. It starts with no subcategories.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			catType, err := model.ParseCategoryType(categoryType)
			if err != nil {
				return err
			}

			l, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cat, err := l.AddCategory(ctx, args[0], catType)
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created %s category %q (ID: %s)", cat.Type, cat.Name, cat.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryType, "type", "expense", "Category type (income, expense)")

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long: `Delete a category by id. Transactions that already reference the
category keep their original label.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			// Confirm deletion
			if !force {
				fmt.Printf("Are you sure you want to delete category %s? (y/N): ", id)
				var response string
				fmt.Scanln(&response)
				if strings.ToLower(response) != "y" {
					fmt.Println("Deletion cancelled.")
					return nil
				}
			}

			l, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := l.DeleteCategory(ctx, id); err != nil {
				return fmt.Errorf("failed to delete category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted category %s", id)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}
