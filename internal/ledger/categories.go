package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/penny-wise/internal/common"
	"github.com/Veraticus/penny-wise/internal/model"
)

// Categories returns the full category collection.
func (l *Ledger) Categories() []model.Category {
	out := make([]model.Category, len(l.categories))
	copy(out, l.categories)
	return out
}

// CategoriesForType returns the categories offered for a transaction type:
// income categories for income, expense categories for expense, none for
// transfers (transfers are uncategorized).
func (l *Ledger) CategoriesForType(txType model.TransactionType) []model.Category {
	var out []model.Category
	for _, cat := range l.categories {
		if string(cat.Type) == string(txType) {
			out = append(out, cat)
		}
	}
	return out
}

// CategoryByID returns the category with the given id, or nil.
func (l *Ledger) CategoryByID(id string) *model.Category {
	for i := range l.categories {
		if l.categories[i].ID == id {
			cat := l.categories[i]
			return &cat
		}
	}
	return nil
}

// CategoryByName returns the first category with the given name, or nil.
// Names are unique by convention only, so first match wins.
func (l *Ledger) CategoryByName(name string) *model.Category {
	for i := range l.categories {
		if l.categories[i].Name == name {
			cat := l.categories[i]
			return &cat
		}
	}
	return nil
}

// AddCategory appends a new category with no subcategories.
func (l *Ledger) AddCategory(ctx context.Context, name string, catType model.CategoryType) (model.Category, error) {
	cat, err := model.NewCategory(name, catType)
	if err != nil {
		return model.Category{}, err
	}

	next := append(l.Categories(), cat)
	if err := l.commitCategories(ctx, next); err != nil {
		return model.Category{}, err
	}

	slog.Info("created category", "name", cat.Name, "type", cat.Type, "id", cat.ID)
	return cat, nil
}

// DeleteCategory removes the category with the given id. Deleting an absent
// id is a harmless no-op. Existing transactions that reference the
// category's name keep their original label; nothing cascades.
func (l *Ledger) DeleteCategory(ctx context.Context, id string) error {
	next := make([]model.Category, 0, len(l.categories))
	for _, cat := range l.categories {
		if cat.ID != id {
			next = append(next, cat)
		}
	}

	if err := l.commitCategories(ctx, next); err != nil {
		return err
	}

	slog.Info("deleted category", "id", id)
	return nil
}

// AddSubcategory appends a subcategory name to the target category. The name
// must be non-empty after trimming and the category must exist.
func (l *Ledger) AddSubcategory(ctx context.Context, categoryID, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: subcategory name", common.ErrEmptyName)
	}

	next := l.Categories()
	found := false
	for i := range next {
		if next[i].ID == categoryID {
			next[i].Subcategories = append(append([]string{}, next[i].Subcategories...), name)
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("category %q: %w", categoryID, common.ErrNotFound)
	}

	return l.commitCategories(ctx, next)
}

// DeleteSubcategory removes every occurrence of name from the target
// category's subcategory list, by exact string match. Removing a name that
// is not present, or from a category that does not exist, is a no-op; the
// call is idempotent.
func (l *Ledger) DeleteSubcategory(ctx context.Context, categoryID, name string) error {
	next := l.Categories()
	for i := range next {
		if next[i].ID != categoryID {
			continue
		}
		kept := make([]string, 0, len(next[i].Subcategories))
		for _, sub := range next[i].Subcategories {
			if sub != name {
				kept = append(kept, sub)
			}
		}
		next[i].Subcategories = kept
	}

	return l.commitCategories(ctx, next)
}
