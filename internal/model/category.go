package model

import (
	"fmt"
	"strings"

	"github.com/Veraticus/penny-wise/internal/common"
	"github.com/google/uuid"
)

// CategoryType indicates whether a category classifies income or expenses.
type CategoryType string

const (
	// CategoryTypeIncome represents categories for income transactions.
	CategoryTypeIncome CategoryType = "income"
	// CategoryTypeExpense represents categories for expense transactions.
	CategoryTypeExpense CategoryType = "expense"
)

// ParseCategoryType converts a user-supplied string to a CategoryType.
func ParseCategoryType(s string) (CategoryType, error) {
	switch CategoryType(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryTypeIncome:
		return CategoryTypeIncome, nil
	case CategoryTypeExpense:
		return CategoryTypeExpense, nil
	default:
		return "", fmt.Errorf("invalid category type %q", s)
	}
}

// Category is a user-defined classification for income or expense
// transactions, with an ordered list of subcategory names.
type Category struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Type          CategoryType `json:"type"`
	Subcategories []string     `json:"subcategories"`
}

// NewCategory creates a category with no subcategories. The name must be
// non-empty after trimming whitespace.
func NewCategory(name string, catType CategoryType) (Category, error) {
	if strings.TrimSpace(name) == "" {
		return Category{}, fmt.Errorf("%w: category name", common.ErrEmptyName)
	}

	return Category{
		ID:            uuid.NewString(),
		Name:          name,
		Type:          catType,
		Subcategories: []string{},
	}, nil
}
