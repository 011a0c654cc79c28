package ledger

import (
	"github.com/Veraticus/penny-wise/internal/model"
	"github.com/google/uuid"
)

// defaultCategories returns the starter category set installed on first run,
// when no categories record has ever been persisted.
func defaultCategories() []model.Category {
	seed := []struct {
		name          string
		catType       model.CategoryType
		subcategories []string
	}{
		{"Salary", model.CategoryTypeIncome, []string{"Monthly", "Bonus", "Freelance"}},
		{"Business", model.CategoryTypeIncome, []string{"Sales", "Investment"}},
		{"Food", model.CategoryTypeExpense, []string{"Groceries", "Restaurant", "Snacks"}},
		{"Transport", model.CategoryTypeExpense, []string{"Fuel", "Public Transport", "Maintenance"}},
		{"Shopping", model.CategoryTypeExpense, []string{"Clothes", "Electronics", "Others"}},
		{"Bills", model.CategoryTypeExpense, []string{"Electricity", "Water", "Internet", "Phone"}},
		{"Entertainment", model.CategoryTypeExpense, []string{"Movies", "Games", "Subscriptions"}},
	}

	categories := make([]model.Category, 0, len(seed))
	for _, s := range seed {
		categories = append(categories, model.Category{
			ID:            uuid.NewString(),
			Name:          s.name,
			Type:          s.catType,
			Subcategories: append([]string{}, s.subcategories...),
		})
	}
	return categories
}
