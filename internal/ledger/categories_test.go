package ledger_test

import (
	"context"
	"testing"

	"github.com/Veraticus/penny-wise/internal/common"
	"github.com/Veraticus/penny-wise/internal/model"
	"github.com/Veraticus/penny-wise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCategory(t *testing.T) {
	ctx := context.Background()
	l := testutil.SetupTestLedger(t)

	cat, err := l.AddCategory(ctx, "Health", model.CategoryTypeExpense)
	require.NoError(t, err)

	assert.NotEmpty(t, cat.ID)
	assert.Equal(t, "Health", cat.Name)
	assert.Equal(t, model.CategoryTypeExpense, cat.Type)
	assert.Empty(t, cat.Subcategories)
	assert.Len(t, l.Categories(), 8)
}

func TestAddCategoryRejectsBlankNames(t *testing.T) {
	ctx := context.Background()
	l := testutil.SetupTestLedger(t)

	before := len(l.Categories())

	for _, name := range []string{"", "   ", "\t"} {
		_, err := l.AddCategory(ctx, name, model.CategoryTypeExpense)
		require.ErrorIs(t, err, common.ErrEmptyName)
	}

	assert.Len(t, l.Categories(), before)
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()
	l := testutil.SetupTestLedger(t)

	food := l.CategoryByName("Food")
	require.NotNil(t, food)

	require.NoError(t, l.DeleteCategory(ctx, food.ID))

	assert.Len(t, l.Categories(), 6)
	assert.Nil(t, l.CategoryByID(food.ID))
}

func TestDeleteCategoryAbsentIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	l := testutil.SetupTestLedger(t)

	require.NoError(t, l.DeleteCategory(ctx, "no-such-id"))
	assert.Len(t, l.Categories(), 7)
}

func TestDeleteCategoryLeavesTransactionsUntouched(t *testing.T) {
	ctx := context.Background()
	l := testutil.SetupTestLedger(t)

	tx := mustExpense(t, 15, "Food", "lunch")
	require.NoError(t, l.AddTransaction(ctx, tx))

	food := l.CategoryByName("Food")
	require.NotNil(t, food)
	require.NoError(t, l.DeleteCategory(ctx, food.ID))

	// Deletion never cascades: the transaction keeps its original label.
	transactions := l.Transactions()
	require.Len(t, transactions, 1)
	assert.Equal(t, "Food", transactions[0].Category)
}

func TestSubcategoryLifecycle(t *testing.T) {
	ctx := context.Background()
	l := testutil.SetupTestLedger(t)

	cat, err := l.AddCategory(ctx, "Health", model.CategoryTypeExpense)
	require.NoError(t, err)

	require.NoError(t, l.AddSubcategory(ctx, cat.ID, "Pharmacy"))

	got := l.CategoryByID(cat.ID)
	require.NotNil(t, got)
	assert.Equal(t, []string{"Pharmacy"}, got.Subcategories)

	require.NoError(t, l.DeleteSubcategory(ctx, cat.ID, "Pharmacy"))

	got = l.CategoryByID(cat.ID)
	require.NotNil(t, got)
	assert.Empty(t, got.Subcategories)
}

func TestAddSubcategoryValidation(t *testing.T) {
	ctx := context.Background()
	l := testutil.SetupTestLedger(t)

	salary := l.CategoryByName("Salary")
	require.NotNil(t, salary)

	err := l.AddSubcategory(ctx, salary.ID, "  ")
	assert.ErrorIs(t, err, common.ErrEmptyName)

	err = l.AddSubcategory(ctx, "no-such-id", "Pharmacy")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteSubcategoryIsIdempotent(t *testing.T) {
	ctx := context.Background()
	l := testutil.SetupTestLedger(t)

	salary := l.CategoryByName("Salary")
	require.NotNil(t, salary)
	require.Contains(t, salary.Subcategories, "Bonus")

	require.NoError(t, l.DeleteSubcategory(ctx, salary.ID, "Bonus"))
	require.NoError(t, l.DeleteSubcategory(ctx, salary.ID, "Bonus"))

	got := l.CategoryByID(salary.ID)
	require.NotNil(t, got)
	assert.Equal(t, []string{"Monthly", "Freelance"}, got.Subcategories)
}

func TestDeleteSubcategoryRemovesAllOccurrences(t *testing.T) {
	ctx := context.Background()
	l := testutil.SetupTestLedger(t)

	cat, err := l.AddCategory(ctx, "Misc", model.CategoryTypeExpense)
	require.NoError(t, err)

	// Uniqueness is by convention only, so duplicates can exist.
	require.NoError(t, l.AddSubcategory(ctx, cat.ID, "Other"))
	require.NoError(t, l.AddSubcategory(ctx, cat.ID, "Other"))

	require.NoError(t, l.DeleteSubcategory(ctx, cat.ID, "Other"))

	got := l.CategoryByID(cat.ID)
	require.NotNil(t, got)
	assert.Empty(t, got.Subcategories)
}

func TestCategoriesForType(t *testing.T) {
	l := testutil.SetupTestLedger(t)

	income := l.CategoriesForType(model.TypeIncome)
	require.Len(t, income, 2)
	for _, cat := range income {
		assert.Equal(t, model.CategoryTypeIncome, cat.Type)
	}

	expense := l.CategoriesForType(model.TypeExpense)
	assert.Len(t, expense, 5)

	assert.Empty(t, l.CategoriesForType(model.TypeTransfer))
}
