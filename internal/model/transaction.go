package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/penny-wise/internal/common"
	"github.com/google/uuid"
)

// TransactionType discriminates the three kinds of recorded monetary events.
type TransactionType string

const (
	// TypeIncome represents money coming in.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money going out.
	TypeExpense TransactionType = "expense"
	// TypeTransfer represents a move between named accounts.
	TypeTransfer TransactionType = "transfer"
)

// ParseTransactionType converts a user-supplied string to a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeIncome:
		return TypeIncome, nil
	case TypeExpense:
		return TypeExpense, nil
	case TypeTransfer:
		return TypeTransfer, nil
	default:
		return "", fmt.Errorf("invalid transaction type %q", s)
	}
}

// Transaction represents a single recorded monetary event. Category and
// Subcategory are set only for income/expense entries; FromAccount and
// ToAccount only for transfers. Transactions are immutable once created.
type Transaction struct {
	Date        time.Time       `json:"date"`
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Category    string          `json:"category,omitempty"`
	Subcategory string          `json:"subcategory,omitempty"`
	FromAccount string          `json:"fromAccount,omitempty"`
	ToAccount   string          `json:"toAccount,omitempty"`
	Amount      float64         `json:"amount"`
}

// NewIncome creates an income transaction. Subcategory may be empty.
func NewIncome(amount float64, category, subcategory, description string, date time.Time) (Transaction, error) {
	return newCategorized(TypeIncome, amount, category, subcategory, description, date)
}

// NewExpense creates an expense transaction. Subcategory may be empty.
func NewExpense(amount float64, category, subcategory, description string, date time.Time) (Transaction, error) {
	return newCategorized(TypeExpense, amount, category, subcategory, description, date)
}

func newCategorized(txType TransactionType, amount float64, category, subcategory, description string, date time.Time) (Transaction, error) {
	if err := ValidateAmount(amount); err != nil {
		return Transaction{}, err
	}
	if strings.TrimSpace(category) == "" {
		return Transaction{}, fmt.Errorf("%w: category", common.ErrMissingField)
	}
	if err := validateCommon(description, date); err != nil {
		return Transaction{}, err
	}

	return Transaction{
		ID:          uuid.NewString(),
		Type:        txType,
		Amount:      amount,
		Category:    category,
		Subcategory: subcategory,
		Description: description,
		Date:        date,
	}, nil
}

// NewTransfer creates a transfer transaction between two named accounts.
// Transfers carry no category and never affect the balance.
func NewTransfer(amount float64, fromAccount, toAccount, description string, date time.Time) (Transaction, error) {
	if err := ValidateAmount(amount); err != nil {
		return Transaction{}, err
	}
	if strings.TrimSpace(fromAccount) == "" {
		return Transaction{}, fmt.Errorf("%w: from account", common.ErrMissingField)
	}
	if strings.TrimSpace(toAccount) == "" {
		return Transaction{}, fmt.Errorf("%w: to account", common.ErrMissingField)
	}
	if err := validateCommon(description, date); err != nil {
		return Transaction{}, err
	}

	return Transaction{
		ID:          uuid.NewString(),
		Type:        TypeTransfer,
		Amount:      amount,
		FromAccount: fromAccount,
		ToAccount:   toAccount,
		Description: description,
		Date:        date,
	}, nil
}

func validateCommon(description string, date time.Time) error {
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: description", common.ErrMissingField)
	}
	if date.IsZero() {
		return fmt.Errorf("%w: date", common.ErrMissingField)
	}
	return nil
}

// ValidateAmount rejects amounts that are not finite, positive numbers.
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("%w: not a finite number", common.ErrInvalidAmount)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: must be greater than zero", common.ErrInvalidAmount)
	}
	return nil
}

// ParseAmount parses a user-supplied amount string and validates it.
func ParseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q does not parse as a number", common.ErrInvalidAmount, s)
	}
	if err := ValidateAmount(amount); err != nil {
		return 0, err
	}
	return amount, nil
}

// Label returns the display label for a transaction: the account pair for
// transfers, the category (and subcategory when present) otherwise.
func (t Transaction) Label() string {
	if t.Type == TypeTransfer {
		return fmt.Sprintf("%s → %s", t.FromAccount, t.ToAccount)
	}
	if t.Subcategory != "" {
		return fmt.Sprintf("%s • %s", t.Category, t.Subcategory)
	}
	return t.Category
}

// SignedAmount formats the amount with the sign convention used in listings:
// income is positive, expense negative, transfers unsigned.
func (t Transaction) SignedAmount() string {
	switch t.Type {
	case TypeIncome:
		return fmt.Sprintf("+%.2f", t.Amount)
	case TypeExpense:
		return fmt.Sprintf("-%.2f", t.Amount)
	default:
		return fmt.Sprintf("%.2f", t.Amount)
	}
}
