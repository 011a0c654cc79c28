// Package common provides shared utilities and types used across the application.
package common

import "errors"

// Common application errors.
var (
	// Validation errors.
	ErrInvalidAmount = errors.New("invalid amount")
	ErrMissingField  = errors.New("missing required field")
	ErrEmptyName     = errors.New("name cannot be empty")

	// Ledger errors.
	ErrNotFound = errors.New("not found")
)
