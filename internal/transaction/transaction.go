package transaction

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Type represents the type of transaction (income or expense).
// The values match the persisted wire format and are never translated.
type Type string

const (
	TypeIncome  Type = "ingreso"
	TypeExpense Type = "gasto"
)

// Valid reports whether t is one of the two known transaction types.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// ErrValidation is the base error for all transaction validation failures.
// Use errors.Is(err, ErrValidation) at API boundaries.
var ErrValidation = errors.New("invalid transaction")

var (
	ErrInvalidType      = fmt.Errorf("%w: type must be %q or %q", ErrValidation, TypeIncome, TypeExpense)
	ErrEmptyCategory    = fmt.Errorf("%w: category is required", ErrValidation)
	ErrEmptyDescription = fmt.Errorf("%w: description is required", ErrValidation)
	ErrInvalidAmount    = fmt.Errorf("%w: amount must be a positive number", ErrValidation)
	ErrInvalidDate      = fmt.Errorf("%w: date is required", ErrValidation)
)

// Transaction represents a single recorded income or expense entry.
// Transactions are immutable once created; the ledger replaces them
// only by deletion.
type Transaction struct {
	ID          int64
	Type        Type
	Category    string
	Description string
	Amount      int64 // Amount in cents
	Date        time.Time
	CreatedAt   time.Time
}

// CreateParams holds the user-supplied fields for a new transaction.
// The ledger assigns ID and CreatedAt.
type CreateParams struct {
	Type        Type
	Category    string
	Description string
	Amount      int64 // Amount in cents
	Date        time.Time
}

// Validate checks all creation invariants. It returns the first violation
// found, wrapped in ErrValidation.
func (p CreateParams) Validate() error {
	if !p.Type.Valid() {
		return ErrInvalidType
	}

	if strings.TrimSpace(p.Category) == "" {
		return ErrEmptyCategory
	}

	if strings.TrimSpace(p.Description) == "" {
		return ErrEmptyDescription
	}

	if p.Amount <= 0 {
		return ErrInvalidAmount
	}

	if p.Date.IsZero() {
		return ErrInvalidDate
	}

	return nil
}

// ParseDate parses a YYYY-MM-DD date string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a valid YYYY-MM-DD date", ErrValidation, s)
	}

	return t.UTC(), nil
}

// SameMonth reports whether the transaction's date falls in the given
// calendar year and month.
func (t Transaction) SameMonth(year int, month time.Month) bool {
	return t.Date.Year() == year && t.Date.Month() == month
}
