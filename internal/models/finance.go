package models

import "time"

// TransactionKind distinguishes money in from money out.
type TransactionKind string

const (
	TransactionIncome  TransactionKind = "income"
	TransactionExpense TransactionKind = "expense"
)

// Valid reports whether k is a known transaction kind.
func (k TransactionKind) Valid() bool {
	return k == TransactionIncome || k == TransactionExpense
}

// Transaction is a single ledger entry. Amounts are stored in cents to
// avoid floating-point drift.
type Transaction struct {
	ID          string          `json:"id"`
	Kind        TransactionKind `json:"kind"`
	AmountCents int64           `json:"amount_cents"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	Day         string          `json:"day"` // YYYY-MM-DD format
	CreatedAt   time.Time       `json:"created_at"`
}
