package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ParsedExpense is the structured result of parsing one inbound message. It is
// never persisted directly; the recorder consumes it within the same request.
type ParsedExpense struct {
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Note     string          `json:"note,omitempty"`
}

// Expense represents a recorded expense. Immutable once created.
type Expense struct {
	ExpenseID  string          `json:"expenseID"` // Primary Key (UUID)
	AccountID  string          `json:"accountID"`
	LedgerID   *string         `json:"ledgerID,omitempty"` // Nullable; nil in account-only mode
	Amount     decimal.Decimal `json:"amount"`
	Category   string          `json:"category"`
	Note       *string         `json:"note,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
	CreatedAt  time.Time       `json:"createdAt"`
}
