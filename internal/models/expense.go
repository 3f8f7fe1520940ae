package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the database representation of a recorded expense.
type Expense struct {
	ExpenseID  string          `db:"expense_id"`
	AccountID  string          `db:"account_id"`
	LedgerID   sql.NullString  `db:"ledger_id"`
	Amount     decimal.Decimal `db:"amount"`
	Category   string          `db:"category"`
	Note       sql.NullString  `db:"note"`
	OccurredAt time.Time       `db:"occurred_at"`
	CreatedAt  time.Time       `db:"created_at"`
}
