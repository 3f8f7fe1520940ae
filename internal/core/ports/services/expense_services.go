package services

import (
	"context"
	"time"

	"github.com/pasindulk/expense_chat_app/internal/core/domain"
)

// ExpenseRecorderSvc defines the durable expense write
type ExpenseRecorderSvc interface {
	// RecordExpense persists a parsed expense against the account. A non-nil
	// ledgerID must belong to the account; a nil ledgerID falls back to the
	// configured ledger mode. A nil occurredAt defaults to the current time.
	// Once this returns successfully the expense is recorded regardless of
	// what happens downstream.
	RecordExpense(ctx context.Context, account *domain.Account, parsed domain.ParsedExpense, ledgerID *string, occurredAt *time.Time) (*domain.Expense, error)
}

// ExpenseReaderSvc defines read operations for expense data
type ExpenseReaderSvc interface {
	// ListExpenses retrieves the account's expenses, newest first.
	ListExpenses(ctx context.Context, accountID string, limit int) ([]domain.Expense, error)
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseRecorderSvc
	ExpenseReaderSvc
}
