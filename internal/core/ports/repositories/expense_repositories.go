package repositories

import (
	"context"

	"github.com/pasindulk/expense_chat_app/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpensesByAccount retrieves up to limit expenses for an account,
	// ordered by occurrence time descending.
	FindExpensesByAccount(ctx context.Context, accountID string, limit int) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense persists a new expense record. The insert is atomic: either
	// the full row exists afterwards or nothing does.
	SaveExpense(ctx context.Context, expense domain.Expense) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
