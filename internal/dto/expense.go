package dto

import (
	"time"

	"github.com/pasindulk/expense_chat_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	Limit int `form:"limit,default=50"`
}

// ExpenseResponse is the API representation of a recorded expense.
type ExpenseResponse struct {
	ExpenseID  string          `json:"expenseID"`
	LedgerID   *string         `json:"ledgerID,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Category   string          `json:"category"`
	Note       *string         `json:"note,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ListExpensesResponse wraps the list of expenses.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain.Expense to its API representation.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:  e.ExpenseID,
		LedgerID:   e.LedgerID,
		Amount:     e.Amount,
		Category:   e.Category,
		Note:       e.Note,
		OccurredAt: e.OccurredAt,
		CreatedAt:  e.CreatedAt,
	}
}

// ToListExpensesResponse converts a slice of domain.Expense to the list DTO.
func ToListExpensesResponse(expenses []domain.Expense) ListExpensesResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return ListExpensesResponse{Expenses: responses}
}
