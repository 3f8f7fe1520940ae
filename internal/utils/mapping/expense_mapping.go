package mapping

import (
	"database/sql"

	"github.com/pasindulk/expense_chat_app/internal/core/domain"
	"github.com/pasindulk/expense_chat_app/internal/models"
)

// ToModelExpense converts a domain.Expense to its database model.
func ToModelExpense(d domain.Expense) models.Expense {
	ledgerID := sql.NullString{}
	if d.LedgerID != nil {
		ledgerID = sql.NullString{String: *d.LedgerID, Valid: true}
	}
	note := sql.NullString{}
	if d.Note != nil {
		note = sql.NullString{String: *d.Note, Valid: true}
	}
	return models.Expense{
		ExpenseID:  d.ExpenseID,
		AccountID:  d.AccountID,
		LedgerID:   ledgerID,
		Amount:     d.Amount,
		Category:   d.Category,
		Note:       note,
		OccurredAt: d.OccurredAt,
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainExpense converts a models.Expense to its domain representation.
func ToDomainExpense(m models.Expense) domain.Expense {
	var ledgerID *string
	if m.LedgerID.Valid {
		v := m.LedgerID.String
		ledgerID = &v
	}
	var note *string
	if m.Note.Valid {
		v := m.Note.String
		note = &v
	}
	return domain.Expense{
		ExpenseID:  m.ExpenseID,
		AccountID:  m.AccountID,
		LedgerID:   ledgerID,
		Amount:     m.Amount,
		Category:   m.Category,
		Note:       note,
		OccurredAt: m.OccurredAt,
		CreatedAt:  m.CreatedAt,
	}
}

// ToDomainExpenseSlice converts a slice of models.Expense to domain expenses.
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
