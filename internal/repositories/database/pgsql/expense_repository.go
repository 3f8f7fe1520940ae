package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pasindulk/expense_chat_app/internal/apperrors"
	"github.com/pasindulk/expense_chat_app/internal/core/domain"
	portsrepo "github.com/pasindulk/expense_chat_app/internal/core/ports/repositories"
	"github.com/pasindulk/expense_chat_app/internal/models"
	"github.com/pasindulk/expense_chat_app/internal/utils/mapping"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryFacade
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

// SaveExpense inserts a new expense. A single-row insert is atomic, so either
// the complete record exists afterwards or nothing does.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	modelExp := mapping.ToModelExpense(expense)

	query := `
		INSERT INTO expenses (expense_id, account_id, ledger_id, amount, category, note, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelExp.ExpenseID,
		modelExp.AccountID,
		modelExp.LedgerID,
		modelExp.Amount,
		modelExp.Category,
		modelExp.Note,
		modelExp.OccurredAt,
		modelExp.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: expense with ID %s already exists", apperrors.ErrDuplicate, modelExp.ExpenseID)
		}
		return fmt.Errorf("failed to save expense %s: %w", modelExp.ExpenseID, err)
	}
	return nil
}

// FindExpensesByAccount retrieves up to limit expenses for an account, newest
// first by occurrence time.
func (r *PgxExpenseRepository) FindExpensesByAccount(ctx context.Context, accountID string, limit int) ([]domain.Expense, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT expense_id, account_id, ledger_id, amount, category, note, occurred_at, created_at
		FROM expenses
		WHERE account_id = $1
		ORDER BY occurred_at DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses for account %s: %w", accountID, err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var m models.Expense
		err := rows.Scan(
			&m.ExpenseID,
			&m.AccountID,
			&m.LedgerID,
			&m.Amount,
			&m.Category,
			&m.Note,
			&m.OccurredAt,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row for account %s: %w", accountID, err)
		}
		expenses = append(expenses, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows for account %s: %w", accountID, err)
	}

	return mapping.ToDomainExpenseSlice(expenses), nil
}
