package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/pasindulk/expense_chat_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo: accountRepo,
		ExpenseRepo: expenseRepo,
	}
}
