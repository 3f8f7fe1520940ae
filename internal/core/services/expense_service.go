package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pasindulk/expense_chat_app/internal/apperrors"
	"github.com/pasindulk/expense_chat_app/internal/core/domain"
	portsrepo "github.com/pasindulk/expense_chat_app/internal/core/ports/repositories"
	portssvc "github.com/pasindulk/expense_chat_app/internal/core/ports/services"
	"github.com/pasindulk/expense_chat_app/internal/platform/config"
)

const defaultExpenseListLimit = 50

type expenseService struct {
	expenseRepo portsrepo.ExpenseRepositoryFacade
	ledgerMode  config.LedgerMode
}

// NewExpenseService creates the expense recorder. The ledger mode is fixed at
// construction; recording behavior with no explicit ledger must never depend
// on implicit branching.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, ledgerMode config.LedgerMode) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo, ledgerMode: ledgerMode}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// RecordExpense persists one expense. This is the single durability boundary
// of the inbound pipeline: once it returns nil error the expense is recorded,
// whatever happens to the mirror or the acknowledgment afterwards.
func (s *expenseService) RecordExpense(ctx context.Context, account *domain.Account, parsed domain.ParsedExpense, ledgerID *string, occurredAt *time.Time) (*domain.Expense, error) {
	if account == nil {
		return nil, apperrors.NewBadRequestError("account is required")
	}

	targetLedgerID, err := s.resolveLedgerID(account, ledgerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	occurred := now
	if occurredAt != nil {
		occurred = *occurredAt
	}

	var note *string
	if parsed.Note != "" {
		n := parsed.Note
		note = &n
	}

	expense := domain.Expense{
		ExpenseID:  uuid.NewString(),
		AccountID:  account.AccountID,
		LedgerID:   targetLedgerID,
		Amount:     parsed.Amount,
		Category:   parsed.Category,
		Note:       note,
		OccurredAt: occurred,
		CreatedAt:  now,
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to record expense", err)
	}

	return &expense, nil
}

// resolveLedgerID applies the cross-tenant check for explicit ledger ids and
// the configured mode for absent ones.
func (s *expenseService) resolveLedgerID(account *domain.Account, ledgerID *string) (*string, error) {
	if ledgerID != nil {
		if account.FindLedger(*ledgerID) == nil {
			return nil, apperrors.NewForbiddenError("ledger does not belong to this account")
		}
		return ledgerID, nil
	}

	if s.ledgerMode == config.LedgerModeAccountOnly {
		return nil, nil
	}

	defaultLedger := account.DefaultLedger()
	if defaultLedger == nil {
		return nil, apperrors.NewBadRequestError("no ledger registered for this account")
	}
	return &defaultLedger.LedgerID, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, accountID string, limit int) ([]domain.Expense, error) {
	if limit <= 0 {
		limit = defaultExpenseListLimit
	}
	expenses, err := s.expenseRepo.FindExpensesByAccount(ctx, accountID, limit)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list expenses", err)
	}
	return expenses, nil
}
