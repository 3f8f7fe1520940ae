package repositories

import (
	"context"

	"github.com/pasindulk/expense_chat_app/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its ID, including its
	// phone variants and ledgers (ledgers in registration order).
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByEmail retrieves an account by its display email.
	FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error)

	// FindAccountByPhoneVariants retrieves the account owning any of the given
	// phone-number variants. Returns apperrors.ErrNotFound when none match.
	FindAccountByPhoneVariants(ctx context.Context, variants []string) (*domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account together with its phone variants and
	// ledgers in one transaction. Returns apperrors.ErrDuplicate when a phone
	// variant or email is already claimed.
	SaveAccount(ctx context.Context, account domain.Account) error

	// AddPhoneVariant appends a phone-number variant to an existing account.
	AddPhoneVariant(ctx context.Context, accountID string, phoneNumber string) error

	// SaveLedger appends a ledger to an existing account.
	SaveLedger(ctx context.Context, ledger domain.Ledger) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
