package services

import (
	"context"

	"github.com/pasindulk/expense_chat_app/internal/core/domain"
	"github.com/pasindulk/expense_chat_app/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves an account by ID.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
}

// AccountRegistrationSvc defines the registration operation
type AccountRegistrationSvc interface {
	// RegisterAccount creates an account with its first phone variant and
	// default ledger. Duplicate phone numbers or emails are rejected.
	RegisterAccount(ctx context.Context, req dto.RegisterAccountRequest) (*domain.Account, error)
}

// AccountWriterSvc defines append operations on an existing account
type AccountWriterSvc interface {
	// AddPhoneVariant appends a channel-address variant. Variants are never removed.
	AddPhoneVariant(ctx context.Context, accountID string, req dto.AddPhoneRequest) (*domain.Account, error)

	// AddLedger links an additional spreadsheet after the existing ledgers.
	AddLedger(ctx context.Context, accountID string, req dto.AddLedgerRequest) (*domain.Ledger, error)
}

// AccountAuthSvc defines operations for dashboard authentication
type AccountAuthSvc interface {
	// AuthenticateAccount verifies email and password for dashboard login.
	AuthenticateAccount(ctx context.Context, email, password string) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountRegistrationSvc
	AccountWriterSvc
	AccountAuthSvc
}
