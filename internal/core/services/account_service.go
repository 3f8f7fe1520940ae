package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pasindulk/expense_chat_app/internal/apperrors"
	"github.com/pasindulk/expense_chat_app/internal/core/domain"
	portsrepo "github.com/pasindulk/expense_chat_app/internal/core/ports/repositories"
	portssvc "github.com/pasindulk/expense_chat_app/internal/core/ports/services"
	"github.com/pasindulk/expense_chat_app/internal/dto"
	"github.com/pasindulk/expense_chat_app/internal/utils"
	"github.com/pasindulk/expense_chat_app/internal/utils/phone"
)

const defaultLedgerName = "Expenses"

type accountService struct {
	accountRepo   portsrepo.AccountRepositoryFacade
	channelPrefix string
	countryCode   string
}

// NewAccountService creates the account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, channelPrefix, countryCode string) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo:   accountRepo,
		channelPrefix: channelPrefix,
		countryCode:   countryCode,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// RegisterAccount creates the account, its first phone variant and its default
// ledger in a single repository transaction. The phone number is stored in the
// international canonical form so duplicates registered under different
// conventions collide on the uniqueness constraint.
func (s *accountService) RegisterAccount(ctx context.Context, req dto.RegisterAccountRequest) (*domain.Account, error) {
	stored := phone.ToInternational(req.PhoneNumber, s.channelPrefix, s.countryCode)
	if stored == "" {
		return nil, apperrors.NewBadRequestError("phone number is required")
	}

	passwordHash := ""
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		passwordHash = hash
	}

	ledgerName := req.LedgerName
	if ledgerName == "" {
		ledgerName = defaultLedgerName
	}

	now := time.Now()
	accountID := uuid.NewString()
	account := domain.Account{
		AccountID:    accountID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		PhoneNumbers: []string{stored},
		Ledgers: []domain.Ledger{
			{
				LedgerID:  uuid.NewString(),
				AccountID: accountID,
				Name:      ledgerName,
				SheetURL:  req.SheetURL,
				Position:  0,
				CreatedAt: now,
			},
		},
		CreatedAt: now,
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("an account with this phone number or email already exists")
		}
		return nil, fmt.Errorf("failed to register account: %w", err)
	}

	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account by ID: %w", err)
	}
	return account, nil
}

// AddPhoneVariant appends a channel-address variant to the account. Variants
// are append-only; there is no removal path.
func (s *accountService) AddPhoneVariant(ctx context.Context, accountID string, req dto.AddPhoneRequest) (*domain.Account, error) {
	stored := phone.ToInternational(req.PhoneNumber, s.channelPrefix, s.countryCode)
	if stored == "" {
		return nil, apperrors.NewBadRequestError("phone number is required")
	}

	if err := s.accountRepo.AddPhoneVariant(ctx, accountID, stored); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("this phone number is already registered")
		}
		return nil, fmt.Errorf("failed to add phone variant: %w", err)
	}

	return s.GetAccountByID(ctx, accountID)
}

// AddLedger links an additional spreadsheet after the account's existing
// ledgers. The default ledger for mirroring stays the first registered one.
func (s *accountService) AddLedger(ctx context.Context, accountID string, req dto.AddLedgerRequest) (*domain.Ledger, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	name := req.Name
	if name == "" {
		name = defaultLedgerName
	}

	ledger := domain.Ledger{
		LedgerID:  uuid.NewString(),
		AccountID: account.AccountID,
		Name:      name,
		SheetURL:  req.SheetURL,
		Position:  len(account.Ledgers),
		CreatedAt: time.Now(),
	}

	if err := s.accountRepo.SaveLedger(ctx, ledger); err != nil {
		return nil, fmt.Errorf("failed to add ledger: %w", err)
	}

	return &ledger, nil
}

// AuthenticateAccount verifies dashboard credentials. Unknown email and wrong
// password are deliberately indistinguishable to callers mapping to HTTP 401.
func (s *accountService) AuthenticateAccount(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrForbidden
		}
		return nil, fmt.Errorf("failed to authenticate account: %w", err)
	}
	if account.PasswordHash == "" || !utils.CheckPasswordHash(password, account.PasswordHash) {
		return nil, apperrors.ErrForbidden
	}
	return account, nil
}
