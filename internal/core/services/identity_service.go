package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/pasindulk/expense_chat_app/internal/apperrors"
	"github.com/pasindulk/expense_chat_app/internal/core/domain"
	portsrepo "github.com/pasindulk/expense_chat_app/internal/core/ports/repositories"
	portssvc "github.com/pasindulk/expense_chat_app/internal/core/ports/services"
	"github.com/pasindulk/expense_chat_app/internal/utils/phone"
)

type identityService struct {
	accountRepo   portsrepo.AccountReader
	channelPrefix string
	countryCode   string
}

// NewIdentityService creates the identity resolver. The country calling code
// and channel prefix come from configuration, never literals.
func NewIdentityService(accountRepo portsrepo.AccountReader, channelPrefix, countryCode string) portssvc.IdentityResolverSvc {
	return &identityService{
		accountRepo:   accountRepo,
		channelPrefix: channelPrefix,
		countryCode:   countryCode,
	}
}

var _ portssvc.IdentityResolverSvc = (*identityService)(nil)

// Resolve expands the raw channel address into every historical storage format
// and looks all of them up in one query. Resolution never mutates state.
func (s *identityService) Resolve(ctx context.Context, rawChannelAddress string) (*domain.Account, error) {
	candidates := phone.Candidates(rawChannelAddress, s.channelPrefix, s.countryCode)
	if len(candidates) == 0 {
		return nil, apperrors.ErrNotFound
	}

	account, err := s.accountRepo.FindAccountByPhoneVariants(ctx, candidates)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve channel address: %w", err)
	}
	return account, nil
}
