package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pasindulk/expense_chat_app/internal/apperrors"
	"github.com/pasindulk/expense_chat_app/internal/core/domain"
	portssvc "github.com/pasindulk/expense_chat_app/internal/core/ports/services"
	"github.com/pasindulk/expense_chat_app/internal/core/services"
)

type IdentityServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.IdentityResolverSvc
}

func (suite *IdentityServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewIdentityService(suite.mockRepo, "whatsapp:", "94")
}

func (suite *IdentityServiceTestSuite) TestResolve_PrefixedInternationalSender() {
	ctx := context.Background()
	expected := &domain.Account{AccountID: "acc-1", PhoneNumbers: []string{"0771234567"}}

	// The lookup must include the local 0-prefixed form so accounts stored
	// under the old convention still resolve.
	suite.mockRepo.On("FindAccountByPhoneVariants", ctx, mock.MatchedBy(func(variants []string) bool {
		hasLocal := false
		hasIntl := false
		for _, v := range variants {
			if v == "0771234567" {
				hasLocal = true
			}
			if v == "94771234567" {
				hasIntl = true
			}
		}
		return hasLocal && hasIntl
	})).Return(expected, nil).Once()

	account, err := suite.service.Resolve(ctx, "whatsapp:+94771234567")

	suite.Require().NoError(err)
	suite.Equal(expected, account)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *IdentityServiceTestSuite) TestResolve_LocalSenderMatchesInternationalStorage() {
	ctx := context.Background()
	expected := &domain.Account{AccountID: "acc-2", PhoneNumbers: []string{"94771234567"}}

	suite.mockRepo.On("FindAccountByPhoneVariants", ctx, mock.MatchedBy(func(variants []string) bool {
		for _, v := range variants {
			if v == "94771234567" {
				return true
			}
		}
		return false
	})).Return(expected, nil).Once()

	account, err := suite.service.Resolve(ctx, "0771234567")

	suite.Require().NoError(err)
	suite.Equal(expected, account)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *IdentityServiceTestSuite) TestResolve_UnknownSender() {
	ctx := context.Background()

	suite.mockRepo.On("FindAccountByPhoneVariants", ctx, mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.Resolve(ctx, "whatsapp:+94000000000")

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *IdentityServiceTestSuite) TestResolve_EmptyAddress() {
	ctx := context.Background()

	account, err := suite.service.Resolve(ctx, "whatsapp:")

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAccountByPhoneVariants", mock.Anything, mock.Anything)
}

func TestIdentityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IdentityServiceTestSuite))
}
