package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pasindulk/expense_chat_app/internal/apperrors"
	"github.com/pasindulk/expense_chat_app/internal/core/domain"
	"github.com/pasindulk/expense_chat_app/internal/core/parsing"
	portssvc "github.com/pasindulk/expense_chat_app/internal/core/ports/services"
	"github.com/pasindulk/expense_chat_app/internal/core/services"
)

// --- Mocks for the pipeline stages ---

type MockIdentityResolver struct {
	mock.Mock
}

func (m *MockIdentityResolver) Resolve(ctx context.Context, rawChannelAddress string) (*domain.Account, error) {
	args := m.Called(ctx, rawChannelAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

type MockExpenseRecorder struct {
	mock.Mock
}

func (m *MockExpenseRecorder) RecordExpense(ctx context.Context, account *domain.Account, parsed domain.ParsedExpense, ledgerID *string, occurredAt *time.Time) (*domain.Expense, error) {
	args := m.Called(ctx, account, parsed, ledgerID, occurredAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

type MockSheetMirror struct {
	mock.Mock
}

func (m *MockSheetMirror) Mirror(ctx context.Context, expense domain.Expense, ledger *domain.Ledger) domain.MirrorResult {
	args := m.Called(ctx, expense, ledger)
	return args.Get(0).(domain.MirrorResult)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, channelAddress string, outcome domain.ReplyOutcome) domain.NotifyResult {
	args := m.Called(ctx, channelAddress, outcome)
	return args.Get(0).(domain.NotifyResult)
}

// --- Test Suite Setup ---

type WebhookServiceTestSuite struct {
	suite.Suite
	mockIdentity *MockIdentityResolver
	mockRecorder *MockExpenseRecorder
	mockMirror   *MockSheetMirror
	mockNotifier *MockNotifier
	service      portssvc.WebhookSvcFacade
	account      *domain.Account
}

func (suite *WebhookServiceTestSuite) SetupTest() {
	suite.mockIdentity = new(MockIdentityResolver)
	suite.mockRecorder = new(MockExpenseRecorder)
	suite.mockMirror = new(MockSheetMirror)
	suite.mockNotifier = new(MockNotifier)
	suite.service = services.NewWebhookService(
		suite.mockIdentity,
		parsing.NewParser(),
		suite.mockRecorder,
		suite.mockMirror,
		suite.mockNotifier,
	)
	suite.account = &domain.Account{
		AccountID: "acc-1",
		Ledgers: []domain.Ledger{
			{LedgerID: "ledger-1", AccountID: "acc-1", SheetURL: "https://docs.google.com/spreadsheets/d/abc/edit"},
		},
	}
}

func (suite *WebhookServiceTestSuite) expense() *domain.Expense {
	ledgerID := "ledger-1"
	note := "Lunch"
	return &domain.Expense{
		ExpenseID:  "exp-1",
		AccountID:  "acc-1",
		LedgerID:   &ledgerID,
		Amount:     decimal.NewFromInt(100),
		Category:   "Food",
		Note:       &note,
		OccurredAt: time.Now(),
	}
}

// --- Test Cases ---

func (suite *WebhookServiceTestSuite) TestProcessInbound_Success() {
	ctx := context.Background()
	from := "whatsapp:+94771234567"

	suite.mockIdentity.On("Resolve", ctx, from).Return(suite.account, nil).Once()
	suite.mockRecorder.On("RecordExpense", ctx, suite.account, mock.MatchedBy(func(p domain.ParsedExpense) bool {
		return p.Amount.Equal(decimal.NewFromInt(100)) && p.Category == "Food" && p.Note == "Lunch"
	}), (*string)(nil), (*time.Time)(nil)).Return(suite.expense(), nil).Once()
	suite.mockMirror.On("Mirror", ctx, mock.AnythingOfType("domain.Expense"), mock.AnythingOfType("*domain.Ledger")).
		Return(domain.MirrorSuccess()).Once()
	suite.mockNotifier.On("Notify", ctx, from, mock.MatchedBy(func(o domain.ReplyOutcome) bool {
		return o.Kind == domain.ReplyRecorded
	})).Return(domain.NotifyResult{OK: true}).Once()

	result, err := suite.service.ProcessInbound(ctx, from, "100, Food, Lunch")

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Empty(result.Warning)
	suite.Equal("exp-1", result.Expense.ExpenseID)
	suite.mockIdentity.AssertExpectations(suite.T())
	suite.mockRecorder.AssertExpectations(suite.T())
	suite.mockMirror.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *WebhookServiceTestSuite) TestProcessInbound_NaturalGrammar() {
	ctx := context.Background()
	from := "whatsapp:+94771234567"

	suite.mockIdentity.On("Resolve", ctx, from).Return(suite.account, nil).Once()
	suite.mockRecorder.On("RecordExpense", ctx, suite.account, mock.MatchedBy(func(p domain.ParsedExpense) bool {
		return p.Amount.Equal(decimal.NewFromInt(50)) && p.Category == "Food" && p.Note == "Cafe"
	}), (*string)(nil), (*time.Time)(nil)).Return(suite.expense(), nil).Once()
	suite.mockMirror.On("Mirror", ctx, mock.Anything, mock.Anything).Return(domain.MirrorSuccess()).Once()
	suite.mockNotifier.On("Notify", ctx, from, mock.Anything).Return(domain.NotifyResult{OK: true}).Once()

	result, err := suite.service.ProcessInbound(ctx, from, "50 Food at Cafe")

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.mockRecorder.AssertExpectations(suite.T())
}

func (suite *WebhookServiceTestSuite) TestProcessInbound_MirrorFailureDowngradesToWarning() {
	ctx := context.Background()
	from := "whatsapp:+94771234567"

	suite.mockIdentity.On("Resolve", ctx, from).Return(suite.account, nil).Once()
	suite.mockRecorder.On("RecordExpense", ctx, suite.account, mock.Anything, (*string)(nil), (*time.Time)(nil)).
		Return(suite.expense(), nil).Once()
	suite.mockMirror.On("Mirror", ctx, mock.Anything, mock.Anything).
		Return(domain.MirrorFailed(domain.MirrorProviderError, context.DeadlineExceeded)).Once()
	suite.mockNotifier.On("Notify", ctx, from, mock.MatchedBy(func(o domain.ReplyOutcome) bool {
		return o.Kind == domain.ReplyRecordedMirrorWarning
	})).Return(domain.NotifyResult{OK: true}).Once()

	result, err := suite.service.ProcessInbound(ctx, from, "100, Food, Lunch")

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.NotEmpty(result.Warning)
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *WebhookServiceTestSuite) TestProcessInbound_NotifyFailureDowngradesToWarning() {
	ctx := context.Background()
	from := "whatsapp:+94771234567"

	suite.mockIdentity.On("Resolve", ctx, from).Return(suite.account, nil).Once()
	suite.mockRecorder.On("RecordExpense", ctx, suite.account, mock.Anything, (*string)(nil), (*time.Time)(nil)).
		Return(suite.expense(), nil).Once()
	suite.mockMirror.On("Mirror", ctx, mock.Anything, mock.Anything).Return(domain.MirrorSuccess()).Once()
	suite.mockNotifier.On("Notify", ctx, from, mock.Anything).
		Return(domain.NotifyResult{Cause: context.DeadlineExceeded}).Once()

	result, err := suite.service.ProcessInbound(ctx, from, "100, Food, Lunch")

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.NotEmpty(result.Warning)
}

func (suite *WebhookServiceTestSuite) TestProcessInbound_UnknownSenderGetsNoReply() {
	ctx := context.Background()
	from := "whatsapp:+94000000000"

	suite.mockIdentity.On("Resolve", ctx, from).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.ProcessInbound(ctx, from, "100, Food")

	suite.Require().Error(err)
	suite.Nil(result)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(404, appErr.Code)
	suite.mockNotifier.AssertNotCalled(suite.T(), "Notify", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRecorder.AssertNotCalled(suite.T(), "RecordExpense", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WebhookServiceTestSuite) TestProcessInbound_MalformedMessageNotifiesSender() {
	ctx := context.Background()
	from := "whatsapp:+94771234567"

	suite.mockIdentity.On("Resolve", ctx, from).Return(suite.account, nil).Once()
	suite.mockNotifier.On("Notify", ctx, from, mock.MatchedBy(func(o domain.ReplyOutcome) bool {
		return o.Kind == domain.ReplyRejected && o.Reason != ""
	})).Return(domain.NotifyResult{OK: true}).Once()

	result, err := suite.service.ProcessInbound(ctx, from, "just some words")

	suite.Require().Error(err)
	suite.Nil(result)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(400, appErr.Code)
	suite.mockNotifier.AssertExpectations(suite.T())
	suite.mockRecorder.AssertNotCalled(suite.T(), "RecordExpense", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WebhookServiceTestSuite) TestProcessInbound_RecorderValidationNotifiesSender() {
	ctx := context.Background()
	from := "whatsapp:+94771234567"

	suite.mockIdentity.On("Resolve", ctx, from).Return(suite.account, nil).Once()
	suite.mockRecorder.On("RecordExpense", ctx, suite.account, mock.Anything, (*string)(nil), (*time.Time)(nil)).
		Return(nil, apperrors.NewBadRequestError("no ledger registered for this account")).Once()
	suite.mockNotifier.On("Notify", ctx, from, mock.MatchedBy(func(o domain.ReplyOutcome) bool {
		return o.Kind == domain.ReplyRejected && o.Reason == "no ledger registered for this account"
	})).Return(domain.NotifyResult{OK: true}).Once()

	result, err := suite.service.ProcessInbound(ctx, from, "100, Food")

	suite.Require().Error(err)
	suite.Nil(result)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(400, appErr.Code)
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *WebhookServiceTestSuite) TestProcessInbound_MissingFields() {
	ctx := context.Background()

	result, err := suite.service.ProcessInbound(ctx, "", "100, Food")

	suite.Require().Error(err)
	suite.Nil(result)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(400, appErr.Code)
	suite.mockIdentity.AssertNotCalled(suite.T(), "Resolve", mock.Anything, mock.Anything)

	result, err = suite.service.ProcessInbound(ctx, "whatsapp:+94771234567", "   ")
	suite.Require().Error(err)
	suite.Nil(result)
}

func TestWebhookServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WebhookServiceTestSuite))
}
