package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pasindulk/expense_chat_app/internal/core/domain"
	"github.com/pasindulk/expense_chat_app/internal/core/services"
)

// MockMessageSender is a mock type for the MessageSender interface
type MockMessageSender struct {
	mock.Mock
}

func (m *MockMessageSender) Send(ctx context.Context, to, body string) error {
	args := m.Called(ctx, to, body)
	return args.Error(0)
}

type NotifierServiceTestSuite struct {
	suite.Suite
	mockSender *MockMessageSender
}

func (suite *NotifierServiceTestSuite) SetupTest() {
	suite.mockSender = new(MockMessageSender)
}

func (suite *NotifierServiceTestSuite) recordedOutcome() domain.ReplyOutcome {
	return domain.ReplyOutcome{
		Kind: domain.ReplyRecorded,
		Expense: &domain.ParsedExpense{
			Amount:   decimal.NewFromInt(100),
			Category: "Food",
			Note:     "Lunch",
		},
	}
}

func (suite *NotifierServiceTestSuite) TestNotify_RecordedReply() {
	ctx := context.Background()
	service := services.NewNotifierService(suite.mockSender, "whatsapp:")

	suite.mockSender.On("Send", ctx, "whatsapp:+94771234567",
		"Expense recorded:\nAmount: 100\nCategory: Food\nDescription: Lunch").Return(nil).Once()

	result := service.Notify(ctx, "whatsapp:+94771234567", suite.recordedOutcome())

	suite.True(result.OK)
	suite.mockSender.AssertExpectations(suite.T())
}

func (suite *NotifierServiceTestSuite) TestNotify_ReAddsChannelPrefix() {
	ctx := context.Background()
	service := services.NewNotifierService(suite.mockSender, "whatsapp:")

	suite.mockSender.On("Send", ctx, "whatsapp:+94771234567", mock.AnythingOfType("string")).Return(nil).Once()

	result := service.Notify(ctx, "+94771234567", suite.recordedOutcome())

	suite.True(result.OK)
	suite.mockSender.AssertExpectations(suite.T())
}

func (suite *NotifierServiceTestSuite) TestNotify_NoNoteOmitsDescription() {
	ctx := context.Background()
	service := services.NewNotifierService(suite.mockSender, "whatsapp:")
	outcome := domain.ReplyOutcome{
		Kind: domain.ReplyRecorded,
		Expense: &domain.ParsedExpense{
			Amount:   decimal.NewFromFloat(42.50),
			Category: "Transport",
		},
	}

	suite.mockSender.On("Send", ctx, "whatsapp:+94771234567",
		"Expense recorded:\nAmount: 42.5\nCategory: Transport").Return(nil).Once()

	result := service.Notify(ctx, "whatsapp:+94771234567", outcome)

	suite.True(result.OK)
	suite.mockSender.AssertExpectations(suite.T())
}

func (suite *NotifierServiceTestSuite) TestNotify_MirrorWarningAppended() {
	ctx := context.Background()
	service := services.NewNotifierService(suite.mockSender, "whatsapp:")
	outcome := suite.recordedOutcome()
	outcome.Kind = domain.ReplyRecordedMirrorWarning

	suite.mockSender.On("Send", ctx, "whatsapp:+94771234567",
		"Expense recorded:\nAmount: 100\nCategory: Food\nDescription: Lunch\n\nWarning: your spreadsheet could not be updated this time.").Return(nil).Once()

	result := service.Notify(ctx, "whatsapp:+94771234567", outcome)

	suite.True(result.OK)
	suite.mockSender.AssertExpectations(suite.T())
}

func (suite *NotifierServiceTestSuite) TestNotify_RejectedReply() {
	ctx := context.Background()
	service := services.NewNotifierService(suite.mockSender, "whatsapp:")
	outcome := domain.ReplyOutcome{Kind: domain.ReplyRejected, Reason: "amount must be a positive number"}

	suite.mockSender.On("Send", ctx, "whatsapp:+94771234567",
		"Error: amount must be a positive number. Please use format: amount category at location").Return(nil).Once()

	result := service.Notify(ctx, "whatsapp:+94771234567", outcome)

	suite.True(result.OK)
	suite.mockSender.AssertExpectations(suite.T())
}

func (suite *NotifierServiceTestSuite) TestNotify_SendFailureIsSoft() {
	ctx := context.Background()
	service := services.NewNotifierService(suite.mockSender, "whatsapp:")

	suite.mockSender.On("Send", ctx, mock.Anything, mock.Anything).
		Return(errors.New("provider unavailable")).Once()

	result := service.Notify(ctx, "whatsapp:+94771234567", suite.recordedOutcome())

	suite.False(result.OK)
	suite.Error(result.Cause)
	suite.mockSender.AssertExpectations(suite.T())
}

func (suite *NotifierServiceTestSuite) TestNotify_NoSenderConfigured() {
	ctx := context.Background()
	service := services.NewNotifierService(nil, "whatsapp:")

	result := service.Notify(ctx, "whatsapp:+94771234567", suite.recordedOutcome())

	suite.False(result.OK)
	suite.Error(result.Cause)
}

func TestNotifierServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotifierServiceTestSuite))
}
