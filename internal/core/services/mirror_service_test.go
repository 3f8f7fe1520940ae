package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pasindulk/expense_chat_app/internal/core/domain"
	"github.com/pasindulk/expense_chat_app/internal/core/services"
)

// MockSheetAppender is a mock type for the SheetAppender interface
type MockSheetAppender struct {
	mock.Mock
}

func (m *MockSheetAppender) AppendRow(ctx context.Context, spreadsheetID string, row []interface{}) error {
	args := m.Called(ctx, spreadsheetID, row)
	return args.Error(0)
}

type MirrorServiceTestSuite struct {
	suite.Suite
	mockAppender *MockSheetAppender
	expense      domain.Expense
}

func (suite *MirrorServiceTestSuite) SetupTest() {
	suite.mockAppender = new(MockSheetAppender)
	note := "Lunch"
	suite.expense = domain.Expense{
		ExpenseID:  "exp-1",
		AccountID:  "acc-1",
		Amount:     decimal.NewFromInt(100),
		Category:   "Food",
		Note:       &note,
		OccurredAt: time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
	}
}

func (suite *MirrorServiceTestSuite) TestMirror_Success() {
	ctx := context.Background()
	service := services.NewMirrorService(suite.mockAppender)
	ledger := &domain.Ledger{
		LedgerID: "ledger-1",
		SheetURL: "https://docs.google.com/spreadsheets/d/1AbCdEfGhIjKlMnOpQrStUvWxYz0123456789abcd/edit#gid=0",
	}

	suite.mockAppender.On("AppendRow", ctx, "1AbCdEfGhIjKlMnOpQrStUvWxYz0123456789abcd",
		[]interface{}{"2025-06-01 12:30:00", "100", "Food", "Lunch"}).Return(nil).Once()

	result := service.Mirror(ctx, suite.expense, ledger)

	suite.True(result.OK)
	suite.mockAppender.AssertExpectations(suite.T())
}

func (suite *MirrorServiceTestSuite) TestMirror_NoLedger() {
	ctx := context.Background()
	service := services.NewMirrorService(suite.mockAppender)

	result := service.Mirror(ctx, suite.expense, nil)

	suite.False(result.OK)
	suite.Equal(domain.MirrorNoLedger, result.Kind)
	suite.mockAppender.AssertNotCalled(suite.T(), "AppendRow", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MirrorServiceTestSuite) TestMirror_UnrecognizedURL() {
	ctx := context.Background()
	service := services.NewMirrorService(suite.mockAppender)
	ledger := &domain.Ledger{LedgerID: "ledger-1", SheetURL: "not a url"}

	result := service.Mirror(ctx, suite.expense, ledger)

	suite.False(result.OK)
	suite.Equal(domain.MirrorUnrecognizedURL, result.Kind)
	suite.mockAppender.AssertNotCalled(suite.T(), "AppendRow", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MirrorServiceTestSuite) TestMirror_ProviderError() {
	ctx := context.Background()
	service := services.NewMirrorService(suite.mockAppender)
	ledger := &domain.Ledger{
		LedgerID: "ledger-1",
		SheetURL: "https://docs.google.com/spreadsheets/d/1AbCdEfGhIjKlMnOpQrStUvWxYz0123456789abcd/edit",
	}

	suite.mockAppender.On("AppendRow", ctx, mock.Anything, mock.Anything).
		Return(errors.New("quota exceeded")).Once()

	result := service.Mirror(ctx, suite.expense, ledger)

	suite.False(result.OK)
	suite.Equal(domain.MirrorProviderError, result.Kind)
	suite.mockAppender.AssertExpectations(suite.T())
}

func (suite *MirrorServiceTestSuite) TestMirror_NoAppenderConfigured() {
	ctx := context.Background()
	service := services.NewMirrorService(nil)
	ledger := &domain.Ledger{
		LedgerID: "ledger-1",
		SheetURL: "https://docs.google.com/spreadsheets/d/1AbCdEfGhIjKlMnOpQrStUvWxYz0123456789abcd/edit",
	}

	result := service.Mirror(ctx, suite.expense, ledger)

	suite.False(result.OK)
	suite.Equal(domain.MirrorProviderError, result.Kind)
}

func TestMirrorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MirrorServiceTestSuite))
}
