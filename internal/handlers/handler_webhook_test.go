package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pasindulk/expense_chat_app/internal/apperrors"
	"github.com/pasindulk/expense_chat_app/internal/core/domain"
	portssvc "github.com/pasindulk/expense_chat_app/internal/core/ports/services"
	"github.com/pasindulk/expense_chat_app/internal/dto"
	"github.com/pasindulk/expense_chat_app/internal/handlers"
	"github.com/pasindulk/expense_chat_app/internal/platform/config"
)

// --- Mock WebhookService ---

type MockWebhookService struct {
	mock.Mock
}

func (m *MockWebhookService) ProcessInbound(ctx context.Context, from, body string) (*dto.InboundMessageResult, error) {
	args := m.Called(ctx, from, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.InboundMessageResult), args.Error(1)
}

var _ portssvc.WebhookSvcFacade = (*MockWebhookService)(nil)

// --- Test Suite Setup ---

type WebhookHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockWebhook *MockWebhookService
}

func (suite *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockWebhook = new(MockWebhookService)

	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test",
		IsProduction:      true, // skip swagger routes
	}
	container := &portssvc.ServiceContainer{Webhook: suite.mockWebhook}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container, nil)
}

func (suite *WebhookHandlerTestSuite) postForm(form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *WebhookHandlerTestSuite) TestHandleInbound_Success() {
	expense := &domain.Expense{
		ExpenseID: "exp-1",
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(100),
		Category:  "Food",
	}
	suite.mockWebhook.On("ProcessInbound", mock.Anything, "whatsapp:+94771234567", "100, Food, Lunch").
		Return(&dto.InboundMessageResult{Expense: expense}, nil).Once()

	w := suite.postForm(url.Values{
		"From": {"whatsapp:+94771234567"},
		"Body": {"100, Food, Lunch"},
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.WebhookResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Empty(resp.Warning)
	suite.mockWebhook.AssertExpectations(suite.T())
}

func (suite *WebhookHandlerTestSuite) TestHandleInbound_SuccessWithWarning() {
	expense := &domain.Expense{ExpenseID: "exp-1", AccountID: "acc-1"}
	suite.mockWebhook.On("ProcessInbound", mock.Anything, mock.Anything, mock.Anything).
		Return(&dto.InboundMessageResult{
			Expense: expense,
			Warning: "expense recorded but the spreadsheet could not be updated",
		}, nil).Once()

	w := suite.postForm(url.Values{
		"From": {"whatsapp:+94771234567"},
		"Body": {"100, Food"},
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.WebhookResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Contains(resp.Warning, "spreadsheet")
}

func (suite *WebhookHandlerTestSuite) TestHandleInbound_UnknownSender() {
	suite.mockWebhook.On("ProcessInbound", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.NewNotFoundError("user not found")).Once()

	w := suite.postForm(url.Values{
		"From": {"whatsapp:+94000000000"},
		"Body": {"100, Food"},
	})

	suite.Equal(http.StatusNotFound, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("user not found", resp["error"])
}

func (suite *WebhookHandlerTestSuite) TestHandleInbound_MalformedMessage() {
	suite.mockWebhook.On("ProcessInbound", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.NewBadRequestError("amount must be a positive number")).Once()

	w := suite.postForm(url.Values{
		"From": {"whatsapp:+94771234567"},
		"Body": {"-5, Food"},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("amount must be a positive number", resp["error"])
}

func (suite *WebhookHandlerTestSuite) TestHandleInbound_RecordingFailure() {
	suite.mockWebhook.On("ProcessInbound", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to record expense", nil)).Once()

	w := suite.postForm(url.Values{
		"From": {"whatsapp:+94771234567"},
		"Body": {"100, Food"},
	})

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func TestWebhookHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}
