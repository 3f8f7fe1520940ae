package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pasindulk/expense_chat_app/internal/apperrors"
	portssvc "github.com/pasindulk/expense_chat_app/internal/core/ports/services"
	"github.com/pasindulk/expense_chat_app/internal/dto"
	"github.com/pasindulk/expense_chat_app/internal/middleware"
)

// accountHandler handles HTTP requests related to the authenticated account.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// registerAccountRoutes registers routes related to the authenticated account.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	account := rg.Group("/account")
	{
		account.GET("", h.getAccount)
		account.POST("/phones", h.addPhone)
	}
	rg.POST("/ledgers", h.addLedger)
}

// getAccount godoc
// @Summary Get the authenticated account
// @Description Returns the account with its phone numbers and linked spreadsheets.
// @Tags accounts
// @Produce json
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Security BearerAuth
// @Router /account [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// addPhone godoc
// @Summary Add a phone number
// @Description Registers an additional phone number variant for the authenticated account.
// @Tags accounts
// @Accept json
// @Produce json
// @Param phone body dto.AddPhoneRequest true "Phone number"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Phone number already registered"
// @Failure 500 {object} map[string]string "Failed to add phone number"
// @Security BearerAuth
// @Router /account/phones [post]
func (h *accountHandler) addPhone(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.AddPhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddPhone", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.AddPhoneVariant(c.Request.Context(), accountID, req)
	if err != nil {
		var appErr *apperrors.AppError
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Phone number already registered"})
		case errors.As(err, &appErr):
			c.JSON(appErr.Code, appErr)
		default:
			logger.Error("Failed to add phone number", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add phone number"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// addLedger godoc
// @Summary Link an additional spreadsheet
// @Description Links another spreadsheet ledger after the account's existing ones.
// @Tags ledgers
// @Accept json
// @Produce json
// @Param ledger body dto.AddLedgerRequest true "Ledger details"
// @Success 201 {object} dto.LedgerResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to add ledger"
// @Security BearerAuth
// @Router /ledgers [post]
func (h *accountHandler) addLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.AddLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddLedger", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ledger, err := h.accountService.AddLedger(c.Request.Context(), accountID, req)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			c.JSON(appErr.Code, appErr)
		} else {
			logger.Error("Failed to add ledger", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add ledger"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToLedgerResponse(ledger))
}
