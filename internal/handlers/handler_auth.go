package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/pasindulk/expense_chat_app/internal/apperrors"
	portssvc "github.com/pasindulk/expense_chat_app/internal/core/ports/services"
	"github.com/pasindulk/expense_chat_app/internal/dto"
	"github.com/pasindulk/expense_chat_app/internal/middleware"
	"github.com/pasindulk/expense_chat_app/internal/platform/config"
	"github.com/pasindulk/expense_chat_app/internal/utils"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	accountService portssvc.AccountSvcFacade
	jwtSecret      string
	jwtDuration    time.Duration
	jwtIssuer      string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AccountSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		accountService: as,
		jwtSecret:      cfg.JWTSecret,
		jwtDuration:    cfg.JWTExpiryDuration,
		jwtIssuer:      cfg.JWTIssuer,
	}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, accountService portssvc.AccountSvcFacade) {
	h := NewAuthHandler(accountService, cfg)

	// Define rate limit: 5 requests per minute
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/register", h.Register)
	}
}

// Login godoc
// @Summary Dashboard login
// @Description Authenticates an account by email and password and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	account, err := h.accountService.AuthenticateAccount(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
		return
	}

	token, err := utils.GenerateJWT(account.AccountID, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

// Register godoc
// @Summary Register new account
// @Description Creates an account with its first phone number and default spreadsheet ledger.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterAccountRequest true "Account Registration Info"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Conflict (phone number or email already registered)"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	account, err := h.accountService.RegisterAccount(c.Request.Context(), req)
	if err != nil {
		var appErr *apperrors.AppError
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Phone number or email already registered"})
		case errors.As(err, &appErr):
			c.JSON(appErr.Code, appErr)
		default:
			logger.Error("Failed to register account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register account"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}
