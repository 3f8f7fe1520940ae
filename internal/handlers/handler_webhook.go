package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/pasindulk/expense_chat_app/internal/apperrors"
	portssvc "github.com/pasindulk/expense_chat_app/internal/core/ports/services"
	"github.com/pasindulk/expense_chat_app/internal/dto"
	"github.com/pasindulk/expense_chat_app/internal/middleware"
	"github.com/pasindulk/expense_chat_app/internal/utils"
)

// webhookHandler handles inbound messages from the messaging provider.
type webhookHandler struct {
	webhookService portssvc.WebhookSvcFacade
	posthogClient  *utils.PosthogClientWrapper
}

func newWebhookHandler(ws portssvc.WebhookSvcFacade, posthogClient *utils.PosthogClientWrapper) *webhookHandler {
	return &webhookHandler{
		webhookService: ws,
		posthogClient:  posthogClient,
	}
}

// registerWebhookRoutes registers the inbound message route. The provider
// retries on 5xx, so the route is rate limited by IP rather than credentials.
func registerWebhookRoutes(r *gin.Engine, webhookService portssvc.WebhookSvcFacade, posthogClient *utils.PosthogClientWrapper) {
	h := newWebhookHandler(webhookService, posthogClient)

	// Define rate limit: 60 requests per minute per IP
	rate, _ := limiter.NewRateFromFormatted("60-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)

	r.POST("/webhook", middleware.RateLimit(ipLimiter), h.handleInbound)
}

// handleInbound godoc
// @Summary Process an inbound chat message
// @Description Parses an inbound message, records the expense and acknowledges the sender.
// @Tags webhook
// @Accept x-www-form-urlencoded
// @Produce json
// @Param From formData string true "Sender channel address"
// @Param Body formData string true "Message text"
// @Success 200 {object} dto.WebhookResponse
// @Failure 400 {object} map[string]string "Malformed message or missing fields"
// @Failure 404 {object} map[string]string "Sender not registered"
// @Failure 500 {object} map[string]string "Recording failed"
// @Router /webhook [post]
func (h *webhookHandler) handleInbound(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from := c.PostForm("From")
	body := c.PostForm("Body")

	result, err := h.webhookService.ProcessInbound(c.Request.Context(), from, body)
	if err != nil {
		var appErr *apperrors.AppError
		switch {
		case errors.As(err, &appErr):
			logger.Warn("Inbound message rejected", slog.Int("status", appErr.Code), slog.String("error", appErr.Message))
			c.JSON(appErr.Code, appErr)
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Inbound message from unregistered sender")
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			logger.Error("Failed to process inbound message", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process message"})
		}
		return
	}

	if h.posthogClient != nil && result.Expense != nil {
		h.posthogClient.Enqueue(result.Expense.AccountID, "webhook_expense_recorded", map[string]any{
			"category":    result.Expense.Category,
			"has_warning": result.Warning != "",
		})
	}

	c.JSON(http.StatusOK, dto.WebhookResponse{
		Success: true,
		Warning: result.Warning,
	})
}
