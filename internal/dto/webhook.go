package dto

import "github.com/pasindulk/expense_chat_app/internal/core/domain"

// InboundMessageResult is the orchestration outcome for one inbound message
// whose expense was durably recorded. Warning is non-empty when a best-effort
// step (mirror, acknowledgment) failed after recording.
type InboundMessageResult struct {
	Expense *domain.Expense
	Warning string
}

// WebhookResponse is the JSON body returned to the messaging transport.
type WebhookResponse struct {
	Success bool   `json:"success"`
	Warning string `json:"warning,omitempty"`
}
