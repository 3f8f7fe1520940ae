package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pasindulk/expense_chat_app/internal/core/domain"
	portssvc "github.com/pasindulk/expense_chat_app/internal/core/ports/services"
)

type notifierService struct {
	sender        portssvc.MessageSender
	channelPrefix string
}

// NewNotifierService creates the acknowledgment notifier. A nil sender is
// allowed (provider not configured); every attempt then reports a soft failure.
func NewNotifierService(sender portssvc.MessageSender, channelPrefix string) portssvc.NotifierSvc {
	return &notifierService{sender: sender, channelPrefix: channelPrefix}
}

var _ portssvc.NotifierSvc = (*notifierService)(nil)

// Notify sends the reply for the outcome back to the original channel address,
// re-adding the transport prefix whether or not the inbound address carried it.
// Delivery failure never becomes an overall request failure.
func (s *notifierService) Notify(ctx context.Context, channelAddress string, outcome domain.ReplyOutcome) domain.NotifyResult {
	if s.sender == nil {
		return domain.NotifyResult{Cause: errors.New("messaging provider not configured")}
	}

	to := strings.TrimSpace(channelAddress)
	if s.channelPrefix != "" && !strings.HasPrefix(to, s.channelPrefix) {
		to = s.channelPrefix + to
	}

	if err := s.sender.Send(ctx, to, buildReply(outcome)); err != nil {
		return domain.NotifyResult{Cause: err}
	}
	return domain.NotifyResult{OK: true}
}

func buildReply(outcome domain.ReplyOutcome) string {
	switch outcome.Kind {
	case domain.ReplyRecorded, domain.ReplyRecordedMirrorWarning:
		var b strings.Builder
		b.WriteString("Expense recorded:")
		if outcome.Expense != nil {
			fmt.Fprintf(&b, "\nAmount: %s\nCategory: %s", outcome.Expense.Amount.String(), outcome.Expense.Category)
			if outcome.Expense.Note != "" {
				fmt.Fprintf(&b, "\nDescription: %s", outcome.Expense.Note)
			}
		}
		if outcome.Kind == domain.ReplyRecordedMirrorWarning {
			b.WriteString("\n\nWarning: your spreadsheet could not be updated this time.")
		}
		return b.String()
	case domain.ReplyRejected:
		reason := outcome.Reason
		if reason == "" {
			reason = "invalid message format"
		}
		return fmt.Sprintf("Error: %s. Please use format: amount category at location", reason)
	default:
		return "Your message could not be processed."
	}
}
