// Package messaging implements the outbound message port using the Twilio
// REST API.
package messaging

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	portssvc "github.com/pasindulk/expense_chat_app/internal/core/ports/services"
)

type twilioSender struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioSender builds a sender that delivers replies from the configured
// WhatsApp number. The number should carry the channel prefix already
// (e.g. "whatsapp:+14155238886").
func NewTwilioSender(accountSID, authToken, from string) portssvc.MessageSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &twilioSender{client: client, from: from}
}

var _ portssvc.MessageSender = (*twilioSender)(nil)

// Send delivers a message to the given address. The Twilio SDK does not take
// a context, so cancellation is checked up front only.
func (s *twilioSender) Send(ctx context.Context, to, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send message to %s: %w", to, err)
	}
	return nil
}
