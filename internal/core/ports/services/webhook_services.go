package services

import (
	"context"

	"github.com/pasindulk/expense_chat_app/internal/core/domain"
	"github.com/pasindulk/expense_chat_app/internal/dto"
)

// IdentityResolverSvc maps an inbound channel address to a registered account.
type IdentityResolverSvc interface {
	// Resolve returns the account claiming any historical variant of the raw
	// channel address, or apperrors.ErrNotFound. Pure read; safe to retry.
	Resolve(ctx context.Context, rawChannelAddress string) (*domain.Account, error)
}

// SheetMirrorSvc replicates a recorded expense into its ledger's spreadsheet.
type SheetMirrorSvc interface {
	// Mirror appends one row for the expense. Failures are returned as a
	// result, never as a panic or error that could fail the request.
	Mirror(ctx context.Context, expense domain.Expense, ledger *domain.Ledger) domain.MirrorResult
}

// NotifierSvc sends the acknowledgment reply to the original sender.
type NotifierSvc interface {
	// Notify delivers the reply for the given outcome. Delivery failures are
	// soft: reported in the result and logged, never propagated.
	Notify(ctx context.Context, channelAddress string, outcome domain.ReplyOutcome) domain.NotifyResult
}

// WebhookSvcFacade sequences resolution, parsing, recording, mirroring and
// notification for one inbound message.
type WebhookSvcFacade interface {
	ProcessInbound(ctx context.Context, from, body string) (*dto.InboundMessageResult, error)
}
