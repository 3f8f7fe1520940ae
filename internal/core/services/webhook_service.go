package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pasindulk/expense_chat_app/internal/apperrors"
	"github.com/pasindulk/expense_chat_app/internal/core/domain"
	"github.com/pasindulk/expense_chat_app/internal/core/parsing"
	portssvc "github.com/pasindulk/expense_chat_app/internal/core/ports/services"
	"github.com/pasindulk/expense_chat_app/internal/dto"
	"github.com/pasindulk/expense_chat_app/internal/middleware"
)

const (
	warnMirrorFailed = "expense recorded but the spreadsheet could not be updated"
	warnNotifyFailed = "expense recorded but the confirmation message could not be sent"
)

type webhookService struct {
	identity portssvc.IdentityResolverSvc
	parser   *parsing.Parser
	recorder portssvc.ExpenseRecorderSvc
	mirror   portssvc.SheetMirrorSvc
	notifier portssvc.NotifierSvc
}

// NewWebhookService creates the inbound message orchestrator.
func NewWebhookService(
	identity portssvc.IdentityResolverSvc,
	parser *parsing.Parser,
	recorder portssvc.ExpenseRecorderSvc,
	mirror portssvc.SheetMirrorSvc,
	notifier portssvc.NotifierSvc,
) portssvc.WebhookSvcFacade {
	return &webhookService{
		identity: identity,
		parser:   parser,
		recorder: recorder,
		mirror:   mirror,
		notifier: notifier,
	}
}

var _ portssvc.WebhookSvcFacade = (*webhookService)(nil)

// ProcessInbound runs one message through resolve -> parse -> record ->
// mirror -> notify. Failures before recording abort the pipeline; failures at
// or after recording only downgrade the result to a warning.
func (s *webhookService) ProcessInbound(ctx context.Context, from, body string) (*dto.InboundMessageResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(from) == "" || strings.TrimSpace(body) == "" {
		// No resolved address format is guaranteed yet, so no reply is attempted.
		return nil, apperrors.NewBadRequestError("missing required fields")
	}

	account, err := s.identity.Resolve(ctx, from)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Unregistered senders get no reply; see DESIGN.md.
			logger.Warn("inbound message from unregistered sender")
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to resolve sender", err)
	}
	logger = logger.With(slog.String("account_id", account.AccountID))

	parsed, err := s.parser.Parse(body)
	if err != nil {
		return nil, s.reject(ctx, logger, from, err)
	}

	expense, err := s.recorder.RecordExpense(ctx, account, parsed, nil, nil)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError {
			// Recorder validation (no ledger, foreign ledger) is user-facing.
			return nil, s.reject(ctx, logger, from, appErr)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to record expense", err)
	}

	var warnings []string

	mirrorResult := s.mirror.Mirror(ctx, *expense, s.mirrorTarget(account, expense))
	replyKind := domain.ReplyRecorded
	if !mirrorResult.OK {
		logger.Warn("spreadsheet mirror failed",
			slog.String("kind", string(mirrorResult.Kind)),
			slog.String("cause", causeString(mirrorResult.Cause)),
		)
		warnings = append(warnings, warnMirrorFailed)
		replyKind = domain.ReplyRecordedMirrorWarning
	}

	notifyResult := s.notifier.Notify(ctx, from, domain.ReplyOutcome{Kind: replyKind, Expense: &parsed})
	if !notifyResult.OK {
		logger.Warn("failed to send confirmation message", slog.String("cause", causeString(notifyResult.Cause)))
		warnings = append(warnings, warnNotifyFailed)
	}

	logger.Info("expense recorded from inbound message",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("category", expense.Category),
	)

	return &dto.InboundMessageResult{Expense: expense, Warning: strings.Join(warnings, "; ")}, nil
}

// reject tells the sender why the message was refused, then surfaces the
// rejection to the transport. Unlike the unknown-sender case, the user is told.
func (s *webhookService) reject(ctx context.Context, logger *slog.Logger, from string, cause error) error {
	reason := "invalid message format"
	var perr *parsing.ParseError
	var appErr *apperrors.AppError
	switch {
	case errors.As(cause, &perr):
		reason = perr.Reason
	case errors.As(cause, &appErr):
		reason = appErr.Message
	}

	logger.Warn("rejecting inbound message", slog.String("reason", reason))
	if result := s.notifier.Notify(ctx, from, domain.ReplyOutcome{Kind: domain.ReplyRejected, Reason: reason}); !result.OK {
		logger.Warn("failed to send rejection reply", slog.String("cause", causeString(result.Cause)))
	}
	return apperrors.NewBadRequestError(reason)
}

// mirrorTarget picks the document to mirror into: the expense's own ledger
// when associated, otherwise the account's default ledger (account-only mode
// still mirrors to the first registered sheet).
func (s *webhookService) mirrorTarget(account *domain.Account, expense *domain.Expense) *domain.Ledger {
	if expense.LedgerID != nil {
		if ledger := account.FindLedger(*expense.LedgerID); ledger != nil {
			return ledger
		}
	}
	return account.DefaultLedger()
}

func causeString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
