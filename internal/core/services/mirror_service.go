package services

import (
	"context"
	"errors"

	"github.com/pasindulk/expense_chat_app/internal/core/domain"
	portssvc "github.com/pasindulk/expense_chat_app/internal/core/ports/services"
	"github.com/pasindulk/expense_chat_app/internal/utils/sheeturl"
)

// mirrorDateLayout is the human-readable timestamp written into the sheet.
const mirrorDateLayout = "2006-01-02 15:04:05"

type mirrorService struct {
	appender portssvc.SheetAppender
}

// NewMirrorService creates the spreadsheet mirror. A nil appender is allowed
// (provider not configured); every attempt then reports a provider failure.
func NewMirrorService(appender portssvc.SheetAppender) portssvc.SheetMirrorSvc {
	return &mirrorService{appender: appender}
}

var _ portssvc.SheetMirrorSvc = (*mirrorService)(nil)

// Mirror appends one row for the expense to the ledger's document. All
// failures come back as a MirrorResult; by the time this runs the expense is
// already durably recorded, so nothing here may fail the request.
func (s *mirrorService) Mirror(ctx context.Context, expense domain.Expense, ledger *domain.Ledger) domain.MirrorResult {
	if ledger == nil {
		return domain.MirrorFailed(domain.MirrorNoLedger, errors.New("no ledger to mirror into"))
	}
	if s.appender == nil {
		return domain.MirrorFailed(domain.MirrorProviderError, errors.New("spreadsheet provider not configured"))
	}

	documentID, ok := sheeturl.ExtractDocumentID(ledger.SheetURL)
	if !ok {
		return domain.MirrorFailed(domain.MirrorUnrecognizedURL, errors.New("no document id in ledger URL"))
	}

	note := ""
	if expense.Note != nil {
		note = *expense.Note
	}
	row := []interface{}{
		expense.OccurredAt.Format(mirrorDateLayout),
		expense.Amount.String(),
		expense.Category,
		note,
	}

	if err := s.appender.AppendRow(ctx, documentID, row); err != nil {
		return domain.MirrorFailed(domain.MirrorProviderError, err)
	}
	return domain.MirrorSuccess()
}
