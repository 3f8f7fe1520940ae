// Package sheets implements the spreadsheet append port on top of the Google
// Sheets API, authenticating with a service account key.
package sheets

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	portssvc "github.com/pasindulk/expense_chat_app/internal/core/ports/services"
)

// appendRange is where appended rows land. The target document's first tab
// must keep its default name.
const appendRange = "Sheet1!A:D"

type googleSheetsAppender struct {
	service *sheets.Service
}

// NewGoogleSheetsAppender builds an appender from a service account key in
// JSON form. The returned client is safe for concurrent use.
func NewGoogleSheetsAppender(ctx context.Context, serviceAccountKey []byte) (portssvc.SheetAppender, error) {
	conf, err := google.JWTConfigFromJSON(serviceAccountKey, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account key: %w", err)
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &googleSheetsAppender{service: service}, nil
}

var _ portssvc.SheetAppender = (*googleSheetsAppender)(nil)

// AppendRow appends a single row below the existing data in the document.
func (a *googleSheetsAppender) AppendRow(ctx context.Context, spreadsheetID string, row []interface{}) error {
	valueRange := &sheets.ValueRange{
		Values: [][]interface{}{row},
	}

	_, err := a.service.Spreadsheets.Values.
		Append(spreadsheetID, appendRange, valueRange).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append row to spreadsheet %s: %w", spreadsheetID, err)
	}
	return nil
}
