package services

import "context"

// SheetAppender is the spreadsheet-provider boundary. The real implementation
// wraps the Google Sheets API; tests substitute doubles. Clients are injected
// at construction time, never constructed at package load.
type SheetAppender interface {
	// AppendRow appends one row to the fixed target range of the document.
	AppendRow(ctx context.Context, spreadsheetID string, row []interface{}) error
}

// MessageSender is the messaging-provider boundary used for acknowledgments.
type MessageSender interface {
	// Send delivers body to the given channel address.
	Send(ctx context.Context, to, body string) error
}
