package models

import "time"

// Ledger is the database representation of a linked spreadsheet.
type Ledger struct {
	LedgerID  string    `db:"ledger_id"`
	AccountID string    `db:"account_id"`
	Name      string    `db:"name"`
	SheetURL  string    `db:"sheet_url"`
	Position  int       `db:"position"`
	CreatedAt time.Time `db:"created_at"`
}
