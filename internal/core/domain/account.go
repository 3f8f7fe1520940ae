package domain

import "time"

// Account represents a registered user within the core domain.
// This is the primary representation used by services.
//
// PhoneNumbers holds every channel-address variant historically used to reach
// the account; variants are only ever appended, never removed. Ledgers keeps
// registration order, and the first entry is the default mirror target.
type Account struct {
	AccountID    string    `json:"accountID"` // Primary Key (UUID)
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"` // Optional display email, unique when set
	PasswordHash string    `json:"-"`
	PhoneNumbers []string  `json:"phoneNumbers"`
	Ledgers      []Ledger  `json:"ledgers"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DefaultLedger returns the account's first registered ledger, or nil when the
// account has none.
func (a *Account) DefaultLedger() *Ledger {
	if len(a.Ledgers) == 0 {
		return nil
	}
	return &a.Ledgers[0]
}

// FindLedger returns the account's ledger with the given id, or nil.
func (a *Account) FindLedger(ledgerID string) *Ledger {
	for i := range a.Ledgers {
		if a.Ledgers[i].LedgerID == ledgerID {
			return &a.Ledgers[i]
		}
	}
	return nil
}

// Ledger represents one linked spreadsheet destination.
type Ledger struct {
	LedgerID  string    `json:"ledgerID"` // Primary Key (UUID)
	AccountID string    `json:"accountID"`
	Name      string    `json:"name"`
	SheetURL  string    `json:"sheetURL"` // External document reference
	Position  int       `json:"position"` // Registration order; 0 is the default ledger
	CreatedAt time.Time `json:"createdAt"`
}
