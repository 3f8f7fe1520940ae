package dto

import (
	"time"

	"github.com/pasindulk/expense_chat_app/internal/core/domain"
)

// RegisterAccountRequest defines the payload for registering a new account.
// Email and password are optional; without them the account can still log
// expenses over chat but cannot use the dashboard.
type RegisterAccountRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email" binding:"omitempty,email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	SheetURL    string `json:"sheetUrl" binding:"required"`
	LedgerName  string `json:"ledgerName"`
}

// AddPhoneRequest appends a channel-address variant to the account.
type AddPhoneRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// AddLedgerRequest links an additional spreadsheet to the account.
type AddLedgerRequest struct {
	Name     string `json:"name"`
	SheetURL string `json:"sheetUrl" binding:"required"`
}

// LedgerResponse is the API representation of a ledger.
type LedgerResponse struct {
	LedgerID  string    `json:"ledgerID"`
	Name      string    `json:"name"`
	SheetURL  string    `json:"sheetUrl"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

// AccountResponse is the API representation of an account.
type AccountResponse struct {
	AccountID    string           `json:"accountID"`
	Name         string           `json:"name"`
	Email        string           `json:"email,omitempty"`
	PhoneNumbers []string         `json:"phoneNumbers"`
	Ledgers      []LedgerResponse `json:"ledgers"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// ToLedgerResponse converts a domain.Ledger to its API representation.
func ToLedgerResponse(l *domain.Ledger) LedgerResponse {
	return LedgerResponse{
		LedgerID:  l.LedgerID,
		Name:      l.Name,
		SheetURL:  l.SheetURL,
		Position:  l.Position,
		CreatedAt: l.CreatedAt,
	}
}

// ToAccountResponse converts a domain.Account to its API representation.
func ToAccountResponse(a *domain.Account) AccountResponse {
	ledgers := make([]LedgerResponse, len(a.Ledgers))
	for i := range a.Ledgers {
		ledgers[i] = ToLedgerResponse(&a.Ledgers[i])
	}
	return AccountResponse{
		AccountID:    a.AccountID,
		Name:         a.Name,
		Email:        a.Email,
		PhoneNumbers: a.PhoneNumbers,
		Ledgers:      ledgers,
		CreatedAt:    a.CreatedAt,
	}
}
