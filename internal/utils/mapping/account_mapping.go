package mapping

import (
	"database/sql"

	"github.com/pasindulk/expense_chat_app/internal/core/domain"
	"github.com/pasindulk/expense_chat_app/internal/models"
)

// ToModelAccount converts a domain.Account to its database model.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:    d.AccountID,
		Name:         d.Name,
		Email:        toNullString(d.Email),
		PasswordHash: toNullString(d.PasswordHash),
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainAccount assembles a domain.Account from its model rows.
func ToDomainAccount(m models.Account, phones []models.AccountPhone, ledgers []models.Ledger) domain.Account {
	phoneNumbers := make([]string, len(phones))
	for i, p := range phones {
		phoneNumbers[i] = p.PhoneNumber
	}
	domainLedgers := make([]domain.Ledger, len(ledgers))
	for i, l := range ledgers {
		domainLedgers[i] = ToDomainLedger(l)
	}
	return domain.Account{
		AccountID:    m.AccountID,
		Name:         m.Name,
		Email:        m.Email.String,
		PasswordHash: m.PasswordHash.String,
		PhoneNumbers: phoneNumbers,
		Ledgers:      domainLedgers,
		CreatedAt:    m.CreatedAt,
	}
}

// ToModelLedger converts a domain.Ledger to its database model.
func ToModelLedger(d domain.Ledger) models.Ledger {
	return models.Ledger{
		LedgerID:  d.LedgerID,
		AccountID: d.AccountID,
		Name:      d.Name,
		SheetURL:  d.SheetURL,
		Position:  d.Position,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainLedger converts a models.Ledger to its domain representation.
func ToDomainLedger(m models.Ledger) domain.Ledger {
	return domain.Ledger{
		LedgerID:  m.LedgerID,
		AccountID: m.AccountID,
		Name:      m.Name,
		SheetURL:  m.SheetURL,
		Position:  m.Position,
		CreatedAt: m.CreatedAt,
	}
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
