package models

import (
	"database/sql"
	"time"
)

// Account is the database representation of a registered user.
type Account struct {
	AccountID    string         `db:"account_id"`
	Name         string         `db:"name"`
	Email        sql.NullString `db:"email"`
	PasswordHash sql.NullString `db:"password_hash"`
	CreatedAt    time.Time      `db:"created_at"`
}

// AccountPhone is one channel-address variant claimed by an account.
// phone_number is the table's primary key, which enforces the invariant that
// no two accounts may claim overlapping variants.
type AccountPhone struct {
	PhoneNumber string    `db:"phone_number"`
	AccountID   string    `db:"account_id"`
	CreatedAt   time.Time `db:"created_at"`
}
