package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pasindulk/expense_chat_app/internal/apperrors"
	"github.com/pasindulk/expense_chat_app/internal/core/domain"
	portsrepo "github.com/pasindulk/expense_chat_app/internal/core/ports/repositories"
	"github.com/pasindulk/expense_chat_app/internal/models"
	"github.com/pasindulk/expense_chat_app/internal/utils/mapping"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// SaveAccount inserts a new account with its phone variants and ledgers in a
// single transaction. A unique violation on any row maps to ErrDuplicate so
// registration can report the conflict instead of half-creating the account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	accountQuery := `
		INSERT INTO accounts (account_id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err = tx.Exec(ctx, accountQuery,
		modelAcc.AccountID,
		modelAcc.Name,
		modelAcc.Email,
		modelAcc.PasswordHash,
		modelAcc.CreatedAt,
	)
	if err != nil {
		return mapSaveAccountError(err, modelAcc.AccountID)
	}

	phoneQuery := `
		INSERT INTO account_phones (phone_number, account_id, created_at)
		VALUES ($1, $2, $3);
	`
	for _, phoneNumber := range account.PhoneNumbers {
		if _, err := tx.Exec(ctx, phoneQuery, phoneNumber, modelAcc.AccountID, modelAcc.CreatedAt); err != nil {
			return mapSaveAccountError(err, modelAcc.AccountID)
		}
	}

	ledgerQuery := `
		INSERT INTO ledgers (ledger_id, account_id, name, sheet_url, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, ledger := range account.Ledgers {
		modelLedger := mapping.ToModelLedger(ledger)
		_, err := tx.Exec(ctx, ledgerQuery,
			modelLedger.LedgerID,
			modelLedger.AccountID,
			modelLedger.Name,
			modelLedger.SheetURL,
			modelLedger.Position,
			modelLedger.CreatedAt,
		)
		if err != nil {
			return mapSaveAccountError(err, modelAcc.AccountID)
		}
	}

	return r.Commit(ctx, tx)
}

func mapSaveAccountError(err error, accountID string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
		return fmt.Errorf("%w: account details already claimed", apperrors.ErrDuplicate)
	}
	return fmt.Errorf("failed to save account %s: %w", accountID, err)
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
		SELECT account_id, name, email, password_hash, created_at
		FROM accounts
		WHERE account_id = $1;
	`
	var modelAcc models.Account
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(
		&modelAcc.AccountID,
		&modelAcc.Name,
		&modelAcc.Email,
		&modelAcc.PasswordHash,
		&modelAcc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	return r.assembleAccount(ctx, modelAcc)
}

// FindAccountByEmail retrieves an account by its email address.
func (r *PgxAccountRepository) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
		SELECT account_id, name, email, password_hash, created_at
		FROM accounts
		WHERE email = $1;
	`
	var modelAcc models.Account
	err := r.Pool.QueryRow(ctx, query, email).Scan(
		&modelAcc.AccountID,
		&modelAcc.Name,
		&modelAcc.Email,
		&modelAcc.PasswordHash,
		&modelAcc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by email: %w", err)
	}

	return r.assembleAccount(ctx, modelAcc)
}

// FindAccountByPhoneVariants retrieves the account owning any of the given
// phone-number variants. The phone_number column is the table's primary key,
// so at most one account can match.
func (r *PgxAccountRepository) FindAccountByPhoneVariants(ctx context.Context, variants []string) (*domain.Account, error) {
	if len(variants) == 0 {
		return nil, apperrors.ErrNotFound
	}

	query := `
		SELECT a.account_id, a.name, a.email, a.password_hash, a.created_at
		FROM accounts a
		JOIN account_phones p ON p.account_id = a.account_id
		WHERE p.phone_number = ANY($1)
		LIMIT 1;
	`
	var modelAcc models.Account
	err := r.Pool.QueryRow(ctx, query, variants).Scan(
		&modelAcc.AccountID,
		&modelAcc.Name,
		&modelAcc.Email,
		&modelAcc.PasswordHash,
		&modelAcc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by phone variants: %w", err)
	}

	return r.assembleAccount(ctx, modelAcc)
}

// AddPhoneVariant appends a phone-number variant to an existing account.
func (r *PgxAccountRepository) AddPhoneVariant(ctx context.Context, accountID string, phoneNumber string) error {
	query := `
		INSERT INTO account_phones (phone_number, account_id, created_at)
		VALUES ($1, $2, NOW());
	`
	_, err := r.Pool.Exec(ctx, query, phoneNumber, accountID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // Unique violation
				return fmt.Errorf("%w: phone number %s already claimed", apperrors.ErrDuplicate, phoneNumber)
			case "23503": // Foreign key violation: account does not exist
				return apperrors.ErrNotFound
			}
		}
		return fmt.Errorf("failed to add phone variant for account %s: %w", accountID, err)
	}
	return nil
}

// SaveLedger appends a ledger to an existing account.
func (r *PgxAccountRepository) SaveLedger(ctx context.Context, ledger domain.Ledger) error {
	modelLedger := mapping.ToModelLedger(ledger)

	query := `
		INSERT INTO ledgers (ledger_id, account_id, name, sheet_url, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelLedger.LedgerID,
		modelLedger.AccountID,
		modelLedger.Name,
		modelLedger.SheetURL,
		modelLedger.Position,
		modelLedger.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // Unique violation
				return fmt.Errorf("%w: ledger %s already exists", apperrors.ErrDuplicate, modelLedger.LedgerID)
			case "23503": // Foreign key violation: account does not exist
				return apperrors.ErrNotFound
			}
		}
		return fmt.Errorf("failed to save ledger %s: %w", modelLedger.LedgerID, err)
	}
	return nil
}

// assembleAccount loads the account's phone variants and ledgers and builds
// the domain representation. Ledgers come back in registration order so the
// first one is the account's default.
func (r *PgxAccountRepository) assembleAccount(ctx context.Context, modelAcc models.Account) (*domain.Account, error) {
	phones, err := r.findPhonesByAccount(ctx, modelAcc.AccountID)
	if err != nil {
		return nil, err
	}
	ledgers, err := r.findLedgersByAccount(ctx, modelAcc.AccountID)
	if err != nil {
		return nil, err
	}

	domainAcc := mapping.ToDomainAccount(modelAcc, phones, ledgers)
	return &domainAcc, nil
}

func (r *PgxAccountRepository) findPhonesByAccount(ctx context.Context, accountID string) ([]models.AccountPhone, error) {
	query := `
		SELECT phone_number, account_id, created_at
		FROM account_phones
		WHERE account_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query phones for account %s: %w", accountID, err)
	}
	defer rows.Close()

	phones := []models.AccountPhone{}
	for rows.Next() {
		var p models.AccountPhone
		if err := rows.Scan(&p.PhoneNumber, &p.AccountID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan phone row for account %s: %w", accountID, err)
		}
		phones = append(phones, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating phone rows for account %s: %w", accountID, err)
	}
	return phones, nil
}

func (r *PgxAccountRepository) findLedgersByAccount(ctx context.Context, accountID string) ([]models.Ledger, error) {
	query := `
		SELECT ledger_id, account_id, name, sheet_url, position, created_at
		FROM ledgers
		WHERE account_id = $1
		ORDER BY position;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledgers for account %s: %w", accountID, err)
	}
	defer rows.Close()

	ledgers := []models.Ledger{}
	for rows.Next() {
		var l models.Ledger
		if err := rows.Scan(&l.LedgerID, &l.AccountID, &l.Name, &l.SheetURL, &l.Position, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ledger row for account %s: %w", accountID, err)
		}
		ledgers = append(ledgers, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger rows for account %s: %w", accountID, err)
	}
	return ledgers, nil
}
