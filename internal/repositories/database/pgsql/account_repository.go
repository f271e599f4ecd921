package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smallledger/general_ledger_app/internal/apperrors"
	"github.com/smallledger/general_ledger_app/internal/core/domain"
	portsrepo "github.com/smallledger/general_ledger_app/internal/core/ports/repositories"
	"github.com/smallledger/general_ledger_app/internal/models"
)

// uniqueViolation is the postgres error code for unique constraint
// violations.
const uniqueViolation = "23505"

type PgxAccountRepository struct {
	BaseRepository
}

// NewAccountRepository creates a new repository for account data.
func NewAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		ID:   m.AccountID,
		Name: m.Name,
		Type: domain.AccountType(m.Type),
	}
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	query := `
		INSERT INTO accounts (id, name, account_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4);
	`
	now := time.Now().UTC()
	_, err := r.Pool.Exec(ctx, query, account.ID, account.Name, string(account.Type), now)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: account name %q", apperrors.ErrDuplicate, account.Name)
		}
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

// FindAccountByID fetches a single live account.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
		SELECT id, name, account_type
		FROM accounts
		WHERE id = $1 AND deleted_at IS NULL;
	`
	var m models.Account
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(&m.AccountID, &m.Name, &m.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to query account %s: %w", accountID, err)
	}
	account := toDomainAccount(m)
	return &account, nil
}

// ListAccounts returns all live accounts ordered by name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `
		SELECT id, name, account_type
		FROM accounts
		WHERE deleted_at IS NULL
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.AccountID, &m.Name, &m.Type); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, toDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account rows: %w", err)
	}
	return accounts, nil
}
