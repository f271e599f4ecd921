package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/smallledger/general_ledger_app/internal/apperrors"
	"github.com/smallledger/general_ledger_app/internal/core/domain"
	portsrepo "github.com/smallledger/general_ledger_app/internal/core/ports/repositories"
	"github.com/smallledger/general_ledger_app/internal/models"
)

type PgxEntryRepository struct {
	BaseRepository
}

// NewEntryRepository creates a new repository for journal entry and
// posting data.
func NewEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepository {
	return &PgxEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EntryRepository = (*PgxEntryRepository)(nil)

// SaveEntry inserts the entry row and its full posting set in a single
// database transaction, so a concurrent reader never sees an entry with
// only one side written.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	now := time.Now().UTC()
	entryQuery := `
		INSERT INTO journal_entries (id, date, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4);
	`
	if _, err := tx.Exec(ctx, entryQuery, entry.ID, entry.Date.Time(), entry.Description, now); err != nil {
		return fmt.Errorf("failed to insert journal entry %s: %w", entry.ID, err)
	}

	if err := insertPostings(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ReplaceEntry updates the entry's fields and replaces its entire
// posting set in one transaction. Old postings are deleted and the new
// set reinserted; nothing is diffed.
func (r *PgxEntryRepository) ReplaceEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	now := time.Now().UTC()
	updateQuery := `
		UPDATE journal_entries
		SET date = $2, description = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL;
	`
	tag, err := tx.Exec(ctx, updateQuery, entry.ID, entry.Date.Time(), entry.Description, now)
	if err != nil {
		return fmt.Errorf("failed to update journal entry %s: %w", entry.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entry.ID)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM account_entries WHERE journal_entry_id = $1;`, entry.ID); err != nil {
		return fmt.Errorf("failed to delete postings of journal entry %s: %w", entry.ID, err)
	}

	if err := insertPostings(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// SoftDeleteEntry marks the entry deleted. Its rows stay in place but
// no query here ever returns them again.
func (r *PgxEntryRepository) SoftDeleteEntry(ctx context.Context, entryID string) error {
	query := `
		UPDATE journal_entries
		SET deleted_at = $2, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, entryID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to soft-delete journal entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
	}
	return nil
}

// ListEntries returns all live entries, newest first, each populated
// with its full debit and credit posting lists.
func (r *PgxEntryRepository) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	query := `
		SELECT je.id, je.date, je.description,
			ae.entry_type, ae.amount,
			a.id, a.name, a.account_type
		FROM journal_entries je
		LEFT JOIN account_entries ae ON ae.journal_entry_id = je.id
		LEFT JOIN accounts a ON a.id = ae.account_id
		WHERE je.deleted_at IS NULL
		ORDER BY je.date DESC, je.created_at DESC, je.id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	index := make(map[string]int)

	for rows.Next() {
		var (
			entryID     string
			date        time.Time
			description string
			side        *string
			amount      decimal.NullDecimal
			accountID   *string
			accountName *string
			accountType *string
		)
		if err := rows.Scan(&entryID, &date, &description, &side, &amount, &accountID, &accountName, &accountType); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}

		i, seen := index[entryID]
		if !seen {
			entries = append(entries, domain.JournalEntry{
				ID:          entryID,
				Date:        domain.DateOf(date),
				Description: description,
				Debits:      []domain.Posting{},
				Credits:     []domain.Posting{},
			})
			i = len(entries) - 1
			index[entryID] = i
		}

		// A NULL side means the entry has no postings at all; the
		// LEFT JOIN still yields its header row.
		if side == nil || accountID == nil {
			continue
		}

		posting := domain.Posting{
			Account: domain.Account{
				ID:   *accountID,
				Name: derefString(accountName),
				Type: domain.AccountType(derefString(accountType)),
			},
			Amount: amount.Decimal,
		}
		switch models.EntrySide(*side) {
		case models.SideDebit:
			entries[i].Debits = append(entries[i].Debits, posting)
		case models.SideCredit:
			entries[i].Credits = append(entries[i].Credits, posting)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate journal entry rows: %w", err)
	}
	return entries, nil
}

// insertPostings batch-inserts both posting sides of an entry inside tx.
func insertPostings(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	batch := &pgx.Batch{}
	postingQuery := `
		INSERT INTO account_entries (id, entry_type, amount, account_id, journal_entry_id)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, p := range entry.Debits {
		batch.Queue(postingQuery, uuid.NewString(), string(models.SideDebit), p.Amount, p.Account.ID, entry.ID)
	}
	for _, p := range entry.Credits {
		batch.Queue(postingQuery, uuid.NewString(), string(models.SideCredit), p.Amount, p.Account.ID, entry.ID)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert posting for journal entry %s: %w", entry.ID, err)
		}
	}
	return results.Close()
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
