package repositories

import (
	"context"

	"github.com/smallledger/general_ledger_app/internal/core/domain"
)

// AccountRepository persists ledger accounts. Soft-deleted accounts are
// filtered at this boundary and never surface to callers.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// EntryRepository persists journal entries together with their
// postings. Every write is atomic: an entry and its full posting set
// are committed or rolled back as one, so a reader never observes a
// partially-written entry. Soft-deleted entries are filtered here and
// never surface to callers.
type EntryRepository interface {
	// SaveEntry inserts a new entry and all of its postings.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error
	// ReplaceEntry updates the entry's fields and swaps its full
	// posting set for the given one; prior postings are discarded,
	// not diffed.
	ReplaceEntry(ctx context.Context, entry domain.JournalEntry) error
	// SoftDeleteEntry marks the entry deleted, excluding it from all
	// subsequent listings and reports.
	SoftDeleteEntry(ctx context.Context, entryID string) error
	// ListEntries returns all live entries, each populated with its
	// full posting lists.
	ListEntries(ctx context.Context) ([]domain.JournalEntry, error)
}
