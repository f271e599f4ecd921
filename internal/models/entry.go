package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySide mirrors the entry_type postgres enum.
type EntrySide string

const (
	SideDebit  EntrySide = "debit"
	SideCredit EntrySide = "credit"
)

// JournalEntry represents a row of the journal_entries table.
type JournalEntry struct {
	EntryID     string    `db:"id"`
	Date        time.Time `db:"date"`
	Description string    `db:"description"`
	Timestamps
}

// AccountEntry represents a row of the account_entries table: one
// posting belonging to a journal entry.
type AccountEntry struct {
	AccountEntryID string          `db:"id"`
	Side           EntrySide       `db:"entry_type"`
	Amount         decimal.Decimal `db:"amount"`
	AccountID      string          `db:"account_id"`
	JournalEntryID string          `db:"journal_entry_id"`
}
