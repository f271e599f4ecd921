package services

import (
	"context"

	"github.com/smallledger/general_ledger_app/internal/core/domain"
	"github.com/smallledger/general_ledger_app/internal/core/ledger"
	"github.com/smallledger/general_ledger_app/internal/dto"
)

// AccountService manages ledger accounts.
type AccountService interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// EntryService manages journal entries. Create and Replace run the
// submitted postings through the entry validator before persisting.
type EntryService interface {
	CreateEntry(ctx context.Context, req dto.SaveEntryRequest) (*domain.JournalEntry, error)
	ReplaceEntry(ctx context.Context, entryID string, req dto.SaveEntryRequest) (*domain.JournalEntry, error)
	DeleteEntry(ctx context.Context, entryID string) error
	ListEntries(ctx context.Context) ([]domain.JournalEntry, error)
}

// ReportingService derives the financial statements from the stored
// entries. Date filtering happens here, before aggregation; the
// generators themselves only ever see pre-filtered collections.
type ReportingService interface {
	TrialBalance(ctx context.Context, asOf domain.Date) (*ledger.TrialBalanceReport, error)
	IncomeStatement(ctx context.Context, from, to domain.Date) (*ledger.IncomeStatementReport, error)
	BalanceSheet(ctx context.Context, asOf domain.Date) (*ledger.BalanceSheetReport, error)
}
