package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/smallledger/general_ledger_app/internal/core/domain"
	"github.com/smallledger/general_ledger_app/internal/core/ledger"
	portsrepo "github.com/smallledger/general_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/smallledger/general_ledger_app/internal/core/ports/services"
	"github.com/smallledger/general_ledger_app/internal/middleware"
)

// reportingService derives the financial statements. It owns the period
// filtering: the pure generators in the ledger package only ever see
// entry collections already cut to the reporting window.
type reportingService struct {
	entryRepo   portsrepo.EntryRepository
	accountRepo portsrepo.AccountRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(entryRepo portsrepo.EntryRepository, accountRepo portsrepo.AccountRepository) portssvc.ReportingService {
	return &reportingService{entryRepo: entryRepo, accountRepo: accountRepo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance generates a trial balance over all entries through asOf.
func (s *reportingService) TrialBalance(ctx context.Context, asOf domain.Date) (*ledger.TrialBalanceReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entries, err := s.entriesThrough(ctx, asOf)
	if err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts for trial balance: %w", err)
	}

	report := ledger.TrialBalance(entries, accounts, asOf.Format("January 2006"))

	logger.Info("Trial balance generated",
		slog.String("asOf", asOf.String()),
		slog.Int("entry_count", len(entries)))
	return report, nil
}

// IncomeStatement generates an income statement for entries dated
// within [from, to].
func (s *reportingService) IncomeStatement(ctx context.Context, from, to domain.Date) (*ledger.IncomeStatementReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entries for income statement: %w", err)
	}

	var inPeriod []domain.JournalEntry
	for _, e := range entries {
		if e.Date.Before(from) || e.Date.After(to) {
			continue
		}
		inPeriod = append(inPeriod, e)
	}

	report := ledger.IncomeStatement(inPeriod, to.Format("January 2006"))

	logger.Info("Income statement generated",
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.Int("entry_count", len(inPeriod)))
	return report, nil
}

// BalanceSheet generates a balance sheet as of a date. It feeds the
// cumulative entry set through asOf to the generator so the synthesized
// Retained Earnings line reflects life-to-date net income.
func (s *reportingService) BalanceSheet(ctx context.Context, asOf domain.Date) (*ledger.BalanceSheetReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entries, err := s.entriesThrough(ctx, asOf)
	if err != nil {
		return nil, err
	}

	report := ledger.BalanceSheet(entries, asOf.Format("January 2, 2006"))

	logger.Info("Balance sheet generated",
		slog.String("asOf", asOf.String()),
		slog.Int("entry_count", len(entries)))
	return report, nil
}

// entriesThrough returns all live entries dated on or before asOf.
func (s *reportingService) entriesThrough(ctx context.Context, asOf domain.Date) ([]domain.JournalEntry, error) {
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entries: %w", err)
	}
	var through []domain.JournalEntry
	for _, e := range entries {
		if e.Date.After(asOf) {
			continue
		}
		through = append(through, e)
	}
	return through, nil
}
