package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/smallledger/general_ledger_app/internal/apperrors"
	"github.com/smallledger/general_ledger_app/internal/core/domain"
	"github.com/smallledger/general_ledger_app/internal/core/ledger"
	portsrepo "github.com/smallledger/general_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/smallledger/general_ledger_app/internal/core/ports/services"
	"github.com/smallledger/general_ledger_app/internal/dto"
	"github.com/smallledger/general_ledger_app/internal/middleware"
)

// entryService provides journal entry operations. All writes go through
// the entry validator first; the repository takes care of atomicity.
type entryService struct {
	entryRepo   portsrepo.EntryRepository
	accountRepo portsrepo.AccountRepository
}

// NewEntryService creates a new EntryService.
func NewEntryService(entryRepo portsrepo.EntryRepository, accountRepo portsrepo.AccountRepository) portssvc.EntryService {
	return &entryService{entryRepo: entryRepo, accountRepo: accountRepo}
}

var _ portssvc.EntryService = (*entryService)(nil)

// CreateEntry validates the submitted postings and persists a new
// journal entry atomically with them.
func (s *entryService) CreateEntry(ctx context.Context, req dto.SaveEntryRequest) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	validated, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	entry := domain.JournalEntry{
		ID:          uuid.NewString(),
		Date:        req.Date,
		Description: req.Description,
		Debits:      validated.Debits,
		Credits:     validated.Credits,
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		logger.Error("Failed to save journal entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	logger.Info("Journal entry created",
		slog.String("entry_id", entry.ID),
		slog.Int("debits", len(entry.Debits)),
		slog.Int("credits", len(entry.Credits)))
	return &entry, nil
}

// ReplaceEntry validates the submitted postings and swaps the entry's
// fields and full posting set in one atomic write. Prior postings are
// discarded, not diffed.
func (s *entryService) ReplaceEntry(ctx context.Context, entryID string, req dto.SaveEntryRequest) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	validated, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	entry := domain.JournalEntry{
		ID:          entryID,
		Date:        req.Date,
		Description: req.Description,
		Debits:      validated.Debits,
		Credits:     validated.Credits,
	}

	if err := s.entryRepo.ReplaceEntry(ctx, entry); err != nil {
		logger.Error("Failed to replace journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to replace journal entry %s: %w", entryID, err)
	}

	logger.Info("Journal entry replaced", slog.String("entry_id", entryID))
	return &entry, nil
}

// DeleteEntry soft-deletes the entry; it disappears from listings and
// reports but its rows are kept.
func (s *entryService) DeleteEntry(ctx context.Context, entryID string) error {
	if err := s.entryRepo.SoftDeleteEntry(ctx, entryID); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to delete journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return fmt.Errorf("failed to delete journal entry %s: %w", entryID, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Journal entry deleted", slog.String("entry_id", entryID))
	return nil
}

// ListEntries returns all live entries with their postings.
func (s *entryService) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list journal entries", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}

// validate resolves candidate accounts and runs the pure entry
// validator. Validator failures come back wrapped in ErrValidation and
// still carry their concrete type for handlers to unpack.
func (s *entryService) validate(ctx context.Context, req dto.SaveEntryRequest) (*ledger.ValidatedEntry, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	accountsByID := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		accountsByID[a.ID] = a
	}

	validated, err := ledger.ValidateEntry(
		candidatePostings(req.Debits, accountsByID),
		candidatePostings(req.Credits, accountsByID),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return validated, nil
}

// candidatePostings maps submitted posting lines to validator
// candidates. An unknown or empty account ID resolves to the zero
// account, which the validator treats as an unselected line.
func candidatePostings(inputs []dto.PostingInput, accountsByID map[string]domain.Account) []ledger.CandidatePosting {
	candidates := make([]ledger.CandidatePosting, len(inputs))
	for i, in := range inputs {
		candidates[i] = ledger.CandidatePosting{
			Account: accountsByID[in.Account.ID],
			Amount:  in.Amount.Amount(),
		}
	}
	return candidates
}
