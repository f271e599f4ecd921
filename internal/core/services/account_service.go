package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/smallledger/general_ledger_app/internal/apperrors"
	"github.com/smallledger/general_ledger_app/internal/core/domain"
	portsrepo "github.com/smallledger/general_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/smallledger/general_ledger_app/internal/core/ports/services"
	"github.com/smallledger/general_ledger_app/internal/dto"
	"github.com/smallledger/general_ledger_app/internal/middleware"
)

// accountService provides account operations.
type accountService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountService {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountService = (*accountService)(nil)

// CreateAccount creates a new ledger account.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.Type)
	}

	account := domain.Account{
		ID:   uuid.NewString(),
		Name: req.Name,
		Type: req.Type,
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account created", slog.String("account_id", account.ID), slog.String("type", string(account.Type)))
	return &account, nil
}

// ListAccounts returns all live accounts.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list accounts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
