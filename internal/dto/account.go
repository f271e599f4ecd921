package dto

import (
	"github.com/smallledger/general_ledger_app/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name string             `json:"name" binding:"required"`
	Type domain.AccountType `json:"type" binding:"required,oneof=asset liability equity revenue expense"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID   string             `json:"id"`
	Name string             `json:"name"`
	Type domain.AccountType `json:"type"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:   acc.ID,
		Name: acc.Name,
		Type: acc.Type,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
