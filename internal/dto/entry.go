package dto

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/smallledger/general_ledger_app/internal/core/domain"
	"github.com/smallledger/general_ledger_app/internal/core/ledger"
)

// FlexAmount is an amount field that accepts either a JSON number or a
// string holding an arithmetic expression ("12.50+7"). It converts to
// the core's tagged Amount; the expression evaluator is the only place
// the string form ever gets interpreted.
type FlexAmount struct {
	amount ledger.Amount
}

func (a *FlexAmount) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty amount")
	}
	switch data[0] {
	case '"':
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		a.amount = ledger.AmountFromString(raw)
	case 'n': // null
		a.amount = ledger.AmountFromDecimal(decimal.Zero)
	default:
		var d decimal.Decimal
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		a.amount = ledger.AmountFromDecimal(d)
	}
	return nil
}

// Amount returns the core representation of the field.
func (a FlexAmount) Amount() ledger.Amount {
	return a.amount
}

// AccountRefInput identifies the account a posting targets. Only the ID
// is significant; name and type are resolved server-side.
type AccountRefInput struct {
	ID string `json:"id"`
}

// PostingInput is one candidate posting line as submitted by the entry
// form: a possibly-unselected account and a possibly-raw amount.
type PostingInput struct {
	Account AccountRefInput `json:"account"`
	Amount  FlexAmount      `json:"amount"`
}

// SaveEntryRequest defines the payload for creating or replacing a
// journal entry.
type SaveEntryRequest struct {
	Date        domain.Date    `json:"date" binding:"required"`
	Description string         `json:"description" binding:"required"`
	Debits      []PostingInput `json:"debits"`
	Credits     []PostingInput `json:"credits"`
}

// PostingResponse defines the data returned for a posting.
type PostingResponse struct {
	Account AccountResponse `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
}

// EntryResponse defines the data returned for a journal entry with its
// postings.
type EntryResponse struct {
	ID          string            `json:"id"`
	Date        domain.Date       `json:"date"`
	Description string            `json:"description"`
	Debits      []PostingResponse `json:"debits"`
	Credits     []PostingResponse `json:"credits"`
}

// ToEntryResponse converts a domain.JournalEntry to EntryResponse.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	return EntryResponse{
		ID:          e.ID,
		Date:        e.Date,
		Description: e.Description,
		Debits:      toPostingResponses(e.Debits),
		Credits:     toPostingResponses(e.Credits),
	}
}

// ToListEntryResponse converts a slice of entries to response DTOs.
func ToListEntryResponse(entries []domain.JournalEntry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToEntryResponse(&e)
	}
	return res
}

func toPostingResponses(postings []domain.Posting) []PostingResponse {
	res := make([]PostingResponse, len(postings))
	for i, p := range postings {
		res[i] = PostingResponse{
			Account: ToAccountResponse(&p.Account),
			Amount:  p.Amount,
		}
	}
	return res
}
