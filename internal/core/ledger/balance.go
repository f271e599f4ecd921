package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/smallledger/general_ledger_app/internal/core/domain"
)

// Balance aggregation. Raw balances use the ledger sign convention:
// debits increase the stored balance, credits decrease it, regardless
// of account type. Statements re-derive their display sign from the
// account type on top of this.

// ComputeBalances folds a collection of journal entries into a map from
// account name to raw balance (sum of debits minus sum of credits).
// The result is independent of entry and posting ordering. Accounts are
// keyed by name, so two accounts sharing a name merge into one ledger
// line; reports group the same way.
func ComputeBalances(entries []domain.JournalEntry) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal)
	for _, entry := range entries {
		for _, p := range entry.Debits {
			balances[p.Account.Name] = balances[p.Account.Name].Add(p.Amount)
		}
		for _, p := range entry.Credits {
			balances[p.Account.Name] = balances[p.Account.Name].Sub(p.Amount)
		}
	}
	return balances
}

// typedBalance is a raw balance together with the account type observed
// on the postings that produced it.
type typedBalance struct {
	Type   domain.AccountType
	Amount decimal.Decimal
}

// computeTypedBalances is ComputeBalances with the account type carried
// along from each posting's account. The income statement and balance
// sheet both classify lines this way rather than through a separate
// account lookup.
func computeTypedBalances(entries []domain.JournalEntry) map[string]typedBalance {
	balances := make(map[string]typedBalance)
	for _, entry := range entries {
		for _, p := range entry.Debits {
			b := balances[p.Account.Name]
			b.Type = p.Account.Type
			b.Amount = b.Amount.Add(p.Amount)
			balances[p.Account.Name] = b
		}
		for _, p := range entry.Credits {
			b := balances[p.Account.Name]
			b.Type = p.Account.Type
			b.Amount = b.Amount.Sub(p.Amount)
			balances[p.Account.Name] = b
		}
	}
	return balances
}
