package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/smallledger/general_ledger_app/internal/core/domain"
	"github.com/smallledger/general_ledger_app/internal/core/ledger"
)

func entry(date domain.Date, debits, credits []domain.Posting) domain.JournalEntry {
	return domain.JournalEntry{
		ID:          "entry",
		Date:        date,
		Description: "test entry",
		Debits:      debits,
		Credits:     credits,
	}
}

func posting(account domain.Account, amount string) domain.Posting {
	return domain.Posting{Account: account, Amount: decimal.RequireFromString(amount)}
}

func jan(day int) domain.Date {
	return domain.NewDate(2025, 1, day)
}

func TestComputeBalancesSignConvention(t *testing.T) {
	entries := []domain.JournalEntry{
		entry(jan(1),
			[]domain.Posting{posting(cashAccount, "100")},
			[]domain.Posting{posting(salesAccount, "100")}),
		entry(jan(2),
			[]domain.Posting{posting(rentAccount, "40")},
			[]domain.Posting{posting(cashAccount, "40")}),
	}

	balances := ledger.ComputeBalances(entries)

	assert.True(t, balances["Cash"].Equal(decimal.NewFromInt(60)))
	assert.True(t, balances["Sales"].Equal(decimal.NewFromInt(-100)))
	assert.True(t, balances["Rent"].Equal(decimal.NewFromInt(40)))
}

func TestComputeBalancesOrderIndependent(t *testing.T) {
	a := entry(jan(1),
		[]domain.Posting{posting(cashAccount, "100")},
		[]domain.Posting{posting(salesAccount, "100")})
	b := entry(jan(2),
		[]domain.Posting{posting(rentAccount, "25.50")},
		[]domain.Posting{posting(cashAccount, "25.50")})
	c := entry(jan(3),
		[]domain.Posting{posting(cashAccount, "10")},
		[]domain.Posting{posting(salesAccount, "10")})

	forward := ledger.ComputeBalances([]domain.JournalEntry{a, b, c})
	backward := ledger.ComputeBalances([]domain.JournalEntry{c, b, a})

	assert.Len(t, backward, len(forward))
	for name, balance := range forward {
		assert.True(t, balance.Equal(backward[name]), "balance of %s differs by order", name)
	}
}

func TestComputeBalancesSumToZero(t *testing.T) {
	// Every entry balances, so raw balances across all accounts cancel.
	entries := []domain.JournalEntry{
		entry(jan(1),
			[]domain.Posting{posting(cashAccount, "500")},
			[]domain.Posting{posting(salesAccount, "500")}),
		entry(jan(5),
			[]domain.Posting{posting(rentAccount, "120.75")},
			[]domain.Posting{posting(cashAccount, "120.75")}),
		entry(jan(9),
			[]domain.Posting{posting(cashAccount, "30"), posting(rentAccount, "20")},
			[]domain.Posting{posting(payableAccount, "50")}),
	}

	total := decimal.Zero
	for _, balance := range ledger.ComputeBalances(entries) {
		total = total.Add(balance)
	}
	assert.True(t, total.IsZero())
}

func TestComputeBalancesMergesByName(t *testing.T) {
	// Two account records sharing a name collapse into one ledger line.
	otherCash := domain.Account{ID: "acc-cash-2", Name: "Cash", Type: domain.Asset}
	entries := []domain.JournalEntry{
		entry(jan(1),
			[]domain.Posting{posting(cashAccount, "100")},
			[]domain.Posting{posting(salesAccount, "100")}),
		entry(jan(2),
			[]domain.Posting{posting(otherCash, "50")},
			[]domain.Posting{posting(salesAccount, "50")}),
	}

	balances := ledger.ComputeBalances(entries)

	assert.True(t, balances["Cash"].Equal(decimal.NewFromInt(150)))
}

func TestComputeBalancesEmpty(t *testing.T) {
	assert.Empty(t, ledger.ComputeBalances(nil))
}
