package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallledger/general_ledger_app/internal/core/domain"
	"github.com/smallledger/general_ledger_app/internal/core/ledger"
)

func TestTrialBalanceColumns(t *testing.T) {
	entries := []domain.JournalEntry{
		entry(jan(1),
			[]domain.Posting{posting(cashAccount, "500")},
			[]domain.Posting{posting(salesAccount, "500")}),
		entry(jan(5),
			[]domain.Posting{posting(rentAccount, "120")},
			[]domain.Posting{posting(cashAccount, "120")}),
	}
	accounts := []domain.Account{cashAccount, salesAccount, rentAccount}

	report := ledger.TrialBalance(entries, accounts, "January 2025")

	require.Len(t, report.Sections, 3)
	assert.Equal(t, "January 2025", report.Period)

	// Fixed statement order, empty types skipped.
	assert.Equal(t, domain.Asset, report.Sections[0].Type)
	assert.Equal(t, domain.Revenue, report.Sections[1].Type)
	assert.Equal(t, domain.Expense, report.Sections[2].Type)

	cash := report.Sections[0].Rows[0]
	assert.Equal(t, "Cash", cash.Account)
	assert.True(t, cash.Debit.Equal(decimal.NewFromInt(380)))
	assert.True(t, cash.Credit.IsZero())

	sales := report.Sections[1].Rows[0]
	assert.Equal(t, "Sales", sales.Account)
	assert.True(t, sales.Credit.Equal(decimal.NewFromInt(500)))
	assert.True(t, sales.Debit.IsZero())
}

func TestTrialBalanceTotalsAgree(t *testing.T) {
	entries := []domain.JournalEntry{
		entry(jan(1),
			[]domain.Posting{posting(cashAccount, "500")},
			[]domain.Posting{posting(salesAccount, "500")}),
		entry(jan(9),
			[]domain.Posting{posting(rentAccount, "75.25")},
			[]domain.Posting{posting(payableAccount, "75.25")}),
	}
	accounts := []domain.Account{cashAccount, salesAccount, rentAccount, payableAccount}

	report := ledger.TrialBalance(entries, accounts, "January 2025")

	assert.True(t, report.TotalDebit.Equal(report.TotalCredit))
	assert.True(t, report.TotalDebit.Equal(decimal.RequireFromString("575.25")))
}

func TestTrialBalanceSkipsZeroBalances(t *testing.T) {
	// Cash is fully drained; it must not appear.
	entries := []domain.JournalEntry{
		entry(jan(1),
			[]domain.Posting{posting(cashAccount, "100")},
			[]domain.Posting{posting(salesAccount, "100")}),
		entry(jan(2),
			[]domain.Posting{posting(rentAccount, "100")},
			[]domain.Posting{posting(cashAccount, "100")}),
	}
	accounts := []domain.Account{cashAccount, salesAccount, rentAccount}

	report := ledger.TrialBalance(entries, accounts, "January 2025")

	for _, section := range report.Sections {
		for _, row := range section.Rows {
			assert.NotEqual(t, "Cash", row.Account)
		}
	}
}

func TestTrialBalanceUnknownAccountGroupsAsAsset(t *testing.T) {
	entries := []domain.JournalEntry{
		entry(jan(1),
			[]domain.Posting{posting(cashAccount, "10")},
			[]domain.Posting{posting(salesAccount, "10")}),
	}

	// No accounts list: every name falls back to the asset section.
	report := ledger.TrialBalance(entries, nil, "January 2025")

	require.Len(t, report.Sections, 1)
	assert.Equal(t, domain.Asset, report.Sections[0].Type)
	assert.Len(t, report.Sections[0].Rows, 2)
}

func TestTrialBalanceRowsSortedByName(t *testing.T) {
	inventory := domain.Account{ID: "acc-inv", Name: "Inventory", Type: domain.Asset}
	entries := []domain.JournalEntry{
		entry(jan(1),
			[]domain.Posting{posting(inventory, "30")},
			[]domain.Posting{posting(salesAccount, "30")}),
		entry(jan(2),
			[]domain.Posting{posting(cashAccount, "20")},
			[]domain.Posting{posting(salesAccount, "20")}),
	}
	accounts := []domain.Account{cashAccount, inventory, salesAccount}

	report := ledger.TrialBalance(entries, accounts, "January 2025")

	require.Len(t, report.Sections[0].Rows, 2)
	assert.Equal(t, "Cash", report.Sections[0].Rows[0].Account)
	assert.Equal(t, "Inventory", report.Sections[0].Rows[1].Account)
}

func TestTrialBalanceEmpty(t *testing.T) {
	report := ledger.TrialBalance(nil, nil, "January 2025")

	assert.Empty(t, report.Sections)
	assert.True(t, report.TotalDebit.IsZero())
	assert.True(t, report.TotalCredit.IsZero())
}
