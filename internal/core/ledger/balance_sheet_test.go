package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallledger/general_ledger_app/internal/core/domain"
	"github.com/smallledger/general_ledger_app/internal/core/ledger"
)

var capitalAccount = domain.Account{ID: "acc-capital", Name: "Owner Capital", Type: domain.Equity}

func TestBalanceSheetClassification(t *testing.T) {
	entries := []domain.JournalEntry{
		// Owner funds the company.
		entry(jan(1),
			[]domain.Posting{posting(cashAccount, "1000")},
			[]domain.Posting{posting(capitalAccount, "1000")}),
		// Buy supplies on credit.
		entry(jan(5),
			[]domain.Posting{posting(rentAccount, "200")},
			[]domain.Posting{posting(payableAccount, "200")}),
	}

	report := ledger.BalanceSheet(entries, "January 31, 2025")

	assert.Equal(t, "January 31, 2025", report.AsOf)

	require.Len(t, report.Assets, 1)
	assert.Equal(t, "Cash", report.Assets[0].Account)
	assert.True(t, report.Assets[0].Amount.Equal(decimal.NewFromInt(1000)))

	require.Len(t, report.Liabilities, 1)
	assert.Equal(t, "Accounts Payable", report.Liabilities[0].Account)
	assert.True(t, report.Liabilities[0].Amount.Equal(decimal.NewFromInt(200)))

	// Owner Capital plus the synthesized Retained Earnings line.
	require.Len(t, report.Equity, 2)
	assert.Equal(t, "Owner Capital", report.Equity[0].Account)
	assert.True(t, report.Equity[0].Amount.Equal(decimal.NewFromInt(1000)))
}

func TestBalanceSheetRetainedEarnings(t *testing.T) {
	entries := []domain.JournalEntry{
		entry(jan(3),
			[]domain.Posting{posting(cashAccount, "1000")},
			[]domain.Posting{posting(salesAccount, "1000")}),
		entry(jan(10),
			[]domain.Posting{posting(rentAccount, "400")},
			[]domain.Posting{posting(cashAccount, "400")}),
	}

	report := ledger.BalanceSheet(entries, "January 31, 2025")

	last := report.Equity[len(report.Equity)-1]
	assert.Equal(t, ledger.RetainedEarningsAccount, last.Account)
	assert.True(t, last.Amount.Equal(decimal.NewFromInt(600)))
}

func TestBalanceSheetAccountingEquation(t *testing.T) {
	entries := []domain.JournalEntry{
		entry(jan(1),
			[]domain.Posting{posting(cashAccount, "5000")},
			[]domain.Posting{posting(capitalAccount, "5000")}),
		entry(jan(3),
			[]domain.Posting{posting(cashAccount, "1200.50")},
			[]domain.Posting{posting(salesAccount, "1200.50")}),
		entry(jan(10),
			[]domain.Posting{posting(rentAccount, "400")},
			[]domain.Posting{posting(cashAccount, "400")}),
		entry(jan(15),
			[]domain.Posting{posting(cashAccount, "300")},
			[]domain.Posting{posting(payableAccount, "300")}),
	}

	report := ledger.BalanceSheet(entries, "January 31, 2025")

	assert.True(t, report.TotalAssets.Equal(report.TotalLiabilities.Add(report.TotalEquity)),
		"assets (%s) must equal liabilities (%s) plus equity (%s)",
		report.TotalAssets, report.TotalLiabilities, report.TotalEquity)
}

func TestBalanceSheetRetainedEarningsAppendsAfterSort(t *testing.T) {
	// "Retained Earnings" stays last even when alphabetically earlier
	// equity accounts exist.
	zCapital := domain.Account{ID: "acc-z", Name: "Z Capital", Type: domain.Equity}
	entries := []domain.JournalEntry{
		entry(jan(1),
			[]domain.Posting{posting(cashAccount, "100")},
			[]domain.Posting{posting(zCapital, "100")}),
	}

	report := ledger.BalanceSheet(entries, "January 31, 2025")

	require.Len(t, report.Equity, 2)
	assert.Equal(t, "Z Capital", report.Equity[0].Account)
	assert.Equal(t, ledger.RetainedEarningsAccount, report.Equity[1].Account)
}

func TestBalanceSheetEmpty(t *testing.T) {
	report := ledger.BalanceSheet(nil, "January 31, 2025")

	assert.Empty(t, report.Assets)
	assert.Empty(t, report.Liabilities)
	require.Len(t, report.Equity, 1) // only the zero Retained Earnings line
	assert.True(t, report.Equity[0].Amount.IsZero())
	assert.True(t, report.TotalAssets.IsZero())
}
