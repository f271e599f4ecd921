package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallledger/general_ledger_app/internal/core/domain"
	"github.com/smallledger/general_ledger_app/internal/core/ledger"
)

func TestIncomeStatement(t *testing.T) {
	entries := []domain.JournalEntry{
		entry(jan(3),
			[]domain.Posting{posting(cashAccount, "1000")},
			[]domain.Posting{posting(salesAccount, "1000")}),
		entry(jan(10),
			[]domain.Posting{posting(rentAccount, "400")},
			[]domain.Posting{posting(cashAccount, "400")}),
	}

	report := ledger.IncomeStatement(entries, "January 2025")

	assert.Equal(t, "January 2025", report.Period)

	require.Len(t, report.Revenues, 1)
	assert.Equal(t, "Sales", report.Revenues[0].Account)
	assert.True(t, report.Revenues[0].Amount.Equal(decimal.NewFromInt(1000)))

	require.Len(t, report.Expenses, 1)
	assert.Equal(t, "Rent", report.Expenses[0].Account)
	assert.True(t, report.Expenses[0].Amount.Equal(decimal.NewFromInt(400)))

	assert.True(t, report.TotalRevenue.Equal(decimal.NewFromInt(1000)))
	assert.True(t, report.TotalExpenses.Equal(decimal.NewFromInt(400)))
	assert.True(t, report.NetIncome.Equal(decimal.NewFromInt(600)))
}

func TestIncomeStatementIgnoresBalanceSheetAccounts(t *testing.T) {
	entries := []domain.JournalEntry{
		entry(jan(1),
			[]domain.Posting{posting(cashAccount, "500")},
			[]domain.Posting{posting(payableAccount, "500")}),
	}

	report := ledger.IncomeStatement(entries, "January 2025")

	assert.Empty(t, report.Revenues)
	assert.Empty(t, report.Expenses)
	assert.True(t, report.NetIncome.IsZero())
}

func TestIncomeStatementNetLoss(t *testing.T) {
	entries := []domain.JournalEntry{
		entry(jan(3),
			[]domain.Posting{posting(cashAccount, "100")},
			[]domain.Posting{posting(salesAccount, "100")}),
		entry(jan(20),
			[]domain.Posting{posting(rentAccount, "250")},
			[]domain.Posting{posting(cashAccount, "250")}),
	}

	report := ledger.IncomeStatement(entries, "January 2025")

	assert.True(t, report.NetIncome.Equal(decimal.NewFromInt(-150)))
}

func TestIncomeStatementLinesSortedByName(t *testing.T) {
	utilities := domain.Account{ID: "acc-util", Name: "Utilities", Type: domain.Expense}
	advertising := domain.Account{ID: "acc-ads", Name: "Advertising", Type: domain.Expense}
	entries := []domain.JournalEntry{
		entry(jan(4),
			[]domain.Posting{posting(utilities, "30")},
			[]domain.Posting{posting(cashAccount, "30")}),
		entry(jan(5),
			[]domain.Posting{posting(advertising, "20")},
			[]domain.Posting{posting(cashAccount, "20")}),
		entry(jan(6),
			[]domain.Posting{posting(rentAccount, "10")},
			[]domain.Posting{posting(cashAccount, "10")}),
	}

	report := ledger.IncomeStatement(entries, "January 2025")

	require.Len(t, report.Expenses, 3)
	assert.Equal(t, "Advertising", report.Expenses[0].Account)
	assert.Equal(t, "Rent", report.Expenses[1].Account)
	assert.Equal(t, "Utilities", report.Expenses[2].Account)
}

func TestIncomeStatementRevenueRefund(t *testing.T) {
	// A debit against a revenue account (refund) reduces its line.
	entries := []domain.JournalEntry{
		entry(jan(3),
			[]domain.Posting{posting(cashAccount, "1000")},
			[]domain.Posting{posting(salesAccount, "1000")}),
		entry(jan(15),
			[]domain.Posting{posting(salesAccount, "200")},
			[]domain.Posting{posting(cashAccount, "200")}),
	}

	report := ledger.IncomeStatement(entries, "January 2025")

	require.Len(t, report.Revenues, 1)
	assert.True(t, report.Revenues[0].Amount.Equal(decimal.NewFromInt(800)))
}
