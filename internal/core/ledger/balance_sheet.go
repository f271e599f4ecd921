package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/smallledger/general_ledger_app/internal/core/domain"
)

// RetainedEarningsAccount is the synthesized equity line carrying
// accumulated net income.
const RetainedEarningsAccount = "Retained Earnings"

// BalanceSheetReport lists assets, liabilities and equity as of a date.
// Equity includes the synthesized Retained Earnings line, so for input
// entries that individually balance, TotalAssets always equals
// TotalLiabilities plus TotalEquity.
type BalanceSheetReport struct {
	AsOf             string          `json:"asOf"`
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
}

// BalanceSheet computes a balance sheet over the given entries. Asset
// amounts are raw balances; liability and equity amounts are negated
// for display. Revenue and expense balances fold into the synthesized
// Retained Earnings equity line as net income over the same entries,
// so the caller must pass the cumulative entry set through the as-of
// date, not a single period, for Retained Earnings to be life-to-date.
// The asOf label is display-only.
func BalanceSheet(entries []domain.JournalEntry, asOf string) *BalanceSheetReport {
	balances := computeTypedBalances(entries)

	report := &BalanceSheetReport{AsOf: asOf}
	revenue := decimal.Zero
	expenses := decimal.Zero

	for name, b := range balances {
		switch b.Type {
		case domain.Asset:
			report.Assets = append(report.Assets, AccountAmount{Account: name, Amount: b.Amount})
		case domain.Liability:
			report.Liabilities = append(report.Liabilities, AccountAmount{Account: name, Amount: b.Amount.Neg()})
		case domain.Equity:
			report.Equity = append(report.Equity, AccountAmount{Account: name, Amount: b.Amount.Neg()})
		case domain.Revenue:
			revenue = revenue.Sub(b.Amount)
		case domain.Expense:
			expenses = expenses.Add(b.Amount)
		}
	}
	sortByAccount(report.Assets)
	sortByAccount(report.Liabilities)
	sortByAccount(report.Equity)

	netIncome := revenue.Sub(expenses)
	report.Equity = append(report.Equity, AccountAmount{Account: RetainedEarningsAccount, Amount: netIncome})

	report.TotalAssets = sumAccountAmounts(report.Assets)
	report.TotalLiabilities = sumAccountAmounts(report.Liabilities)
	report.TotalEquity = sumAccountAmounts(report.Equity)
	return report
}
