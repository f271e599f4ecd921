package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/smallledger/general_ledger_app/internal/core/domain"
)

// AccountAmount is one statement line: an account name with its
// display-sign amount.
type AccountAmount struct {
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
}

// IncomeStatementReport lists revenues and expenses for a period.
type IncomeStatementReport struct {
	Period        string          `json:"period"`
	Revenues      []AccountAmount `json:"revenues"`
	Expenses      []AccountAmount `json:"expenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}

// IncomeStatement computes an income statement over the given entries.
// Revenue accounts accumulate credits, so their display amount is the
// negated raw balance; expense amounts are the raw balance as is.
// The caller filters entries to the reporting period beforehand; the
// period label is display-only.
func IncomeStatement(entries []domain.JournalEntry, period string) *IncomeStatementReport {
	balances := computeTypedBalances(entries)

	report := &IncomeStatementReport{Period: period}
	for name, b := range balances {
		switch b.Type {
		case domain.Revenue:
			report.Revenues = append(report.Revenues, AccountAmount{Account: name, Amount: b.Amount.Neg()})
		case domain.Expense:
			report.Expenses = append(report.Expenses, AccountAmount{Account: name, Amount: b.Amount})
		}
	}
	sortByAccount(report.Revenues)
	sortByAccount(report.Expenses)

	report.TotalRevenue = sumAccountAmounts(report.Revenues)
	report.TotalExpenses = sumAccountAmounts(report.Expenses)
	report.NetIncome = report.TotalRevenue.Sub(report.TotalExpenses)
	return report
}

func sortByAccount(lines []AccountAmount) {
	sort.Slice(lines, func(i, j int) bool { return lines[i].Account < lines[j].Account })
}

func sumAccountAmounts(lines []AccountAmount) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	return total
}
