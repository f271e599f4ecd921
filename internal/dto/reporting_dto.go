package dto

import (
	"github.com/shopspring/decimal"

	"github.com/smallledger/general_ledger_app/internal/core/ledger"
)

// TrialBalanceRowResponse represents a row in the trial balance report response.
type TrialBalanceRowResponse struct {
	Account string          `json:"account"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}

// TrialBalanceSectionResponse groups trial balance rows of one account type.
type TrialBalanceSectionResponse struct {
	Type string                    `json:"type"`
	Rows []TrialBalanceRowResponse `json:"rows"`
}

// TrialBalanceResponse represents the trial balance report response.
type TrialBalanceResponse struct {
	Period   string                        `json:"period"`
	Sections []TrialBalanceSectionResponse `json:"sections"`
	Totals   struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
}

// AccountAmountResponse represents an account with its amount in a
// financial report.
type AccountAmountResponse struct {
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
}

// IncomeStatementResponse represents the income statement report response.
type IncomeStatementResponse struct {
	Period   string                  `json:"period"`
	Revenues []AccountAmountResponse `json:"revenues"`
	Expenses []AccountAmountResponse `json:"expenses"`
	Summary  struct {
		TotalRevenue  decimal.Decimal `json:"totalRevenue"`
		TotalExpenses decimal.Decimal `json:"totalExpenses"`
		NetIncome     decimal.Decimal `json:"netIncome"`
	} `json:"summary"`
}

// BalanceSheetResponse represents the balance sheet report response.
type BalanceSheetResponse struct {
	AsOf        string                  `json:"asOf"`
	Assets      []AccountAmountResponse `json:"assets"`
	Liabilities []AccountAmountResponse `json:"liabilities"`
	Equity      []AccountAmountResponse `json:"equity"`
	Summary     struct {
		TotalAssets      decimal.Decimal `json:"totalAssets"`
		TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
		TotalEquity      decimal.Decimal `json:"totalEquity"`
	} `json:"summary"`
}

// ToTrialBalanceResponse converts a core trial balance report to a DTO response.
func ToTrialBalanceResponse(report *ledger.TrialBalanceReport) TrialBalanceResponse {
	response := TrialBalanceResponse{
		Period:   report.Period,
		Sections: make([]TrialBalanceSectionResponse, len(report.Sections)),
	}
	for i, section := range report.Sections {
		rows := make([]TrialBalanceRowResponse, len(section.Rows))
		for j, row := range section.Rows {
			rows[j] = TrialBalanceRowResponse{
				Account: row.Account,
				Debit:   row.Debit,
				Credit:  row.Credit,
			}
		}
		response.Sections[i] = TrialBalanceSectionResponse{
			Type: string(section.Type),
			Rows: rows,
		}
	}
	response.Totals.Debit = report.TotalDebit
	response.Totals.Credit = report.TotalCredit
	return response
}

// ToIncomeStatementResponse converts a core income statement to a DTO response.
func ToIncomeStatementResponse(report *ledger.IncomeStatementReport) IncomeStatementResponse {
	response := IncomeStatementResponse{
		Period:   report.Period,
		Revenues: toAccountAmountResponses(report.Revenues),
		Expenses: toAccountAmountResponses(report.Expenses),
	}
	response.Summary.TotalRevenue = report.TotalRevenue
	response.Summary.TotalExpenses = report.TotalExpenses
	response.Summary.NetIncome = report.NetIncome
	return response
}

// ToBalanceSheetResponse converts a core balance sheet to a DTO response.
func ToBalanceSheetResponse(report *ledger.BalanceSheetReport) BalanceSheetResponse {
	response := BalanceSheetResponse{
		AsOf:        report.AsOf,
		Assets:      toAccountAmountResponses(report.Assets),
		Liabilities: toAccountAmountResponses(report.Liabilities),
		Equity:      toAccountAmountResponses(report.Equity),
	}
	response.Summary.TotalAssets = report.TotalAssets
	response.Summary.TotalLiabilities = report.TotalLiabilities
	response.Summary.TotalEquity = report.TotalEquity
	return response
}

func toAccountAmountResponses(lines []ledger.AccountAmount) []AccountAmountResponse {
	res := make([]AccountAmountResponse, len(lines))
	for i, l := range lines {
		res[i] = AccountAmountResponse{Account: l.Account, Amount: l.Amount}
	}
	return res
}
