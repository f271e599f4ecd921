package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/smallledger/general_ledger_app/internal/core/domain"
)

// TrialBalanceRow is one account line: the absolute raw balance placed
// in either the debit or the credit column.
type TrialBalanceRow struct {
	Account string          `json:"account"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}

// TrialBalanceSection groups rows of one account type.
type TrialBalanceSection struct {
	Type domain.AccountType `json:"type"`
	Rows []TrialBalanceRow  `json:"rows"`
}

// TrialBalanceReport lists every account's net debit or credit balance.
// For input entries that individually balance, TotalDebit always equals
// TotalCredit.
type TrialBalanceReport struct {
	Period      string                `json:"period"`
	Sections    []TrialBalanceSection `json:"sections"`
	TotalDebit  decimal.Decimal       `json:"totalDebit"`
	TotalCredit decimal.Decimal       `json:"totalCredit"`
}

// TrialBalance computes a trial balance over the given entries. The
// accounts list supplies the type used for grouping; an account name
// not found there is grouped under assets. Sections follow the fixed
// statement order and rows are sorted by account name. The period label
// is display-only; date filtering is the caller's responsibility.
func TrialBalance(entries []domain.JournalEntry, accounts []domain.Account, period string) *TrialBalanceReport {
	typeByName := make(map[string]domain.AccountType, len(accounts))
	for _, a := range accounts {
		typeByName[a.Name] = a.Type
	}

	balances := ComputeBalances(entries)

	grouped := make(map[domain.AccountType][]TrialBalanceRow)
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for name, balance := range balances {
		if balance.IsZero() {
			continue
		}

		accountType, ok := typeByName[name]
		if !ok {
			accountType = domain.Asset
		}

		row := TrialBalanceRow{Account: name}
		if balance.IsPositive() {
			row.Debit = balance
			totalDebit = totalDebit.Add(balance)
		} else {
			row.Credit = balance.Neg()
			totalCredit = totalCredit.Add(balance.Neg())
		}
		grouped[accountType] = append(grouped[accountType], row)
	}

	report := &TrialBalanceReport{
		Period:      period,
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
	}
	for _, accountType := range domain.StatementOrder {
		rows := grouped[accountType]
		if len(rows) == 0 {
			continue
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].Account < rows[j].Account })
		report.Sections = append(report.Sections, TrialBalanceSection{Type: accountType, Rows: rows})
	}
	return report
}
