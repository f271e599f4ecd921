package domain

// AccountType defines the fundamental accounting type of an account.
// The value doubles as the wire representation and the stored enum.
type AccountType string

const (
	Asset     AccountType = "asset"
	Liability AccountType = "liability"
	Equity    AccountType = "equity"
	Revenue   AccountType = "revenue"
	Expense   AccountType = "expense"
)

// StatementOrder is the fixed display order of account types in the
// trial balance.
var StatementOrder = []AccountType{Asset, Liability, Equity, Revenue, Expense}

// Account represents a ledger account. Its type drives the sign
// convention used by the financial statements and is assumed immutable
// once postings reference the account.
type Account struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Type AccountType `json:"type"`
}

// IsValid reports whether t is one of the five account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}
