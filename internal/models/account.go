package models

// AccountType mirrors the account_type postgres enum.
type AccountType string

// Account represents a row of the accounts table.
type Account struct {
	AccountID string      `db:"id"`
	Name      string      `db:"name"`
	Type      AccountType `db:"account_type"`
	Timestamps
}
