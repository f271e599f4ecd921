package domain

import "github.com/shopspring/decimal"

// EntrySide indicates whether a posting debits or credits its account.
type EntrySide string

const (
	Debit  EntrySide = "debit"
	Credit EntrySide = "credit"
)

// Posting is one line of a journal entry: it debits or credits a single
// account by a positive amount. Postings are owned by their entry and
// have no independent existence; which side a posting is on is implied
// by the slice it lives in on JournalEntry.
type Posting struct {
	Account Account         `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
}

// JournalEntry is a single balanced financial event. The fundamental
// double-entry invariant, sum(Debits) == sum(Credits) at currency
// precision, is enforced by the entry validator before persistence and
// assumed everywhere after.
type JournalEntry struct {
	ID          string    `json:"id"`
	Date        Date      `json:"date"`
	Description string    `json:"description"`
	Debits      []Posting `json:"debits"`
	Credits     []Posting `json:"credits"`
}

// DebitTotal sums the entry's debit postings.
func (e JournalEntry) DebitTotal() decimal.Decimal {
	return sumPostings(e.Debits)
}

// CreditTotal sums the entry's credit postings.
func (e JournalEntry) CreditTotal() decimal.Decimal {
	return sumPostings(e.Credits)
}

func sumPostings(postings []Posting) decimal.Decimal {
	total := decimal.Zero
	for _, p := range postings {
		total = total.Add(p.Amount)
	}
	return total
}
