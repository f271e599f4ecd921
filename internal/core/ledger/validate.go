package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/smallledger/general_ledger_app/internal/core/domain"
)

// Entry validation. ValidateEntry decides whether a set of candidate
// postings forms a legal, balanced journal entry, possibly synthesizing
// one side of a single-legged entry. It is a pure function; persistence
// is the caller's concern.

// CandidatePosting is one as-submitted posting line: an account that may
// or may not have been selected, and an amount that may still be raw
// expression text.
type CandidatePosting struct {
	Account domain.Account
	Amount  Amount
}

// ValidatedEntry holds the finalized posting lists of an admissible
// entry, ready for persistence.
type ValidatedEntry struct {
	Debits  []domain.Posting
	Credits []domain.Posting
}

// MissingAccountError reports that auto-balancing needed an account on
// the named side but none was selected.
type MissingAccountError struct {
	Side domain.EntrySide
}

func (e *MissingAccountError) Error() string {
	return fmt.Sprintf("please select an account for the %s entry", e.Side)
}

// UnbalancedError reports that the final debit and credit totals differ
// at currency precision. It carries both totals, unrounded, for display.
type UnbalancedError struct {
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("debits (%s) must equal credits (%s)", e.DebitTotal, e.CreditTotal)
}

// ValidateEntry validates candidate debit and credit postings.
//
// Candidates without a selected account or with an amount that
// evaluates to zero are discarded. If that leaves exactly one posting
// with a positive total on one side and none on the other, the empty
// side is auto-balanced: it is synthesized from its own first candidate
// posting's account with the non-empty side's total. An empty side with
// two or more original candidates is never auto-balanced this way
// beyond its first; the ambiguity simply falls through to the balance
// check. Finally the entry is admissible iff both totals agree after
// rounding to two decimals.
func ValidateEntry(debits, credits []CandidatePosting) (*ValidatedEntry, error) {
	validDebits := evaluateAndFilter(debits)
	validCredits := evaluateAndFilter(credits)

	debitTotal := sumPostingAmounts(validDebits)
	creditTotal := sumPostingAmounts(validCredits)

	if len(validDebits) == 0 && len(validCredits) == 1 && creditTotal.IsPositive() {
		account, ok := firstAccount(debits)
		if !ok {
			return nil, &MissingAccountError{Side: domain.Debit}
		}
		validDebits = append(validDebits, domain.Posting{Account: account, Amount: creditTotal})
	} else if len(validCredits) == 0 && len(validDebits) == 1 && debitTotal.IsPositive() {
		account, ok := firstAccount(credits)
		if !ok {
			return nil, &MissingAccountError{Side: domain.Credit}
		}
		validCredits = append(validCredits, domain.Posting{Account: account, Amount: debitTotal})
	}

	// Totals may have changed if a side was synthesized.
	finalDebitTotal := sumPostingAmounts(validDebits)
	finalCreditTotal := sumPostingAmounts(validCredits)

	if !finalDebitTotal.Round(2).Equal(finalCreditTotal.Round(2)) {
		return nil, &UnbalancedError{DebitTotal: finalDebitTotal, CreditTotal: finalCreditTotal}
	}

	return &ValidatedEntry{Debits: validDebits, Credits: validCredits}, nil
}

// evaluateAndFilter resolves candidate amounts and drops lines with no
// selected account or a zero amount.
func evaluateAndFilter(candidates []CandidatePosting) []domain.Posting {
	var postings []domain.Posting
	for _, c := range candidates {
		if c.Account.ID == "" {
			continue
		}
		amount := c.Amount.Evaluate()
		if amount.IsZero() {
			continue
		}
		postings = append(postings, domain.Posting{Account: c.Account, Amount: amount})
	}
	return postings
}

// firstAccount returns the account of the first original candidate on a
// side, used when that side is being synthesized by auto-balance.
func firstAccount(candidates []CandidatePosting) (domain.Account, bool) {
	if len(candidates) == 0 || candidates[0].Account.ID == "" {
		return domain.Account{}, false
	}
	return candidates[0].Account, true
}

func sumPostingAmounts(postings []domain.Posting) decimal.Decimal {
	total := decimal.Zero
	for _, p := range postings {
		total = total.Add(p.Amount)
	}
	return total
}
