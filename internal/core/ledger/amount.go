package ledger

import "github.com/shopspring/decimal"

// Amount is a posting amount as captured from an entry form: either a
// number that is already evaluated, or raw expression text that still
// needs to go through EvaluateExpression. Keeping the distinction
// explicit means the rest of the core never operates on an ambiguous
// string-or-number value; the evaluator is the single conversion point.
type Amount struct {
	raw       string
	value     decimal.Decimal
	evaluated bool
}

// AmountFromDecimal wraps an already-evaluated numeric amount.
func AmountFromDecimal(d decimal.Decimal) Amount {
	return Amount{value: d, evaluated: true}
}

// AmountFromString wraps raw expression text typed into an amount field.
func AmountFromString(s string) Amount {
	return Amount{raw: s}
}

// Evaluate resolves the amount to a decimal. Raw text is run through
// the expression evaluator; invalid text resolves to zero.
func (a Amount) Evaluate() decimal.Decimal {
	if a.evaluated {
		return a.value
	}
	return EvaluateExpression(a.raw)
}
