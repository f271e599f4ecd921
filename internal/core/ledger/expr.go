package ledger

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Arithmetic expression evaluation for amount fields. Users may type a
// quick sum like "12.50+7" or "10*2+5" directly into an amount input;
// the evaluator turns that text into a decimal amount.
//
// Operator precedence (low to high):
//   1. + -     addition, subtraction
//   2. * /     multiplication, division
//   3. ( )     parentheses
//
// Grammar:
//   expression → term (('+' | '-') term)*
//   term       → factor (('*' | '/') factor)*
//   factor     → NUMBER | '(' expression ')' | ('+' | '-') factor
//
// Anything outside the safe character set, any parse failure, and any
// non-finite result (division by zero) evaluates to zero. A zero amount
// is later filtered out by the entry validator, so a garbled expression
// surfaces as a balance mismatch rather than a hard failure.

var safeExpression = regexp.MustCompile(`^[0-9+\-*/().]+$`)

// EvaluateExpression evaluates an arithmetic amount expression.
// Invalid input of any kind yields decimal.Zero.
func EvaluateExpression(input string) decimal.Decimal {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, input)

	if stripped == "" || !safeExpression.MatchString(stripped) {
		return decimal.Zero
	}

	p := exprParser{src: stripped}
	result, err := p.parseExpression()
	if err != nil || p.pos != len(p.src) {
		return decimal.Zero
	}
	return result
}

var errBadExpression = errors.New("malformed expression")

type exprParser struct {
	src string
	pos int
}

func (p *exprParser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

// parseExpression handles addition and subtraction (lowest precedence).
func (p *exprParser) parseExpression() (decimal.Decimal, error) {
	left, err := p.parseTerm()
	if err != nil {
		return decimal.Zero, err
	}

	for {
		op := p.peek()
		if op != '+' && op != '-' {
			return left, nil
		}
		p.pos++

		right, err := p.parseTerm()
		if err != nil {
			return decimal.Zero, err
		}
		if op == '+' {
			left = left.Add(right)
		} else {
			left = left.Sub(right)
		}
	}
}

// parseTerm handles multiplication and division.
func (p *exprParser) parseTerm() (decimal.Decimal, error) {
	left, err := p.parseFactor()
	if err != nil {
		return decimal.Zero, err
	}

	for {
		op := p.peek()
		if op != '*' && op != '/' {
			return left, nil
		}
		p.pos++

		right, err := p.parseFactor()
		if err != nil {
			return decimal.Zero, err
		}
		if op == '*' {
			left = left.Mul(right)
		} else {
			if right.IsZero() {
				// Division by zero is non-finite in the form's
				// original semantics, hence zero overall.
				return decimal.Zero, errBadExpression
			}
			left = left.Div(right)
		}
	}
}

// parseFactor handles numbers, parenthesized expressions and unary signs.
func (p *exprParser) parseFactor() (decimal.Decimal, error) {
	switch p.peek() {
	case '(':
		p.pos++
		result, err := p.parseExpression()
		if err != nil {
			return decimal.Zero, err
		}
		if p.peek() != ')' {
			return decimal.Zero, errBadExpression
		}
		p.pos++
		return result, nil
	case '-':
		p.pos++
		value, err := p.parseFactor()
		if err != nil {
			return decimal.Zero, err
		}
		return value.Neg(), nil
	case '+':
		p.pos++
		return p.parseFactor()
	}
	return p.parseNumber()
}

func (p *exprParser) parseNumber() (decimal.Decimal, error) {
	start := p.pos
	sawDigit := false
	sawDot := false
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c >= '0' && c <= '9' {
			sawDigit = true
			p.pos++
			continue
		}
		if c == '.' && !sawDot {
			sawDot = true
			p.pos++
			continue
		}
		break
	}
	if !sawDigit {
		return decimal.Zero, errBadExpression
	}

	literal := strings.TrimSuffix(p.src[start:p.pos], ".")
	d, err := decimal.NewFromString(literal)
	if err != nil {
		return decimal.Zero, errBadExpression
	}
	return d, nil
}
