package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/smallledger/general_ledger_app/internal/core/ledger"
)

func TestEvaluateExpression(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain integer", "42", "42"},
		{"plain decimal", "12.50", "12.5"},
		{"addition", "12.50+7", "19.5"},
		{"subtraction", "100-0.01", "99.99"},
		{"precedence", "10*2+5", "25"},
		{"precedence reversed", "5+10*2", "25"},
		{"division", "10/4", "2.5"},
		{"parentheses", "(5+10)*2", "30"},
		{"nested parentheses", "((2+3)*(4-1))", "15"},
		{"unary minus", "-5+10", "5"},
		{"double unary plus", "2++3", "5"},
		{"whitespace ignored", " 1 + 2 ", "3"},
		{"trailing dot literal", "5.+1", "6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected, err := decimal.NewFromString(tt.expected)
			assert.NoError(t, err)
			assert.True(t, ledger.EvaluateExpression(tt.input).Equal(expected),
				"EvaluateExpression(%q) = %s, want %s", tt.input, ledger.EvaluateExpression(tt.input), tt.expected)
		})
	}
}

func TestEvaluateExpressionInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"letters", "abc"},
		{"sql injection attempt", "DROP TABLE accounts"},
		{"disallowed characters", "1+2; 3"},
		{"division by zero", "5/0"},
		{"division by zero expression", "1/(2-2)"},
		{"unbalanced parenthesis", "(1+2"},
		{"dangling operator", "1+"},
		{"implicit multiplication", "1(2)"},
		{"double dot", "1..2"},
		{"bare dot", "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, ledger.EvaluateExpression(tt.input).IsZero(),
				"EvaluateExpression(%q) should be zero", tt.input)
		})
	}
}
