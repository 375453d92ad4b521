// Package currencyutils provides the amount conversions used throughout the application.
// Statement amounts use the German convention: dot as thousands separator and
// comma as decimal separator, followed by a single-letter debit/credit indicator.
package currencyutils

import (
	"strings"

	"github.com/shopspring/decimal"

	"mweber/konto-csv/internal/models"
	"mweber/konto-csv/internal/parsererror"
)

// ParseStatementAmount parses an amount token such as "1.234,56" together
// with its indicator letter into a signed decimal: indicator S (debit)
// negates the amount, H (credit) leaves it positive. A token that is not
// numeric after normalization, or an unknown indicator, yields a
// MalformedAmountError.
func ParseStatementAmount(token, indicator string) (decimal.Decimal, error) {
	normalized := StandardizeAmount(token)

	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, &parsererror.MalformedAmountError{Token: token, Indicator: indicator, Err: err}
	}

	switch indicator {
	case models.IndicatorDebit:
		return amount.Neg(), nil
	case models.IndicatorCredit:
		return amount, nil
	default:
		return decimal.Zero, &parsererror.MalformedAmountError{Token: token, Indicator: indicator}
	}
}

// StandardizeAmount converts the German number format to a string parseable
// by decimal.NewFromString: every dot (thousands separator) is removed, then
// the decimal comma is replaced with a dot.
func StandardizeAmount(amountStr string) string {
	amountStr = strings.TrimSpace(amountStr)
	amountStr = strings.ReplaceAll(amountStr, ".", "")
	amountStr = strings.ReplaceAll(amountStr, ",", ".")
	return amountStr
}

// FormatEUR formats a decimal amount for display with two decimal places,
// e.g. "€1234.56".
func FormatEUR(amount decimal.Decimal) string {
	return "€" + amount.StringFixed(2)
}

// IsNegative checks if an amount is negative
func IsNegative(amount decimal.Decimal) bool {
	return amount.LessThan(decimal.Zero)
}

// IsPositive checks if an amount is positive
func IsPositive(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}
