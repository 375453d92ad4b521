// Package dateutils provides the date conversions used throughout the application.
package dateutils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"mweber/konto-csv/internal/parsererror"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
)

// ParseDayMonth converts a statement day/month token of the form "DD.MM."
// (trailing dot, no year) plus the statement year into an ISO YYYY-MM-DD
// string. Day and month are zero-padded. A token that does not split into
// exactly two numeric fields, or that does not name a real calendar date in
// the given year, yields a MalformedDateError.
func ParseDayMonth(token, year string) (string, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(token), ".")
	parts := strings.Split(trimmed, ".")
	if len(parts) != 2 {
		return "", &parsererror.MalformedDateError{Token: token}
	}

	day, errDay := strconv.Atoi(parts[0])
	month, errMonth := strconv.Atoi(parts[1])
	yearNum, errYear := strconv.Atoi(strings.TrimSpace(year))
	if errDay != nil || errMonth != nil || errYear != nil {
		return "", &parsererror.MalformedDateError{Token: token}
	}

	iso := fmt.Sprintf("%04d-%02d-%02d", yearNum, month, day)
	if _, err := time.Parse(DateLayoutISO, iso); err != nil {
		return "", &parsererror.MalformedDateError{Token: token}
	}
	return iso, nil
}

// EuropeanToISO converts a full "DD.MM.YYYY" date, as printed next to the
// statement balances, into ISO form.
func EuropeanToISO(dateStr string) (string, error) {
	t, err := time.Parse(DateLayoutEuropean, strings.TrimSpace(dateStr))
	if err != nil {
		return "", &parsererror.MalformedDateError{Token: dateStr}
	}
	return t.Format(DateLayoutISO), nil
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// CurrentYear returns the current year as a string, used when a statement
// does not state its year.
func CurrentYear() string {
	return strconv.Itoa(time.Now().Year())
}
