// Package textutils provides text cleanup helpers for extracted statement content.
package textutils

import (
	"strings"
	"unicode"
)

// UnknownDescription is the sentinel used when a record carries no
// description text at all.
const UnknownDescription = "Unknown"

// genericHeaders are transaction-type phrases the bank prints as the first
// description line. They carry no vendor information, so a later line is
// preferred when one looks like a vendor name.
var genericHeaders = []string{
	"KARTENZAHLUNG GIROCARD",
	"BASISLASTSCHRIFT",
	"ÜBERWEISUNG",
	"GUTSCHRIFT",
}

// vendorScanWindow is how many lines after a generic header are inspected
// for a vendor name.
const vendorScanWindow = 2

// NormalizeDescription collapses the accumulated description lines of one
// record into a single display string.
//
// The first non-empty trimmed line is the candidate. If its upper-cased form
// contains a generic transaction-type header, the next two lines are scanned
// for a better candidate: the first line whose first five characters contain
// no digit is returned instead (lines opening with digits tend to be
// transaction references rather than vendor names). If no better candidate
// exists the original first line is returned unchanged. With no content lines
// at all the result is the UnknownDescription sentinel.
func NormalizeDescription(rawLines []string) string {
	lines := nonEmptyTrimmed(rawLines)
	if len(lines) == 0 {
		return UnknownDescription
	}

	candidate := lines[0]
	if !containsGenericHeader(candidate) {
		return candidate
	}

	for i := 1; i < len(lines) && i <= vendorScanWindow; i++ {
		if !startsWithDigits(lines[i]) {
			return lines[i]
		}
	}
	return candidate
}

func nonEmptyTrimmed(rawLines []string) []string {
	var lines []string
	for _, line := range rawLines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func containsGenericHeader(line string) bool {
	upper := strings.ToUpper(line)
	for _, header := range genericHeaders {
		if strings.Contains(upper, header) {
			return true
		}
	}
	return false
}

// startsWithDigits reports whether any of the first five characters of the
// line is a digit.
func startsWithDigits(line string) bool {
	count := 0
	for _, r := range line {
		if count >= 5 {
			break
		}
		if unicode.IsDigit(r) {
			return true
		}
		count++
	}
	return false
}
