// Package models provides the data structures used throughout the application.
package models

import (
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes outflows from inflows.
type TransactionType string

const (
	// TypeDebit marks an outflow; the record amount is negative.
	TypeDebit TransactionType = "Debit"
	// TypeCredit marks an inflow; the record amount is positive.
	TypeCredit TransactionType = "Credit"
)

// Statement indicator letters printed after each amount. S (Soll) marks a
// debit, H (Haben) a credit.
const (
	IndicatorDebit  = "S"
	IndicatorCredit = "H"
)

// TypeFromIndicator maps a statement indicator letter to a transaction type.
// The second return value is false for any letter other than S or H.
func TypeFromIndicator(indicator string) (TransactionType, bool) {
	switch indicator {
	case IndicatorDebit:
		return TypeDebit, true
	case IndicatorCredit:
		return TypeCredit, true
	default:
		return "", false
	}
}

// TransactionRecord is one booked transaction recovered from a statement.
// ValueDate and BookingDate are ISO dates within the statement year. Amount
// carries the sign implied by Type: negative for TypeDebit, positive for
// TypeCredit.
type TransactionRecord struct {
	ValueDate      string
	BookingDate    string
	Description    string
	RawDescription string
	Amount         decimal.Decimal
	Type           TransactionType
}

// CategorizedTransaction is a TransactionRecord with its assigned category.
// The category is immutable once assigned.
type CategorizedTransaction struct {
	TransactionRecord
	Category string
}

// NewLedgerEntry flattens a categorized transaction into its persisted form.
// The amount is rendered with exactly two fraction digits so that re-reading
// the file reproduces the stored value.
func NewLedgerEntry(tx CategorizedTransaction, transactionID, uploadTimestamp string) LedgerEntry {
	return LedgerEntry{
		TransactionID:   transactionID,
		ValueDate:       tx.ValueDate,
		BookingDate:     tx.BookingDate,
		Description:     tx.Description,
		Amount:          tx.Amount.StringFixed(2),
		Type:            string(tx.Type),
		Category:        tx.Category,
		RawDescription:  tx.RawDescription,
		UploadTimestamp: uploadTimestamp,
	}
}

// LedgerEntry is the unit persisted by the ledger store. Amount is the
// canonical decimal string with two fraction digits so that re-reading the
// file reproduces the exact stored value.
type LedgerEntry struct {
	TransactionID   string `csv:"transaction_id"`
	ValueDate       string `csv:"value_date"`
	BookingDate     string `csv:"booking_date"`
	Description     string `csv:"description"`
	Amount          string `csv:"amount"`
	Type            string `csv:"type"`
	Category        string `csv:"category"`
	RawDescription  string `csv:"raw_description"`
	UploadTimestamp string `csv:"upload_timestamp"`
}
