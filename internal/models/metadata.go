package models

import "github.com/shopspring/decimal"

// Balance is a dated statement balance. Amount is signed the same way as
// transaction amounts: negative when the statement marks it as a debit.
type Balance struct {
	Date   string
	Amount decimal.Decimal
}

// StatementMetadata holds the document-level fields of one statement. It is
// computed once per document and read-only afterwards. Fields the document
// did not contain keep their zero values.
type StatementMetadata struct {
	IBAN            string
	StatementNumber string
	Year            string
	OpeningBalance  Balance
	ClosingBalance  Balance
}
