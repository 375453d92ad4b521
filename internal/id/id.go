// Package id derives stable transaction identifiers for de-duplication.
package id

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/shopspring/decimal"
)

// KeyLength is the length of a transaction key in hex characters.
const KeyLength = 16

// TransactionKey fingerprints a transaction by its canonical value date (ISO
// string), amount (decimal string with two fraction digits) and normalized
// description. Identical triples always yield the identical key, across runs
// and processes, which is what makes re-ingestion of overlapping statements
// idempotent. The digest needs stability, not cryptographic strength.
func TransactionKey(valueDate string, amount decimal.Decimal, description string) string {
	unique := valueDate + "_" + amount.StringFixed(2) + "_" + description
	sum := md5.Sum([]byte(unique))
	return hex.EncodeToString(sum[:])[:KeyLength]
}
