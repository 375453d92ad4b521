package id

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionKeyIsDeterministic(t *testing.T) {
	amount := decimal.RequireFromString("-12.34")

	first := TransactionKey("2025-07-01", amount, "ALDI SUED SAGT DANKE")
	second := TransactionKey("2025-07-01", amount, "ALDI SUED SAGT DANKE")

	assert.Equal(t, first, second)
	assert.Len(t, first, KeyLength)
	assert.Regexp(t, "^[0-9a-f]+$", first)
}

func TestTransactionKeyNormalizesAmountExponent(t *testing.T) {
	// 12.3 and 12.30 are the same value; the key must not depend on how
	// many trailing zeros the decimal happens to carry.
	a := TransactionKey("2025-07-01", decimal.RequireFromString("12.3"), "REWE")
	b := TransactionKey("2025-07-01", decimal.RequireFromString("12.30"), "REWE")
	assert.Equal(t, a, b)
}

func TestTransactionKeyDistinguishesFields(t *testing.T) {
	amount := decimal.RequireFromString("-12.34")
	base := TransactionKey("2025-07-01", amount, "ALDI SUED")

	assert.NotEqual(t, base, TransactionKey("2025-07-02", amount, "ALDI SUED"))
	assert.NotEqual(t, base, TransactionKey("2025-07-01", decimal.RequireFromString("12.34"), "ALDI SUED"))
	assert.NotEqual(t, base, TransactionKey("2025-07-01", amount, "ALDI NORD"))
}
