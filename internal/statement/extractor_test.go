package statement

import (
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mweber/konto-csv/internal/models"
)

const statementFixture = `Volksbank Mittelhessen eG
Kontoauszug 7/2025
IBAN: DE89 3704 0044 0532 0130 00
alter Kontostand vom 30.06.2025 1.500,00 H

01.07. 01.07. KARTENZAHLUNG GIROCARD 12,34 S
ALDI SUED SAGT DANKE
2025-07-01T12:01 PN:931
15.07. 15.07. GUTSCHRIFT 2.500,00 H
ZENJOB SE
Lohn / Gehalt
28.07. 28.07. BASISLASTSCHRIFT 19,99 S
Drillisch Online GmbH
neuer Kontostand vom 31.07.2025 3.967,67 H
`

func TestExtractStatement(t *testing.T) {
	records, meta := NewExtractor(nil).Extract([]string{statementFixture})

	require.Len(t, records, 3)

	aldi := records[0]
	assert.Equal(t, "2025-07-01", aldi.ValueDate)
	assert.Equal(t, "2025-07-01", aldi.BookingDate)
	assert.Equal(t, "ALDI SUED SAGT DANKE", aldi.Description)
	assert.True(t, aldi.Amount.Equal(decimal.RequireFromString("-12.34")))
	assert.Equal(t, models.TypeDebit, aldi.Type)
	assert.Contains(t, aldi.RawDescription, "01.07. 01.07. KARTENZAHLUNG GIROCARD 12,34 S")
	assert.Contains(t, aldi.RawDescription, "ALDI SUED SAGT DANKE")

	zenjob := records[1]
	assert.Equal(t, "2025-07-15", zenjob.ValueDate)
	assert.Equal(t, "ZENJOB SE", zenjob.Description)
	assert.True(t, zenjob.Amount.Equal(decimal.RequireFromString("2500")))
	assert.Equal(t, models.TypeCredit, zenjob.Type)

	drillisch := records[2]
	assert.Equal(t, "2025-07-28", drillisch.ValueDate)
	assert.Equal(t, "Drillisch Online GmbH", drillisch.Description)
	assert.True(t, drillisch.Amount.Equal(decimal.RequireFromString("-19.99")))
	assert.Equal(t, models.TypeDebit, drillisch.Type)

	assert.Equal(t, "DE89370400440532013000", meta.IBAN)
	assert.Equal(t, "7", meta.StatementNumber)
	assert.Equal(t, "2025", meta.Year)
	assert.Equal(t, "2025-06-30", meta.OpeningBalance.Date)
	assert.True(t, meta.OpeningBalance.Amount.Equal(decimal.RequireFromString("1500")))
	assert.Equal(t, "2025-07-31", meta.ClosingBalance.Date)
	assert.True(t, meta.ClosingBalance.Amount.Equal(decimal.RequireFromString("3967.67")))
}

func TestExtractBalancesReconcile(t *testing.T) {
	records, meta := NewExtractor(nil).Extract([]string{statementFixture})

	total := meta.OpeningBalance.Amount
	for _, rec := range records {
		total = total.Add(rec.Amount)
	}
	assert.True(t, total.Equal(meta.ClosingBalance.Amount),
		"opening balance plus transactions should equal closing balance, got %s", total)
}

func TestExtractSpansPageBoundary(t *testing.T) {
	page1 := "Kontoauszug 7/2025\n01.07. 02.07. KARTENZAHLUNG GIROCARD 12,34 S\n"
	page2 := "ALDI SUED SAGT DANKE\n15.07. 15.07. GUTSCHRIFT 2.500,00 H\nZENJOB SE\n"

	records, _ := NewExtractor(nil).Extract([]string{page1, page2})

	require.Len(t, records, 2)
	assert.Equal(t, "ALDI SUED SAGT DANKE", records[0].Description)
	assert.Equal(t, "2025-07-01", records[0].ValueDate)
	assert.Equal(t, "2025-07-02", records[0].BookingDate)
	assert.Equal(t, "ZENJOB SE", records[1].Description)
}

func TestExtractNoRecords(t *testing.T) {
	text := "Kontoauszug 7/2025\nIBAN: DE89 3704 0044 0532 0130 00\nkeine Umsätze\n"

	records, meta := NewExtractor(nil).Extract([]string{text})

	assert.Empty(t, records)
	assert.Equal(t, "2025", meta.Year)
	assert.Equal(t, "DE89370400440532013000", meta.IBAN)
}

func TestExtractDropsRecordWithoutAmount(t *testing.T) {
	text := `Kontoauszug 7/2025
01.07. 01.07. KARTENZAHLUNG GIROCARD
ALDI SUED SAGT DANKE
15.07. 15.07. GUTSCHRIFT 2.500,00 H
ZENJOB SE
`
	records, _ := NewExtractor(nil).Extract([]string{text})

	require.Len(t, records, 1)
	assert.Equal(t, "ZENJOB SE", records[0].Description)
}

func TestExtractSkipsMalformedDate(t *testing.T) {
	text := `Kontoauszug 7/2025
31.02. 31.02. KARTENZAHLUNG GIROCARD 12,34 S
ALDI SUED SAGT DANKE
15.07. 15.07. GUTSCHRIFT 2.500,00 H
ZENJOB SE
`
	records, _ := NewExtractor(nil).Extract([]string{text})

	require.Len(t, records, 1)
	assert.Equal(t, "ZENJOB SE", records[0].Description)
}

func TestExtractSkipsMalformedAmount(t *testing.T) {
	text := `Kontoauszug 7/2025
01.07. 01.07. KARTENZAHLUNG GIROCARD 1,2,3,4 S
ALDI SUED SAGT DANKE
15.07. 15.07. GUTSCHRIFT 2.500,00 H
ZENJOB SE
`
	records, _ := NewExtractor(nil).Extract([]string{text})

	require.Len(t, records, 1)
	assert.Equal(t, "ZENJOB SE", records[0].Description)
}

func TestExtractIgnoresDigitNoiseLines(t *testing.T) {
	text := `Kontoauszug 7/2025
01.07. 01.07. KARTENZAHLUNG GIROCARD 12,34 S
2025-07-01T12:01 PN:931
ALDI SUED SAGT DANKE
42 Blatt 1
`
	records, _ := NewExtractor(nil).Extract([]string{text})

	require.Len(t, records, 1)
	assert.Equal(t, "ALDI SUED SAGT DANKE", records[0].Description)
	assert.NotContains(t, records[0].RawDescription, "PN:931")
	assert.NotContains(t, records[0].RawDescription, "Blatt")
}

func TestExtractFallsBackToCurrentYear(t *testing.T) {
	text := "01.07. 01.07. KARTENZAHLUNG GIROCARD 12,34 S\nALDI SUED\n"

	records, meta := NewExtractor(nil).Extract([]string{text})

	require.Len(t, records, 1)
	year := strconv.Itoa(time.Now().Year())
	assert.Equal(t, year+"-07-01", records[0].ValueDate)
	assert.Empty(t, meta.Year)
}

func TestExtractAmountWithThousandsSeparator(t *testing.T) {
	text := "Kontoauszug 7/2025\n01.07. 01.07. ÜBERWEISUNG 1.234,56 S\nMax Mustermann\n"

	records, _ := NewExtractor(nil).Extract([]string{text})

	require.Len(t, records, 1)
	assert.True(t, records[0].Amount.Equal(decimal.RequireFromString("-1234.56")))
	assert.Equal(t, "Max Mustermann", records[0].Description)
}
