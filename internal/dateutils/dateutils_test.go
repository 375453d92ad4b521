package dateutils

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mweber/konto-csv/internal/parsererror"
)

func TestParseDayMonth(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		year     string
		expected string
		wantErr  bool
	}{
		{"padded day and month", "01.07.", "2025", "2025-07-01", false},
		{"end of month", "31.12.", "2025", "2025-12-31", false},
		{"no trailing dot", "15.03", "2024", "2024-03-15", false},
		{"surrounding whitespace", " 15.03. ", "2024", "2024-03-15", false},
		{"single digit fields", "1.7.", "2025", "2025-07-01", false},
		{"leap day in leap year", "29.02.", "2024", "2024-02-29", false},
		{"leap day in non-leap year", "29.02.", "2025", "", true},
		{"month out of range", "01.13.", "2025", "", true},
		{"day out of range", "32.01.", "2025", "", true},
		{"missing month", "15.", "2025", "", true},
		{"not numeric", "ab.cd.", "2025", "", true},
		{"empty token", "", "2025", "", true},
		{"bad year", "01.07.", "twenty", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDayMonth(tc.token, tc.year)
			if tc.wantErr {
				require.Error(t, err)
				var dateErr *parsererror.MalformedDateError
				assert.ErrorAs(t, err, &dateErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestEuropeanToISO(t *testing.T) {
	got, err := EuropeanToISO("31.07.2025")
	require.NoError(t, err)
	assert.Equal(t, "2025-07-31", got)

	_, err = EuropeanToISO("2025-07-31")
	assert.Error(t, err)
}

func TestToISODate(t *testing.T) {
	date := time.Date(2025, time.July, 1, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-07-01", ToISODate(date))
}

func TestCurrentYear(t *testing.T) {
	assert.Equal(t, strconv.Itoa(time.Now().Year()), CurrentYear())
}
