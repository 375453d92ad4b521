package statement

import (
	"regexp"
	"strings"

	"mweber/konto-csv/internal/currencyutils"
	"mweber/konto-csv/internal/dateutils"
	"mweber/konto-csv/internal/models"
)

var (
	ibanPattern            = regexp.MustCompile(`IBAN:\s*(DE\d{2}\s*\d{4}\s*\d{4}\s*\d{4}\s*\d{4}\s*\d{2})`)
	statementNumberPattern = regexp.MustCompile(`(\d+)/(\d{4})`)
	openingBalancePattern  = regexp.MustCompile(`alter Kontostand vom (\d{2}\.\d{2}\.\d{4})\s+([\d.,]+)\s+([SH])`)
	closingBalancePattern  = regexp.MustCompile(`neuer Kontostand vom (\d{2}\.\d{2}\.\d{4})\s+([\d.,]+)\s+([SH])`)
)

// extractMetadata pulls the account identifier, statement sequence number and
// year, and the opening/closing balances out of the full statement text.
// Fields that cannot be found stay at their zero values; metadata extraction
// never fails a document.
func extractMetadata(text string) models.StatementMetadata {
	var meta models.StatementMetadata

	if m := ibanPattern.FindStringSubmatch(text); m != nil {
		meta.IBAN = strings.ReplaceAll(m[1], " ", "")
	}

	if m := statementNumberPattern.FindStringSubmatch(text); m != nil {
		meta.StatementNumber = m[1]
		meta.Year = m[2]
	}

	if b, ok := parseBalance(openingBalancePattern, text); ok {
		meta.OpeningBalance = b
	}
	if b, ok := parseBalance(closingBalancePattern, text); ok {
		meta.ClosingBalance = b
	}

	return meta
}

func parseBalance(pattern *regexp.Regexp, text string) (models.Balance, bool) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return models.Balance{}, false
	}
	date, err := dateutils.EuropeanToISO(m[1])
	if err != nil {
		return models.Balance{}, false
	}
	amount, err := currencyutils.ParseStatementAmount(m[2], m[3])
	if err != nil {
		return models.Balance{}, false
	}
	return models.Balance{Date: date, Amount: amount}, true
}
