// Package statement recovers transaction records and document metadata from
// the extracted text of one bank statement. The text has no explicit record
// delimiters: a record starts at a line opening with two day/month tokens and
// extends over the following continuation lines until the next record starts.
package statement

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"mweber/konto-csv/internal/currencyutils"
	"mweber/konto-csv/internal/dateutils"
	"mweber/konto-csv/internal/logging"
	"mweber/konto-csv/internal/models"
	"mweber/konto-csv/internal/textutils"
)

var (
	// A record-start line opens with two DD.MM. tokens separated by whitespace.
	recordStartPattern = regexp.MustCompile(`^(\d{2}\.\d{2}\.)\s+(\d{2}\.\d{2}\.)`)
	// The amount and its S/H indicator are anchored at the end of the
	// record-start line.
	amountPattern = regexp.MustCompile(`([\d.,]+)\s+([SH])$`)
)

// Extractor turns the page-ordered text of one statement into an ordered
// sequence of transaction records plus the statement metadata. It holds no
// per-document state, so one Extractor may process documents concurrently.
type Extractor struct {
	logger logging.Logger
}

// NewExtractor creates an Extractor. A nil logger falls back to the package
// default.
func NewExtractor(logger logging.Logger) *Extractor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Extractor{logger: logger}
}

// partial is the accumulating state of the line automaton: one open record
// that has not been finalized yet.
type partial struct {
	valueDate   string
	bookingDate string
	descLines   []string
	rawLines    []string
	amount      decimal.Decimal
	txType      models.TransactionType
	amountKnown bool
}

// Extract scans the given pages (concatenated in document order) and returns
// the transaction records in document order. A document with zero record-start
// lines yields an empty slice and whatever metadata could be found; that is a
// valid result, not an error.
func (e *Extractor) Extract(pages []string) ([]models.TransactionRecord, models.StatementMetadata) {
	text := strings.Join(pages, "\n")

	meta := extractMetadata(text)
	year := meta.Year
	if year == "" {
		year = dateutils.CurrentYear()
		e.logger.WithField("year", year).Warn("Statement year not found, assuming current year")
	}

	records := e.scan(strings.Split(text, "\n"), year)

	e.logger.WithFields(
		logging.Field{Key: "count", Value: len(records)},
		logging.Field{Key: "statement", Value: meta.StatementNumber},
		logging.Field{Key: "year", Value: year},
	).Info("Extracted transactions from statement text")

	return records, meta
}

// scan folds the two-state automaton (idle / accumulating) over the lines.
// A nil current pointer is the idle state.
func (e *Extractor) scan(lines []string, year string) []models.TransactionRecord {
	var records []models.TransactionRecord
	var current *partial

	for _, line := range lines {
		line = strings.TrimSpace(line)

		if recordStartPattern.MatchString(line) {
			// A record-start line always terminates the previous record,
			// however many description lines it accumulated.
			if current != nil {
				if rec, ok := e.finalize(current); ok {
					records = append(records, rec)
				}
			}
			current = e.open(line, year)
			continue
		}

		if current == nil || line == "" {
			continue
		}
		if unicode.IsDigit(rune(line[0])) {
			// Page footers and running totals open with digits. Dropping
			// them loses the rare continuation line that also starts with a
			// digit; that false negative is accepted.
			continue
		}
		current.descLines = append(current.descLines, line)
		current.rawLines = append(current.rawLines, line)
	}

	if current != nil {
		if rec, ok := e.finalize(current); ok {
			records = append(records, rec)
		}
	}
	return records
}

// open starts a new record from a record-start line. Malformed date or amount
// tokens make the record unusable: open returns nil (the following
// continuation lines are dropped as noise) and logs the reason. A start line
// without a trailing amount token still opens the record so its description
// accumulates, but the record is dropped at finalization.
func (e *Extractor) open(line, year string) *partial {
	dates := recordStartPattern.FindStringSubmatch(line)

	valueDate, err := dateutils.ParseDayMonth(dates[1], year)
	if err != nil {
		e.logger.WithError(err).WithField("line", line).Warn("Skipping record with malformed value date")
		return nil
	}
	bookingDate, err := dateutils.ParseDayMonth(dates[2], year)
	if err != nil {
		e.logger.WithError(err).WithField("line", line).Warn("Skipping record with malformed booking date")
		return nil
	}

	p := &partial{
		valueDate:   valueDate,
		bookingDate: bookingDate,
		rawLines:    []string{line},
	}

	rest := line[len(dates[0]):]
	amt := amountPattern.FindStringSubmatchIndex(rest)
	if amt == nil {
		// This issuer always prints the amount on the start line, so a
		// missing token means the record cannot be completed. It still
		// accumulates so the skip is logged with its full description.
		if frag := strings.TrimSpace(rest); frag != "" {
			p.descLines = append(p.descLines, frag)
		}
		return p
	}

	if frag := strings.TrimSpace(rest[:amt[0]]); frag != "" {
		p.descLines = append(p.descLines, frag)
	}

	token := rest[amt[2]:amt[3]]
	indicator := rest[amt[4]:amt[5]]
	amount, err := currencyutils.ParseStatementAmount(token, indicator)
	if err != nil {
		e.logger.WithError(err).WithField("line", line).Warn("Skipping record with malformed amount")
		return nil
	}
	txType, _ := models.TypeFromIndicator(indicator)

	p.amount = amount
	p.txType = txType
	p.amountKnown = true
	return p
}

// finalize turns an accumulated partial into a TransactionRecord. Records
// whose start line carried no amount token are dropped here with a warning;
// the rest of the document is unaffected.
func (e *Extractor) finalize(p *partial) (models.TransactionRecord, bool) {
	raw := strings.Join(p.rawLines, " ")
	if !p.amountKnown {
		e.logger.WithFields(
			logging.Field{Key: "value_date", Value: p.valueDate},
			logging.Field{Key: "raw", Value: raw},
		).Warn("Dropping record without amount token")
		return models.TransactionRecord{}, false
	}

	return models.TransactionRecord{
		ValueDate:      p.valueDate,
		BookingDate:    p.bookingDate,
		Description:    textutils.NormalizeDescription(p.descLines),
		RawDescription: raw,
		Amount:         p.amount,
		Type:           p.txType,
	}, true
}
