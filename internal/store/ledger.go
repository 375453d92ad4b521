// Package store persists categorized transactions in an append-only CSV
// ledger and keeps the category keyword registry on disk.
package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"sync"

	"mweber/konto-csv/internal/fileutils"
	"mweber/konto-csv/internal/logging"
	"mweber/konto-csv/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// Delimiter is the column separator used for all CSV output. It can be
// changed through SetDelimiter before any file is written.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// AppendResult reports the outcome of one Append call.
type AppendResult struct {
	// Added is the number of entries written because their transaction ID
	// was not present in the ledger yet.
	Added int
	// Skipped is the number of entries rejected as duplicates.
	Skipped int
	// Total is the number of entries in the ledger after the append.
	Total int
}

// LedgerStore owns a single CSV ledger file. All mutating operations are
// serialized through an internal mutex, so one store instance is safe for
// concurrent use.
type LedgerStore struct {
	path   string
	logger logging.Logger
	mu     sync.Mutex
}

// NewLedgerStore returns a store backed by the CSV file at path. The file
// does not have to exist yet; it is created on the first Append.
func NewLedgerStore(path string, logger logging.Logger) *LedgerStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &LedgerStore{path: path, logger: logger}
}

// Path returns the ledger file path.
func (s *LedgerStore) Path() string {
	return s.path
}

// Append adds the given entries to the ledger, rejecting any whose
// TransactionID is already present either in the file or earlier in the
// same batch. The full ledger is rewritten so the header stays intact and
// partial writes cannot corrupt existing rows.
func (s *LedgerStore) Append(entries []models.LedgerEntry) (AppendResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.loadAllLocked()
	if err != nil {
		return AppendResult{}, err
	}

	seen := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		seen[e.TransactionID] = struct{}{}
	}

	result := AppendResult{}
	for _, e := range entries {
		if _, dup := seen[e.TransactionID]; dup {
			result.Skipped++
			s.logger.Debug("skipping duplicate ledger entry", logging.Field{Key: "transaction_id", Value: e.TransactionID})
			continue
		}
		seen[e.TransactionID] = struct{}{}
		existing = append(existing, e)
		result.Added++
	}
	result.Total = len(existing)

	if result.Added > 0 {
		if err := writeEntriesLocked(existing, s.path); err != nil {
			return AppendResult{}, err
		}
	}

	s.logger.Info("appended entries to ledger",
		logging.Field{Key: "file", Value: s.path},
		logging.Field{Key: "added", Value: result.Added},
		logging.Field{Key: "skipped", Value: result.Skipped},
		logging.Field{Key: "total", Value: result.Total},
	)
	return result, nil
}

// LoadAll reads every entry from the ledger file. A missing or empty file
// yields an empty slice rather than an error.
func (s *LedgerStore) LoadAll() ([]models.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadAllLocked()
}

func (s *LedgerStore) loadAllLocked() ([]models.LedgerEntry, error) {
	if !fileutils.FileExists(s.path) {
		return []models.LedgerEntry{}, nil
	}

	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("error opening ledger file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.WithError(err).Warn("failed to close ledger file")
		}
	}()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("error reading ledger file: %w", err)
	}
	if info.Size() == 0 {
		return []models.LedgerEntry{}, nil
	}

	csvReader := csv.NewReader(file)
	csvReader.Comma = Delimiter

	var entries []models.LedgerEntry
	if err := gocsv.UnmarshalCSV(csvReader, &entries); err != nil {
		return nil, fmt.Errorf("error parsing ledger file: %w", err)
	}
	return entries, nil
}

// Clear removes the ledger file. Clearing a ledger that does not exist is
// a no-op.
func (s *LedgerStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error clearing ledger file: %w", err)
	}
	s.logger.Info("cleared ledger", logging.Field{Key: "file", Value: s.path})
	return nil
}

// Summary aggregates the whole ledger into headline figures.
type Summary struct {
	TotalTransactions int
	TotalIncome       decimal.Decimal
	TotalExpenses     decimal.Decimal
	NetSavings        decimal.Decimal
	FirstDate         string
	LastDate          string
}

// CategoryTotal is the aggregated spend for one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// MonthlyTotal is the aggregated income and spend for one calendar month.
type MonthlyTotal struct {
	// Month is the value-date prefix in YYYY-MM form.
	Month    string
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// Summarize computes headline figures over the given entries. TotalExpenses
// is reported as a positive magnitude.
func Summarize(entries []models.LedgerEntry) (Summary, error) {
	sum := Summary{TotalTransactions: len(entries)}
	for _, e := range entries {
		amount, err := decimal.NewFromString(e.Amount)
		if err != nil {
			return Summary{}, fmt.Errorf("invalid amount %q for transaction %s: %w", e.Amount, e.TransactionID, err)
		}
		if amount.IsNegative() {
			sum.TotalExpenses = sum.TotalExpenses.Add(amount.Neg())
		} else {
			sum.TotalIncome = sum.TotalIncome.Add(amount)
		}
		if sum.FirstDate == "" || e.ValueDate < sum.FirstDate {
			sum.FirstDate = e.ValueDate
		}
		if e.ValueDate > sum.LastDate {
			sum.LastDate = e.ValueDate
		}
	}
	sum.NetSavings = sum.TotalIncome.Sub(sum.TotalExpenses)
	return sum, nil
}

// SummarizeByCategory aggregates expense entries per category, largest spend
// first. Income entries are excluded so the ranking reflects spending only.
func SummarizeByCategory(entries []models.LedgerEntry) ([]CategoryTotal, error) {
	totals := make(map[string]decimal.Decimal)
	for _, e := range entries {
		amount, err := decimal.NewFromString(e.Amount)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q for transaction %s: %w", e.Amount, e.TransactionID, err)
		}
		if !amount.IsNegative() {
			continue
		}
		totals[e.Category] = totals[e.Category].Add(amount.Neg())
	}

	result := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		result = append(result, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Total.Equal(result[j].Total) {
			return result[i].Total.GreaterThan(result[j].Total)
		}
		return result[i].Category < result[j].Category
	})
	return result, nil
}

// SummarizeByMonth aggregates income and expenses per calendar month of the
// value date, in chronological order.
func SummarizeByMonth(entries []models.LedgerEntry) ([]MonthlyTotal, error) {
	totals := make(map[string]*MonthlyTotal)
	for _, e := range entries {
		if len(e.ValueDate) < 7 {
			continue
		}
		amount, err := decimal.NewFromString(e.Amount)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q for transaction %s: %w", e.Amount, e.TransactionID, err)
		}
		month := e.ValueDate[:7]
		mt, ok := totals[month]
		if !ok {
			mt = &MonthlyTotal{Month: month}
			totals[month] = mt
		}
		if amount.IsNegative() {
			mt.Expenses = mt.Expenses.Add(amount.Neg())
		} else {
			mt.Income = mt.Income.Add(amount)
		}
	}

	result := make([]MonthlyTotal, 0, len(totals))
	for _, mt := range totals {
		result = append(result, *mt)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Month < result[j].Month })
	return result, nil
}

// WriteEntriesToCSV writes entries to a standalone CSV file without any
// duplicate filtering. It is used for one-off conversions next to the
// deduplicating ledger.
func WriteEntriesToCSV(entries []models.LedgerEntry, csvFile string) error {
	if entries == nil {
		return fmt.Errorf("cannot write nil entries to CSV")
	}
	return writeEntriesLocked(entries, csvFile)
}

func writeEntriesLocked(entries []models.LedgerEntry, csvFile string) error {
	file, err := fileutils.CreateFile(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(&entries, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
