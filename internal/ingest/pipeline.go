// Package ingest wires text extraction, transaction recovery, categorization
// and ledger persistence into one pipeline.
package ingest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mweber/konto-csv/internal/categorizer"
	"mweber/konto-csv/internal/id"
	"mweber/konto-csv/internal/logging"
	"mweber/konto-csv/internal/models"
	"mweber/konto-csv/internal/parsererror"
	"mweber/konto-csv/internal/pdfextract"
	"mweber/konto-csv/internal/statement"
	"mweber/konto-csv/internal/store"

	"github.com/google/uuid"
)

// Pipeline runs statement files end to end: extract page text, recover
// transactions, categorize them and append the result to the ledger.
type Pipeline struct {
	texts     pdfextract.Extractor
	extractor *statement.Extractor
	cat       *categorizer.Categorizer
	ledger    *store.LedgerStore
	logger    logging.Logger
	now       func() time.Time
}

// Result reports one ingested statement file.
type Result struct {
	// RunID identifies this ingest run in the logs.
	RunID    string
	File     string
	Metadata models.StatementMetadata
	// Extracted is the number of transactions recovered from the statement.
	Extracted int
	Added     int
	Skipped   int
	// Total is the ledger size after the run.
	Total int
}

// New returns a pipeline. texts may be nil, in which case the PDF extractor
// is used; ledger may be nil for conversion runs that never persist.
func New(texts pdfextract.Extractor, cat *categorizer.Categorizer, ledger *store.LedgerStore, logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if texts == nil {
		texts = pdfextract.NewPDFExtractor(logger)
	}
	return &Pipeline{
		texts:     texts,
		extractor: statement.NewExtractor(logger),
		cat:       cat,
		ledger:    ledger,
		logger:    logger,
		now:       time.Now,
	}
}

// IngestFile runs one statement file through the whole pipeline and appends
// the recovered transactions to the ledger.
func (p *Pipeline) IngestFile(ctx context.Context, path string) (Result, error) {
	if p.ledger == nil {
		return Result{}, fmt.Errorf("pipeline has no ledger configured")
	}

	runID := uuid.NewString()
	log := p.logger.WithFields(
		logging.Field{Key: "run_id", Value: runID},
		logging.Field{Key: "file", Value: path},
	)
	log.Info("ingesting statement")

	entries, metadata, err := p.extractEntries(ctx, path)
	if err != nil {
		return Result{}, err
	}

	appended, err := p.ledger.Append(entries)
	if err != nil {
		return Result{}, fmt.Errorf("error persisting transactions from %s: %w", path, err)
	}

	result := Result{
		RunID:     runID,
		File:      path,
		Metadata:  metadata,
		Extracted: len(entries),
		Added:     appended.Added,
		Skipped:   appended.Skipped,
		Total:     appended.Total,
	}
	log.Info("statement ingested",
		logging.Field{Key: "extracted", Value: result.Extracted},
		logging.Field{Key: "added", Value: result.Added},
		logging.Field{Key: "skipped", Value: result.Skipped},
	)
	return result, nil
}

// Convert runs one statement file through extraction and categorization and
// returns the entries without touching any ledger.
func (p *Pipeline) Convert(ctx context.Context, path string) ([]models.LedgerEntry, models.StatementMetadata, error) {
	return p.extractEntries(ctx, path)
}

func (p *Pipeline) extractEntries(ctx context.Context, path string) ([]models.LedgerEntry, models.StatementMetadata, error) {
	pages, err := p.texts.ExtractPages(path)
	if err != nil {
		return nil, models.StatementMetadata{}, fmt.Errorf("error extracting text from %s: %w", path, err)
	}
	if strings.TrimSpace(strings.Join(pages, "")) == "" {
		return nil, models.StatementMetadata{}, &parsererror.InvalidFormatError{
			FilePath: path,
			Msg:      "document contains no text",
		}
	}

	records, metadata := p.extractor.Extract(pages)
	uploaded := p.now().UTC().Format(time.RFC3339)

	entries := make([]models.LedgerEntry, 0, len(records))
	for _, rec := range records {
		tx := models.CategorizedTransaction{TransactionRecord: rec, Category: models.CategoryOther}
		if p.cat != nil {
			tx.Category = p.cat.Categorize(ctx, rec.Description)
		}
		key := id.TransactionKey(rec.ValueDate, rec.Amount, rec.Description)
		entries = append(entries, models.NewLedgerEntry(tx, key, uploaded))
	}
	return entries, metadata, nil
}
