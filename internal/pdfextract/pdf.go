package pdfextract

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/ledongthuc/pdf"

	"mweber/konto-csv/internal/logging"
	"mweber/konto-csv/internal/parsererror"
)

// PDFExtractor reads statement PDFs with the ledongthuc/pdf library and falls
// back to the external pdftotext command (poppler-utils) when the library
// cannot decode the file.
type PDFExtractor struct {
	logger logging.Logger
}

// NewPDFExtractor creates a PDFExtractor. A nil logger falls back to the
// package default.
func NewPDFExtractor(logger logging.Logger) *PDFExtractor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &PDFExtractor{logger: logger}
}

// ExtractPages extracts the text of every page in document order. A failure
// of both extraction methods is reported as an ExtractionError; no parsing is
// attempted for such a document.
func (e *PDFExtractor) ExtractPages(path string) ([]string, error) {
	pages, libErr := extractWithLibrary(path)
	if libErr == nil {
		return pages, nil
	}
	e.logger.WithError(libErr).WithField("file", path).Debug("PDF library extraction failed, trying pdftotext")

	pages, cmdErr := extractWithPdftotext(path)
	if cmdErr == nil {
		return pages, nil
	}
	e.logger.WithError(cmdErr).WithField("file", path).Debug("pdftotext extraction failed")

	return nil, &parsererror.ExtractionError{Source: path, Err: libErr}
}

// extractWithLibrary extracts page text row by row so the line structure the
// transaction extractor depends on is preserved. The library panics on some
// malformed files, hence the recover.
func extractWithLibrary(path string) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf library crashed: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("pdf has no pages")
	}

	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("text extraction failed on page %d: %w", i, err)
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("no text content in pdf")
	}
	return pages, nil
}

// extractWithPdftotext runs the external pdftotext command and splits its
// output on form feeds, which pdftotext emits between pages.
func extractWithPdftotext(path string) ([]string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return nil, fmt.Errorf("pdftotext not available: %w", err)
	}

	tempFile := path + ".txt"
	cmd := exec.Command("pdftotext", "-layout", path, tempFile)
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("error running pdftotext: %w", err)
	}
	defer func() {
		_ = os.Remove(tempFile)
	}()

	output, err := os.ReadFile(tempFile)
	if err != nil {
		return nil, fmt.Errorf("error reading extracted text: %w", err)
	}

	pages := strings.Split(string(output), "\f")
	// pdftotext terminates the last page with a form feed as well.
	if n := len(pages); n > 0 && strings.TrimSpace(pages[n-1]) == "" {
		pages = pages[:n-1]
	}
	return pages, nil
}
