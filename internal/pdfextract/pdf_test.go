package pdfextract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mweber/konto-csv/internal/parsererror"
)

func TestExtractPagesMissingFile(t *testing.T) {
	e := NewPDFExtractor(nil)

	_, err := e.ExtractPages(filepath.Join(t.TempDir(), "nope.pdf"))
	require.Error(t, err)

	var extractionErr *parsererror.ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
	assert.Contains(t, extractionErr.Source, "nope.pdf")
}

func TestExtractPagesNotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0o644))

	_, err := NewPDFExtractor(nil).ExtractPages(path)
	require.Error(t, err)

	var extractionErr *parsererror.ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
}

func TestMockExtractor(t *testing.T) {
	pages := []string{"page one", "page two"}

	got, err := NewMockExtractor(pages, nil).ExtractPages("whatever.pdf")
	require.NoError(t, err)
	assert.Equal(t, pages, got)

	boom := errors.New("boom")
	_, err = NewMockExtractor(nil, boom).ExtractPages("whatever.pdf")
	assert.ErrorIs(t, err, boom)
}
