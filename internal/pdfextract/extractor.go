// Package pdfextract provides the document-to-text collaborator: it turns a
// statement PDF into page-ordered, newline-preserving text. The parsing core
// treats this step as a black box and never inspects PDFs itself.
package pdfextract

// Extractor extracts page-ordered text from a statement document. The
// returned slice holds one string per page; concatenation order is document
// order.
type Extractor interface {
	ExtractPages(path string) ([]string, error)
}

// MockExtractor implements Extractor for testing purposes. It returns the
// predefined pages or error instead of reading a file.
type MockExtractor struct {
	Pages []string
	Err   error
}

// NewMockExtractor creates a MockExtractor with the given pages and error.
func NewMockExtractor(pages []string, err error) *MockExtractor {
	return &MockExtractor{Pages: pages, Err: err}
}

// ExtractPages returns the predefined pages or error.
func (e *MockExtractor) ExtractPages(string) ([]string, error) {
	if e.Err != nil {
		return nil, e.Err
	}
	return e.Pages, nil
}
