// Package parsererror defines the typed errors produced while turning a
// statement document into transaction records.
package parsererror

import "fmt"

// MalformedDateError indicates a date token on a record-start line that could
// not be normalized into a calendar date.
type MalformedDateError struct {
	Token string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed date token %q", e.Token)
}

// MalformedAmountError indicates an amount token or its debit/credit indicator
// that could not be normalized into a signed decimal.
type MalformedAmountError struct {
	Token     string
	Indicator string
	Err       error
}

func (e *MalformedAmountError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed amount token %q (indicator %q): %v", e.Token, e.Indicator, e.Err)
	}
	return fmt.Sprintf("malformed amount token %q (indicator %q)", e.Token, e.Indicator)
}

func (e *MalformedAmountError) Unwrap() error {
	return e.Err
}

// ExtractionError indicates that the upstream document-to-text collaborator
// failed. It is surfaced unchanged; no parsing is attempted for the document.
type ExtractionError struct {
	Source string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("text extraction failed for %s: %v", e.Source, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// InvalidFormatError indicates an input file that does not conform to the
// expected statement layout.
type InvalidFormatError struct {
	FilePath string
	Msg      string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s", e.FilePath, e.Msg)
}
