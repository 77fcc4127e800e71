// Package connector defines the contract between the ingestion core and
// the external source collaborators (board API, transcription backend,
// document extractors). Connectors deliver raw text plus minimal metadata;
// everything else is the normalizer's job.
package connector

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of structured failure categories a connector
// may report. Connectors never panic past the ingestion boundary.
type ErrorKind string

const (
	ErrInvalidLocator        ErrorKind = "invalid-locator"
	ErrMissingCredential     ErrorKind = "missing-credential"
	ErrFetchFailed           ErrorKind = "fetch-failed"
	ErrUnsupportedCapability ErrorKind = "unsupported-capability"
	ErrParseFailed           ErrorKind = "parse-failed"
)

// Error wraps a connector failure with its kind.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf extracts the structured kind from an error chain. Unclassified
// errors report fetch-failed, the most conservative category.
func KindOf(err error) ErrorKind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ErrFetchFailed
}

// Segment is one transcribed speech unit with its start offset in seconds.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Transcript is the transcription connector's output.
type Transcript struct {
	Duration float64   `json:"duration"`
	Segments []Segment `json:"segments"`
}
