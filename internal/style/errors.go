package style

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEncoding indicates the input is not valid UTF-8.
	ErrInvalidEncoding = errors.New("text is not valid UTF-8")

	// ErrMissingField indicates a fingerprint document lacks a required key.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidField indicates a field holds a structurally impossible value.
	ErrInvalidField = errors.New("invalid field")
)

// AnalysisError is returned when the segmenter cannot process a text.
type AnalysisError struct {
	Err error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("style analysis failed: %v", e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }

// GuideConstructionError is returned when a FeatureVector handed to the
// guide builder is structurally incomplete. It signals a caller bug, not
// a data-quality problem.
type GuideConstructionError struct {
	Field string
	Err   error
}

func (e *GuideConstructionError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("cannot build style guide: %v", e.Err)
	}
	return fmt.Sprintf("cannot build style guide: %s: %v", e.Field, e.Err)
}

func (e *GuideConstructionError) Unwrap() error { return e.Err }

func missingField(name string) error {
	return &GuideConstructionError{Field: name, Err: ErrMissingField}
}

func invalidField(name, format string, args ...any) error {
	return &GuideConstructionError{Field: name, Err: fmt.Errorf("%w: %s", ErrInvalidField, fmt.Sprintf(format, args...))}
}
