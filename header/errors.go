package header

import (
	"fmt"

	"github.com/ghettovoice/gohts/internal/errorutil"
	"github.com/ghettovoice/gohts/internal/grammar"
)

// Error represents a header error.
// See [errorutil.Error].
type Error = errorutil.Error

const (
	// ErrInvalidArgument is returned or raised on invalid caller input.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrMalformedHeader is matched by every parse failure.
	ErrMalformedHeader Error = "malformed header"
)

const (
	// ErrInvalidRecordType means the first field of a line is not '@' and two uppercase letters.
	ErrInvalidRecordType grammar.Error = "invalid record type"
	// ErrInvalidTag means a field is not a TAG:VALUE pair.
	ErrInvalidTag grammar.Error = "invalid tag"
	// ErrInvalidValue means a tag value is empty or contains a tab or a newline.
	ErrInvalidValue grammar.Error = "invalid tag value"
)

// ParseError describes a header line that violates the header grammar.
type ParseError struct {
	// Line is a 1-based number of the offending line.
	Line int
	// Field is the offending field text.
	Field string
	// Err is either [ErrInvalidRecordType] or [ErrInvalidTag].
	Err error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: line %d: %s %q", ErrMalformedHeader, e.Line, e.Err, e.Field)
}

func (e *ParseError) Unwrap() []error {
	if e == nil {
		return nil
	}
	return []error{ErrMalformedHeader, e.Err}
}

// Grammar marks the error as a grammar error.
func (*ParseError) Grammar() bool { return true }

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}
