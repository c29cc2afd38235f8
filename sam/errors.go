package sam

import "github.com/ghettovoice/gohts/internal/errorutil"

// Error represents a writer error.
// See [errorutil.Error].
type Error = errorutil.Error

const (
	// ErrInvalidArgument is returned on invalid caller input.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrOpen is returned when the output stream can't be opened. No writer is created.
	ErrOpen Error = "open stream failed"
	// ErrHeaderWrite is returned when the header can't be written to a just opened stream.
	// The stream is closed and no writer is created.
	ErrHeaderWrite Error = "write header failed"
	// ErrWrite is returned when a record can't be written.
	// The stream is left as the underlying layer left it.
	ErrWrite Error = "write record failed"
	// ErrWriterClosed is returned on a write to a closed writer.
	ErrWriterClosed Error = "writer closed"
)

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}
