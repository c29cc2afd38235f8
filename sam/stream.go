package sam

import (
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohts/header"
)

// Stdout is the path that designates the standard output.
const Stdout = "-"

// Mode is a stream open mode.
type Mode string

// ModeWrite opens a stream for writing, truncating an existing file.
const ModeWrite Mode = "w"

// Record is an alignment record.
// It encodes itself against the header the output stream was opened with.
type Record interface {
	RenderTo(w io.Writer, hdr *header.View) (int, error)
}

// RawRecord is an already encoded text alignment line without the line terminator.
type RawRecord []byte

// RenderTo writes the record bytes as is.
func (r RawRecord) RenderTo(w io.Writer, _ *header.View) (int, error) {
	return errtrace.Wrap2(w.Write(r))
}

// Stream is an open output stream.
//
//go:generate go tool mockgen -destination=../internal/testutil/streammock/mock.go -package=streammock . Stream,Opener
type Stream interface {
	// WriteHeader writes the header. It is called once, right after the stream is opened.
	WriteHeader(hdr *header.View) error
	// WriteRecord encodes and writes one record.
	WriteRecord(hdr *header.View, rec Record) error
	// Close flushes and releases the stream.
	Close() error
}

// Opener opens output streams.
type Opener interface {
	// Open opens a stream at path, or at the standard output if path is [Stdout].
	Open(path string, mode Mode) (Stream, error)
}

// OpenerFunc is an adapter to allow the use of ordinary functions as [Opener].
type OpenerFunc func(path string, mode Mode) (Stream, error)

// Open calls fn(path, mode).
func (fn OpenerFunc) Open(path string, mode Mode) (Stream, error) {
	return errtrace.Wrap2(fn(path, mode))
}
