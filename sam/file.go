package sam

//go:generate go tool errtrace -w .

import (
	"bufio"
	"io"
	"os"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohts/header"
	"github.com/ghettovoice/gohts/internal/errorutil"
)

// FileOpener opens plain SAM text streams on the local file system.
// The header is followed by '\n' and flushed right away, every record is terminated by '\n'.
type FileOpener struct {
	// Perm is the permission bits of created files.
	// Default is 0644.
	Perm os.FileMode
	// Stdout is the destination for the [Stdout] path.
	// It is not closed when the stream is closed.
	// If nil, [os.Stdout] is used.
	Stdout io.Writer
}

// DefaultOpener is the opener used when [WriterOptions.Opener] is nil.
var DefaultOpener Opener = &FileOpener{}

func (o *FileOpener) perm() os.FileMode {
	if o == nil || o.Perm == 0 {
		return 0o644
	}
	return o.Perm
}

func (o *FileOpener) stdout() io.Writer {
	if o == nil || o.Stdout == nil {
		return os.Stdout
	}
	return o.Stdout
}

// Open implements [Opener].
func (o *FileOpener) Open(path string, mode Mode) (Stream, error) {
	if mode != ModeWrite {
		return nil, errtrace.Wrap(NewInvalidArgumentError("unsupported mode %q", mode))
	}
	if path == "" {
		return nil, errtrace.Wrap(NewInvalidArgumentError("empty path"))
	}

	if path == Stdout {
		return newTextStream(o.stdout(), nil), nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, o.perm())
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return newTextStream(f, f), nil
}

type textStream struct {
	bw *bufio.Writer
	c  io.Closer
}

func newTextStream(w io.Writer, c io.Closer) *textStream {
	return &textStream{bw: bufio.NewWriter(w), c: c}
}

func (s *textStream) WriteHeader(hdr *header.View) error {
	if hdr.Len() == 0 {
		return nil
	}
	if _, err := hdr.RenderTo(s.bw); err != nil {
		return errtrace.Wrap(err)
	}
	if err := s.bw.WriteByte('\n'); err != nil {
		return errtrace.Wrap(err)
	}
	// the header must reach the destination before the writer is handed out
	return errtrace.Wrap(s.bw.Flush())
}

func (s *textStream) WriteRecord(hdr *header.View, rec Record) error {
	if _, err := rec.RenderTo(s.bw, hdr); err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(s.bw.WriteByte('\n'))
}

func (s *textStream) Close() error {
	err := s.bw.Flush()
	if s.c != nil {
		err = errorutil.Join(err, s.c.Close())
	}
	return errtrace.Wrap(err)
}
