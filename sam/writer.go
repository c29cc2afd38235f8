package sam

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/gohts/header"
	"github.com/ghettovoice/gohts/internal/errorutil"
	"github.com/ghettovoice/gohts/internal/log"
)

// WriterOptions contains writer options.
type WriterOptions struct {
	// Opener opens the output stream.
	// If nil, [DefaultOpener] is used.
	Opener Opener
	// Log is a logger used by the writer.
	// If nil, the [log.Default] is used.
	Log *slog.Logger
}

func (o *WriterOptions) opener() Opener {
	if o == nil || o.Opener == nil {
		return DefaultOpener
	}
	return o.Opener
}

func (o *WriterOptions) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Default()
	}
	return o.Log
}

// State is a writer state.
type State int

const (
	// StateUnopened is the state of a writer under construction, it is never observed by callers.
	StateUnopened State = iota
	// StateOpen means the header is written and records can be written.
	StateOpen
	// StateClosed means the stream is released.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUnopened:
		return "unopened"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

type trigger string

const (
	triggerOpen  trigger = "open"
	triggerClose trigger = "close"
)

// Writer writes records to an output stream that starts with a header.
//
// The header is snapshotted when the writer is created, later changes of the
// [header.Header] don't affect the writer.
// A Writer is not safe for concurrent use.
type Writer struct {
	path    string
	hdr     *header.View
	stream  *streamCloser
	sm      *stateless.StateMachine
	log     *slog.Logger
	cleanup runtime.Cleanup
}

// NewWriter opens the stream at path and writes the header to it.
// On success the returned writer is open and the header is already written.
// Otherwise no writer is returned and the stream, if it was opened, is closed.
//
// It returns an error matching [ErrOpen] if the stream can't be opened
// and [ErrHeaderWrite] if the header can't be written.
func NewWriter(path string, hdr *header.Header, opts *WriterOptions) (*Writer, error) {
	return errtrace.Wrap2(newWriter(path, hdr, opts))
}

// NewStdoutWriter is like [NewWriter] but writes to the standard output.
func NewStdoutWriter(hdr *header.Header, opts *WriterOptions) (*Writer, error) {
	return errtrace.Wrap2(newWriter(Stdout, hdr, opts))
}

func newWriter(path string, hdr *header.Header, opts *WriterOptions) (*Writer, error) {
	if hdr == nil {
		return nil, errtrace.Wrap(NewInvalidArgumentError("nil header"))
	}

	ctx := context.Background()
	view := header.NewView(hdr)
	logger := opts.log().With(slog.String("path", path))

	s, err := opts.opener().Open(path, ModeWrite)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelDebug, "failed to open stream", slog.Any("error", err))
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrOpen, err))
	}
	if s == nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrOpen, "opener returned nil stream"))
	}

	w := &Writer{
		path:   path,
		hdr:    view,
		stream: &streamCloser{Stream: s, log: logger},
		log:    logger,
	}
	w.sm = w.newStateMachine()

	if err := s.WriteHeader(view); err != nil {
		logger.LogAttrs(ctx, slog.LevelDebug, "failed to write header", slog.Any("error", err))
		err = errorutil.NewWrapperError(ErrHeaderWrite, err)
		return nil, errtrace.Wrap(errorutil.Join(err, w.sm.FireCtx(ctx, triggerClose)))
	}
	if err := w.sm.FireCtx(ctx, triggerOpen); err != nil {
		return nil, errtrace.Wrap(errorutil.Join(err, w.sm.FireCtx(ctx, triggerClose)))
	}

	w.cleanup = runtime.AddCleanup(w, (*streamCloser).release, w.stream)
	logger.LogAttrs(ctx, slog.LevelDebug, "writer opened", slog.Any("header", view))
	return w, nil
}

func (w *Writer) newStateMachine() *stateless.StateMachine {
	sm := stateless.NewStateMachine(StateUnopened)
	sm.Configure(StateUnopened).
		Permit(triggerOpen, StateOpen).
		Permit(triggerClose, StateClosed)
	sm.Configure(StateOpen).
		Permit(triggerClose, StateClosed)
	sm.Configure(StateClosed).
		OnEntry(func(context.Context, ...any) error {
			return errtrace.Wrap(w.stream.close())
		}).
		Ignore(triggerClose)
	sm.OnTransitioned(func(ctx context.Context, t stateless.Transition) {
		w.log.LogAttrs(ctx, slog.LevelDebug, "writer state changed",
			slog.Any("from", t.Source),
			slog.Any("to", t.Destination),
			slog.Any("trigger", t.Trigger),
		)
	})
	return sm
}

// Path returns the path the writer was opened with.
func (w *Writer) Path() string { return w.path }

// Header returns the header snapshot the writer was opened with.
func (w *Writer) Header() *header.View { return w.hdr }

// State returns the current writer state.
func (w *Writer) State() State {
	st, _ := w.sm.MustState().(State)
	return st
}

// Write encodes the record against the writer header and appends it to the stream.
// A failed write is reported once with an error matching [ErrWrite],
// the stream is not rolled back.
// It returns [ErrWriterClosed] after [Writer.Close].
func (w *Writer) Write(rec Record) error {
	if rec == nil {
		return errtrace.Wrap(NewInvalidArgumentError("nil record"))
	}
	if w.State() != StateOpen {
		return errtrace.Wrap(ErrWriterClosed)
	}

	if err := w.stream.WriteRecord(w.hdr, rec); err != nil {
		w.log.LogAttrs(context.Background(), slog.LevelWarn, "failed to write record", slog.Any("error", err))
		return errtrace.Wrap(errorutil.NewWrapperError(ErrWrite, err))
	}
	return nil
}

// Close closes the stream. Only the first call closes it, later calls return nil.
func (w *Writer) Close() error {
	err := w.sm.FireCtx(context.Background(), triggerClose)
	w.cleanup.Stop()
	return errtrace.Wrap(err)
}

type streamCloser struct {
	Stream

	log  *slog.Logger
	once sync.Once
	err  error
}

func (c *streamCloser) close() error {
	c.once.Do(func() {
		c.err = c.Stream.Close()
	})
	return errtrace.Wrap(c.err)
}

// release closes the stream of a writer that was garbage collected without Close.
func (c *streamCloser) release() {
	c.log.LogAttrs(context.Background(), slog.LevelWarn, "writer was not closed, releasing the stream")
	if err := c.close(); err != nil {
		c.log.LogAttrs(context.Background(), slog.LevelWarn, "failed to close the stream", slog.Any("error", err))
	}
}
