package header

//go:generate go tool errtrace -w .

import (
	"bytes"
	"io"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohts/internal/ioutil"
	"github.com/ghettovoice/gohts/internal/util"
)

// Template is a source of raw header text, e.g. a [View] of an open file.
type Template interface {
	Bytes() []byte
}

// Text is raw header text. It implements [Template].
type Text []byte

// Bytes returns the text.
func (t Text) Bytes() []byte { return t }

// Header is an ordered list of header lines.
// Lines are rendered in the order they were appended, joined by '\n'.
//
// A Header is not safe for concurrent use.
type Header struct {
	lines [][]byte
}

// New creates an empty header.
func New() *Header {
	return &Header{}
}

// FromTemplate creates a header holding a verbatim copy of the template text.
// Trailing newlines are stripped so that rendering the header does not produce
// a blank line. The copy is kept as one opaque block, use [Header.Grouped]
// to inspect its records.
func FromTemplate(src Template) *Header {
	h := New()
	if src == nil {
		return h
	}
	if b := util.TrimRightByte(src.Bytes(), '\n'); len(b) > 0 {
		h.lines = append(h.lines, bytes.Clone(b))
	}
	return h
}

// PushRecord appends the record line. A nil record is ignored.
func (h *Header) PushRecord(rec *Record) *Header {
	if rec == nil {
		return h
	}
	h.lines = append(h.lines, rec.Bytes())
	return h
}

// PushComment appends a @CO line with the text.
// The text must fit on one line, PushComment panics if it contains '\n'.
func (h *Header) PushComment(text []byte) *Header {
	if bytes.IndexByte(text, '\n') >= 0 {
		panic(NewInvalidArgumentError("comment contains a newline"))
	}

	line := make([]byte, 0, 4+len(text))
	line = append(line, "@CO\t"...)
	line = append(line, text...)
	h.lines = append(h.lines, line)
	return h
}

// IsEmpty checks whether the header has no lines.
func (h *Header) IsEmpty() bool { return h == nil || len(h.lines) == 0 }

// Bytes returns the header text: lines joined by '\n' without a trailing newline.
func (h *Header) Bytes() []byte {
	if h == nil {
		return []byte{}
	}
	return bytes.Join(h.lines, []byte{'\n'})
}

// RenderTo writes the header text to w.
func (h *Header) RenderTo(w io.Writer) (num int, err error) {
	if h == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	for i, line := range h.lines {
		if i > 0 {
			cw.WriteByte('\n') //nolint:errcheck
		}
		cw.Write(line) //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the header text.
func (h *Header) String() string {
	if h == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	h.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// Grouped parses the header text, see [Parse].
func (h *Header) Grouped() (*Grouped, error) {
	return errtrace.Wrap2(Parse(h.Bytes()))
}

// Clone returns a copy of the header.
func (h *Header) Clone() *Header {
	if h == nil {
		return nil
	}
	h2 := &Header{lines: make([][]byte, len(h.lines))}
	for i := range h.lines {
		h2.lines[i] = slices.Clone(h.lines[i])
	}
	return h2
}
