package header

import (
	"bytes"
	"io"
	"strconv"
	"sync"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohts/internal/errorutil"
)

// Target is a reference sequence described by a @SQ line.
type Target struct {
	Name string `json:"name"`
	Len  uint64 `json:"len"`
}

// View is an immutable snapshot of header text.
// Later changes of the [Header] it was taken from are not visible through the view.
//
// The view parses its text lazily on first structured access and caches the result.
// A View is safe for concurrent use.
type View struct {
	raw []byte

	once    sync.Once
	grouped *Grouped
	targets []Target
	tids    map[string]int
	err     error
}

// NewView takes a snapshot of the header text.
func NewView(h *Header) *View {
	return &View{raw: h.Bytes()}
}

// ViewFromBytes creates a view over a copy of b.
func ViewFromBytes(b []byte) *View {
	return &View{raw: bytes.Clone(b)}
}

// Bytes returns a copy of the header text.
func (v *View) Bytes() []byte {
	if v == nil {
		return nil
	}
	return bytes.Clone(v.raw)
}

// Len returns the length of the header text in bytes.
func (v *View) Len() int {
	if v == nil {
		return 0
	}
	return len(v.raw)
}

// RenderTo writes the header text to w.
func (v *View) RenderTo(w io.Writer) (num int, err error) {
	if v == nil {
		return 0, nil
	}
	return errtrace.Wrap2(w.Write(v.raw))
}

// String returns the header text.
func (v *View) String() string {
	if v == nil {
		return ""
	}
	return string(v.raw)
}

func (v *View) parse() {
	v.once.Do(func() {
		g, err := Parse(v.raw)
		if err != nil {
			v.err = errtrace.Wrap(err)
			return
		}
		v.grouped = g

		sqs := g.records[TypeSQ]
		v.targets = make([]Target, 0, len(sqs))
		v.tids = make(map[string]int, len(sqs))
		for i, sq := range sqs {
			name, ok := sq.Get("SN")
			if !ok {
				v.err = errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedHeader, "@SQ record %d: missing SN tag", i+1))
				return
			}
			ln, err := strconv.ParseUint(sq.Value("LN"), 10, 64)
			if err != nil {
				v.err = errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedHeader, "@SQ record %d: invalid LN tag: %v", i+1, err))
				return
			}
			if _, ok := v.tids[name]; !ok {
				v.tids[name] = len(v.targets)
			}
			v.targets = append(v.targets, Target{Name: name, Len: ln})
		}
	})
}

// Grouped returns the parsed header, see [Parse].
func (v *View) Grouped() (*Grouped, error) {
	if v == nil {
		return newGrouped(), nil
	}
	v.parse()
	if v.grouped == nil {
		return nil, errtrace.Wrap(v.err)
	}
	return v.grouped.Clone(), nil
}

// Targets returns the reference sequences in @SQ order.
// Every @SQ line must carry SN and a decimal LN.
func (v *View) Targets() ([]Target, error) {
	if v == nil {
		return nil, nil
	}
	v.parse()
	if v.err != nil {
		return nil, errtrace.Wrap(v.err)
	}
	return append([]Target(nil), v.targets...), nil
}

// TargetCount returns the number of reference sequences, or 0 if the header is malformed.
func (v *View) TargetCount() int {
	ts, _ := v.Targets()
	return len(ts)
}

// TargetNames returns names of reference sequences in @SQ order.
func (v *View) TargetNames() []string {
	ts, _ := v.Targets()
	names := make([]string, len(ts))
	for i := range ts {
		names[i] = ts[i].Name
	}
	return names
}

// TID returns the index of the reference sequence with the name.
func (v *View) TID(name string) (int, bool) {
	if v == nil {
		return 0, false
	}
	v.parse()
	if v.err != nil {
		return 0, false
	}
	tid, ok := v.tids[name]
	return tid, ok
}

// TargetLen returns the length of the reference sequence with the index.
func (v *View) TargetLen(tid int) (uint64, bool) {
	if v == nil {
		return 0, false
	}
	v.parse()
	if v.err != nil || tid < 0 || tid >= len(v.targets) {
		return 0, false
	}
	return v.targets[tid].Len, true
}
