package header

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohts/internal/grammar"
)

// Parse parses header text into a [Grouped] view.
//
// The text is split into lines on '\n' and lines into fields on '\t', empty lines
// and empty fields are skipped. The first field must start with '@' and two
// uppercase letters, the rest of that field is ignored. Every other field must be
// TAG:VALUE where TAG is a letter followed by a letter or a digit and VALUE is
// one or more printable ASCII characters. Text after the type field of a @CO
// line is a free comment and is not split into tags.
//
// The first malformed line fails the whole parse with [*ParseError].
func Parse[T ~string | ~[]byte](s T) (*Grouped, error) {
	g := newGrouped()
	num := 0
	for line := range strings.SplitSeq(string(s), "\n") {
		num++
		if err := g.parseLine(num, line); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	return g, nil
}

func (g *Grouped) parseLine(num int, line string) error {
	line = strings.TrimLeft(line, "\t")
	if line == "" {
		return nil
	}

	field, rest, _ := strings.Cut(line, "\t")
	code, ok := grammar.RecordTypePrefix(field)
	if !ok {
		return errtrace.Wrap(&ParseError{Line: num, Field: field, Err: ErrInvalidRecordType})
	}

	typ := RecordType(code)
	if typ == TypeCO {
		g.addComment(rest)
		return nil
	}

	tm := TagMap{}
	for f := range strings.SplitSeq(rest, "\t") {
		if f == "" {
			continue
		}
		name, val, ok := grammar.SplitTagField(f)
		if !ok {
			return errtrace.Wrap(&ParseError{Line: num, Field: f, Err: ErrInvalidTag})
		}
		tm.Set(name, val)
	}
	g.add(typ, tm)
	return nil
}
