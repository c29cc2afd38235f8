package header

//go:generate go tool errtrace -w .

import (
	"bytes"
	"io"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohts/internal/errorutil"
	"github.com/ghettovoice/gohts/internal/grammar"
	"github.com/ghettovoice/gohts/internal/ioutil"
	"github.com/ghettovoice/gohts/internal/util"
)

// RecordType is a two-letter header record type code.
type RecordType string

// Standard record types.
const (
	TypeHD RecordType = "HD" // file-level metadata
	TypeSQ RecordType = "SQ" // reference sequence
	TypeRG RecordType = "RG" // read group
	TypePG RecordType = "PG" // program
	TypeCO RecordType = "CO" // comment
)

// IsValid checks whether the type is exactly two uppercase letters.
func (t RecordType) IsValid() bool { return grammar.IsRecordType(t) }

// Record builds one structured header line: a record type code followed by
// TAG:VALUE fields in push order.
// Tags are neither deduplicated nor checked against a vocabulary,
// pushing the same tag twice renders it twice.
type Record struct {
	typ  RecordType
	tags []Tag
}

// NewRecord creates a record builder of the given type with no tags.
// The type is expected to be a valid record type code such as HD, SQ, RG or PG,
// use [Record.Validate] to check a record built from untrusted input.
func NewRecord(typ RecordType) *Record {
	return &Record{typ: typ}
}

// Type returns the record type code.
func (r *Record) Type() RecordType {
	if r == nil {
		return ""
	}
	return r.typ
}

// PushTag appends the tag with the value formatted by [FormatValue].
func (r *Record) PushTag(tag string, value any) *Record {
	r.tags = append(r.tags, Tag{tag, FormatValue(value)})
	return r
}

// Tags returns a copy of the pushed tags in push order.
func (r *Record) Tags() []Tag {
	if r == nil {
		return nil
	}
	return slices.Clone(r.tags)
}

// RenderTo writes the record line without a trailing newline.
func (r *Record) RenderTo(w io.Writer) (num int, err error) {
	if r == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	cw.WriteByte('@')             //nolint:errcheck
	cw.WriteString(string(r.typ)) //nolint:errcheck
	for _, t := range r.tags {
		cw.WriteByte('\t')      //nolint:errcheck
		cw.WriteString(t.Name)  //nolint:errcheck
		cw.WriteByte(':')       //nolint:errcheck
		cw.WriteString(t.Value) //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}

// Bytes returns the record line.
func (r *Record) Bytes() []byte {
	if r == nil {
		return nil
	}

	n := 1 + len(r.typ)
	for _, t := range r.tags {
		n += 2 + len(t.Name) + len(t.Value)
	}
	buf := bytes.NewBuffer(make([]byte, 0, n))
	r.RenderTo(buf) //nolint:errcheck
	return buf.Bytes()
}

// String returns the record line.
func (r *Record) String() string {
	if r == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	r.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// Clone returns a copy of the record.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	return &Record{typ: r.typ, tags: slices.Clone(r.tags)}
}

// Equal compares this record with another for equality.
// Records are equal if they have the same type and the same tags in the same order.
func (r *Record) Equal(val any) bool {
	var other *Record
	switch v := val.(type) {
	case Record:
		other = &v
	case *Record:
		other = v
	default:
		return false
	}
	if r == nil || other == nil {
		return r == other
	}
	return r.typ == other.typ && slices.Equal(r.tags, other.tags)
}

// IsValid checks whether the record passes [Record.Validate].
func (r *Record) IsValid() bool { return r.Validate() == nil }

// Validate checks the record against the strict builder rules:
// the type is two uppercase letters, every tag is an uppercase letter followed by
// an uppercase letter or a digit, every value is non-empty and fits on one field.
func (r *Record) Validate() error {
	if r == nil {
		return errtrace.Wrap(NewInvalidArgumentError("nil record"))
	}
	if !r.typ.IsValid() {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidRecordType, "%q", string(r.typ)))
	}
	for _, t := range r.tags {
		if !grammar.IsTag(t.Name) {
			return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidTag, "%q", t.Name))
		}
		if t.Value == "" || strings.ContainsAny(t.Value, "\t\n") {
			return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidValue, "%s:%q", t.Name, t.Value))
		}
	}
	return nil
}
