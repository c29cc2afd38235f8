package header

import (
	"bytes"
	"encoding/json"
	"iter"
	"maps"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohts/internal/util"
)

// Grouped is a parsed header: records grouped by their type code.
// Every record is a [TagMap], records of one type keep their header order,
// distinct types keep the order they were first seen in.
// Comment lines are grouped under [TypeCO] with empty tag maps,
// their text is available through [Grouped.Comments].
//
// Grouped holds no reference to the text it was parsed from.
type Grouped struct {
	types    []RecordType
	records  map[RecordType][]TagMap
	comments []string
}

func newGrouped() *Grouped {
	return &Grouped{records: make(map[RecordType][]TagMap)}
}

func (g *Grouped) add(typ RecordType, tm TagMap) {
	if _, ok := g.records[typ]; !ok {
		g.types = append(g.types, typ)
	}
	g.records[typ] = append(g.records[typ], tm)
}

func (g *Grouped) addComment(text string) {
	g.add(TypeCO, TagMap{})
	g.comments = append(g.comments, text)
}

// Types returns record types in first-seen order.
func (g *Grouped) Types() []RecordType {
	if g == nil {
		return nil
	}
	return slices.Clone(g.types)
}

// Len returns the number of distinct record types.
func (g *Grouped) Len() int {
	if g == nil {
		return 0
	}
	return len(g.types)
}

// Has checks whether at least one record of the type is present.
func (g *Grouped) Has(typ RecordType) bool {
	if g == nil {
		return false
	}
	_, ok := g.records[typ]
	return ok
}

// Records returns a copy of the records of the type in header order.
func (g *Grouped) Records(typ RecordType) []TagMap {
	if g == nil {
		return nil
	}
	return cloneTagMaps(g.records[typ])
}

// First returns the first record of the type.
func (g *Grouped) First(typ RecordType) (TagMap, bool) {
	if g == nil || len(g.records[typ]) == 0 {
		return nil, false
	}
	return g.records[typ][0].Clone(), true
}

// Comments returns the text of @CO lines in header order.
func (g *Grouped) Comments() []string {
	if g == nil {
		return nil
	}
	return slices.Clone(g.comments)
}

// All iterates over record groups in first-seen order.
func (g *Grouped) All() iter.Seq2[RecordType, []TagMap] {
	return func(yield func(RecordType, []TagMap) bool) {
		if g == nil {
			return
		}
		for _, typ := range g.types {
			if !yield(typ, cloneTagMaps(g.records[typ])) {
				return
			}
		}
	}
}

// Map returns a copy of the groups as a plain map.
func (g *Grouped) Map() map[RecordType][]TagMap {
	m := make(map[RecordType][]TagMap, g.Len())
	if g == nil {
		return m
	}
	for typ, recs := range g.records {
		m[typ] = cloneTagMaps(recs)
	}
	return m
}

// Clone returns a deep copy.
func (g *Grouped) Clone() *Grouped {
	if g == nil {
		return nil
	}
	g2 := &Grouped{
		types:    slices.Clone(g.types),
		records:  maps.Clone(g.records),
		comments: slices.Clone(g.comments),
	}
	for typ, recs := range g2.records {
		g2.records[typ] = cloneTagMaps(recs)
	}
	return g2
}

// MarshalJSON encodes the groups as a JSON object in first-seen order.
// Records are objects of tags, comments are encoded as strings.
func (g *Grouped) MarshalJSON() ([]byte, error) {
	if g == nil {
		return []byte("null"), nil
	}

	buf := util.GetBytesBuffer()
	defer util.FreeBytesBuffer(buf)

	buf.WriteByte('{')
	for i, typ := range g.types {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONKey(buf, string(typ)); err != nil {
			return nil, errtrace.Wrap(err)
		}

		var (
			v   []byte
			err error
		)
		if typ == TypeCO {
			v, err = json.Marshal(g.comments)
		} else {
			v, err = json.Marshal(g.records[typ])
		}
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return bytes.Clone(buf.Bytes()), nil
}

func cloneTagMaps(tms []TagMap) []TagMap {
	if tms == nil {
		return nil
	}
	out := make([]TagMap, len(tms))
	for i := range tms {
		out[i] = tms[i].Clone()
	}
	return out
}
