package header

import (
	"bytes"
	"encoding/json"
	"iter"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohts/internal/util"
)

// Tag is a single TAG:VALUE pair of a header record.
type Tag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// TagMap is an insertion-ordered mapping of tag names to values.
// Setting an existing tag overwrites its value in place, so the last written value wins
// while the position of the first occurrence is kept.
// Records hold tens of tags at most, so lookups are linear scans.
type TagMap []Tag

// Set sets the tag to value.
func (m *TagMap) Set(name, value string) *TagMap {
	for i := range *m {
		if (*m)[i].Name == name {
			(*m)[i].Value = value
			return m
		}
	}
	*m = append(*m, Tag{name, value})
	return m
}

// Get returns the value of the tag and whether it is present.
func (m TagMap) Get(name string) (string, bool) {
	for i := range m {
		if m[i].Name == name {
			return m[i].Value, true
		}
	}
	return "", false
}

// Value returns the value of the tag or an empty string.
func (m TagMap) Value(name string) string {
	v, _ := m.Get(name)
	return v
}

// Has checks whether the tag is present.
func (m TagMap) Has(name string) bool {
	_, ok := m.Get(name)
	return ok
}

// Names returns tag names in insertion order.
func (m TagMap) Names() []string {
	names := make([]string, len(m))
	for i := range m {
		names[i] = m[i].Name
	}
	return names
}

// All iterates over tags in insertion order.
func (m TagMap) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, t := range m {
			if !yield(t.Name, t.Value) {
				return
			}
		}
	}
}

// Clone returns a copy of the map.
func (m TagMap) Clone() TagMap {
	if m == nil {
		return nil
	}
	return append(make(TagMap, 0, len(m)), m...)
}

// MarshalJSON encodes the map as a JSON object keeping insertion order.
func (m TagMap) MarshalJSON() ([]byte, error) {
	buf := util.GetBytesBuffer()
	defer util.FreeBytesBuffer(buf)

	buf.WriteByte('{')
	for i, t := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONKey(buf, t.Name); err != nil {
			return nil, errtrace.Wrap(err)
		}
		v, err := json.Marshal(t.Value)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return bytes.Clone(buf.Bytes()), nil
}

// UnmarshalJSON decodes a JSON object into the map keeping the order of keys.
func (m *TagMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return errtrace.Wrap(err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errtrace.Wrap(NewInvalidArgumentError("tag map: JSON object expected"))
	}

	tm := make(TagMap, 0)
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return errtrace.Wrap(err)
		}
		name, _ := tok.(string)
		var val string
		if err = dec.Decode(&val); err != nil {
			return errtrace.Wrap(err)
		}
		tm.Set(name, val)
	}
	*m = tm
	return nil
}

func writeJSONKey(buf *bytes.Buffer, key string) error {
	k, err := json.Marshal(key)
	if err != nil {
		return errtrace.Wrap(err)
	}
	buf.Write(k)
	buf.WriteByte(':')
	return nil
}
