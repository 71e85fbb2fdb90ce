// Package card defines the flashcard record model and the codecs used to
// read partition files and write the assembled deck artifact.
package card

import (
	"encoding/json"
	"maps"
)

// Record is a single flashcard entry. The assembler only ever touches the
// "id" field; everything else is opaque payload carried through untouched.
type Record map[string]any

// ID returns the record's id field when present and integral.
func (r Record) ID() (int, bool) {
	switch v := r["id"].(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case int:
		return v, true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	}
	return 0, false
}

// SetID overwrites the record's id field, adding it if absent.
func (r Record) SetID(id int) {
	r["id"] = id
}

// StringField returns the named payload field when it is a string.
func (r Record) StringField(key string) (string, bool) {
	s, ok := r[key].(string)
	return s, ok
}

// Clone returns a copy of the record whose top-level fields can be changed
// without touching the original. Nested payload values are shared.
func (r Record) Clone() Record {
	return maps.Clone(r)
}

// Partition is one source file of records. Name is the file's base name and
// doubles as the sort key that fixes the partition's place in the deck.
type Partition struct {
	Name    string
	Path    string
	Records []Record
}

// Count returns the number of records the partition contributed.
func (p *Partition) Count() int {
	return len(p.Records)
}
