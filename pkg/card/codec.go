package card

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned when a partition file contains no document
// at all. An empty file is not the same thing as an empty record array.
var ErrEmptyDocument = errors.New("empty document")

// DecodeRecords reads one partition document from r. The document must be a
// JSON array whose elements are all objects; anything else is rejected.
// Numbers are decoded as json.Number so numeric payload keeps its source
// form across a rebuild.
func DecodeRecords(r io.Reader) ([]Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after JSON document")
	}

	return recordsFromDoc(doc)
}

// DecodeRecordsYAML reads one partition document from r as YAML and
// normalizes it to the same array-of-objects shape DecodeRecords enforces.
func DecodeRecordsYAML(r io.Reader) ([]Record, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, err
	}
	return recordsFromDoc(doc)
}

// recordsFromDoc enforces the partition contract on a decoded document.
func recordsFromDoc(doc any) ([]Record, error) {
	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("document is %s, expected a JSON array of records", describe(doc))
	}

	records := make([]Record, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("record %d is %s, expected an object", i+1, describe(item))
		}
		records = append(records, Record(obj))
	}
	return records, nil
}

// describe names a decoded JSON value for error messages.
func describe(v any) string {
	switch v.(type) {
	case map[string]any:
		return "an object"
	case []any:
		return "an array"
	case string:
		return "a string"
	case json.Number, int, float64:
		return "a number"
	case bool:
		return "a boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// DecodeFile reads the partition at path, picking the codec by extension.
// YAML partitions are accepted as input; the assembled artifact is always
// JSON.
func DecodeFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeRecordsYAML(f)
	default:
		return DecodeRecords(f)
	}
}

// EncodeRecords writes recs to w in the canonical artifact form: a
// pretty-printed JSON array with two-space indent and literal non-ASCII
// characters. A nil slice is written as an empty array, never null. The
// encoding is deterministic, so identical inputs produce identical bytes.
func EncodeRecords(w io.Writer, recs []Record) error {
	if recs == nil {
		recs = []Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(recs)
}
