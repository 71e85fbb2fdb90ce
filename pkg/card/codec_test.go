package card

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecords(t *testing.T) {
	input := `[
  {"term": "hablar", "translation": "to speak", "id": 99},
  {"term": "comer", "synonyms": ["tomar"], "difficulty": 2.5}
]`

	records, err := DecodeRecords(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	id, ok := records[0].ID()
	assert.True(t, ok)
	assert.Equal(t, 99, id)

	term, _ := records[1].StringField("term")
	assert.Equal(t, "comer", term)
}

func TestDecodeRecordsRejectsNonArray(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		errSubstr string
	}{
		{
			name:      "top-level object",
			input:     `{"term": "hablar"}`,
			errSubstr: "expected a JSON array",
		},
		{
			name:      "top-level string",
			input:     `"hablar"`,
			errSubstr: "expected a JSON array",
		},
		{
			name:      "top-level number",
			input:     `42`,
			errSubstr: "expected a JSON array",
		},
		{
			name:      "non-object element",
			input:     `[{"term": "hablar"}, "comer"]`,
			errSubstr: "record 2",
		},
		{
			name:      "null element",
			input:     `[null]`,
			errSubstr: "record 1",
		},
		{
			name:      "malformed json",
			input:     `[{"term": "hablar"`,
			errSubstr: "",
		},
		{
			name:      "trailing data",
			input:     `[] []`,
			errSubstr: "trailing data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRecords(strings.NewReader(tt.input))
			require.Error(t, err)
			if tt.errSubstr != "" {
				assert.Contains(t, err.Error(), tt.errSubstr)
			}
		})
	}
}

func TestDecodeRecordsEmptyInput(t *testing.T) {
	_, err := DecodeRecords(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyDocument)

	// An empty array is a valid partition with zero records.
	records, err := DecodeRecords(strings.NewReader("[]"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDecodeRecordsYAML(t *testing.T) {
	input := `
- term: hablar
  translation: to speak
  id: 99
- term: comer
  synonyms: [tomar]
`
	records, err := DecodeRecordsYAML(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	id, ok := records[0].ID()
	assert.True(t, ok)
	assert.Equal(t, 99, id)

	_, err = DecodeRecordsYAML(strings.NewReader("term: hablar"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a JSON array")
}

func TestDecodeFilePicksCodecByExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "sec_001.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"term": "ser"}]`), 0644))

	yamlPath := filepath.Join(dir, "sec_002.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- term: estar\n"), 0644))

	records, err := DecodeFile(jsonPath)
	require.NoError(t, err)
	require.Len(t, records, 1)

	records, err = DecodeFile(yamlPath)
	require.NoError(t, err)
	require.Len(t, records, 1)
	term, _ := records[0].StringField("term")
	assert.Equal(t, "estar", term)

	_, err = DecodeFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestEncodeRecords(t *testing.T) {
	records := []Record{
		{"id": 1, "term": "año", "example": "¿Cuántos años tienes?"},
		{"id": 2, "term": "señal", "note": "a < b & c"},
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeRecords(&buf, records))
	out := buf.String()

	// Non-ASCII stays literal and HTML characters are not escaped.
	assert.Contains(t, out, "año")
	assert.Contains(t, out, "¿Cuántos años tienes?")
	assert.Contains(t, out, "a < b & c")
	assert.NotContains(t, out, `\u`)

	// Two-space indent, trailing newline.
	assert.Contains(t, out, "  {\n    ")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestEncodeRecordsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeRecords(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestEncodeRecordsDeterministic(t *testing.T) {
	input := `[{"zeta": 1, "alpha": "a", "id": 5, "nested": {"y": 2, "x": 1.50}}]`

	records, err := DecodeRecords(strings.NewReader(input))
	require.NoError(t, err)

	var first, second bytes.Buffer
	require.NoError(t, EncodeRecords(&first, records))
	require.NoError(t, EncodeRecords(&second, records))
	assert.Equal(t, first.String(), second.String())

	// Numeric payload keeps its source form.
	assert.Contains(t, first.String(), "1.50")
}
