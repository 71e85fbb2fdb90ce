package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Card is one generated flashcard. Generated cards carry no id; the
// assembler assigns ids when it builds the deck.
type Card struct {
	Term         string                       `json:"term"`
	Translation  string                       `json:"translation"`
	PartOfSpeech string                       `json:"part_of_speech"`
	Example      string                       `json:"example"`
	ExampleEn    string                       `json:"example_en"`
	Synonyms     []string                     `json:"synonyms,omitempty"`
	Conjugations map[string]map[string]string `json:"conjugations,omitempty"`
}

// Section is a numbered group of cards that maps to one partition file.
type Section struct {
	Number int
	Title  string
	Cards  []Card
}

// Filename returns the partition file name for the section.
func (s Section) Filename() string {
	return fmt.Sprintf("sec_%03d.json", s.Number)
}

// WriteSections writes each section as a partition file under dir and
// returns the written paths. Existing files are only replaced when force
// is set.
func WriteSections(dir string, sections []Section, force bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create sections directory: %w", err)
	}

	paths := make([]string, 0, len(sections))
	for _, sec := range sections {
		path := filepath.Join(dir, sec.Filename())
		if !force {
			if _, err := os.Stat(path); err == nil {
				return nil, fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
		}
		data, err := encodeCards(sec.Cards)
		if err != nil {
			return nil, fmt.Errorf("failed to encode section %d: %w", sec.Number, err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// encodeCards marshals cards in the same form the assembler emits:
// two-space indent, no HTML escaping, trailing newline.
func encodeCards(cards []Card) ([]byte, error) {
	if cards == nil {
		cards = []Card{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cards); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
