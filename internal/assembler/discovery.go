package assembler

// discovery.go contains partition enumeration and loading.

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/mazo-labs/mazo/pkg/card"
)

// Discover enumerates the partition files that make up the deck, in file
// name order. Records are not loaded yet; LoadPartition fills them in.
// Subdirectories of the sections directory are not descended into.
func (a *Assembler) Discover() ([]card.Partition, error) {
	entries, err := os.ReadDir(a.sectionsDir)
	if err != nil {
		return nil, &DiscoveryError{Dir: a.sectionsDir, Pattern: a.pattern, Err: err}
	}

	// os.ReadDir returns entries sorted by file name; that order is the
	// partition order of the deck.
	var partitions []card.Partition
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ok, err := doublestar.Match(a.pattern, entry.Name())
		if err != nil {
			return nil, &DiscoveryError{
				Dir:     a.sectionsDir,
				Pattern: a.pattern,
				Err:     fmt.Errorf("bad partition pattern %q: %w", a.pattern, err),
			}
		}
		if !ok {
			continue
		}
		partitions = append(partitions, card.Partition{
			Name: entry.Name(),
			Path: filepath.Join(a.sectionsDir, entry.Name()),
		})
	}

	if len(partitions) == 0 && !a.allowEmpty {
		return nil, &DiscoveryError{Dir: a.sectionsDir, Pattern: a.pattern}
	}

	a.logger.Debug("discovered partitions", "dir", a.sectionsDir, "count", len(partitions))
	return partitions, nil
}

// LoadPartition reads one partition's records into p. The file must hold an
// array of objects; any other document shape fails the build.
func (a *Assembler) LoadPartition(p *card.Partition) error {
	records, err := card.DecodeFile(p.Path)
	if err != nil {
		return &ParseError{Path: p.Path, Err: err}
	}
	p.Records = records

	a.logger.Debug("loaded partition", "name", p.Name, "cards", len(records))
	return nil
}

// Assemble concatenates the partitions' records in partition order and
// renumbers the deck: each card's id becomes its 1-based position in the
// whole collection, overwriting whatever id the source carried. Everything
// else in a record passes through untouched. The returned records are
// copies; the partitions' own records keep their source ids.
func (a *Assembler) Assemble(partitions []card.Partition) []card.Record {
	total := 0
	for i := range partitions {
		total += partitions[i].Count()
	}

	deck := make([]card.Record, 0, total)
	for i := range partitions {
		for _, rec := range partitions[i].Records {
			deck = append(deck, rec.Clone())
		}
	}
	for i, rec := range deck {
		rec.SetID(i + 1)
	}

	a.logger.Debug("assembled deck", "partitions", len(partitions), "cards", len(deck))
	return deck
}

// HashFile returns the content hash of the file at path. Used to detect
// partition and artifact changes between builds.
func HashFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return hashContent(content), nil
}

// hashContent generates a SHA256 hash of content.
func hashContent(content []byte) string {
	h := sha256.Sum256(content)
	return hex.EncodeToString(h[:8]) // Use first 8 bytes for brevity
}
