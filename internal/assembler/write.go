package assembler

import (
	"os"
	"path/filepath"

	"github.com/mazo-labs/mazo/pkg/card"
)

// Write atomically replaces the artifact with the assembled deck. The deck
// is staged to a temp file in the destination directory and renamed into
// place, so a failed write never leaves a partial or corrupted artifact
// behind. Missing destination directories are created.
func (a *Assembler) Write(deck []card.Record) error {
	dir := filepath.Dir(a.output)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return &WriteError{Path: a.output, Err: err}
		}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(a.output)+".tmp-*")
	if err != nil {
		return &WriteError{Path: a.output, Err: err}
	}
	tmpName := tmp.Name()

	if err := card.EncodeRecords(tmp, deck); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &WriteError{Path: a.output, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &WriteError{Path: a.output, Err: err}
	}

	// CreateTemp files are 0600; the artifact is shared data.
	if err := os.Chmod(tmpName, 0644); err != nil {
		_ = os.Remove(tmpName)
		return &WriteError{Path: a.output, Err: err}
	}
	if err := os.Rename(tmpName, a.output); err != nil {
		_ = os.Remove(tmpName)
		return &WriteError{Path: a.output, Err: err}
	}

	a.logger.Debug("wrote artifact", "path", a.output, "cards", len(deck))
	return nil
}
