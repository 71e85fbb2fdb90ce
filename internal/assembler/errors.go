package assembler

import "fmt"

// DiscoveryError reports a failure to enumerate partitions: the sections
// directory is missing or unreadable, or no partitions matched under strict
// mode. Discovery failures abort the build.
type DiscoveryError struct {
	Dir     string
	Pattern string
	Err     error
}

func (e *DiscoveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("discovering partitions in %s: %v", e.Dir, e.Err)
	}
	return fmt.Sprintf("no partitions matched %q in %s", e.Pattern, e.Dir)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// ParseError reports a partition file that could not be read or does not
// hold a JSON array of objects. A single bad partition aborts the whole
// build; no output is written.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// WriteError reports a failure while writing the assembled artifact. The
// write is atomic, so a previous artifact survives intact.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
