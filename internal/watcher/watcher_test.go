package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mazo-labs/mazo/internal/testutil"
)

// startWatch runs Watch in the background and returns the event and exit
// channels.
func startWatch(t *testing.T, ctx context.Context, w *Watcher) (chan []string, chan error) {
	t.Helper()
	events := make(chan []string, 8)
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, func(changed []string) { events <- changed })
	}()
	// Give the watcher time to register with the kernel.
	time.Sleep(100 * time.Millisecond)
	return events, done
}

func waitEvent(t *testing.T, events chan []string) []string {
	t.Helper()
	select {
	case changed := <-events:
		return changed
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change event")
		return nil
	}
}

func assertQuiet(t *testing.T, events chan []string) {
	t.Helper()
	select {
	case changed := <-events:
		t.Fatalf("unexpected change event: %v", changed)
	case <-time.After(300 * time.Millisecond):
	}
}

// TestWatchReportsPartitionChanges verifies that writing a matching
// partition file produces one debounced event naming it.
func TestWatchReportsPartitionChanges(t *testing.T) {
	dir := t.TempDir()
	w := New(Config{Dir: dir, Pattern: "sec_*.json", Debounce: 50 * time.Millisecond, Logger: testutil.NewTestLogger(t)})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, done := startWatch(t, ctx, w)

	path := filepath.Join(dir, "sec_001.json")
	if err := os.WriteFile(path, []byte(`[{"term":"hola"}]`), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	changed := waitEvent(t, events)
	if len(changed) != 1 || changed[0] != path {
		t.Fatalf("changed = %v, want [%s]", changed, path)
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Watch() returned %v", err)
	}
}

// TestWatchIgnoresNonMatchingFiles verifies that files outside the
// partition pattern never trigger events.
func TestWatchIgnoresNonMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	w := New(Config{Dir: dir, Pattern: "sec_*.json", Debounce: 50 * time.Millisecond, Logger: testutil.NewTestLogger(t)})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, done := startWatch(t, ctx, w)

	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("notes"), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "section_999.json"), []byte("[]"), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	assertQuiet(t, events)

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Watch() returned %v", err)
	}
}

// TestWatchSuppressesUnchangedContent verifies that rewriting a file with
// identical bytes does not trigger a rebuild.
func TestWatchSuppressesUnchangedContent(t *testing.T) {
	dir := t.TempDir()
	w := New(Config{Dir: dir, Pattern: "sec_*.json", Debounce: 50 * time.Millisecond, Logger: testutil.NewTestLogger(t)})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, done := startWatch(t, ctx, w)

	path := filepath.Join(dir, "sec_001.json")
	content := []byte(`[{"term":"hola"}]`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	waitEvent(t, events)

	// Same bytes again: the content hash has not moved.
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	assertQuiet(t, events)

	// Different bytes fire again.
	if err := os.WriteFile(path, []byte(`[{"term":"adiós"}]`), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	waitEvent(t, events)

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Watch() returned %v", err)
	}
}

// TestWatchReportsRemovals verifies that deleting a partition counts as a
// change.
func TestWatchReportsRemovals(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sec_001.json")
	if err := os.WriteFile(path, []byte("[]"), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	w := New(Config{Dir: dir, Pattern: "sec_*.json", Debounce: 50 * time.Millisecond, Logger: testutil.NewTestLogger(t)})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, done := startWatch(t, ctx, w)

	if err := os.Remove(path); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}

	changed := waitEvent(t, events)
	if len(changed) != 1 || changed[0] != path {
		t.Fatalf("changed = %v, want [%s]", changed, path)
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Watch() returned %v", err)
	}
}

// TestWatchMissingDir verifies that watching a missing directory fails up
// front.
func TestWatchMissingDir(t *testing.T) {
	w := New(Config{Dir: filepath.Join(t.TempDir(), "absent"), Pattern: "sec_*.json"})

	err := w.Watch(context.Background(), func([]string) {})
	if err == nil {
		t.Fatal("Watch() succeeded for missing directory")
	}
}
