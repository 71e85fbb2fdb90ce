package commands

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mazo-labs/mazo/internal/watcher"
)

// WatchOptions holds options for the watch command.
type WatchOptions struct {
	Debounce time.Duration
}

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	opts := &WatchOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the deck whenever sections change",
		Long: `Watch the sections directory and rebuild the deck artifact after every
change.

Changes are debounced so editors that write multiple times per save
trigger a single rebuild, and saves that do not change file content are
ignored. A failing rebuild is reported and watching continues; the
artifact keeps its last good content.`,
		Example: `  # Watch with the configured layout
  mazo watch

  # Use a longer quiet period on slow filesystems
  mazo watch --debounce 2s`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd, opts)
		},
	}

	cmd.Flags().DurationVar(&opts.Debounce, "debounce", watcher.DefaultDebounce, "Quiet period before rebuilding")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *WatchOptions) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := cmdCtx.Cfg.ValidateDirectories(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := cmd.OutOrStdout()

	// Initial build so the artifact reflects the current sections.
	result, err := cmdCtx.Assembler.Build(ctx)
	if err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}
	_, _ = fmt.Fprintln(w, result.Summary())

	fw := watcher.New(watcher.Config{
		Dir:      cmdCtx.Cfg.SectionsDir,
		Pattern:  cmdCtx.Cfg.Pattern,
		Debounce: opts.Debounce,
		Logger:   cmdCtx.Logger,
	})

	_, _ = fmt.Fprintf(w, "Watching %s (press Ctrl+C to stop)\n", cmdCtx.Cfg.SectionsDir)

	return fw.Watch(ctx, func(changed []string) {
		for _, path := range changed {
			cmdCtx.Logger.Info("section changed", "file", filepath.Base(path))
		}
		result, err := cmdCtx.Assembler.Build(ctx)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "rebuild failed: %v\n", err)
			return
		}
		_, _ = fmt.Fprintln(w, result.Summary())
	})
}
