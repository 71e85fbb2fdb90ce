package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/mazo-labs/mazo/internal/assembler"
	"github.com/mazo-labs/mazo/internal/state"
)

// StatusOptions holds options for the status command.
type StatusOptions struct {
	Format string
}

// Partition drift states relative to the last completed build.
const (
	driftUnchanged  = "unchanged"
	driftChanged    = "changed"
	driftNew        = "new"
	driftRemoved    = "removed"
	driftUnreadable = "unreadable"
)

// partitionDrift describes how a partition compares to the last build.
type partitionDrift struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

// buildInfo summarizes a recorded build.
type buildInfo struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Partitions  int    `json:"partitions"`
	Cards       int    `json:"cards"`
	CompletedAt string `json:"completed_at,omitempty"`
	Error       string `json:"error,omitempty"`
}

// artifactInfo describes the deck artifact on disk.
type artifactInfo struct {
	Path    string `json:"path"`
	Present bool   `json:"present"`
	State   string `json:"state"`
}

// statusOutput is the JSON shape of the status command.
type statusOutput struct {
	Build      *buildInfo       `json:"build,omitempty"`
	Partitions []partitionDrift `json:"partitions"`
	Artifact   artifactInfo     `json:"artifact"`
	InSync     bool             `json:"in_sync"`
}

// NewStatusCommand creates the status command.
func NewStatusCommand() *cobra.Command {
	opts := &StatusOptions{}

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the last build and what changed since",
		Long: `Show the most recent build recorded in the state database and compare
the sections directory against it.

Partitions are compared by content hash, so the report shows which
sections changed, appeared or disappeared since the deck was last
assembled, and whether the artifact on disk still matches that build.`,
		Example: `  # Show build status
  mazo status

  # Status as JSON for scripting
  mazo status --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "table", "Output format (table|json)")

	return cmd
}

func runStatus(cmd *cobra.Command, opts *StatusOptions) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	status, err := collectStatus(cmdCtx)
	if err != nil {
		return err
	}

	if opts.Format == "json" {
		return renderJSON(cmd.OutOrStdout(), status)
	}
	return renderStatusTable(cmd, status)
}

func collectStatus(cmdCtx *CommandContext) (*statusOutput, error) {
	store := cmdCtx.Assembler.Store()

	latest, err := store.GetLatestBuild()
	if err != nil {
		return nil, err
	}

	recorded, err := store.GetPartitionHashes()
	if err != nil {
		return nil, err
	}
	recordedByName := make(map[string]state.PartitionHash, len(recorded))
	for _, ph := range recorded {
		recordedByName[ph.Name] = ph
	}

	current, err := cmdCtx.Assembler.Discover()
	if err != nil {
		return nil, err
	}

	status := &statusOutput{
		Partitions: make([]partitionDrift, 0, len(current)+len(recorded)),
	}

	if latest != nil {
		info := &buildInfo{
			ID:         latest.ID,
			Status:     latest.Status,
			Partitions: latest.Partitions,
			Cards:      latest.Cards,
			Error:      latest.Error,
		}
		if latest.CompletedAt != nil {
			info.CompletedAt = latest.CompletedAt.UTC().Format(time.RFC3339)
		}
		status.Build = info
	}

	allUnchanged := true
	for _, p := range current {
		drift := partitionDrift{Name: p.Name}
		hash, err := assembler.HashFile(p.Path)
		switch {
		case err != nil:
			drift.State = driftUnreadable
		default:
			ph, known := recordedByName[p.Name]
			switch {
			case !known:
				drift.State = driftNew
			case ph.Hash == hash:
				drift.State = driftUnchanged
			default:
				drift.State = driftChanged
			}
		}
		if drift.State != driftUnchanged {
			allUnchanged = false
		}
		delete(recordedByName, p.Name)
		status.Partitions = append(status.Partitions, drift)
	}

	// Anything recorded but no longer on disk was removed.
	for _, ph := range recorded {
		if _, gone := recordedByName[ph.Name]; gone {
			status.Partitions = append(status.Partitions, partitionDrift{Name: ph.Name, State: driftRemoved})
			allUnchanged = false
		}
	}

	status.Artifact = artifactInfo{Path: cmdCtx.Cfg.Output}
	if _, err := os.Stat(cmdCtx.Cfg.Output); err == nil {
		status.Artifact.Present = true
		switch {
		case latest == nil || latest.ArtifactHash == "":
			status.Artifact.State = "unknown"
		default:
			hash, err := assembler.HashFile(cmdCtx.Cfg.Output)
			if err == nil && hash == latest.ArtifactHash {
				status.Artifact.State = "up-to-date"
			} else {
				status.Artifact.State = "modified"
			}
		}
	} else {
		status.Artifact.State = "missing"
	}

	status.InSync = latest != nil &&
		latest.Status == state.BuildStatusCompleted &&
		allUnchanged &&
		status.Artifact.State == "up-to-date"

	return status, nil
}

func renderStatusTable(cmd *cobra.Command, status *statusOutput) error {
	w := cmd.OutOrStdout()

	if status.Build == nil {
		_, _ = fmt.Fprintln(w, "No builds recorded yet.")
	} else {
		b := status.Build
		_, _ = fmt.Fprintf(w, "Latest build: %s (%s)\n", b.ID, b.Status)
		_, _ = fmt.Fprintf(w, "  Partitions: %d  Cards: %d\n", b.Partitions, b.Cards)
		if b.CompletedAt != "" {
			_, _ = fmt.Fprintf(w, "  Completed:  %s\n", b.CompletedAt)
		}
		if b.Error != "" {
			_, _ = fmt.Fprintf(w, "  Error:      %s\n", b.Error)
		}
	}
	_, _ = fmt.Fprintln(w)

	if len(status.Partitions) > 0 {
		t := newTable(w)
		t.AppendHeader(table.Row{"Partition", "State"})
		for _, p := range status.Partitions {
			t.AppendRow(table.Row{p.Name, p.State})
		}
		t.Render()
	} else {
		_, _ = fmt.Fprintln(w, "No partitions found.")
	}
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintf(w, "Artifact: %s (%s)\n", status.Artifact.Path, status.Artifact.State)
	if status.InSync {
		_, _ = fmt.Fprintln(w, "Deck is up to date.")
	} else {
		_, _ = fmt.Fprintln(w, "Run 'mazo build' to refresh the deck.")
	}
	return nil
}
