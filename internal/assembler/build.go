package assembler

// build.go - build orchestration from discovery to artifact

import (
	"context"
	"fmt"
	"time"

	"github.com/mazo-labs/mazo/internal/state"
	"github.com/mazo-labs/mazo/pkg/card"
)

// BuildResult describes one completed build.
type BuildResult struct {
	BuildID    string
	Partitions int
	Cards      int
	Output     string
	Empty      bool
	Duration   time.Duration
}

// Summary returns the one-line build report.
func (r *BuildResult) Summary() string {
	return fmt.Sprintf("Assembled %d cards into %s", r.Cards, r.Output)
}

// Build runs the full pipeline: discover partitions, load them in order,
// renumber the deck, and write the artifact. The deck is rebuilt from
// scratch every time; the previous artifact is replaced wholesale.
//
// Build history recording is observational. History failures are logged and
// never fail a build that produced a good artifact.
func (a *Assembler) Build(ctx context.Context) (*BuildResult, error) {
	start := time.Now()
	a.logger.Info("starting build", "sections_dir", a.sectionsDir, "output", a.output)

	buildID := a.beginHistory()

	partitions, err := a.Discover()
	if err != nil {
		a.completeHistory(buildID, state.BuildStatusFailed, err.Error(), nil, 0)
		return nil, err
	}

	if len(partitions) == 0 {
		a.logger.Warn("no partitions found, writing empty deck",
			"dir", a.sectionsDir, "pattern", a.pattern)
	}

	for i := range partitions {
		if err := ctx.Err(); err != nil {
			a.completeHistory(buildID, state.BuildStatusFailed, err.Error(), nil, 0)
			return nil, err
		}
		if err := a.LoadPartition(&partitions[i]); err != nil {
			a.completeHistory(buildID, state.BuildStatusFailed, err.Error(), nil, 0)
			return nil, err
		}
	}

	deck := a.Assemble(partitions)

	if err := a.Write(deck); err != nil {
		a.completeHistory(buildID, state.BuildStatusFailed, err.Error(), nil, 0)
		return nil, err
	}

	a.completeHistory(buildID, state.BuildStatusCompleted, "", partitions, len(deck))

	result := &BuildResult{
		BuildID:    buildID,
		Partitions: len(partitions),
		Cards:      len(deck),
		Output:     a.output,
		Empty:      len(partitions) == 0,
		Duration:   time.Since(start),
	}

	a.logger.Info("build completed",
		"build_id", buildID,
		"partitions", result.Partitions,
		"cards", result.Cards,
		"duration_ms", result.Duration.Milliseconds())

	return result, nil
}

// beginHistory opens a build record, returning an empty id when history is
// unavailable.
func (a *Assembler) beginHistory() string {
	build, err := a.store.CreateBuild(a.sectionsDir, a.output)
	if err != nil {
		a.logger.Warn("build history unavailable", "error", err.Error())
		return ""
	}
	a.logger.Debug("created build", "build_id", build.ID)
	return build.ID
}

// completeHistory closes the build record and, on success, replaces the
// recorded partition hashes with the set this build saw.
func (a *Assembler) completeHistory(buildID, status, errMsg string, partitions []card.Partition, cards int) {
	if buildID == "" {
		return
	}

	artifactHash := ""
	if status == state.BuildStatusCompleted {
		if h, err := HashFile(a.output); err == nil {
			artifactHash = h
		}

		hashes := make([]state.PartitionHash, 0, len(partitions))
		for i := range partitions {
			p := &partitions[i]
			h, err := HashFile(p.Path)
			if err != nil {
				a.logger.Debug("failed to hash partition", "name", p.Name, "error", err.Error())
				continue
			}
			hashes = append(hashes, state.PartitionHash{
				Name:  p.Name,
				Hash:  h,
				Cards: p.Count(),
			})
		}
		if err := a.store.ReplacePartitionHashes(hashes); err != nil {
			a.logger.Debug("failed to record partition hashes", "error", err.Error())
		}
	}

	if err := a.store.CompleteBuild(buildID, status, errMsg, len(partitions), cards, artifactHash); err != nil {
		a.logger.Debug("failed to complete build record", "build_id", buildID, "error", err.Error())
	}
}
