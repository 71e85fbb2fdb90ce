package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mazo-labs/mazo/internal/assembler"
	"github.com/mazo-labs/mazo/internal/cli/config"
	"github.com/mazo-labs/mazo/internal/generator"
	"github.com/mazo-labs/mazo/pkg/card"
)

// DoctorOptions holds options for the doctor command.
type DoctorOptions struct {
	Format string // Output format: text, json
}

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand() *cobra.Command {
	opts := &DoctorOptions{}
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Run a comprehensive project health check",
		Long: `Analyze a mazo project for potential issues.

The doctor command checks the configuration, every section partition and
the deck artifact, and reports:
- Deck summary (partitions, cards, providers)
- Health checks grouped by category
- Health score (0-100)
- Actionable recommendations

The command exits non-zero when any check reports an error, so it can
gate CI pipelines. Warnings alone do not fail the run.`,
		Example: `  # Run health check
  mazo doctor

  # Output as JSON
  mazo doctor --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")

	return cmd
}

// DoctorOutput is the JSON output for the doctor command.
type DoctorOutput struct {
	Summary         DeckSummary   `json:"summary"`
	HealthChecks    []HealthCheck `json:"health_checks"`
	Score           int           `json:"score"`
	Recommendations []string      `json:"recommendations"`
	IssueCount      int           `json:"issue_count"`
}

// DeckSummary contains deck-level statistics.
type DeckSummary struct {
	Partitions int `json:"partitions"`
	Cards      int `json:"cards"`
	Providers  int `json:"providers"`
}

// HealthCheck represents a single health check result.
type HealthCheck struct {
	RuleID     string   `json:"rule_id"`
	Name       string   `json:"name"`
	Group      string   `json:"group"`
	Status     string   `json:"status"` // "pass", "warn", "error"
	IssueCount int      `json:"issue_count"`
	Details    []string `json:"details,omitempty"`
}

func runDoctor(cmd *cobra.Command, opts *DoctorOptions) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	doctorOutput := buildDoctorOutput(cmdCtx)

	if opts.Format == "json" {
		if err := renderJSON(cmd.OutOrStdout(), doctorOutput); err != nil {
			return err
		}
	} else {
		renderDoctorText(cmd, doctorOutput)
	}

	errCount := 0
	for _, check := range doctorOutput.HealthChecks {
		if check.Status == "error" {
			errCount++
		}
	}
	if errCount > 0 {
		return fmt.Errorf("%d health check(s) failed", errCount)
	}
	return nil
}

func buildDoctorOutput(cmdCtx *CommandContext) *DoctorOutput {
	cfg := cmdCtx.Cfg
	var checks []HealthCheck

	addCheck := func(id, name, group, status string, details []string) {
		checks = append(checks, HealthCheck{
			RuleID:     id,
			Name:       name,
			Group:      group,
			Status:     status,
			IssueCount: len(details),
			Details:    details,
		})
	}

	// Configuration checks
	if file := config.GetConfigFileUsed(); file != "" {
		addCheck("CFG01", "config file", "configuration", "pass", nil)
	} else {
		addCheck("CFG01", "config file", "configuration", "warn",
			[]string{"no mazo.yaml found, running on defaults"})
	}

	dirOK := true
	if _, err := os.Stat(cfg.SectionsDir); err != nil {
		dirOK = false
		addCheck("CFG02", "sections directory", "configuration", "error",
			[]string{fmt.Sprintf("sections directory does not exist: %s", cfg.SectionsDir)})
	} else {
		addCheck("CFG02", "sections directory", "configuration", "pass", nil)
	}

	// Section checks
	summary := DeckSummary{Providers: len(generator.ListProviders())}
	var partitions []card.Partition
	if dirOK {
		var err error
		partitions, err = cmdCtx.Assembler.Discover()
		if err != nil {
			var derr *assembler.DiscoveryError
			if errors.As(err, &derr) && derr.Err == nil {
				// No partitions matched. Reported below, not fatal here.
				partitions = nil
			} else {
				addCheck("SEC01", "partition discovery", "sections", "error", []string{err.Error()})
			}
		}
	}
	summary.Partitions = len(partitions)

	if dirOK {
		if len(partitions) == 0 {
			addCheck("SEC02", "partitions present", "sections", "warn",
				[]string{fmt.Sprintf("no partitions matched %q in %s", cfg.Pattern, cfg.SectionsDir)})
		} else {
			addCheck("SEC02", "partitions present", "sections", "pass", nil)
		}
	}

	var parseErrors []string
	var emptyPartitions []string
	termCounts := make(map[string]int)
	for i := range partitions {
		if err := cmdCtx.Assembler.LoadPartition(&partitions[i]); err != nil {
			parseErrors = append(parseErrors, err.Error())
			continue
		}
		p := partitions[i]
		summary.Cards += p.Count()
		if p.Count() == 0 {
			emptyPartitions = append(emptyPartitions, fmt.Sprintf("%s contains no cards", p.Name))
		}
		for _, rec := range p.Records {
			if term, ok := rec.StringField("term"); ok && term != "" {
				termCounts[term]++
			}
		}
	}

	if len(partitions) > 0 {
		if len(parseErrors) > 0 {
			addCheck("SEC03", "partition parse", "sections", "error", parseErrors)
		} else {
			addCheck("SEC03", "partition parse", "sections", "pass", nil)
		}

		if len(emptyPartitions) > 0 {
			addCheck("SEC04", "empty partitions", "sections", "warn", emptyPartitions)
		} else {
			addCheck("SEC04", "empty partitions", "sections", "pass", nil)
		}

		var duplicates []string
		for term, count := range termCounts {
			if count > 1 {
				duplicates = append(duplicates, fmt.Sprintf("%q appears %d times", term, count))
			}
		}
		if len(duplicates) > 0 {
			addCheck("SEC05", "duplicate terms", "sections", "warn", duplicates)
		} else {
			addCheck("SEC05", "duplicate terms", "sections", "pass", nil)
		}
	}

	// Artifact checks
	checks = append(checks, artifactCheck(cmdCtx))

	score := calculateHealthScore(checks, summary.Partitions)
	recommendations := generateRecommendations(checks)

	issueCount := 0
	for _, check := range checks {
		issueCount += check.IssueCount
	}

	return &DoctorOutput{
		Summary:         summary,
		HealthChecks:    checks,
		Score:           score,
		Recommendations: recommendations,
		IssueCount:      issueCount,
	}
}

// artifactCheck compares the deck artifact against the last recorded build.
func artifactCheck(cmdCtx *CommandContext) HealthCheck {
	check := HealthCheck{RuleID: "ART01", Name: "deck artifact", Group: "artifact", Status: "pass"}

	if _, err := os.Stat(cmdCtx.Cfg.Output); err != nil {
		check.Status = "warn"
		check.Details = []string{fmt.Sprintf("deck artifact not built yet: %s", cmdCtx.Cfg.Output)}
		check.IssueCount = 1
		return check
	}

	latest, err := cmdCtx.Assembler.Store().GetLatestBuild()
	if err != nil || latest == nil || latest.ArtifactHash == "" {
		return check
	}
	hash, err := assembler.HashFile(cmdCtx.Cfg.Output)
	if err == nil && hash != latest.ArtifactHash {
		check.Status = "warn"
		check.Details = []string{"deck artifact does not match the last recorded build"}
		check.IssueCount = 1
	}
	return check
}

// calculateHealthScore computes a health score from 0-100.
func calculateHealthScore(checks []HealthCheck, partitionCount int) int {
	if len(checks) == 0 {
		return 100
	}

	score := 100.0

	// With more partitions, each individual issue has less impact.
	basePenalty := 10.0
	if partitionCount > 5 {
		basePenalty = 5.0
	}
	if partitionCount > 20 {
		basePenalty = 2.0
	}

	for _, check := range checks {
		switch check.Status {
		case "error":
			score -= float64(check.IssueCount) * basePenalty * 2 // Errors count double
		case "warn":
			score -= float64(check.IssueCount) * basePenalty
		}
	}

	if score < 0 {
		score = 0
	}
	return int(score)
}

// generateRecommendations creates actionable recommendations based on findings.
func generateRecommendations(checks []HealthCheck) []string {
	var recommendations []string
	seen := make(map[string]bool)

	for _, check := range checks {
		if check.IssueCount == 0 {
			continue
		}

		rec := getRecommendation(check.RuleID)
		if rec != "" && !seen[rec] {
			recommendations = append(recommendations, rec)
			seen[rec] = true
		}
	}

	// Limit to top 5 recommendations
	if len(recommendations) > 5 {
		recommendations = recommendations[:5]
	}

	return recommendations
}

// getRecommendation returns a recommendation for a specific rule.
func getRecommendation(ruleID string) string {
	switch ruleID {
	case "CFG01":
		return "Run 'mazo init' to create a mazo.yaml pinning the project layout"
	case "CFG02":
		return "Create the sections directory or point --sections-dir at it"
	case "SEC01":
		return "Fix the partition discovery error before building"
	case "SEC02":
		return "Add section files matching the partition pattern, or run 'mazo gen'"
	case "SEC03":
		return "Fix malformed partition files before building"
	case "SEC04":
		return "Fill empty partitions with cards or remove them"
	case "SEC05":
		return "Deduplicate card terms across sections"
	case "ART01":
		return "Run 'mazo build' to refresh the deck artifact"
	default:
		return ""
	}
}

func renderDoctorText(cmd *cobra.Command, out *DoctorOutput) {
	w := cmd.OutOrStdout()

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Mazo Deck Health Report")
	_, _ = fmt.Fprintln(w, strings.Repeat("=", 55))
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintln(w, "Deck Summary")
	_, _ = fmt.Fprintf(w, "   Partitions: %d | Cards: %d | Providers: %d\n",
		out.Summary.Partitions, out.Summary.Cards, out.Summary.Providers)
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintln(w, "Health Checks")
	_, _ = fmt.Fprintln(w)

	currentGroup := ""
	titleCaser := cases.Title(language.English)
	for _, check := range out.HealthChecks {
		if check.Group != currentGroup {
			currentGroup = check.Group
			_, _ = fmt.Fprintln(w, "   "+titleCaser.String(currentGroup))
			_, _ = fmt.Fprintln(w, "   "+strings.Repeat("-", 40))
		}

		status := "PASS"
		switch check.Status {
		case "warn":
			status = "WARN"
		case "error":
			status = "ERROR"
		}

		line := fmt.Sprintf("[%s] %s: %s", status, check.RuleID, check.Name)
		if check.IssueCount > 0 {
			line += fmt.Sprintf(" (%d issues)", check.IssueCount)
		}
		_, _ = fmt.Fprintln(w, "   "+line)

		// Show first 3 details for issues
		for i, detail := range check.Details {
			if i >= 3 {
				_, _ = fmt.Fprintf(w, "       ... and %d more\n", len(check.Details)-3)
				break
			}
			_, _ = fmt.Fprintln(w, "       - "+detail)
		}
	}
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintln(w, strings.Repeat("=", 55))
	_, _ = fmt.Fprintf(w, "   Health Score: %d/100\n", out.Score)
	_, _ = fmt.Fprintln(w)

	if len(out.Recommendations) > 0 {
		_, _ = fmt.Fprintln(w, "Recommendations")
		for i, rec := range out.Recommendations {
			_, _ = fmt.Fprintf(w, "   %d. %s\n", i+1, rec)
		}
		_, _ = fmt.Fprintln(w)
	}
}
