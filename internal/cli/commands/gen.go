package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mazo-labs/mazo/internal/generator"
)

// GenOptions holds options for the gen command.
type GenOptions struct {
	Provider     string
	StartSection int
	Force        bool
	List         bool
}

// NewGenCommand creates the gen command.
func NewGenCommand() *cobra.Command {
	opts := &GenOptions{}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate section partitions from built-in providers",
		Long: `Write generated sections into the sections directory.

Providers produce complete sections, such as the regular verb section
with full present, preterite and imperfect paradigms. Generated
partitions are ordinary section files: edit them, or regenerate with
--force to discard local edits.`,
		Example: `  # Generate all providers
  mazo gen

  # Regenerate a single provider, replacing existing files
  mazo gen --provider regular-verbs --force

  # Renumber generated sections to start at 10
  mazo gen --start-section 10

  # Show available providers
  mazo gen --list`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGen(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Provider, "provider", "", "Generate only the named provider")
	cmd.Flags().IntVar(&opts.StartSection, "start-section", 0, "Renumber sections sequentially from this number")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite existing partition files")
	cmd.Flags().BoolVar(&opts.List, "list", false, "List available providers")

	return cmd
}

func runGen(cmd *cobra.Command, opts *GenOptions) error {
	cmdCtx := NewCommandContextWithoutAssembler(cmd)

	if opts.List {
		for _, name := range generator.ListProviders() {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}

	sections, err := generator.Collect(opts.Provider, opts.StartSection)
	if err != nil {
		return err
	}

	paths, err := generator.WriteSections(cmdCtx.Cfg.SectionsDir, sections, opts.Force)
	if err != nil {
		return err
	}

	cards := 0
	for _, sec := range sections {
		cards += len(sec.Cards)
	}
	for _, path := range paths {
		cmdCtx.Logger.Debug("wrote partition", "path", path)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Generated %d sections (%d cards) in %s\n",
		len(paths), cards, cmdCtx.Cfg.SectionsDir)
	return nil
}
