package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewBuildCommand creates the build command.
func NewBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Assemble the deck from section partitions",
		Long: `Concatenate all section partitions into a single deck artifact.

Partitions are read in file name order. Every card receives a fresh
sequential id starting at 1; ids present in the partitions are ignored.
The artifact is replaced atomically, so a failed build leaves the
previous deck intact.`,
		Example: `  # Build the deck with the configured layout
  mazo build

  # Build from a different sections directory
  mazo build --sections-dir ./cards --out dist/deck.json

  # Fail instead of writing an empty deck when nothing matches
  mazo build --strict`,
		Aliases: []string{"assemble"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := cmdCtx.Cfg.ValidateDirectories(); err != nil {
				return err
			}

			result, err := cmdCtx.Assembler.Build(cmd.Context())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Summary())
			return nil
		},
	}
	return cmd
}
