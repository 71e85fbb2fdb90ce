package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool
	var example bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new mazo project",
		Long: `Initialize a new mazo project with default directory structure and configuration.

This creates:
  - sections/ directory with a starter section
  - mazo.yaml configuration file
  - .gitignore covering the artifact and the state database

Use --example to start from a small demo deck with several sections.`,
		Example: `  # Initialize in current directory
  mazo init

  # Initialize with a demo deck
  mazo init --example

  # Initialize in a new directory
  mazo init my-deck --example

  # Force overwrite existing config
  mazo init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			template := "minimal"
			if example {
				template = "example"
			}
			return runInit(cmd, template, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")
	cmd.Flags().BoolVar(&example, "example", false, "Create a demo deck with several sections")

	return cmd
}

func runInit(cmd *cobra.Command, template, dir string, force bool) error {
	w := cmd.OutOrStdout()

	// Create directory if specified and doesn't exist
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	// Check if config already exists
	configPath := filepath.Join(dir, "mazo.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("mazo.yaml already exists. Use --force to overwrite")
	}

	if err := copyTemplate(template, dir, force); err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}

	// List created files
	files, _ := listTemplateFiles(template)
	groups := groupTemplateFiles(files)
	for _, f := range groups["config"] {
		_, _ = fmt.Fprintf(w, "  created %s\n", f)
	}
	for _, f := range groups["sections"] {
		_, _ = fmt.Fprintf(w, "  created %s\n", f)
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Mazo project initialized!")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Next steps:")
	_, _ = fmt.Fprintln(w, "  1. Edit the sections under sections/")
	_, _ = fmt.Fprintln(w, "  2. Run 'mazo gen' to add the generated verb section")
	_, _ = fmt.Fprintln(w, "  3. Run 'mazo build' to assemble the deck")
	_, _ = fmt.Fprintln(w, "  4. Run 'mazo list' to see all sections")

	return nil
}
