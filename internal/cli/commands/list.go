package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mazo-labs/mazo/pkg/card"
)

// ListOptions holds options for the list command.
type ListOptions struct {
	Format string
	Terms  bool
}

// partitionInfo describes one partition for list output.
type partitionInfo struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Cards int    `json:"cards"`
}

// listOutput is the JSON shape of the list command.
type listOutput struct {
	Partitions []partitionInfo `json:"partitions"`
	TotalCards int             `json:"total_cards"`
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	opts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List section partitions and their card counts",
		Long: `List the partitions that the next build would assemble, in build
order, with their card counts.

Partitions are parsed, so malformed section files are reported here the
same way build would report them.`,
		Example: `  # List partitions
  mazo list

  # List partitions as JSON
  mazo list --format json

  # List every distinct card term in Spanish alphabetical order
  mazo list --terms`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "table", "Output format (table|json)")
	cmd.Flags().BoolVar(&opts.Terms, "terms", false, "List distinct card terms instead of partitions")

	return cmd
}

func runList(cmd *cobra.Command, opts *ListOptions) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	partitions, err := cmdCtx.Assembler.Discover()
	if err != nil {
		return err
	}
	for i := range partitions {
		if err := cmdCtx.Assembler.LoadPartition(&partitions[i]); err != nil {
			return err
		}
	}

	if opts.Terms {
		return listTerms(cmd, partitions)
	}

	infos := make([]partitionInfo, 0, len(partitions))
	total := 0
	for _, p := range partitions {
		infos = append(infos, partitionInfo{Name: p.Name, Path: p.Path, Cards: p.Count()})
		total += p.Count()
	}

	if opts.Format == "json" {
		return renderJSON(cmd.OutOrStdout(), listOutput{Partitions: infos, TotalCards: total})
	}

	t := newTable(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Section", "Cards", "File"})
	for _, info := range infos {
		t.AppendRow(table.Row{info.Name, info.Cards, info.Path})
	}
	t.AppendFooter(table.Row{"Total", total, ""})
	t.Render()
	return nil
}

// listTerms prints the distinct card terms in Spanish collation order.
func listTerms(cmd *cobra.Command, partitions []card.Partition) error {
	seen := make(map[string]struct{})
	var terms []string
	for _, p := range partitions {
		for _, rec := range p.Records {
			term, ok := rec.StringField("term")
			if !ok || term == "" {
				continue
			}
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
			terms = append(terms, term)
		}
	}

	collate.New(language.Spanish).SortStrings(terms)
	for _, term := range terms {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), term)
	}
	return nil
}
