// Package cardscmd provides card-related commands.
package cardscmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mobiledoc-cli/internal/view"
	"github.com/open-cli-collective/mobiledoc-cli/pkg/mobiledoc/cards"
)

// NewCmdCards creates the cards command.
func NewCmdCards() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cards",
		Aliases: []string{"card"},
		Short:   "Inspect available cards",
		Long:    `Commands for inspecting the cards mdoc can render.`,
	}

	cmd.AddCommand(NewCmdList())

	return cmd
}

type listOptions struct {
	output  string
	noColor bool
	stdout  io.Writer
}

// NewCmdList creates the cards list command.
func NewCmdList() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List available cards",
		Example: `  # List cards
  mdoc cards list

  # As JSON
  mdoc cards list -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.stdout = cmd.OutOrStdout()
			return runList(opts)
		},
	}

	return cmd
}

func runList(opts *listOptions) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.stdout != nil {
		renderer.SetWriter(opts.stdout)
	}

	headers := []string{"NAME", "TYPE", "DESCRIPTION"}
	var rows [][]string
	for _, name := range cards.Names() {
		def, _ := cards.Lookup(name)
		rows = append(rows, []string{def.Name, def.Card.Type, view.Truncate(def.Description, 60)})
	}

	renderer.RenderTable(headers, rows)
	return nil
}
