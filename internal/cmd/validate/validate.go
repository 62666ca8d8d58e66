// Package validate provides the validate command.
package validate

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mobiledoc-cli/internal/input"
	"github.com/open-cli-collective/mobiledoc-cli/internal/view"
	"github.com/open-cli-collective/mobiledoc-cli/pkg/mobiledoc"
)

type validateOptions struct {
	output  string
	noColor bool
	stdin   io.Reader
	stdout  io.Writer
}

// Report summarizes a valid document.
type Report struct {
	Version     string         `json:"version"`
	MarkerTypes int            `json:"marker_types"`
	Sections    int            `json:"sections"`
	ByType      map[string]int `json:"by_type"`
	Cards       []string       `json:"cards"`
}

// NewCmdValidate creates the validate command.
func NewCmdValidate() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check that a mobiledoc can be rendered",
		Long: `Parse a mobiledoc, check its version and marker structure, and summarize it.

Cards are not rendered: every card other than the built-in image card is
treated as empty, so validation does not depend on the enabled card set.`,
		Example: `  # Validate a document
  mdoc validate post.json

  # Machine-readable summary
  mdoc validate post.json -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.stdin = cmd.InOrStdin()
			opts.stdout = cmd.OutOrStdout()

			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runValidate(path, opts)
		},
	}

	return cmd
}

func runValidate(path string, opts *validateOptions) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	stdin := opts.stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	doc, err := input.ReadDocument(path, stdin)
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.stdout != nil {
		renderer.SetWriter(opts.stdout)
	}
	isJSON := opts.output == string(view.FormatJSON)

	report, err := Check(doc)
	if err != nil {
		if !isJSON {
			renderer.Error("Document is invalid")
		}
		return fmt.Errorf("invalid document: %w", err)
	}

	if isJSON {
		return renderer.RenderJSON(report)
	}

	renderer.RenderKeyValue("Version", report.Version)
	renderer.RenderKeyValue("Marker types", strconv.Itoa(report.MarkerTypes))
	renderer.RenderKeyValue("Sections", strconv.Itoa(report.Sections))
	if report.Sections == 0 {
		renderer.RenderText("No sections.")
	}
	for _, t := range []mobiledoc.SectionType{
		mobiledoc.SectionTypeMarkup,
		mobiledoc.SectionTypeImage,
		mobiledoc.SectionTypeList,
		mobiledoc.SectionTypeCard,
	} {
		if n := report.ByType[t.String()]; n > 0 {
			renderer.RenderKeyValue("  "+t.String(), strconv.Itoa(n))
		}
	}
	if len(report.Cards) > 0 {
		renderer.RenderTable([]string{"CARD"}, cardRows(report.Cards))
	}
	renderer.Success("Document is valid")

	return nil
}

// Check renders doc with every unregistered card skipped and returns a summary.
func Check(doc *mobiledoc.Document) (*Report, error) {
	var cardNames []string
	seen := map[string]bool{}

	r, err := mobiledoc.New(mobiledoc.Options{
		UnknownCardHandler: func(*mobiledoc.RenderContext) (any, error) {
			return nil, nil
		},
	})
	if err != nil {
		return nil, err
	}

	result, err := r.Render(doc)
	if err != nil {
		return nil, err
	}
	result.Teardown()

	report := &Report{
		Version:     doc.Version,
		MarkerTypes: len(doc.MarkerTypes),
		Sections:    len(doc.Sections),
		ByType:      map[string]int{},
	}
	for _, section := range doc.Sections {
		report.ByType[section.Type().String()]++
		if card, ok := section.(*mobiledoc.CardSection); ok && !seen[card.Name] {
			seen[card.Name] = true
			cardNames = append(cardNames, card.Name)
		}
	}
	report.Cards = cardNames

	return report, nil
}

func cardRows(names []string) [][]string {
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name})
	}
	return rows
}
