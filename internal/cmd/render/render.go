// Package render provides the render command.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/open-cli-collective/mobiledoc-cli/internal/config"
	"github.com/open-cli-collective/mobiledoc-cli/internal/input"
	"github.com/open-cli-collective/mobiledoc-cli/internal/logging"
	"github.com/open-cli-collective/mobiledoc-cli/internal/view"
	"github.com/open-cli-collective/mobiledoc-cli/pkg/mobiledoc"
	"github.com/open-cli-collective/mobiledoc-cli/pkg/mobiledoc/cards"
)

type renderOptions struct {
	format       string
	unknownCards string
	cardOptions  map[string]string
	cards        []string
	configPath   string
	verbose      bool
	noColor      bool
	stdin        io.Reader
	stdout       io.Writer
}

// NewCmdRender creates the render command.
func NewCmdRender() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a mobiledoc to HTML",
		Long: `Render a mobiledoc document (version 0.2.0) to HTML.

The document is read from the given file, or from stdin when the file is
omitted or "-". Files ending in .yml or .yaml are read as YAML.

Cards are resolved against the enabled card set (see 'mdoc cards list').
Cards that cannot be resolved are handled by the --unknown-cards policy:
  fail     abort the render (default)
  skip     render an empty card container
  comment  render an HTML comment naming the card`,
		Example: `  # Render a document to HTML
  mdoc render post.json

  # Render from stdin as markdown
  cat post.json | mdoc render --format markdown

  # Only enable the markdown card and pass an option to every card
  mdoc render post.json --cards card-markdown --card-option theme=dark`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.verbose, _ = cmd.Flags().GetBool("verbose")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.stdin = cmd.InOrStdin()
			opts.stdout = cmd.OutOrStdout()

			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runRender(path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Document format: html, markdown, text, json (default from config, else html)")
	cmd.Flags().StringVar(&opts.unknownCards, "unknown-cards", "", "Unknown card policy: fail, skip, comment (default from config, else fail)")
	cmd.Flags().StringToStringVar(&opts.cardOptions, "card-option", nil, "Card option passed to every card (key=value, repeatable)")
	cmd.Flags().StringSliceVar(&opts.cards, "cards", nil, "Cards to enable (default: all)")

	return cmd
}

func runRender(path string, opts *renderOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if err := view.ValidateDocumentFormat(cfg.OutputFormat); err != nil {
		return err
	}

	logger, err := logging.New(opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	renderer, err := newRenderer(cfg, logger)
	if err != nil {
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

	result, err := renderer.Render(doc)
	if err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}
	defer result.Teardown()

	out := view.NewRenderer(view.FormatTable, opts.noColor)
	if opts.stdout != nil {
		out.SetWriter(opts.stdout)
	}

	return out.RenderDocument(view.RenderedDocument{
		HTML:     result.HTML,
		Version:  doc.Version,
		Sections: len(doc.Sections),
	}, view.DocumentFormat(cfg.OutputFormat))
}

// loadConfig loads the config file and environment, then applies flags on top.
func loadConfig(opts *renderOptions) (*config.Config, error) {
	configPath := opts.configPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if opts.format != "" {
		cfg.OutputFormat = opts.format
	}
	if opts.unknownCards != "" {
		cfg.UnknownCards = opts.unknownCards
	}
	if len(opts.cards) > 0 {
		cfg.Cards = opts.cards
	}
	if len(opts.cardOptions) > 0 {
		merged := make(map[string]string, len(cfg.CardOptions)+len(opts.cardOptions))
		for k, v := range cfg.CardOptions {
			merged[k] = v
		}
		for k, v := range opts.cardOptions {
			merged[k] = v
		}
		cfg.CardOptions = merged
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.ApplyDefaults()

	return cfg, nil
}

func newRenderer(cfg *config.Config, logger *zap.Logger) (*mobiledoc.Renderer, error) {
	enabled, err := cards.Select(cfg.Cards)
	if err != nil {
		return nil, err
	}

	handler, err := unknownCardHandler(cfg.UnknownCards)
	if err != nil {
		return nil, err
	}

	cardOptions := cfg.CardOptions
	if cardOptions == nil {
		cardOptions = map[string]string{}
	}

	return mobiledoc.New(mobiledoc.Options{
		Cards:              enabled,
		CardOptions:        cardOptions,
		UnknownCardHandler: handler,
		Logger:             logger,
	})
}
