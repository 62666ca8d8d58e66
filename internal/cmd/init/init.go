// Package init provides the init command for mdoc.
package init

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mobiledoc-cli/internal/config"
	"github.com/open-cli-collective/mobiledoc-cli/pkg/mobiledoc/cards"
)

type initOptions struct {
	configPath   string
	format       string
	unknownCards string
	cards        []string
	noInput      bool
	force        bool
	stdout       io.Writer
}

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize mdoc configuration",
		Long: `Initialize mdoc with your preferred rendering defaults.

This command will guide you through choosing the default output format,
how unknown cards are handled, and which cards are enabled. The
configuration will be saved to ~/.config/mdoc/config.yml.`,
		Example: `  # Interactive setup
  mdoc init

  # Non-interactive setup
  mdoc init --no-input --format markdown --unknown-cards comment`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.stdout = cmd.OutOrStdout()
			return runInit(opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "", "Default document format (html, markdown, text, json)")
	cmd.Flags().StringVar(&opts.unknownCards, "unknown-cards", "", "Default unknown card policy (fail, skip, comment)")
	cmd.Flags().StringSliceVar(&opts.cards, "cards", nil, "Cards to enable (default: all)")
	cmd.Flags().BoolVar(&opts.noInput, "no-input", false, "Write the configuration from flags without prompting")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing configuration without asking")

	return cmd
}

func runInit(opts *initOptions) error {
	configPath := opts.configPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	w := opts.stdout
	if w == nil {
		w = os.Stdout
	}

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil && !opts.force {
		if opts.noInput {
			return fmt.Errorf("configuration already exists at %s (use --force to overwrite)", configPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(w, "Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{
		OutputFormat: opts.format,
		UnknownCards: opts.unknownCards,
		Cards:        opts.cards,
	}
	cfg.ApplyDefaults()

	if !opts.noInput {
		if err := newForm(cfg).Run(); err != nil {
			return err
		}
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := cards.Select(cfg.Cards); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Save configuration
	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nConfiguration saved to %s\n", configPath)
	fmt.Fprintln(w, "\nYou're all set! Try running:")
	fmt.Fprintln(w, "  mdoc cards list")
	fmt.Fprintln(w, "  mdoc render <file.json>")

	return nil
}

func newForm(cfg *config.Config) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output format").
				Description("Default format for 'mdoc render'").
				Options(huh.NewOptions(config.ValidOutputFormats()...)...).
				Value(&cfg.OutputFormat),

			huh.NewSelect[string]().
				Title("Unknown cards").
				Description("What to do with cards mdoc cannot render").
				Options(huh.NewOptions(config.ValidUnknownCardPolicies()...)...).
				Value(&cfg.UnknownCards),

			huh.NewMultiSelect[string]().
				Title("Enabled cards").
				Description("Leave empty to enable every card").
				Options(huh.NewOptions(cards.Names()...)...).
				Value(&cfg.Cards),
		),
	)
}
