package configcmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mobiledoc-cli/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the effective mdoc configuration with source indicators.`,
		Example: `  # Show current config
  mdoc config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(configPath(cmd), noColor, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runShow(path string, noColor bool, w io.Writer) error {
	if noColor {
		color.NoColor = true
	}

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(path)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	// Load full config with env overrides
	cfg, err := config.LoadWithEnv(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue, envVar string) {
		_, _ = bold.Fprintf(w, "%-14s", label+":")
		if value == "" {
			_, _ = dim.Fprintln(w, "-")
			return
		}

		fmt.Fprint(w, value)

		source := "config"
		if v := os.Getenv(envVar); v != "" {
			source = envVar
		} else if fileValue != value {
			source = "-"
		}

		_, _ = dim.Fprintf(w, "  (source: %s)\n", source)
	}

	printField("Format", cfg.OutputFormat, fileCfg.OutputFormat, "MDOC_OUTPUT_FORMAT")
	printField("Unknown cards", cfg.UnknownCards, fileCfg.UnknownCards, "MDOC_UNKNOWN_CARDS")
	printField("Cards", strings.Join(cfg.Cards, ","), strings.Join(fileCfg.Cards, ","), "MDOC_CARDS")

	if len(cfg.CardOptions) > 0 {
		_, _ = bold.Fprintln(w, "Card options:")
		keys := make([]string, 0, len(cfg.CardOptions))
		for k := range cfg.CardOptions {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "  %s=%s\n", k, cfg.CardOptions[k])
		}
	}

	fmt.Fprintln(w)
	_, _ = dim.Fprintf(w, "Config file: %s\n", path)
	if fileErr != nil {
		_, _ = dim.Fprintln(w, "(file not found)")
	}

	return nil
}
