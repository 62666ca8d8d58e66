package configcmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mobiledoc-cli/internal/config"
	"github.com/open-cli-collective/mobiledoc-cli/pkg/mobiledoc/cards"
)

// NewCmdTest creates the config test command.
func NewCmdTest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Check the configuration",
		Long:  `Check that the effective mdoc configuration is valid and every configured card exists.`,
		Example: `  # Check configuration
  mdoc config test`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runTest(configPath(cmd), noColor, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runTest(path string, noColor bool, w io.Writer) error {
	if noColor {
		color.NoColor = true
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	cfg, err := config.LoadWithEnv(path)
	if err != nil {
		_, _ = red.Fprintln(w, "✗ Failed to load config:", err)
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		_, _ = red.Fprintln(w, "✗ Invalid config:", err)
		fmt.Fprintln(w, "\nReconfigure with: mdoc init")
		return fmt.Errorf("invalid config: %w", err)
	}

	enabled, err := cards.Select(cfg.Cards)
	if err != nil {
		_, _ = red.Fprintln(w, "✗ Invalid cards:", err)
		return fmt.Errorf("invalid config: %w", err)
	}

	_, _ = green.Fprintf(w, "✓ Configuration is valid (%d cards enabled)\n", len(enabled))
	return nil
}
