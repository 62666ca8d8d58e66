package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdFish creates the fish completion command.
func NewCmdFish() *cobra.Command {
	return &cobra.Command{
		Use:   "fish",
		Short: "Generate fish completion script",
		Long: `Generate fish completion script for mdoc.

To load completions in your current shell session:

  mdoc completion fish | source

To load completions for every new session:

  mdoc completion fish > ~/.config/fish/completions/mdoc.fish`,
		Example: `  # Load in current session
  mdoc completion fish | source

  # Install permanently
  mdoc completion fish > ~/.config/fish/completions/mdoc.fish`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		},
	}
}
