package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdBash creates the bash completion command.
func NewCmdBash() *cobra.Command {
	return &cobra.Command{
		Use:   "bash",
		Short: "Generate bash completion script",
		Long: `Generate bash completion script for mdoc.

To load completions in your current shell session:

  source <(mdoc completion bash)

To load completions for every new session:

  # Linux
  mdoc completion bash > /etc/bash_completion.d/mdoc

  # macOS (requires bash-completion)
  mdoc completion bash > $(brew --prefix)/etc/bash_completion.d/mdoc`,
		Example: `  # Load in current session
  source <(mdoc completion bash)

  # Install permanently (Linux)
  mdoc completion bash | sudo tee /etc/bash_completion.d/mdoc > /dev/null

  # Install permanently (macOS with Homebrew)
  mdoc completion bash > $(brew --prefix)/etc/bash_completion.d/mdoc`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		},
	}
}
