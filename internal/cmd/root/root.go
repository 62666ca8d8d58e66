// Package root provides the root command for the mdoc CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mobiledoc-cli/internal/cmd/cardscmd"
	"github.com/open-cli-collective/mobiledoc-cli/internal/cmd/completion"
	"github.com/open-cli-collective/mobiledoc-cli/internal/cmd/configcmd"
	initcmd "github.com/open-cli-collective/mobiledoc-cli/internal/cmd/init"
	"github.com/open-cli-collective/mobiledoc-cli/internal/cmd/render"
	"github.com/open-cli-collective/mobiledoc-cli/internal/cmd/validate"
	"github.com/open-cli-collective/mobiledoc-cli/internal/version"
)

// NewCmdRoot creates the root command for mdoc.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mdoc",
		Short: "A command-line renderer for mobiledoc documents",
		Long: `mdoc renders mobiledoc 0.2.0 documents to HTML.

It can also convert the rendered output to markdown or plain text,
validate documents, and list the cards available to the renderer.

Get started by running: mdoc init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/mdoc/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().Bool("verbose", false, "log rendering details to stderr")

	// Set version template
	cmd.SetVersionTemplate("mdoc version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(render.NewCmdRender())
	cmd.AddCommand(validate.NewCmdValidate())
	cmd.AddCommand(cardscmd.NewCmdCards())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
