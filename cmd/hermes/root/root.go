package root

import (
	"github.com/flarebyte/hermes-epitome/cmd/hermes/diagnose"
	"github.com/flarebyte/hermes-epitome/cmd/hermes/initcmd"
	"github.com/flarebyte/hermes-epitome/cmd/hermes/jj"
	"github.com/flarebyte/hermes-epitome/cmd/hermes/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for hermes.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hermes",
		Short: "CLI: A terse messenger between version control and its reader, carrying only the words that matter",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Subcommands
	cmd.AddCommand(version.VersionCmd)
	cmd.AddCommand(jj.Cmd)
	cmd.AddCommand(diagnose.Cmd)
	cmd.AddCommand(initcmd.Cmd)

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
