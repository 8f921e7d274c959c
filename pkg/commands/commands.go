package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "chakai",
		Short: base.Wrap80("Compose and check the weekly 題名のないお茶会 announcement."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addValidate(topLevel)
	addGenerate(topLevel)
	addCount(topLevel)
	addEmoji(topLevel)
	addVersion(topLevel)
}
