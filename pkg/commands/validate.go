package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/chakai/pkg/commands/options"
	"tableflip.dev/chakai/pkg/config"
	"tableflip.dev/chakai/pkg/runner/validate"
)

func addValidate(topLevel *cobra.Command) {
	vo := &options.ValidateOptions{}
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "check a tweet against the announcement template",
		Example: `
chakai validate draft.txt
pbpaste | chakai validate
`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			v := validate.Validate{Config: cfg, Path: path, HideInfo: vo.HideInfo}
			return v.Do(context.Background())
		},
	}
	options.AddValidateArgs(cmd, vo)

	topLevel.AddCommand(cmd)
}
