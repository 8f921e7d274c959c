package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/chakai/pkg/commands/options"
	"tableflip.dev/chakai/pkg/config"
	"tableflip.dev/chakai/pkg/runner/generate"
)

func addGenerate(topLevel *cobra.Command) {
	oo := &options.GenerateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "print next Sunday's announcement template",
		Example: `
chakai generate
chakai generate --on="2025-02-04" --emoji=🎻
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			g := generate.Generate{Config: cfg, On: on, Emoji: oo.Emoji}
			return g.Do(context.Background())
		},
	}
	options.AddGenerateArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
