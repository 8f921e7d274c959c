package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/chakai/pkg/config"
	"tableflip.dev/chakai/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive composer",
		Example: `
chakai ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			i := ui.UI{Config: cfg}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
