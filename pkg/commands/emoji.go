package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/chakai/pkg/runner/emoji"
)

func addEmoji(topLevel *cobra.Command) {
	copyIndex := 0
	cmd := &cobra.Command{
		Use:   "emoji",
		Short: "list the instrument emoji, optionally copying one",
		Example: `
chakai emoji
chakai emoji --copy 5
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := emoji.Emoji{Copy: copyIndex}
			return e.Do(context.Background())
		},
	}
	cmd.Flags().IntVar(&copyIndex, "copy", 0, "Copy the numbered emoji to the clipboard.")

	topLevel.AddCommand(cmd)
}
