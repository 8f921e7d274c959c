package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/chakai/pkg/runner/count"
)

func addCount(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "count [text]",
		Short: "weighted character count for a tweet",
		Long: "Counts display length the way the platform does: CJK, Hangul, and\n" +
			"fullwidth characters weigh two units, everything else one.",
		Example: `
chakai count "第209回 🎸題名のないお茶会"
pbpaste | chakai count
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := count.Count{Args: args}
			return c.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
