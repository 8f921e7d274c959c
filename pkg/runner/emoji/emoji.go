package emoji

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/chakai/pkg/tweet"
)

type Emoji struct {
	Copy int // 1-based index to copy to the clipboard; 0 lists only
}

func (n *Emoji) Do(ctx context.Context) error {
	if n.Copy != 0 {
		if n.Copy < 1 || n.Copy > len(tweet.Instruments) {
			return fmt.Errorf("no instrument %d, pick 1-%d", n.Copy, len(tweet.Instruments))
		}
		e := tweet.Instruments[n.Copy-1]
		if err := clipboard.WriteAll(e); err != nil {
			return fmt.Errorf("copying %s to clipboard: %w", e, err)
		}
		fmt.Printf("copied %s\n", e)
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for i, e := range tweet.Instruments {
		tbl.AddRow(i+1, e)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}
