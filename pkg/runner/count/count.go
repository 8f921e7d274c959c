package count

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"tableflip.dev/chakai/pkg/printers"
	"tableflip.dev/chakai/pkg/tweet"
)

type Count struct {
	Args []string // counted verbatim when given; stdin otherwise
}

func (n *Count) Do(ctx context.Context) error {
	text := strings.Join(n.Args, " ")
	if text == "" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(b)
	}

	pp := printers.Checklist{}
	pp.Count(tweet.Length(text))
	return nil
}
