package validate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/chakai/pkg/printers"
	"tableflip.dev/chakai/pkg/tweet"
)

// ErrInvalid is returned when the tweet fails the template checks, so the
// command exits nonzero for scripts.
var ErrInvalid = errors.New("announcement does not satisfy the template")

type Validate struct {
	Config   tweet.Config
	Path     string // file to read; stdin when empty or "-"
	HideInfo bool
}

func (n *Validate) Do(ctx context.Context) error {
	text, err := n.read()
	if err != nil {
		return err
	}

	r := n.Config.Validate(text)

	pp := printers.Checklist{Hashtag: n.Config.Hashtag, HideInfo: n.HideInfo}
	fmt.Println("")
	pp.Title("announcement check")
	pp.Result(r)
	pp.NewLine()
	pp.Count(tweet.Length(text))

	if !r.IsValid {
		return ErrInvalid
	}
	return nil
}

func (n *Validate) read() (string, error) {
	if n.Path == "" || n.Path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(n.Path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", n.Path, err)
	}
	return string(b), nil
}
