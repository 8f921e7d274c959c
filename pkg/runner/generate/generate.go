package generate

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/chakai/pkg/tweet"
)

type Generate struct {
	Config tweet.Config
	On     *time.Time // generate for the Sunday on or after this date
	Emoji  string     // overrides the configured instrument
	Now    func() time.Time
}

func (n *Generate) Do(ctx context.Context) error {
	c := n.Config
	if n.Emoji != "" {
		c.DefaultInstrument = n.Emoji
	}

	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	today := now()
	if n.On != nil {
		today = *n.On
	}

	s := c.Generate(today)
	fmt.Println(s.Text)

	f := color.New(color.Faint)
	_, _ = f.Printf("\n第%d回 on %s\n", s.Meeting, s.Date.Format("2006-01-02"))
	return nil
}
