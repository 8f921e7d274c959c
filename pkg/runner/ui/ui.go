package ui

import (
	"context"

	"tableflip.dev/chakai/pkg/tui/composer"
	"tableflip.dev/chakai/pkg/tweet"
)

type UI struct {
	Config tweet.Config
}

func (u *UI) Do(ctx context.Context) error {
	return composer.Run(u.Config)
}
