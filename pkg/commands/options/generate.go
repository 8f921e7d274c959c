// Package options defines shared flag helpers for CLI commands.
package options

import (
	"time"

	"github.com/spf13/cobra"
)

const layoutISO = "2006-01-02"

// GenerateOptions
type GenerateOptions struct {
	OnString string
	Emoji    string
}

func AddGenerateArgs(cmd *cobra.Command, o *GenerateOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Generate for the Sunday on or after this date, example: --on="2025-02-04".`)
	cmd.Flags().StringVar(&o.Emoji, "emoji", "",
		"Instrument emoji for the decorative line.")
}

func (o *GenerateOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := time.Parse(layoutISO, o.OnString)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
