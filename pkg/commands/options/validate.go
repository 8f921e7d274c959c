package options

import (
	"github.com/spf13/cobra"
)

// ValidateOptions
type ValidateOptions struct {
	HideInfo bool
}

func AddValidateArgs(cmd *cobra.Command, o *ValidateOptions) {
	cmd.Flags().BoolVar(&o.HideInfo, "no-info", false,
		"Skip the extracted-info table, print only the checklist.")
}
