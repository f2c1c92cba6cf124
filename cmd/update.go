package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Upgrade the system and rebuild outdated AUR packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ui := newUI()
			defer m.Close()
			return ui.RunUpdate()
		},
	}
	rootCmd.AddCommand(cmd)
}
