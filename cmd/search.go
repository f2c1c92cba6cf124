package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search both sources and install the selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ui := newUI()
			defer m.Close()
			return ui.RunSearch(args[0])
		},
	}
	rootCmd.AddCommand(cmd)
}
