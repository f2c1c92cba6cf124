package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "remove [name]",
		Short: "Remove a package, or pick one from the installed list",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ui := newUI()
			defer m.Close()
			if len(args) == 1 {
				return ui.RunRemove(args[0])
			}
			return ui.RunRemoveSelect()
		},
	}
	cmd.Flags().BoolVarP(&opts.Recurse, "recurse", "r", false, "also remove dependencies no longer needed")
	rootCmd.AddCommand(cmd)
}
