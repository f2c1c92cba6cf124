package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Install one package by exact name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ui := newUI()
			defer m.Close()
			return ui.RunAdd(args[0])
		},
	}
	rootCmd.AddCommand(cmd)
}
