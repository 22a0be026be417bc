package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newClearCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "clear",
		Short:   "Delete every clip in the vault",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := openVault(v).Clear(); err != nil {
				return err
			}
			pterm.Success.Println("All clips cleared")
			return nil
		},
	}

	addCommonFlags(cmd)

	return cmd
}
