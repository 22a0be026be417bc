package main

import (
	"fmt"
	"log/slog"

	"github.com/pterm/pterm"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newDeleteCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete clips from the vault",
		Example: `
  # Delete a single clip
  clipvault delete 1761246930571

  # Delete several at once
  clipvault delete 1761246930571 1761246930572`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := cast.ToInt64E(arg)
				if err != nil {
					return fmt.Errorf("invalid clip id %q", arg)
				}
				ids = append(ids, id)
			}
			return runDelete(v, ids)
		},
	}

	addCommonFlags(cmd)

	return cmd
}

func runDelete(v *viper.Viper, ids []int64) error {
	vlt := openVault(v)

	before, err := vlt.List()
	if err != nil {
		return err
	}
	remaining := before
	for _, id := range ids {
		// Unknown ids are no-ops, matching Remove's contract.
		remaining, err = vlt.Remove(id)
		if err != nil {
			return err
		}
	}

	n := len(before) - len(remaining)
	slog.Info("clips deleted", "requested", len(ids), "deleted", n)
	pterm.Success.Printfln("Deleted %s", itemCount(n))
	return nil
}
