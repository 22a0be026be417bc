package main

import (
	"fmt"
	"log/slog"

	"github.com/pterm/pterm"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipvault/internal/clip"
)

func newCopyCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "copy <id>",
		Short:   "Copy a clip back to the system clipboard",
		Args:    cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := cast.ToInt64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid clip id %q", args[0])
			}
			return runCopy(v, id, nil)
		},
	}

	addCommonFlags(cmd)

	return cmd
}

// runCopy writes the clip's text through backend. A nil backend means the
// real system clipboard.
func runCopy(v *viper.Viper, id int64, backend clip.Backend) error {
	c, err := openVault(v).Get(id)
	if err != nil {
		return err
	}

	if backend == nil {
		backend, err = clip.New()
		if err != nil {
			pterm.Error.Println("Failed to access clipboard")
			return err
		}
	}
	if err := backend.WriteText(c.Text); err != nil {
		slog.Warn("clipboard write failed", "backend", backend.Name(), "err", err)
		pterm.Error.Println("Failed to access clipboard")
		return fmt.Errorf("write clipboard: %w", err)
	}

	pterm.Success.Println("Copied!")
	return nil
}
