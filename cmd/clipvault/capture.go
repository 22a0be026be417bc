package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipvault/internal/clip"
	"go.klb.dev/clipvault/internal/vault"
)

func newCaptureCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Save the current clipboard text to the vault",
		Long: `Reads the system clipboard and saves its text to the vault.

Whitespace-only clipboard contents are rejected; text already present in the
vault is reported as already saved rather than stored twice.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runCapture(v, nil) },
	}

	addCommonFlags(cmd)

	return cmd
}

// runCapture reads the clipboard through backend and adds the text as a
// manual clip. A nil backend means the real system clipboard.
func runCapture(v *viper.Viper, backend clip.Backend) error {
	if backend == nil {
		var err error
		backend, err = clip.New()
		if err != nil {
			pterm.Error.Println("Failed to access clipboard")
			return err
		}
	}

	text, err := backend.ReadText()
	if err != nil {
		slog.Warn("clipboard read failed", "backend", backend.Name(), "err", err)
		pterm.Error.Println("Failed to access clipboard")
		return fmt.Errorf("read clipboard: %w", err)
	}
	if clip.IsEmptyText(text) {
		pterm.Warning.Println("Clipboard is empty")
		return nil
	}

	saved, err := openVault(v).Add(text, vault.Meta{Source: vault.SourceManual})
	switch {
	case errors.Is(err, vault.ErrDuplicate):
		pterm.Warning.Println("Already saved!")
		return nil
	case err != nil:
		pterm.Error.Println("Failed to save clip")
		return err
	}

	slog.Info("clip captured", "id", saved.ID, "bytes", len(saved.Text))
	pterm.Success.Println("Saved to vault!")
	return nil
}
