package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipvault/internal/badge"
	"go.klb.dev/clipvault/internal/vault"
)

func newSendCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "send [text...]",
		Short: "Send selected text to the vault (non-interactive)",
		Long: `Saves the given text — or stdin, when no arguments are supplied — to the
vault, tagged with the originating page via --url and --title.

This is the hook for editor/browser "send selection" integrations, so it
never prints: feedback goes to the badge state file (see "clipvault status"),
which clears itself after two seconds. An empty selection is silently
ignored.`,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, args []string) error {
			return runSend(v, args, os.Stdin)
		},
	}

	f := cmd.Flags()
	f.String("url", "", "URL of the page the selection came from")
	f.String("title", "", "title of the page the selection came from")
	addCommonFlags(cmd)

	return cmd
}

func runSend(v *viper.Viper, args []string, stdin io.Reader) error {
	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return showBadge(badge.Failed, err)
		}
		text = string(data)
	}

	// Empty selection: no-op, no badge.
	if strings.TrimSpace(text) == "" {
		return nil
	}

	meta := vault.Meta{
		Source:    vault.SourceSelection,
		PageURL:   v.GetString("url"),
		PageTitle: v.GetString("title"),
	}
	saved, err := openVault(v).Add(text, meta)
	switch {
	case errors.Is(err, vault.ErrDuplicate):
		slog.Info("selection already saved")
		return showBadge(badge.Duplicate, nil)
	case err != nil:
		slog.Error("failed to save selection", "err", err)
		return showBadge(badge.Failed, err)
	}

	slog.Info("selection saved", "id", saved.ID, "page", meta.PageURL)
	return showBadge(badge.Saved, nil)
}

// showBadge sets the transient badge and hands back cause, so send exits
// nonzero on real failures while still signalling through the badge.
func showBadge(st badge.State, cause error) error {
	if err := badge.Set(st); err != nil {
		slog.Warn("badge update failed", "err", err)
	}
	return cause
}
