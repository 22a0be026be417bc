package main

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipvault/internal/render"
	"go.klb.dev/clipvault/internal/vault"
)

func newShowCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "show <id>",
		Short:   "Show a clip in full, with its metadata",
		Args:    cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := cast.ToInt64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid clip id %q", args[0])
			}
			return runShow(v, id)
		},
	}

	addCommonFlags(cmd)

	return cmd
}

func runShow(v *viper.Viper, id int64) error {
	c, err := openVault(v).Get(id)
	if err != nil {
		return err
	}

	_, meta, origin := uiStyles(v)

	if c.Source == vault.SourceSelection {
		title := c.PageTitle
		if title == "" {
			title = "Web page"
		}
		origin.Println(title)
		if c.PageURL != "" {
			meta.Println(c.PageURL)
		}
	} else {
		origin.Println("Clipboard capture")
	}
	meta.Printfln("%s (%s)",
		c.Timestamp.Format(time.RFC1123),
		render.RelativeTime(time.Now(), c.Timestamp),
	)

	fmt.Println()
	fmt.Println(c.Text)
	return nil
}
