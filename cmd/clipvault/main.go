// clipvault: a local clipboard vault.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "clipvault",
		Short: "A local clipboard vault",
		Long: `clipvault captures text into a locally persisted, deduplicated list of
clips and lets you browse and manage it from the terminal.

Capture the current clipboard with "clipvault capture", or pipe a selection in
with "clipvault send" (optionally tagging the originating page via --url and
--title). Browse with list/show, put a clip back on the clipboard with copy,
prune with delete/clear.

Config file search order (first found wins):
  /etc/clipvault/clipvault.toml
  $HOME/.config/clipvault/clipvault.toml
  path supplied via --config

All flags can be set via CLIPVAULT_<FLAG> env vars or config-file keys.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCaptureCmd(),
		newSendCmd(),
		newListCmd(),
		newShowCmd(),
		newCopyCmd(),
		newDeleteCmd(),
		newClearCmd(),
		newStatusCmd(),
		newThemeCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "clipvault:", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("clipvault %s\n", Version)
		},
	}
}
