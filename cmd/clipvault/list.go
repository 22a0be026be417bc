package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipvault/internal/render"
	"go.klb.dev/clipvault/internal/vault"
)

func newListCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List saved clips, newest first",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runList(v) },
	}

	cmd.Flags().Bool("json", false, "output raw JSON")
	addCommonFlags(cmd)

	return cmd
}

func runList(v *viper.Viper) error {
	clips, err := openVault(v).List()
	if err != nil {
		return err
	}

	if v.GetBool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(clips)
	}

	if len(clips) == 0 {
		pterm.Info.Println(`Vault is empty — save something with "clipvault capture"`)
		return nil
	}

	snippet, meta, _ := uiStyles(v)
	now := time.Now()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tAGE\tFROM\tTEXT")
	for _, c := range clips {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			c.ID,
			render.RelativeTime(now, c.Timestamp),
			origin(c),
			snippet.Sprint(render.Snippet(c.Text)),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	meta.Printfln("%s", itemCount(len(clips)))
	return nil
}

// origin names where a clip came from: the page title for selection clips,
// a dash for manual captures.
func origin(c vault.Clip) string {
	if c.Source != vault.SourceSelection {
		return "-"
	}
	if c.PageTitle != "" {
		return c.PageTitle
	}
	return "Web page"
}

func itemCount(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}
