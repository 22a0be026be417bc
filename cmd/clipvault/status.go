package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipvault/internal/badge"
)

// visualLimit is the denominator of the cosmetic usage bar. Nothing is
// enforced at this size — it only scales the display.
const visualLimit = 50 * 1024 * 1024

func newStatusCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Show vault usage and the current badge",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runStatus(v) },
	}

	addCommonFlags(cmd)

	return cmd
}

func runStatus(v *viper.Viper) error {
	vlt := openVault(v)

	clips, err := vlt.List()
	if err != nil {
		return err
	}
	size, err := vlt.SizeInBytes()
	if err != nil {
		return err
	}

	fmt.Printf("%s used • %s\n", humanize.IBytes(uint64(size)), itemCount(len(clips)))
	fmt.Println(usageBar(size, visualLimit, 24))

	if st, ok, err := badge.Current(); err == nil && ok {
		fmt.Printf("badge: %s\n", st.Text)
	}
	return nil
}

// usageBar renders an advisory usage bar for size against limit.
func usageBar(size, limit int64, width int) string {
	pct := float64(size) / float64(limit) * 100
	if pct > 100 {
		pct = 100
	}

	filled := int(pct / 100 * float64(width))
	if filled == 0 && size > 0 {
		filled = 1
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	style := pterm.NewStyle(pterm.FgGreen)
	switch {
	case pct > 80:
		style = pterm.NewStyle(pterm.FgRed)
	case pct > 50:
		style = pterm.NewStyle(pterm.FgYellow)
	}
	return fmt.Sprintf("%s %.1f%%", style.Sprint(bar), pct)
}
