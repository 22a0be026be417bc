package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipvault/internal/prefs"
)

func newThemeCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "theme [toggle|light|dark|auto]",
		Short: "Show or change the display theme",
		Long: `Without arguments, prints the stored theme and what it resolves to.

"toggle" cycles auto → opposite of the system preference → the alternate →
auto. "light"/"dark" pin a theme, "auto" clears the preference and follows
the terminal's color scheme.`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, args []string) error {
			return runTheme(v, args)
		},
	}

	addCommonFlags(cmd)

	return cmd
}

func runTheme(v *viper.Viper, args []string) error {
	store := openPrefs(v)
	systemDark := prefs.SystemPrefersDark()

	if len(args) == 0 {
		current, err := store.Get()
		if err != nil {
			return err
		}
		fmt.Printf("theme: %s\n", themeLabel(current))
		if current == prefs.ThemeAuto {
			fmt.Printf("resolves to: %s\n", prefs.Effective(current, systemDark))
		}
		return nil
	}

	switch args[0] {
	case "toggle":
		next, err := store.Toggle(systemDark)
		if err != nil {
			return err
		}
		announceTheme(next)
		return nil
	case "light", "dark":
		if err := store.Set(prefs.Theme(args[0])); err != nil {
			return err
		}
		announceTheme(prefs.Theme(args[0]))
		return nil
	case "auto":
		if err := store.Clear(); err != nil {
			return err
		}
		announceTheme(prefs.ThemeAuto)
		return nil
	default:
		return fmt.Errorf("unknown theme %q (want toggle, light, dark or auto)", args[0])
	}
}

func themeLabel(t prefs.Theme) string {
	if t == prefs.ThemeAuto {
		return "auto (system)"
	}
	return string(t)
}

func announceTheme(t prefs.Theme) {
	switch t {
	case prefs.ThemeLight:
		pterm.Success.Println("Light mode")
	case prefs.ThemeDark:
		pterm.Success.Println("Dark mode")
	default:
		pterm.Success.Println("Auto theme (system)")
	}
}

// uiStyles returns the list/detail styles for the effective theme.
func uiStyles(v *viper.Viper) (snippet, meta, origin *pterm.Style) {
	store := openPrefs(v)
	current, err := store.Get()
	if err != nil {
		current = prefs.ThemeAuto
	}
	switch prefs.Effective(current, prefs.SystemPrefersDark()) {
	case prefs.ThemeLight:
		return pterm.NewStyle(pterm.FgBlack),
			pterm.NewStyle(pterm.FgDarkGray),
			pterm.NewStyle(pterm.FgBlue)
	default:
		return pterm.NewStyle(pterm.FgDefault),
			pterm.NewStyle(pterm.FgGray),
			pterm.NewStyle(pterm.FgCyan)
	}
}
