// Package prefs persists the display theme preference. The theme is a single
// key in the shared state store, independent of the clip collection.
package prefs

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.klb.dev/clipvault/internal/storage"
)

const themeKey = "theme"

// Theme is the stored display preference. The empty value means no
// preference: follow the system (auto).
type Theme string

const (
	ThemeAuto  Theme = ""
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is one of the storable themes.
func (t Theme) Valid() bool { return t == ThemeLight || t == ThemeDark }

// Store reads and writes the theme preference.
type Store struct {
	store *storage.Store
}

// New returns a preference store backed by store.
func New(store *storage.Store) *Store {
	return &Store{store: store}
}

// Get returns the stored theme, or ThemeAuto when none is stored.
func (s *Store) Get() (Theme, error) {
	var t Theme
	if _, err := s.store.Get(themeKey, &t); err != nil {
		return ThemeAuto, fmt.Errorf("load theme: %w", err)
	}
	return t, nil
}

// Set persists t. Setting ThemeAuto clears the preference instead.
func (s *Store) Set(t Theme) error {
	if t == ThemeAuto {
		return s.Clear()
	}
	if !t.Valid() {
		return fmt.Errorf("unknown theme %q", t)
	}
	if err := s.store.Set(themeKey, t); err != nil {
		return fmt.Errorf("persist theme: %w", err)
	}
	return nil
}

// Clear removes the stored preference, returning to auto.
func (s *Store) Clear() error {
	if err := s.store.Delete(themeKey); err != nil {
		return fmt.Errorf("clear theme: %w", err)
	}
	return nil
}

// Toggle advances the three-state cycle and persists the result:
// auto → opposite of the system preference → the alternate → auto.
func (s *Store) Toggle(systemPrefersDark bool) (Theme, error) {
	current, err := s.Get()
	if err != nil {
		return ThemeAuto, err
	}
	var next Theme
	switch current {
	case ThemeAuto:
		next = ThemeDark
		if systemPrefersDark {
			next = ThemeLight
		}
	case ThemeLight:
		next = ThemeDark
	default:
		next = ThemeAuto
	}
	if err := s.Set(next); err != nil {
		return ThemeAuto, err
	}
	return next, nil
}

// Effective resolves t against the system preference: auto becomes light or
// dark, stored values pass through.
func Effective(t Theme, systemPrefersDark bool) Theme {
	if t != ThemeAuto {
		return t
	}
	if systemPrefersDark {
		return ThemeDark
	}
	return ThemeLight
}

// SystemPrefersDark guesses the terminal's color scheme from the COLORFGBG
// environment variable (set by several terminal emulators; the last field is
// the background color, 0-6 and 8 being dark). Unknown or unset means dark —
// the common case for terminals.
func SystemPrefersDark() bool {
	v := os.Getenv("COLORFGBG")
	if v == "" {
		return true
	}
	parts := strings.Split(v, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return true
	}
	return bg < 7 || bg == 8
}
