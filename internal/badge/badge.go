// Package badge provides transient non-blocking feedback for the
// non-interactive capture surface ("send"), which has no terminal to toast
// on. State is a small JSON file that status-bar integrations can poll; a
// badge expires on its own after TTL, so a reader that polls after the
// interval sees it gone even if nothing cleared it.
package badge

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TTL is how long a badge stays visible before it self-clears.
const TTL = 2 * time.Second

// Well-known badge states.
var (
	Saved     = State{Text: "✓", Color: "#22c55e"}
	Duplicate = State{Text: "!", Color: "#ef4444"}
	Failed    = State{Text: "✗", Color: "#ef4444"}
)

// State is one badge: a short text and its background color, plus the
// instant it stops being current.
type State struct {
	Text      string    `json:"text"`
	Color     string    `json:"color"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// StatePath returns the path of the badge state file.
//
//   - Linux: $XDG_RUNTIME_DIR/clipvault-badge.json
//   - elsewhere / fallback: $TMPDIR/clipvault-badge.json
//
// Override with $CLIPVAULT_BADGE.
func StatePath() string {
	if s := os.Getenv("CLIPVAULT_BADGE"); s != "" {
		return s
	}
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "clipvault-badge.json")
	}
	return filepath.Join(os.TempDir(), "clipvault-badge.json")
}

// Set writes st with an expiry of now+TTL.
func Set(st State) error {
	st.ExpiresAt = time.Now().Add(TTL)
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode badge: %w", err)
	}
	if err := os.WriteFile(StatePath(), data, 0o644); err != nil {
		return fmt.Errorf("write badge: %w", err)
	}
	return nil
}

// Clear removes the badge state file. Clearing an absent badge is a no-op.
func Clear() error {
	err := os.Remove(StatePath())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear badge: %w", err)
	}
	return nil
}

// Current returns the live badge, if any. An expired or absent badge yields
// ok=false; an expired state file is removed on the way out.
func Current() (State, bool, error) {
	data, err := os.ReadFile(StatePath())
	if errors.Is(err, os.ErrNotExist) {
		return State{}, false, nil
	}
	if err != nil {
		return State{}, false, fmt.Errorf("read badge: %w", err)
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, false, fmt.Errorf("decode badge: %w", err)
	}
	if !time.Now().Before(st.ExpiresAt) {
		_ = Clear()
		return State{}, false, nil
	}
	return st, true, nil
}
