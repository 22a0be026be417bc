// Package render holds the pure formatting helpers behind the list and
// detail views.
package render

import (
	"fmt"
	"strings"
	"time"
)

// snippetLimit caps how much of a clip's text the list view shows.
const snippetLimit = 100

// RelativeTime formats how long ago t was, relative to now:
// under a minute "just now", under an hour "Nm ago", under a day "Nh ago",
// older clips get a month/day/time stamp.
func RelativeTime(now, t time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Format("Jan 2, 15:04")
	}
}

// Snippet collapses text onto one line and truncates it for list display.
func Snippet(text string) string {
	out := strings.Join(strings.Fields(text), " ")
	if len(out) > snippetLimit {
		out = out[:snippetLimit] + "…"
	}
	return out
}
