package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		age  time.Duration
		want string
	}{
		{"seconds ago", 30 * time.Second, "just now"},
		{"under a minute", 59 * time.Second, "just now"},
		{"minutes ago", 5 * time.Minute, "5m ago"},
		{"just over a minute", 61 * time.Second, "1m ago"},
		{"hours ago", 2 * time.Hour, "2h ago"},
		{"under a day", 23*time.Hour + 59*time.Minute, "23h ago"},
		{"days ago", 3 * 24 * time.Hour, "Aug 27, 12:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTime(now, now.Add(-tt.age)))
		})
	}
}

func TestSnippetCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", Snippet("  a\n\tb   c  "))
}

func TestSnippetTruncatesLongText(t *testing.T) {
	long := strings.Repeat("x", 300)
	got := Snippet(long)
	assert.Equal(t, strings.Repeat("x", 100)+"…", got)
}

func TestSnippetLeavesShortTextAlone(t *testing.T) {
	assert.Equal(t, "short", Snippet("short"))
}
