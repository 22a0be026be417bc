// Package clip provides access to the system clipboard for plain text via
// golang.design/x/clipboard. Commands depend on the Backend interface so
// tests can substitute an in-memory fake.
package clip

import (
	"errors"
	"strings"

	"golang.design/x/clipboard"
)

// ErrUnavailable is returned when the clipboard cannot be accessed: no
// display server, or the platform denied the capability.
var ErrUnavailable = errors.New("clipboard unavailable")

// Backend is the capability surface the commands program against.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// ReadText returns the current clipboard text. An empty string means
	// the clipboard is empty or holds no text.
	ReadText() (string, error)

	// WriteText replaces the clipboard contents with text.
	WriteText(text string) error
}

type systemBackend struct{}

// New returns the system clipboard backend. clipboard.Init is called here
// rather than in init() so commands that never touch the clipboard (list,
// status, theme) don't pay for it or trip over a headless environment.
func New() (Backend, error) {
	if err := clipboard.Init(); err != nil {
		return nil, errors.Join(ErrUnavailable, err)
	}
	return systemBackend{}, nil
}

func (systemBackend) Name() string { return "system clipboard" }

func (systemBackend) ReadText() (string, error) {
	return string(clipboard.Read(clipboard.FmtText)), nil
}

func (systemBackend) WriteText(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// Fake is an in-memory Backend for tests.
type Fake struct {
	Text    string
	ReadErr error
	Written []string
}

func (f *Fake) Name() string { return "fake clipboard" }

func (f *Fake) ReadText() (string, error) {
	if f.ReadErr != nil {
		return "", f.ReadErr
	}
	return f.Text, nil
}

func (f *Fake) WriteText(text string) error {
	f.Written = append(f.Written, text)
	f.Text = text
	return nil
}

// IsEmptyText reports whether text is empty after trimming, i.e. the
// clipboard holds nothing worth capturing.
func IsEmptyText(text string) bool { return strings.TrimSpace(text) == "" }
