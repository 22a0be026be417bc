// Package vault maintains the clip collection: an ordered, deduplicated,
// append-only (at the head) list of captured text snippets persisted under a
// single key of the shared state store.
package vault

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"go.klb.dev/clipvault/internal/storage"
)

// clipsKey is the state-store key holding the JSON array of clips.
const clipsKey = "clips"

var (
	// ErrEmptyInput is returned by Add when the candidate text is empty
	// after trimming.
	ErrEmptyInput = errors.New("clip text is empty")

	// ErrDuplicate is returned by Add when a clip with identical trimmed
	// text already exists. Callers treat this as an expected outcome, not
	// a fault.
	ErrDuplicate = errors.New("clip already saved")

	// ErrNotFound is returned by Get for an unknown clip id.
	ErrNotFound = errors.New("clip not found")
)

// Source identifies how a clip was captured.
type Source string

const (
	// SourceManual marks clips captured explicitly from the system clipboard.
	SourceManual Source = "manual"

	// SourceSelection marks clips sent from a page selection, carrying the
	// originating page's URL and title.
	SourceSelection Source = "context-menu"
)

// Clip is one captured piece of text plus its metadata. Clips are never
// mutated after creation; they are removed individually or via Clear.
type Clip struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Source    Source    `json:"source"`
	PageURL   string    `json:"pageUrl,omitempty"`
	PageTitle string    `json:"pageTitle,omitempty"`
}

// Meta carries capture metadata for Add. Zero value means a manual capture.
type Meta struct {
	Source    Source
	PageURL   string
	PageTitle string
}

// Vault is the single point of truth for all clip mutations. Each operation
// is a full read-modify-write of the persisted collection; there is no lock
// against a concurrent writer in another process.
type Vault struct {
	store *storage.Store
	now   func() time.Time
}

// New returns a Vault backed by store.
func New(store *storage.Store) *Vault {
	return &Vault{store: store, now: time.Now}
}

// List returns the collection in stored order, newest first. An empty or
// uninitialized store yields an empty slice.
func (v *Vault) List() ([]Clip, error) {
	var clips []Clip
	if _, err := v.store.Get(clipsKey, &clips); err != nil {
		return nil, fmt.Errorf("load clips: %w", err)
	}
	return clips, nil
}

// Get returns the clip with the given id, or ErrNotFound.
func (v *Vault) Get(id int64) (Clip, error) {
	clips, err := v.List()
	if err != nil {
		return Clip{}, err
	}
	clip, ok := lo.Find(clips, func(c Clip) bool { return c.ID == id })
	if !ok {
		return Clip{}, fmt.Errorf("clip %d: %w", id, ErrNotFound)
	}
	return clip, nil
}

// Add trims text, rejects empty input and exact duplicates, and otherwise
// prepends a new clip and persists the collection. The dedup check is a
// linear scan over the full collection; the collection is expected to stay
// small enough that this never matters.
func (v *Vault) Add(text string, meta Meta) (Clip, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Clip{}, ErrEmptyInput
	}

	clips, err := v.List()
	if err != nil {
		return Clip{}, err
	}
	if lo.SomeBy(clips, func(c Clip) bool { return c.Text == text }) {
		return Clip{}, ErrDuplicate
	}

	source := meta.Source
	if source == "" {
		source = SourceManual
	}
	now := v.now()
	clip := Clip{
		ID:        v.nextID(clips, now),
		Text:      text,
		Timestamp: now,
		Source:    source,
		PageURL:   meta.PageURL,
		PageTitle: meta.PageTitle,
	}

	clips = append([]Clip{clip}, clips...)
	if err := v.store.Set(clipsKey, clips); err != nil {
		return Clip{}, fmt.Errorf("persist clips: %w", err)
	}
	return clip, nil
}

// nextID derives a clip id from the creation time, in milliseconds. Two adds
// within the same millisecond would collide, so the id is bumped past the
// current head (ids at the head are the newest, hence the largest).
func (v *Vault) nextID(clips []Clip, now time.Time) int64 {
	id := now.UnixMilli()
	if len(clips) > 0 && clips[0].ID >= id {
		id = clips[0].ID + 1
	}
	return id
}

// Remove deletes the clip with the given id and returns the resulting
// collection. An unknown id leaves the collection unchanged; that is not an
// error.
func (v *Vault) Remove(id int64) ([]Clip, error) {
	clips, err := v.List()
	if err != nil {
		return nil, err
	}
	remaining := lo.Filter(clips, func(c Clip, _ int) bool { return c.ID != id })
	if len(remaining) == len(clips) {
		return clips, nil
	}
	if err := v.store.Set(clipsKey, remaining); err != nil {
		return nil, fmt.Errorf("persist clips: %w", err)
	}
	return remaining, nil
}

// Clear replaces the collection with an empty one. Idempotent.
func (v *Vault) Clear() error {
	if err := v.store.Set(clipsKey, []Clip{}); err != nil {
		return fmt.Errorf("persist clips: %w", err)
	}
	return nil
}

// SizeInBytes returns the serialized byte length of the collection. The
// value is advisory — it feeds a cosmetic usage display, nothing enforces a
// limit.
func (v *Vault) SizeInBytes() (int64, error) {
	clips, err := v.List()
	if err != nil {
		return 0, err
	}
	if clips == nil {
		clips = []Clip{}
	}
	data, err := json.Marshal(clips)
	if err != nil {
		return 0, fmt.Errorf("encode clips: %w", err)
	}
	return int64(len(data)), nil
}
