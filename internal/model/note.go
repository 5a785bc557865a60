package model

import "github.com/google/uuid"

// Limits applied when notes are persisted.
const (
	// MaxSavedNotes caps how many notes one save keeps. Oldest notes are
	// dropped first when the workspace holds more.
	MaxSavedNotes = 50

	// MaxNoteTextLen is the longest text, in runes, a saved note keeps.
	MaxNoteTextLen = 10000

	// truncationMarker is appended to text that was cut at MaxNoteTextLen.
	truncationMarker = "..."
)

// DefaultNoteRect is the geometry a brand-new note starts from, before
// placement moves it clear of existing notes.
func DefaultNoteRect() Rect {
	return Rect{X: 120, Y: 120, Width: 240, Height: 180}
}

// Note is a single sticky note: its on-screen geometry, text content and
// flags. Transient drag/resize state lives in the engine package and is
// never persisted.
type Note struct {
	ID      string
	Rect    Rect
	Text    string
	Pinned  bool
	Deleted bool
}

// NewNote creates a note with a fresh short ID at the given geometry.
func NewNote(rect Rect) *Note {
	return &Note{
		ID:   uuid.New().String()[:8],
		Rect: rect,
	}
}

// Snapshot is the persisted form of a note.
type Snapshot struct {
	Geometry Rect   `json:"geometry"`
	Text     string `json:"text"`
	Pinned   bool   `json:"pinned"`
}

// Snapshot converts the note to its persisted form, truncating text that
// exceeds MaxNoteTextLen.
func (n *Note) Snapshot() Snapshot {
	return Snapshot{
		Geometry: n.Rect,
		Text:     TruncateText(n.Text, MaxNoteTextLen),
		Pinned:   n.Pinned,
	}
}

// TruncateText shortens s to at most limit runes, appending a trailing
// marker when anything was cut off.
func TruncateText(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + truncationMarker
}
