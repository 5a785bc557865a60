package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNote(t *testing.T) {
	n := NewNote(DefaultNoteRect())

	assert.Len(t, n.ID, 8, "short uuid id")
	assert.Equal(t, DefaultNoteRect(), n.Rect)
	assert.False(t, n.Pinned)
	assert.False(t, n.Deleted)

	other := NewNote(DefaultNoteRect())
	assert.NotEqual(t, n.ID, other.ID)
}

func TestNote_Snapshot(t *testing.T) {
	n := NewNote(Rect{X: 10, Y: 20, Width: 300, Height: 200})
	n.Text = "shopping list"
	n.Pinned = true

	snap := n.Snapshot()

	assert.Equal(t, n.Rect, snap.Geometry)
	assert.Equal(t, "shopping list", snap.Text)
	assert.True(t, snap.Pinned)
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "exact", TruncateText("exact", 5))

	long := strings.Repeat("x", MaxNoteTextLen+5)
	got := TruncateText(long, MaxNoteTextLen)
	assert.Len(t, []rune(got), MaxNoteTextLen+3)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestTruncateText_CountsRunesNotBytes(t *testing.T) {
	// Multibyte text must not be cut mid-rune.
	s := strings.Repeat("ü", 12)
	got := TruncateText(s, 10)
	assert.Equal(t, strings.Repeat("ü", 10)+"...", got)
}

func TestNote_SnapshotTruncatesLongText(t *testing.T) {
	n := NewNote(DefaultNoteRect())
	n.Text = strings.Repeat("a", MaxNoteTextLen*2)

	snap := n.Snapshot()

	assert.Len(t, []rune(snap.Text), MaxNoteTextLen+3)
	assert.True(t, strings.HasSuffix(snap.Text, "..."))
}
