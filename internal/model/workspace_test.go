package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspace_AddRemove(t *testing.T) {
	w := NewWorkspace()
	a := NewNote(DefaultNoteRect())
	b := NewNote(DefaultNoteRect().Translate(300, 0))

	w.Add(a)
	w.Add(b)
	require.Equal(t, 2, w.Len())

	w.Remove(a.ID)

	assert.Equal(t, 1, w.Len())
	assert.True(t, a.Deleted, "removed note is marked deleted")
	assert.Equal(t, []*Note{b}, w.Notes())

	w.Remove("no-such-id")
	assert.Equal(t, 1, w.Len())
}

func TestWorkspace_RectsPreserveCreationOrder(t *testing.T) {
	w := NewWorkspace()
	first := Rect{X: 0, Y: 0, Width: 200, Height: 150}
	second := Rect{X: 300, Y: 0, Width: 200, Height: 150}

	w.Add(NewNote(first))
	w.Add(NewNote(second))

	assert.Equal(t, []Rect{first, second}, w.Rects())
}

func TestWorkspace_SnapshotsSkipDeleted(t *testing.T) {
	w := NewWorkspace()
	keep := NewNote(DefaultNoteRect())
	keep.Text = "keep me"
	drop := NewNote(DefaultNoteRect().Translate(300, 0))

	w.Add(keep)
	w.Add(drop)
	w.Remove(drop.ID)

	snaps := w.Snapshots()

	require.Len(t, snaps, 1)
	assert.Equal(t, "keep me", snaps[0].Text)
}

func TestWorkspace_SnapshotsCapDropsOldestFirst(t *testing.T) {
	w := NewWorkspace()
	for i := 0; i < MaxSavedNotes+10; i++ {
		n := NewNote(DefaultNoteRect())
		n.Text = fmt.Sprintf("note %d", i)
		w.Add(n)
	}

	snaps := w.Snapshots()

	require.Len(t, snaps, MaxSavedNotes)
	assert.Equal(t, "note 10", snaps[0].Text, "the 10 oldest notes are dropped")
	assert.Equal(t, fmt.Sprintf("note %d", MaxSavedNotes+9), snaps[len(snaps)-1].Text)
}

func TestWorkspace_SurplusReturnsOldestLive(t *testing.T) {
	w := NewWorkspace()
	var notes []*Note
	for i := 0; i < 5; i++ {
		n := NewNote(DefaultNoteRect())
		n.Text = fmt.Sprintf("note %d", i)
		w.Add(n)
		notes = append(notes, n)
	}
	w.Remove(notes[0].ID)

	// 4 live notes against a cap of 2: the two oldest live ones go.
	surplus := w.Surplus(2)

	require.Len(t, surplus, 2)
	assert.Equal(t, []*Note{notes[1], notes[2]}, surplus)

	assert.Nil(t, w.Surplus(10), "under the cap nothing is surplus")
}

func TestWorkspace_Prune(t *testing.T) {
	w := NewWorkspace()
	stale := NewNote(DefaultNoteRect())
	other := NewNote(DefaultNoteRect().Translate(300, 0))
	keep := NewNote(DefaultNoteRect().Translate(600, 0))
	w.Add(stale)
	w.Add(other)
	w.Add(keep)
	w.Remove(stale.ID)
	w.Remove(other.ID)

	assert.Equal(t, 2, w.Prune())
	assert.Equal(t, 1, w.Len())
	assert.Equal(t, []*Note{keep}, w.Notes())

	// Nothing left to drop on the second pass.
	assert.Equal(t, 0, w.Prune())
}
