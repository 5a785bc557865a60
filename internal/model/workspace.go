package model

// Workspace is the ordered collection of currently open notes. Insertion
// order is creation order, which doubles as the obstacle scan order for
// placement. Only the UI thread mutates a workspace.
type Workspace struct {
	notes []*Note
}

// NewWorkspace returns an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// Add appends a note to the workspace.
func (w *Workspace) Add(n *Note) {
	w.notes = append(w.notes, n)
}

// Remove marks the note with the given ID deleted. The entry stays in the
// list until the next Prune so an in-flight save still sees and skips it.
// Unknown IDs are ignored.
func (w *Workspace) Remove(id string) {
	for _, n := range w.notes {
		if n.ID == id {
			n.Deleted = true
			return
		}
	}
}

// Len returns the number of live notes.
func (w *Workspace) Len() int {
	count := 0
	for _, n := range w.notes {
		if !n.Deleted {
			count++
		}
	}
	return count
}

// Notes returns the live notes in creation order. The slice is a copy but
// the notes themselves are shared.
func (w *Workspace) Notes() []*Note {
	out := make([]*Note, 0, len(w.notes))
	for _, n := range w.notes {
		if n.Deleted {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Rects returns the geometry of every live note, in creation order.
func (w *Workspace) Rects() []Rect {
	out := make([]Rect, 0, len(w.notes))
	for _, n := range w.notes {
		if n.Deleted {
			continue
		}
		out = append(out, n.Rect)
	}
	return out
}

// Snapshots returns the persisted form of the live notes in creation
// order, capped at MaxSavedNotes with the oldest dropped first.
func (w *Workspace) Snapshots() []Snapshot {
	live := w.Notes()
	if len(live) > MaxSavedNotes {
		live = live[len(live)-MaxSavedNotes:]
	}
	out := make([]Snapshot, 0, len(live))
	for _, n := range live {
		out = append(out, n.Snapshot())
	}
	return out
}

// Surplus returns the oldest live notes beyond limit, in creation order.
// The periodic cleanup closes these so a long session cannot outgrow what
// one save keeps.
func (w *Workspace) Surplus(limit int) []*Note {
	live := w.Notes()
	if len(live) <= limit {
		return nil
	}
	return live[:len(live)-limit]
}

// Prune drops the entries of deleted notes and reports how many went. Runs
// periodically so long sessions do not accumulate unbounded state.
func (w *Workspace) Prune() int {
	kept := make([]*Note, 0, len(w.notes))
	for _, n := range w.notes {
		if !n.Deleted {
			kept = append(kept, n)
		}
	}
	dropped := len(w.notes) - len(kept)
	w.notes = kept
	return dropped
}
