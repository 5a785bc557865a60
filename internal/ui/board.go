package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/mvandyk/stickypad/internal/model"
)

// Board is the surface the note panels sit on. Panels position themselves
// from their note geometry, so the board is a layout-free container whose
// child order is the z-order: later panels draw on top, and pinned panels
// always stay above unpinned ones.
type Board struct {
	content *fyne.Container
	panels  []*NotePanel
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{content: container.NewWithoutLayout()}
}

// Canvas returns the object to install as the window content.
func (b *Board) Canvas() fyne.CanvasObject {
	return b.content
}

// Add puts a panel on the board at its note's geometry.
func (b *Board) Add(p *NotePanel) {
	b.panels = append(b.panels, p)
	b.content.Add(p)
	p.ApplyGeometry()
	b.restack()
}

// Remove takes a panel off the board.
func (b *Board) Remove(p *NotePanel) {
	for i, other := range b.panels {
		if other == p {
			b.panels = append(b.panels[:i], b.panels[i+1:]...)
			break
		}
	}
	b.content.Remove(p)
}

// Raise brings a panel to the front of its pin class. An unpinned panel
// still renders under every pinned one.
func (b *Board) Raise(p *NotePanel) {
	for i, other := range b.panels {
		if other == p {
			b.panels = append(b.panels[:i], b.panels[i+1:]...)
			b.panels = append(b.panels, p)
			break
		}
	}
	b.restack()
}

// RaisePinned reasserts the pinned-on-top order, for Show All.
func (b *Board) RaisePinned() {
	b.restack()
}

// Panels returns the panels in z-order, bottom first.
func (b *Board) Panels() []*NotePanel {
	out := make([]*NotePanel, len(b.panels))
	copy(out, b.panels)
	return out
}

// Rects returns the geometry of every note on the board, in z-order.
func (b *Board) Rects() []model.Rect {
	out := make([]model.Rect, 0, len(b.panels))
	for _, p := range b.panels {
		out = append(out, p.Note().Rect)
	}
	return out
}

// restack rebuilds the container's draw order: unpinned panels in their
// raise order, then pinned panels in theirs.
func (b *Board) restack() {
	ordered := make([]fyne.CanvasObject, 0, len(b.panels))
	for _, p := range b.panels {
		if !p.Note().Pinned {
			ordered = append(ordered, p)
		}
	}
	for _, p := range b.panels {
		if p.Note().Pinned {
			ordered = append(ordered, p)
		}
	}
	b.content.Objects = ordered
	b.content.Refresh()
}
