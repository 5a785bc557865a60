package engine

import "github.com/mvandyk/stickypad/internal/model"

// Mode is the gesture state of a note window.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeResizing
)

// Cursor is the toolkit-neutral pointer shape the controller asks the UI
// to show. The UI layer maps it onto whatever cursors the toolkit offers.
type Cursor int

const (
	CursorArrow Cursor = iota
	CursorResizeH
	CursorResizeV
	// CursorResizeDiag is the topleft/bottomright axis,
	// CursorResizeAntiDiag the topright/bottomleft axis.
	CursorResizeDiag
	CursorResizeAntiDiag
)

// CursorFor maps a border zone to the resize cursor shown over it.
func CursorFor(zone Zone) Cursor {
	switch zone {
	case ZoneLeft, ZoneRight:
		return CursorResizeH
	case ZoneTop, ZoneBottom:
		return CursorResizeV
	case ZoneTopLeft, ZoneBottomRight:
		return CursorResizeDiag
	case ZoneTopRight, ZoneBottomLeft:
		return CursorResizeAntiDiag
	default:
		return CursorArrow
	}
}

// Interaction is the per-note state machine that turns raw pointer events
// into drag and resize transforms: idle -> dragging or resizing on press,
// back to idle on release. It owns the transient gesture state (mode,
// resize zone, press offset) so the note model stays persistence-clean.
type Interaction struct {
	MinWidth  int
	MinHeight int
	Margin    int

	mode        Mode
	zone        Zone
	pressOffset model.Point
}

// NewInteraction returns a controller with the standard note minimums and
// edge margin.
func NewInteraction() *Interaction {
	return &Interaction{
		MinWidth:  model.MinNoteWidth,
		MinHeight: model.MinNoteHeight,
		Margin:    EdgeMargin,
	}
}

// Mode returns the current gesture state.
func (it *Interaction) Mode() Mode {
	return it.mode
}

// Dragging reports whether a move gesture is in progress.
func (it *Interaction) Dragging() bool {
	return it.mode == ModeDragging
}

// Press starts a gesture. local is the pointer position inside the window,
// global the same position in screen coordinates and rect the window's
// current geometry. A press on the border starts a resize in that zone;
// anywhere else starts a drag.
func (it *Interaction) Press(local, global model.Point, rect model.Rect) {
	it.pressOffset = global.Sub(rect.Origin())
	it.zone = Locate(local.X, local.Y, rect.Width, rect.Height, it.Margin)
	if it.zone.IsBorder() {
		it.mode = ModeResizing
	} else {
		it.mode = ModeDragging
	}
}

// Move advances the gesture and returns the geometry the window should
// take together with the cursor to show. The cursor always reflects the
// zone under the pointer, held button or not. Outside a gesture the
// geometry comes back unchanged.
func (it *Interaction) Move(local, global model.Point, rect model.Rect) (model.Rect, Cursor) {
	hover := Locate(local.X, local.Y, rect.Width, rect.Height, it.Margin)
	cursor := CursorFor(hover)

	switch it.mode {
	case ModeResizing:
		rect = Resize(rect, global, it.zone, it.MinWidth, it.MinHeight)
	case ModeDragging:
		rect = rect.MoveTo(DragOrigin(it.pressOffset, global))
	}
	return rect, cursor
}

// Release ends the gesture and clears all transient state.
func (it *Interaction) Release() {
	it.mode = ModeIdle
	it.zone = ZoneInterior
	it.pressOffset = model.Point{}
}
