package engine

import "github.com/mvandyk/stickypad/internal/model"

// Resize computes the geometry that results from dragging the given border
// zone to the pointer's global position. The edge(s) opposite the zone stay
// anchored pixel-identical. The rectangle is recomputed in full from the
// current origin and the live pointer on every call, so repeated events
// cannot accumulate drift.
//
// Each axis is validated against its minimum independently: an axis that
// would fall below the minimum keeps its prior origin and size while the
// other axis still applies. A plain edge resize therefore either applies
// fully or leaves the rectangle untouched.
func Resize(current model.Rect, pointer model.Point, zone Zone, minWidth, minHeight int) model.Rect {
	dx := pointer.X - current.X
	dy := pointer.Y - current.Y

	out := current
	switch zone {
	case ZoneLeft:
		resizeLeft(&out, current, dx, minWidth)
	case ZoneRight:
		resizeRight(&out, dx, minWidth)
	case ZoneTop:
		resizeTop(&out, current, dy, minHeight)
	case ZoneBottom:
		resizeBottom(&out, dy, minHeight)
	case ZoneTopLeft:
		resizeLeft(&out, current, dx, minWidth)
		resizeTop(&out, current, dy, minHeight)
	case ZoneTopRight:
		resizeRight(&out, dx, minWidth)
		resizeTop(&out, current, dy, minHeight)
	case ZoneBottomLeft:
		resizeLeft(&out, current, dx, minWidth)
		resizeBottom(&out, dy, minHeight)
	case ZoneBottomRight:
		resizeRight(&out, dx, minWidth)
		resizeBottom(&out, dy, minHeight)
	}
	return out
}

// resizeLeft moves the left edge to the pointer, keeping the right edge
// fixed. Applied only when the resulting width stays at or above minWidth.
func resizeLeft(out *model.Rect, current model.Rect, dx, minWidth int) {
	width := current.Width - dx
	if width >= minWidth {
		out.X = current.X + dx
		out.Width = width
	}
}

// resizeRight moves the right edge to the pointer, keeping the left edge
// fixed. The new width is the pointer's offset from the origin.
func resizeRight(out *model.Rect, dx, minWidth int) {
	if dx >= minWidth {
		out.Width = dx
	}
}

// resizeTop mirrors resizeLeft on the y axis.
func resizeTop(out *model.Rect, current model.Rect, dy, minHeight int) {
	height := current.Height - dy
	if height >= minHeight {
		out.Y = current.Y + dy
		out.Height = height
	}
}

// resizeBottom mirrors resizeRight on the y axis.
func resizeBottom(out *model.Rect, dy, minHeight int) {
	if dy >= minHeight {
		out.Height = dy
	}
}

// DragOrigin computes the window origin for a drag gesture. The origin
// tracks the pointer at the fixed offset captured at press time, so the
// grab point stays under the pointer for the whole gesture.
func DragOrigin(pressOffset, pointer model.Point) model.Point {
	return pointer.Sub(pressOffset)
}
