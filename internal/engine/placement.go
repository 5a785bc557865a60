package engine

import "github.com/mvandyk/stickypad/internal/model"

// placementGap is the horizontal breathing room added to the shift
// distance when moving a new note clear of an existing one.
const placementGap = 20

// Place chooses where a newly created note goes so it avoids covering
// existing notes. Obstacles are scanned in creation order and only the
// first overlap is resolved: the candidate shifts right by width+gap, is
// re-tested against every obstacle, and on a second collision shifts to
// the mirror position left of the original instead. No further attempts
// are made.
//
// Best effort only: the result may still overlap an obstacle later in the
// scan order, and nothing clamps it to the visible screen.
func Place(rect model.Rect, existing []model.Rect) model.Rect {
	if len(existing) == 0 {
		return rect
	}

	offset := rect.Width + placementGap
	for _, other := range existing {
		if !rect.Overlaps(other) {
			continue
		}
		candidate := rect.Translate(offset, 0)
		if overlapsAny(candidate, existing) {
			candidate = candidate.Translate(-offset*2, 0)
		}
		return candidate
	}
	return rect
}

// overlapsAny reports whether r overlaps any rectangle in rects.
func overlapsAny(r model.Rect, rects []model.Rect) bool {
	for _, other := range rects {
		if r.Overlaps(other) {
			return true
		}
	}
	return false
}
