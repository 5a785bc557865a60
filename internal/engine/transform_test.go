package engine

import (
	"testing"

	"github.com/mvandyk/stickypad/internal/model"
	"github.com/stretchr/testify/assert"
)

func testRect() model.Rect {
	return model.Rect{X: 400, Y: 300, Width: 300, Height: 250}
}

func TestResize_Right(t *testing.T) {
	r := testRect()
	// Pointer at x=780 puts the right edge 380 past the origin.
	out := Resize(r, model.Point{X: 780, Y: 400}, ZoneRight, model.MinNoteWidth, model.MinNoteHeight)

	assert.Equal(t, model.Rect{X: 400, Y: 300, Width: 380, Height: 250}, out)
}

func TestResize_Left(t *testing.T) {
	r := testRect()
	out := Resize(r, model.Point{X: 350, Y: 400}, ZoneLeft, model.MinNoteWidth, model.MinNoteHeight)

	assert.Equal(t, model.Rect{X: 350, Y: 300, Width: 350, Height: 250}, out)
	assert.Equal(t, r.Right(), out.Right(), "right edge must stay anchored")
}

func TestResize_Top(t *testing.T) {
	r := testRect()
	out := Resize(r, model.Point{X: 500, Y: 260}, ZoneTop, model.MinNoteWidth, model.MinNoteHeight)

	assert.Equal(t, model.Rect{X: 400, Y: 260, Width: 300, Height: 290}, out)
	assert.Equal(t, r.Bottom(), out.Bottom(), "bottom edge must stay anchored")
}

func TestResize_Bottom(t *testing.T) {
	r := testRect()
	out := Resize(r, model.Point{X: 500, Y: 620}, ZoneBottom, model.MinNoteWidth, model.MinNoteHeight)

	assert.Equal(t, model.Rect{X: 400, Y: 300, Width: 300, Height: 320}, out)
}

func TestResize_BelowMinimumRejectsUnchanged(t *testing.T) {
	// Driving any edge past the minimum must return the rectangle
	// byte-identical, not clamped to the minimum.
	r := testRect()
	cases := []struct {
		name    string
		zone    Zone
		pointer model.Point
	}{
		{"left", ZoneLeft, model.Point{X: 650, Y: 400}},
		{"right", ZoneRight, model.Point{X: 450, Y: 400}},
		{"top", ZoneTop, model.Point{X: 500, Y: 520}},
		{"bottom", ZoneBottom, model.Point{X: 500, Y: 350}},
		{"topleft", ZoneTopLeft, model.Point{X: 650, Y: 520}},
		{"topright", ZoneTopRight, model.Point{X: 450, Y: 520}},
		{"bottomleft", ZoneBottomLeft, model.Point{X: 650, Y: 350}},
		{"bottomright", ZoneBottomRight, model.Point{X: 450, Y: 350}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := Resize(r, tc.pointer, tc.zone, model.MinNoteWidth, model.MinNoteHeight)
			assert.Equal(t, r, out)
		})
	}
}

func TestResize_CornerAppliesAxesIndependently(t *testing.T) {
	// Dragging the bottomright corner left past the minimum width while
	// pulling down: the width change is rejected but the height change
	// still applies.
	r := testRect()
	out := Resize(r, model.Point{X: 450, Y: 620}, ZoneBottomRight, model.MinNoteWidth, model.MinNoteHeight)

	assert.Equal(t, r.Width, out.Width, "width below minimum must be rejected")
	assert.Equal(t, 320, out.Height, "height must still apply")

	// Mirror case on the topleft corner: height rejected, width applied.
	out = Resize(r, model.Point{X: 350, Y: 520}, ZoneTopLeft, model.MinNoteWidth, model.MinNoteHeight)

	assert.Equal(t, 350, out.Width)
	assert.Equal(t, 350, out.X)
	assert.Equal(t, r.Y, out.Y)
	assert.Equal(t, r.Height, out.Height)
}

func TestResize_AnchorInvariantAcrossSequence(t *testing.T) {
	// A left resize over many move events must keep the right edge
	// pixel-identical the whole way; a right resize must never move the
	// origin.
	r := testRect()
	right := r.Right()
	for _, px := range []int{390, 370, 350, 380, 410, 360} {
		r = Resize(r, model.Point{X: px, Y: 400}, ZoneLeft, model.MinNoteWidth, model.MinNoteHeight)
		assert.Equal(t, right, r.Right())
	}

	r = testRect()
	for _, px := range []int{700, 750, 720, 800} {
		r = Resize(r, model.Point{X: px, Y: 400}, ZoneRight, model.MinNoteWidth, model.MinNoteHeight)
		assert.Equal(t, 400, r.X)
		assert.Equal(t, 300, r.Y)
	}
}

func TestDragOrigin(t *testing.T) {
	// Press at (500,500) on a window at (480,480): offset (20,20). Moving
	// the pointer to (600,600) puts the origin at (580,580).
	offset := model.Point{X: 500, Y: 500}.Sub(model.Point{X: 480, Y: 480})
	assert.Equal(t, model.Point{X: 20, Y: 20}, offset)

	origin := DragOrigin(offset, model.Point{X: 600, Y: 600})
	assert.Equal(t, model.Point{X: 580, Y: 580}, origin)
}
