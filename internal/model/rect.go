package model

// Minimum dimensions a note window may take after any interactive
// transform. Resizes that would go below these are rejected outright.
const (
	MinNoteWidth  = 200
	MinNoteHeight = 150
)

// Point is a position in integer screen coordinates.
type Point struct {
	X int
	Y int
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle in integer screen coordinates.
// X and Y locate the top-left corner.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Origin returns the top-left corner of r.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Right returns the x coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Overlaps reports whether r and other share interior area. Rectangles
// that only touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Contains reports whether the point (x, y) falls inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Translate returns a copy of r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// MoveTo returns a copy of r with its origin at p. Size is unchanged.
func (r Rect) MoveTo(p Point) Rect {
	r.X = p.X
	r.Y = p.Y
	return r
}

// FloorSize returns a copy of r with width and height raised to at least
// the given minimums. Stored geometry passes through this before a note
// window is realized.
func (r Rect) FloorSize(minWidth, minHeight int) Rect {
	if r.Width < minWidth {
		r.Width = minWidth
	}
	if r.Height < minHeight {
		r.Height = minHeight
	}
	return r
}
