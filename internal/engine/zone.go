package engine

// EdgeMargin is the thickness in pixels of the resize-sensitive border
// around a note window.
const EdgeMargin = 8

// Zone classifies a pointer position relative to a window's border.
type Zone int

const (
	ZoneInterior Zone = iota
	ZoneLeft
	ZoneRight
	ZoneTop
	ZoneBottom
	ZoneTopLeft
	ZoneTopRight
	ZoneBottomLeft
	ZoneBottomRight
)

// String returns a short name for the zone.
func (z Zone) String() string {
	switch z {
	case ZoneInterior:
		return "interior"
	case ZoneLeft:
		return "left"
	case ZoneRight:
		return "right"
	case ZoneTop:
		return "top"
	case ZoneBottom:
		return "bottom"
	case ZoneTopLeft:
		return "topleft"
	case ZoneTopRight:
		return "topright"
	case ZoneBottomLeft:
		return "bottomleft"
	case ZoneBottomRight:
		return "bottomright"
	default:
		return "unknown"
	}
}

// IsBorder reports whether z is one of the eight resize zones.
func (z Zone) IsBorder() bool {
	return z != ZoneInterior
}

// Locate classifies a window-local position into one of nine zones.
// Corners are checked first: the margin-square at each corner never
// classifies as a plain edge. Every position maps to exactly one zone.
func Locate(x, y, width, height, margin int) Zone {
	switch {
	case x < margin && y < margin:
		return ZoneTopLeft
	case x > width-margin && y < margin:
		return ZoneTopRight
	case x < margin && y > height-margin:
		return ZoneBottomLeft
	case x > width-margin && y > height-margin:
		return ZoneBottomRight
	case x < margin:
		return ZoneLeft
	case x > width-margin:
		return ZoneRight
	case y < margin:
		return ZoneTop
	case y > height-margin:
		return ZoneBottom
	default:
		return ZoneInterior
	}
}
