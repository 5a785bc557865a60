package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"fyne.io/fyne/v2"
)

const trayIconSize = 16

// trayPalette is the body and glyph color pair for one tray icon theme.
type trayPalette struct {
	body  color.NRGBA
	glyph color.NRGBA
}

var trayPalettes = map[string]trayPalette{
	"yellow": {
		body:  color.NRGBA{R: 255, G: 235, B: 120, A: 255},
		glyph: color.NRGBA{R: 70, G: 56, B: 10, A: 255},
	},
	"dark": {
		body:  color.NRGBA{R: 58, G: 58, B: 58, A: 255},
		glyph: color.NRGBA{R: 235, G: 220, B: 130, A: 255},
	},
	"light": {
		body:  color.NRGBA{R: 245, G: 245, B: 245, A: 255},
		glyph: color.NRGBA{R: 45, G: 45, B: 45, A: 255},
	},
}

// sGlyph is the 16x16 letter mark, one string per pixel row.
var sGlyph = [trayIconSize]string{
	"................",
	"................",
	"................",
	".....######.....",
	"....##....##....",
	"....##..........",
	"....##..........",
	".....####.......",
	".......####.....",
	"..........##....",
	"..........##....",
	"....##....##....",
	".....######.....",
	"................",
	"................",
	"................",
}

// TrayIcon renders the tray icon for the given theme name at runtime, so
// the binary ships without bundled image assets. Unknown theme names fall
// back to the yellow icon.
func TrayIcon(themeName string) fyne.Resource {
	palette, ok := trayPalettes[themeName]
	if !ok {
		palette = trayPalettes["yellow"]
	}

	img := image.NewNRGBA(image.Rect(0, 0, trayIconSize, trayIconSize))
	for y := 0; y < trayIconSize; y++ {
		for x := 0; x < trayIconSize; x++ {
			if cornerClipped(x, y) {
				continue
			}
			img.SetNRGBA(x, y, palette.body)
		}
	}
	for y, row := range sGlyph {
		for x, ch := range row {
			if ch == '#' {
				img.SetNRGBA(x, y, palette.glyph)
			}
		}
	}

	var buf bytes.Buffer
	// Encoding a valid in-memory image cannot fail.
	_ = png.Encode(&buf, img)
	return fyne.NewStaticResource("stickypad-"+themeName+".png", buf.Bytes())
}

// cornerClipped rounds the icon body by skipping the outermost corner
// pixels.
func cornerClipped(x, y int) bool {
	max := trayIconSize - 1
	dx := x
	if max-x < dx {
		dx = max - x
	}
	dy := y
	if max-y < dy {
		dy = max - y
	}
	return dx+dy < 2
}
