package ui

import (
	"bytes"
	"image/png"
	"testing"
)

func TestTrayIcon_Decodes(t *testing.T) {
	for _, name := range trayThemeNames {
		res := TrayIcon(name)
		img, err := png.Decode(bytes.NewReader(res.Content()))
		if err != nil {
			t.Fatalf("icon %q is not a valid PNG: %v", name, err)
		}
		b := img.Bounds()
		if b.Dx() != trayIconSize || b.Dy() != trayIconSize {
			t.Errorf("icon %q is %dx%d, want %dx%d", name, b.Dx(), b.Dy(), trayIconSize, trayIconSize)
		}
	}
}

func TestTrayIcon_ThemesDiffer(t *testing.T) {
	yellow := TrayIcon("yellow")
	dark := TrayIcon("dark")
	if bytes.Equal(yellow.Content(), dark.Content()) {
		t.Error("yellow and dark icons should render differently")
	}
}

func TestTrayIcon_UnknownThemeFallsBack(t *testing.T) {
	unknown := TrayIcon("plaid")
	yellow := TrayIcon("yellow")
	if !bytes.Equal(unknown.Content(), yellow.Content()) {
		t.Error("unknown theme should render the yellow icon")
	}
}

func TestSGlyphShape(t *testing.T) {
	marks := 0
	for y, row := range sGlyph {
		if len(row) != trayIconSize {
			t.Fatalf("glyph row %d has %d cells, want %d", y, len(row), trayIconSize)
		}
		for _, ch := range row {
			if ch == '#' {
				marks++
			}
		}
	}
	if marks == 0 {
		t.Fatal("glyph has no lit pixels")
	}
}
