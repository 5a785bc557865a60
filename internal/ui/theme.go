// Package ui provides the StickyPad desktop UI: the corkboard window, the
// note panels on it and the system tray integration.
//
// This file defines a custom Fyne theme that applies the configured note
// appearance on top of the stock theme.

package ui

import (
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/mvandyk/stickypad/internal/model"
)

// StickyTheme wraps the default Fyne theme with the note text settings
// applied and compact paddings so small notes stay usable.
type StickyTheme struct {
	base       fyne.Theme
	textSize   float32
	foreground color.Color
	monospace  bool
}

// NewStickyTheme builds a theme from the stored appearance settings.
func NewStickyTheme(settings model.Settings) *StickyTheme {
	size := float32(settings.NoteTextSize)
	if size <= 0 {
		size = 12
	}
	return &StickyTheme{
		base:       theme.DefaultTheme(),
		textSize:   size,
		foreground: ParseHexColor(settings.NoteTextColor, color.NRGBA{A: 255}),
		monospace:  strings.EqualFold(settings.NoteFontFamily, "monospace"),
	}
}

// Color applies the configured text color and keeps entry backgrounds
// transparent so the note color shows through the editor.
func (t *StickyTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameForeground:
		return t.foreground
	case theme.ColorNameInputBackground:
		return color.Transparent
	default:
		return t.base.Color(name, variant)
	}
}

// Font serves the monospace face when the settings ask for one.
func (t *StickyTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.monospace {
		style.Monospace = true
	}
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *StickyTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size applies the configured note text size and compact paddings.
func (t *StickyTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return t.textSize
	case theme.SizeNameCaptionText:
		return t.textSize - 3
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}

// ParseHexColor parses a #RRGGBB string, falling back when malformed.
func ParseHexColor(s string, fallback color.NRGBA) color.NRGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return color.NRGBA{
		R: uint8(v >> 16 & 0xFF),
		G: uint8(v >> 8 & 0xFF),
		B: uint8(v & 0xFF),
		A: 255,
	}
}
