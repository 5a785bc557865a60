package ui

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestFitsQR(t *testing.T) {
	if !fitsQR(strings.Repeat("x", maxQRRunes)) {
		t.Error("text at the limit must fit")
	}
	if fitsQR(strings.Repeat("x", maxQRRunes+1)) {
		t.Error("text past the limit must be refused")
	}
	// The limit counts runes: multibyte text at the limit still fits.
	if !fitsQR(strings.Repeat("ü", maxQRRunes)) {
		t.Error("multibyte text at the rune limit must fit")
	}
}

func TestShowQRDialog_OpensPopup(t *testing.T) {
	w := test.NewApp().NewWindow("share")
	ShowQRDialog("buy milk", w)
	if w.Canvas().Overlays().Top() == nil {
		t.Fatal("share dialog did not open")
	}
}

func TestShowQRDialog_RefusesOversizedText(t *testing.T) {
	w := test.NewApp().NewWindow("share")
	ShowQRDialog(strings.Repeat("x", maxQRRunes+1), w)
	if w.Canvas().Overlays().Top() == nil {
		t.Fatal("over-limit text should surface the error dialog")
	}
}
