package ui

import (
	"strings"
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/dialog"
	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	// maxQRRunes keeps the payload inside comfortable QR capacity.
	maxQRRunes  = 1000
	qrImageSize = 256
)

// ShowQRDialog renders the note text as a QR code in a popup so a phone
// can scan it off the screen.
func ShowQRDialog(text string, parent fyne.Window) {
	if strings.TrimSpace(text) == "" {
		dialog.ShowInformation("Share Note", "This note is empty, nothing to share.", parent)
		return
	}
	if !fitsQR(text) {
		dialog.ShowError(errors.Errorf(
			"note is too long to share as a QR code (%d characters, limit %d)",
			utf8.RuneCountInString(text), maxQRRunes,
		), parent)
		return
	}

	encoded, err := qrcode.Encode(text, qrcode.Medium, qrImageSize)
	if err != nil {
		dialog.ShowError(errors.Wrap(err, "encode QR code"), parent)
		return
	}

	img := canvas.NewImageFromResource(fyne.NewStaticResource("note-qr.png", encoded))
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(qrImageSize, qrImageSize))
	dialog.ShowCustom("Share Note", "Close", img, parent)
}

// fitsQR reports whether text fits in a single QR code. Over-limit notes
// are refused rather than truncated, so a scanned payload never silently
// loses text.
func fitsQR(text string) bool {
	return utf8.RuneCountInString(text) <= maxQRRunes
}
