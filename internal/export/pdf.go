// Package export writes the current note set to shareable file formats.
package export

import (
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"github.com/mvandyk/stickypad/internal/model"
)

// rgb is a color parsed from the #RRGGBB settings form.
type rgb struct {
	R, G, B int
}

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0

	cardCols   = 2
	cardRows   = 3
	cardGap    = 6.0
	cardHeader = 6.0
)

// ExportPDF renders the note snapshots as cards, a fixed grid per page,
// followed by a summary page. Cards use the configured note colors so the
// printout resembles the desktop.
func ExportPDF(path string, snaps []model.Snapshot, settings model.Settings) error {
	if len(snaps) == 0 {
		return errors.New("no notes to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	perPage := cardCols * cardRows
	for i, snap := range snaps {
		if i%perPage == 0 {
			pdf.AddPage()
			renderPageHeader(pdf, i/perPage+1, (len(snaps)+perPage-1)/perPage)
		}
		renderNoteCard(pdf, snap, i%perPage, i+1, settings)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, snaps, settings)

	return errors.Wrap(pdf.OutputFileAndClose(path), "write pdf")
}

// renderPageHeader draws the title line at the top of a card page.
func renderPageHeader(pdf *fpdf.Fpdf, page, pages int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	title := "StickyPad Notes"
	if pages > 1 {
		title += " (" + strconv.Itoa(page) + "/" + strconv.Itoa(pages) + ")"
	}
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")
}

// renderNoteCard draws one note as a filled card at its grid slot.
func renderNoteCard(pdf *fpdf.Fpdf, snap model.Snapshot, slot, number int, settings model.Settings) {
	areaTop := marginTop + headerHeight + 4
	cardW := (pageWidth - marginLeft - marginRight - cardGap*(cardCols-1)) / cardCols
	cardH := (pageHeight - areaTop - marginBottom - cardGap*(cardRows-1)) / cardRows

	col := slot % cardCols
	row := slot / cardCols
	x := marginLeft + float64(col)*(cardW+cardGap)
	y := areaTop + float64(row)*(cardH+cardGap)

	fill := parseHexColor(settings.NoteColor, rgb{R: 255, G: 255, B: 224})
	text := parseHexColor(settings.NoteTextColor, rgb{})

	pdf.SetFillColor(fill.R, fill.G, fill.B)
	pdf.SetDrawColor(120, 120, 120)
	pdf.SetLineWidth(0.3)
	pdf.Rect(x, y, cardW, cardH, "FD")

	// Card header: note number, pin marker, stored geometry.
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(60, 60, 60)
	pdf.SetXY(x+2, y+1)
	header := "Note " + strconv.Itoa(number)
	if snap.Pinned {
		header += "  [pinned]"
	}
	pdf.CellFormat(cardW-4, cardHeader, header, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	geo := strconv.Itoa(snap.Geometry.Width) + "x" + strconv.Itoa(snap.Geometry.Height) +
		" @ " + strconv.Itoa(snap.Geometry.X) + "," + strconv.Itoa(snap.Geometry.Y)
	geoW := pdf.GetStringWidth(geo)
	pdf.SetXY(x+cardW-geoW-2, y+1)
	pdf.CellFormat(geoW, cardHeader, geo, "", 0, "R", false, 0, "")

	// Body text, clipped to the card.
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(text.R, text.G, text.B)

	lineH := 4.0
	maxLines := int((cardH - cardHeader - 4) / lineH)
	lines := pdf.SplitText(snap.Text, cardW-4)
	if len(lines) > maxLines && maxLines > 0 {
		lines = append(lines[:maxLines-1], "...")
	}
	ty := y + cardHeader + 2
	for _, line := range lines {
		pdf.SetXY(x+2, ty)
		pdf.CellFormat(cardW-4, lineH, line, "", 0, "L", false, 0, "")
		ty += lineH
	}
}

// renderSummaryPage draws the closing page with workspace statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, snaps []model.Snapshot, settings model.Settings) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Workspace Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	pinned := 0
	bounds := snaps[0].Geometry
	for _, s := range snaps {
		if s.Pinned {
			pinned++
		}
		bounds = union(bounds, s.Geometry)
	}

	items := []struct {
		label string
		value string
	}{
		{"Notes", strconv.Itoa(len(snaps))},
		{"Pinned", strconv.Itoa(pinned)},
		{"Workspace area", strconv.Itoa(bounds.Width) + " x " + strconv.Itoa(bounds.Height)},
		{"Note color", settings.NoteColor},
		{"Text size", strconv.Itoa(settings.NoteTextSize)},
	}

	y := marginTop + 18
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by StickyPad", "", 0, "C", false, 0, "")
}

// union returns the smallest rectangle covering both a and b.
func union(a, b model.Rect) model.Rect {
	x := a.X
	if b.X < x {
		x = b.X
	}
	y := a.Y
	if b.Y < y {
		y = b.Y
	}
	right := a.Right()
	if b.Right() > right {
		right = b.Right()
	}
	bottom := a.Bottom()
	if b.Bottom() > bottom {
		bottom = b.Bottom()
	}
	return model.Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// parseHexColor parses a #RRGGBB string, falling back when malformed.
func parseHexColor(s string, fallback rgb) rgb {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return rgb{
		R: int(v >> 16 & 0xFF),
		G: int(v >> 8 & 0xFF),
		B: int(v & 0xFF),
	}
}
