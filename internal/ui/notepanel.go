package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/mvandyk/stickypad/internal/engine"
	"github.com/mvandyk/stickypad/internal/model"
)

const panelHeaderHeight = 26

// noteColorFallback is the classic sticky-note yellow, used when the
// configured color string does not parse.
var noteColorFallback = color.NRGBA{R: 255, G: 255, B: 224, A: 255}

// NotePanel is one sticky note on the board: a colored panel with a header
// bar, a text editor and a resize frame driven by the gesture engine. The
// frame and the empty header area belong to the panel, so presses there
// start a resize or a drag; presses on the editor edit text as usual.
type NotePanel struct {
	widget.BaseWidget

	note        *model.Note
	interaction *engine.Interaction
	cursor      desktop.Cursor
	bgColor     color.NRGBA

	entry *widget.Entry
	pin   *widget.Check

	// Callbacks wired by the owning App.
	OnChanged func()            // text or geometry edited
	OnClosed  func(*NotePanel)  // close button pressed
	OnNewNote func()            // new-note button pressed
	OnShare   func(text string) // share button pressed
	OnRaised  func(*NotePanel)  // panel pressed, wants the front
}

// NewNotePanel builds a panel for the note with the given body color.
func NewNotePanel(note *model.Note, bg color.NRGBA) *NotePanel {
	p := &NotePanel{
		note:        note,
		interaction: engine.NewInteraction(),
		cursor:      desktop.DefaultCursor,
		bgColor:     bg,
	}

	p.entry = widget.NewMultiLineEntry()
	p.entry.Wrapping = fyne.TextWrapWord
	p.entry.SetText(note.Text)
	p.entry.OnChanged = func(s string) {
		p.note.Text = s
		p.notifyChanged()
	}

	p.pin = widget.NewCheck("Pin", func(checked bool) {
		p.note.Pinned = checked
		if checked && p.OnRaised != nil {
			p.OnRaised(p)
		}
		p.notifyChanged()
	})
	p.pin.Checked = note.Pinned

	p.ExtendBaseWidget(p)
	return p
}

// Note returns the model behind this panel.
func (p *NotePanel) Note() *model.Note {
	return p.note
}

// ApplyGeometry moves and sizes the panel to the note's stored rectangle.
func (p *NotePanel) ApplyGeometry() {
	r := p.note.Rect
	p.Move(fyne.NewPos(float32(r.X), float32(r.Y)))
	p.Resize(fyne.NewSize(float32(r.Width), float32(r.Height)))
}

// SetColor recolors the panel body, for live appearance changes.
func (p *NotePanel) SetColor(bg color.NRGBA) {
	p.bgColor = bg
	p.Refresh()
}

// MouseDown starts a drag or resize gesture. Presses on the editor or the
// header buttons never arrive here; the frame and header background do.
func (p *NotePanel) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	p.interaction.Press(localPoint(ev.Position), p.boardPoint(ev.Position), p.note.Rect)
	if p.OnRaised != nil {
		p.OnRaised(p)
	}
}

// MouseUp ends a press that never produced drag events.
func (p *NotePanel) MouseUp(*desktop.MouseEvent) {
	p.finishGesture()
}

// Dragged advances the active gesture from the live pointer position.
func (p *NotePanel) Dragged(ev *fyne.DragEvent) {
	if p.interaction.Mode() == engine.ModeIdle {
		return
	}
	p.applyMove(localPoint(ev.Position), p.boardPoint(ev.Position))
}

// DragEnd releases the gesture.
func (p *NotePanel) DragEnd() {
	p.finishGesture()
}

// MouseMoved keeps the hover cursor current between gestures.
func (p *NotePanel) MouseMoved(ev *desktop.MouseEvent) {
	p.applyMove(localPoint(ev.Position), p.boardPoint(ev.Position))
}

// MouseIn picks the cursor for the entry point.
func (p *NotePanel) MouseIn(ev *desktop.MouseEvent) {
	p.applyMove(localPoint(ev.Position), p.boardPoint(ev.Position))
}

// MouseOut restores the arrow unless a gesture still owns the pointer.
func (p *NotePanel) MouseOut() {
	if p.interaction.Mode() == engine.ModeIdle {
		p.cursor = desktop.DefaultCursor
	}
}

// Cursor implements desktop.Cursorable with the shape for the last hover.
func (p *NotePanel) Cursor() desktop.Cursor {
	return p.cursor
}

func (p *NotePanel) applyMove(local, global model.Point) {
	rect, cursor := p.interaction.Move(local, global, p.note.Rect)
	p.cursor = mapCursor(cursor)
	if rect != p.note.Rect {
		p.note.Rect = rect
		p.ApplyGeometry()
	}
}

func (p *NotePanel) finishGesture() {
	if p.interaction.Mode() == engine.ModeIdle {
		return
	}
	p.interaction.Release()
	p.notifyChanged()
}

func (p *NotePanel) notifyChanged() {
	if p.OnChanged != nil {
		p.OnChanged()
	}
}

// boardPoint converts a panel-local event position to board coordinates.
func (p *NotePanel) boardPoint(pos fyne.Position) model.Point {
	origin := p.Position()
	return model.Point{X: int(pos.X + origin.X), Y: int(pos.Y + origin.Y)}
}

func localPoint(pos fyne.Position) model.Point {
	return model.Point{X: int(pos.X), Y: int(pos.Y)}
}

// mapCursor picks the closest shape Fyne offers. There are no diagonal
// resize cursors, so corners fall back to the crosshair.
func mapCursor(c engine.Cursor) desktop.Cursor {
	switch c {
	case engine.CursorResizeH:
		return desktop.HResizeCursor
	case engine.CursorResizeV:
		return desktop.VResizeCursor
	case engine.CursorResizeDiag, engine.CursorResizeAntiDiag:
		return desktop.CrosshairCursor
	default:
		return desktop.DefaultCursor
	}
}

func (p *NotePanel) CreateRenderer() fyne.WidgetRenderer {
	share := newIconButtonWithTooltip(theme.MailForwardIcon(), "Share as QR code", func() {
		if p.OnShare != nil {
			p.OnShare(p.note.Text)
		}
	})
	add := newIconButtonWithTooltip(theme.ContentAddIcon(), "New note", func() {
		if p.OnNewNote != nil {
			p.OnNewNote()
		}
	})
	closeBtn := newIconButtonWithTooltip(theme.WindowCloseIcon(), "Close note", func() {
		if p.OnClosed != nil {
			p.OnClosed(p)
		}
	})

	r := &notePanelRenderer{
		panel:  p,
		bg:     canvas.NewRectangle(p.bgColor),
		frame:  canvas.NewRectangle(color.Transparent),
		header: container.NewHBox(p.pin, layout.NewSpacer(), share, add, closeBtn),
	}
	r.frame.StrokeColor = color.NRGBA{R: 120, G: 110, B: 60, A: 255}
	r.frame.StrokeWidth = 1
	r.objects = []fyne.CanvasObject{r.bg, r.header, p.entry, r.frame}
	return r
}

type notePanelRenderer struct {
	panel   *NotePanel
	bg      *canvas.Rectangle
	frame   *canvas.Rectangle
	header  *fyne.Container
	objects []fyne.CanvasObject
}

func (r *notePanelRenderer) Layout(size fyne.Size) {
	margin := float32(r.panel.interaction.Margin)

	r.bg.Move(fyne.NewPos(0, 0))
	r.bg.Resize(size)
	r.frame.Move(fyne.NewPos(0, 0))
	r.frame.Resize(size)

	r.header.Move(fyne.NewPos(margin, margin))
	r.header.Resize(fyne.NewSize(size.Width-2*margin, panelHeaderHeight))

	r.panel.entry.Move(fyne.NewPos(margin, margin+panelHeaderHeight))
	r.panel.entry.Resize(fyne.NewSize(
		size.Width-2*margin,
		size.Height-2*margin-panelHeaderHeight,
	))
}

func (r *notePanelRenderer) MinSize() fyne.Size {
	return fyne.NewSize(
		float32(r.panel.interaction.MinWidth),
		float32(r.panel.interaction.MinHeight),
	)
}

func (r *notePanelRenderer) Refresh() {
	r.bg.FillColor = r.panel.bgColor
	r.bg.Refresh()
	r.panel.entry.Refresh()
	r.header.Refresh()
}

func (r *notePanelRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *notePanelRenderer) Destroy() {}
