package ui

import (
	"fmt"
	"os"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	"github.com/emersion/go-autostart"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mvandyk/stickypad/internal/dispatch"
	"github.com/mvandyk/stickypad/internal/engine"
	"github.com/mvandyk/stickypad/internal/export"
	"github.com/mvandyk/stickypad/internal/hotkey"
	"github.com/mvandyk/stickypad/internal/model"
	"github.com/mvandyk/stickypad/internal/secret"
	"github.com/mvandyk/stickypad/internal/store"
)

const (
	appID       = "com.mvandyk.stickypad"
	windowTitle = "StickyPad"

	// saveDebounce coalesces the edit burst of active typing into one write.
	saveDebounce = 3 * time.Second
	// cleanupInterval is how often deleted notes are pruned and flushed.
	cleanupInterval = 5 * time.Minute
)

// Config carries the wiring main resolves before the UI starts.
type Config struct {
	Logger       *zap.Logger
	Settings     model.Settings
	SettingsPath string
	NotesPath    string
	Secrets      secret.Store
}

// App holds all application state and UI references.
type App struct {
	fyneApp fyne.App
	win     fyne.Window
	logger  *zap.Logger

	settings     model.Settings
	settingsPath string
	notesPath    string

	workspace *model.Workspace
	board     *Board
	queue     *dispatch.Queue
	hotkeys   *hotkey.Manager
	secrets   secret.Store

	// password is the session encryption password, empty when notes are
	// stored in the clear.
	password string

	// loaded flips once the saved notes were restored. Nothing may write
	// the notes file before then, or an aborted unlock would empty it.
	loaded bool

	mu        sync.Mutex
	saveTimer *time.Timer

	cleanupStop chan struct{}
}

// NewApp wires the application together. Run starts it.
func NewApp(cfg Config) *App {
	a := &App{
		logger:       cfg.Logger,
		settings:     cfg.Settings,
		settingsPath: cfg.SettingsPath,
		notesPath:    cfg.NotesPath,
		workspace:    model.NewWorkspace(),
		queue:        dispatch.NewQueue(),
		secrets:      cfg.Secrets,
	}
	a.hotkeys = hotkey.NewManager(cfg.Logger, func() {
		a.queue.Enqueue(a.newNote)
	})
	return a
}

// Run builds the board window and enters the event loop. It returns when
// the user quits from the tray.
func (a *App) Run() {
	a.fyneApp = app.NewWithID(appID)
	a.fyneApp.Settings().SetTheme(NewStickyTheme(a.settings))

	a.board = NewBoard()
	a.win = a.fyneApp.NewWindow(windowTitle)
	a.win.SetContent(fynetooltip.AddWindowToolTipLayer(a.board.Canvas(), a.win.Canvas()))
	a.win.Resize(fyne.NewSize(1024, 720))
	a.win.CenterOnScreen()
	// Closing the board hides it; the app lives in the tray until Quit.
	a.win.SetCloseIntercept(a.win.Hide)

	go a.drainLoop()

	a.fyneApp.Lifecycle().SetOnStarted(func() {
		a.setupTray()
		a.applyAutostart()
		a.rebindHotkey()
		a.loadNotes()
	})

	a.win.ShowAndRun()
}

// drainLoop pumps queued background work onto the UI goroutine.
func (a *App) drainLoop() {
	for range a.queue.Ready() {
		fyne.Do(func() { a.queue.Drain() })
	}
}

// ─── Startup ───────────────────────────────────────────────

// loadNotes restores the saved notes, prompting for the password when the
// file is encrypted and the secret store cannot unlock it.
func (a *App) loadNotes() {
	if a.settings.EncryptNotes && !a.settings.PromptPasswordOnStartup {
		if pw, err := a.secrets.Get(secret.PasswordName); err == nil {
			a.password = pw
		} else {
			a.logger.Warn("stored password unavailable", zap.Error(err))
		}
	}

	snaps, err := store.LoadNotes(a.notesPath, a.password)
	switch {
	case err == nil:
		a.populate(snaps)
	case errors.Is(err, store.ErrPasswordRequired), errors.Is(err, store.ErrBadPassword):
		a.promptPassword()
	default:
		a.logger.Error("load notes", zap.Error(err))
		dialog.ShowError(errors.Wrap(err, "saved notes could not be read, starting fresh"), a.win)
		a.populate(nil)
	}
}

// promptPassword asks for the encryption password until it unlocks the
// notes file. Cancelling quits: running without the notes would overwrite
// them on the next save.
func (a *App) promptPassword() {
	entry := widget.NewPasswordEntry()
	form := dialog.NewForm("Unlock Notes", "Unlock", "Quit",
		[]*widget.FormItem{widget.NewFormItem("Password", entry)},
		func(ok bool) {
			if !ok {
				a.quit()
				return
			}
			snaps, err := store.LoadNotes(a.notesPath, entry.Text)
			if err != nil {
				a.logger.Warn("unlock failed", zap.Error(err))
				a.promptPassword()
				return
			}
			a.password = entry.Text
			a.populate(snaps)
		},
		a.win,
	)
	form.Resize(fyne.NewSize(360, 140))
	form.Show()
}

// populate realizes the saved notes as panels, or opens the first note on
// an empty board, then starts the background workers.
func (a *App) populate(snaps []model.Snapshot) {
	a.loaded = true
	if a.settings.ReopenNotesOnStartup {
		for _, snap := range snaps {
			note := model.NewNote(snap.Geometry)
			note.Text = snap.Text
			note.Pinned = snap.Pinned
			a.addPanel(note)
		}
	}
	if a.workspace.Len() == 0 {
		a.newNote()
	}
	a.startBackground()
	a.keepOnTop()
}

// startBackground launches the periodic cleanup once notes are loaded.
func (a *App) startBackground() {
	if a.cleanupStop != nil {
		return
	}
	a.cleanupStop = make(chan struct{})
	go func(stop <-chan struct{}) {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				a.queue.Enqueue(a.cleanup)
			}
		}
	}(a.cleanupStop)
}

// cleanup closes the oldest notes beyond the save cap, prunes deleted
// entries and flushes when anything went.
func (a *App) cleanup() {
	if surplus := a.workspace.Surplus(model.MaxSavedNotes); len(surplus) > 0 {
		evict := make(map[string]bool, len(surplus))
		for _, n := range surplus {
			evict[n.ID] = true
		}
		for _, p := range a.board.Panels() {
			if evict[p.Note().ID] {
				a.closePanel(p)
			}
		}
	}
	if dropped := a.workspace.Prune(); dropped > 0 {
		a.logger.Debug("pruned notes", zap.Int("dropped", dropped))
		a.saveNotesNow()
	}
}

// ─── Note actions ──────────────────────────────────────────

// newNote opens a fresh note, placed so it does not cover an existing one.
func (a *App) newNote() {
	rect := engine.Place(model.DefaultNoteRect(), a.workspace.Rects())
	a.addPanel(model.NewNote(rect))
	a.scheduleSave()
	a.win.Show()
	a.keepOnTop()
}

func (a *App) addPanel(note *model.Note) {
	a.workspace.Add(note)

	panel := NewNotePanel(note, ParseHexColor(a.settings.NoteColor, noteColorFallback))
	panel.OnChanged = a.scheduleSave
	panel.OnClosed = a.closePanel
	panel.OnNewNote = a.newNote
	panel.OnShare = func(text string) { ShowQRDialog(text, a.win) }
	panel.OnRaised = a.board.Raise
	a.board.Add(panel)
}

func (a *App) closePanel(p *NotePanel) {
	a.workspace.Remove(p.Note().ID)
	a.board.Remove(p)
	a.scheduleSave()
}

// showAll brings the board to the front with pinned notes on top. Bound to
// the tray entry.
func (a *App) showAll() {
	a.board.RaisePinned()
	a.win.Show()
	a.win.RequestFocus()
}

// keepOnTop re-raises the board when the keep-board-on-top setting is
// enabled. Fyne has no always-on-top window hint, so the board re-asserts
// itself at the moments it may have dropped behind another window.
func (a *App) keepOnTop() {
	if !a.settings.AlwaysOnTop {
		return
	}
	a.win.Show()
	a.win.RequestFocus()
}

// quit flushes everything and exits. Only the tray Quit entry ends the
// process; closing the board merely hides it.
func (a *App) quit() {
	a.mu.Lock()
	if a.saveTimer != nil {
		a.saveTimer.Stop()
		a.saveTimer = nil
	}
	a.mu.Unlock()

	if a.cleanupStop != nil {
		close(a.cleanupStop)
		a.cleanupStop = nil
	}
	a.hotkeys.Unregister()

	a.saveNotesNow()
	if err := store.SaveSettings(a.settingsPath, a.settings); err != nil {
		a.logger.Error("save settings", zap.Error(err))
	}
	a.fyneApp.Quit()
}

// ─── Persistence ───────────────────────────────────────────

// scheduleSave arms the debounced save, restarting the window on every
// further edit. Safe to call from any goroutine.
func (a *App) scheduleSave() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.saveTimer != nil {
		a.saveTimer.Reset(saveDebounce)
		return
	}
	a.saveTimer = time.AfterFunc(saveDebounce, func() {
		a.mu.Lock()
		a.saveTimer = nil
		a.mu.Unlock()
		a.queue.Enqueue(a.saveNotesNow)
	})
}

// saveNotesNow writes the current snapshots. Runs on the UI goroutine so
// the workspace is stable while it marshals.
func (a *App) saveNotesNow() {
	if !a.loaded {
		return
	}
	snaps := a.workspace.Snapshots()
	if err := store.SaveNotes(a.notesPath, snaps, a.password); err != nil {
		a.logger.Error("save notes", zap.Error(err))
		return
	}
	a.logger.Debug("notes saved",
		zap.Int("count", len(snaps)),
		zap.Bool("encrypted", a.password != ""))
}

// ─── Exports ───────────────────────────────────────────────

// exportNotes asks for a target file and writes the current notes in the
// given format ("pdf" or "xlsx").
func (a *App) exportNotes(kind string) {
	snaps := a.workspace.Snapshots()
	if len(snaps) == 0 {
		a.win.Show()
		dialog.ShowInformation("Nothing to export", "Create a note first.", a.win)
		return
	}

	a.win.Show()
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()

		if exportErr := a.writeExport(kind, path, snaps); exportErr != nil {
			a.logger.Error("export notes", zap.String("kind", kind), zap.Error(exportErr))
			dialog.ShowError(exportErr, a.win)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Notes saved to %s", path), a.win)
	}, a.win)
	d.SetFileName("stickypad-notes." + kind)
	d.Show()
}

func (a *App) writeExport(kind, path string, snaps []model.Snapshot) error {
	switch kind {
	case "xlsx":
		return export.ExportExcel(path, snaps)
	default:
		return export.ExportPDF(path, snaps, a.settings)
	}
}

// ─── Platform hooks ────────────────────────────────────────

// rebindHotkey applies the configured new-note combo, logging instead of
// failing when the combo is invalid or taken by another program.
func (a *App) rebindHotkey() {
	combo, err := hotkey.ParseCombo(a.settings.HotkeyCombo)
	if err != nil {
		a.logger.Warn("invalid hotkey combo",
			zap.String("combo", a.settings.HotkeyCombo), zap.Error(err))
		return
	}
	if err := a.hotkeys.Rebind(combo); err != nil {
		a.logger.Warn("hotkey registration failed", zap.Error(err))
	}
}

// applyAutostart syncs the login-item registration with the setting.
func (a *App) applyAutostart() {
	exe, err := os.Executable()
	if err != nil {
		a.logger.Warn("resolve executable for autostart", zap.Error(err))
		return
	}
	entry := &autostart.App{
		Name:        "stickypad",
		DisplayName: windowTitle,
		Exec:        []string{exe},
	}

	switch {
	case a.settings.LaunchOnStartup && !entry.IsEnabled():
		err = entry.Enable()
	case !a.settings.LaunchOnStartup && entry.IsEnabled():
		err = entry.Disable()
	default:
		return
	}
	if err != nil {
		a.logger.Warn("autostart update failed",
			zap.Bool("enable", a.settings.LaunchOnStartup), zap.Error(err))
	}
}

// applyAppearance pushes the current appearance settings to the theme, the
// open panels and the tray icon.
func (a *App) applyAppearance() {
	a.fyneApp.Settings().SetTheme(NewStickyTheme(a.settings))

	bg := ParseHexColor(a.settings.NoteColor, noteColorFallback)
	for _, p := range a.board.Panels() {
		p.SetColor(bg)
	}
	if desk, ok := a.fyneApp.(desktop.App); ok {
		desk.SetSystemTrayIcon(TrayIcon(a.settings.TrayIconTheme))
	}
}
