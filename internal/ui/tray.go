package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// setupTray installs the system tray icon and menu. Mobile and web drivers
// have no tray; the note headers still cover creating, sharing and closing
// notes, so this quietly degrades.
func (a *App) setupTray() {
	desk, ok := a.fyneApp.(desktop.App)
	if !ok {
		a.logger.Warn("system tray not supported by this driver")
		return
	}

	menu := fyne.NewMenu(windowTitle,
		fyne.NewMenuItem("New Note", a.newNote),
		fyne.NewMenuItem("Show All Notes", a.showAll),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings...", a.showSettings),
		fyne.NewMenuItem("Export Notes as PDF...", func() { a.exportNotes("pdf") }),
		fyne.NewMenuItem("Export Notes as Excel...", func() { a.exportNotes("xlsx") }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", a.quit),
	)
	desk.SetSystemTrayMenu(menu)
	desk.SetSystemTrayIcon(TrayIcon(a.settings.TrayIconTheme))
}
