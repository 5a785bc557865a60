package ui

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mvandyk/stickypad/internal/hotkey"
	"github.com/mvandyk/stickypad/internal/model"
	"github.com/mvandyk/stickypad/internal/secret"
	"github.com/mvandyk/stickypad/internal/store"
)

var trayThemeNames = []string{"yellow", "dark", "light"}

// showSettings opens the settings dialog. Checkboxes and selects bind into
// a local copy; free-text fields are validated on Save. Nothing touches the
// live settings until Save succeeds.
func (a *App) showSettings() {
	a.win.Show()
	s := a.settings

	// Helper to create a bound check
	check := func(val *bool) *widget.Check {
		c := widget.NewCheck("", func(b bool) { *val = b })
		c.Checked = *val
		return c
	}

	hotkeyEntry := widget.NewEntry()
	hotkeyEntry.SetText(s.HotkeyCombo)

	trayThemeSelect := widget.NewSelect(trayThemeNames, func(selected string) {
		s.TrayIconTheme = selected
	})
	trayThemeSelect.SetSelected(s.TrayIconTheme)

	colorEntry := widget.NewEntry()
	colorEntry.SetText(s.NoteColor)
	textColorEntry := widget.NewEntry()
	textColorEntry.SetText(s.NoteTextColor)
	sizeEntry := widget.NewEntry()
	sizeEntry.SetText(strconv.Itoa(s.NoteTextSize))

	fontSelect := widget.NewSelect([]string{"Default", "Monospace"}, func(selected string) {
		if selected == "Monospace" {
			s.NoteFontFamily = "monospace"
		} else {
			s.NoteFontFamily = ""
		}
	})
	if strings.EqualFold(s.NoteFontFamily, "monospace") {
		fontSelect.SetSelected("Monospace")
	} else {
		fontSelect.SetSelected("Default")
	}

	encryptCheck := check(&s.EncryptNotes)
	passwordEntry := widget.NewPasswordEntry()
	confirmEntry := widget.NewPasswordEntry()

	behaviorSection := widget.NewCard("Behavior", "", container.NewGridWithColumns(2,
		widget.NewLabel("Launch on startup"), check(&s.LaunchOnStartup),
		widget.NewLabel("Keep board on top"), check(&s.AlwaysOnTop),
		widget.NewLabel("Reopen notes on startup"), check(&s.ReopenNotesOnStartup),
	))

	appearanceSection := widget.NewCard("Appearance", "", container.NewGridWithColumns(2,
		widget.NewLabel("Note color (#RRGGBB)"), colorEntry,
		widget.NewLabel("Text color (#RRGGBB)"), textColorEntry,
		widget.NewLabel("Text size"), sizeEntry,
		widget.NewLabel("Font"), fontSelect,
		widget.NewLabel("Tray icon"), trayThemeSelect,
	))

	hotkeySection := widget.NewCard("Global Hotkey",
		"Modifiers plus one key, e.g. ctrl+shift+s",
		container.NewGridWithColumns(2,
			widget.NewLabel("New note"), hotkeyEntry,
		))

	encryptionSection := widget.NewCard("Encryption",
		"Notes are encrypted on disk; the password lives in the system keyring",
		container.NewGridWithColumns(2,
			widget.NewLabel("Encrypt notes"), encryptCheck,
			widget.NewLabel("Password"), passwordEntry,
			widget.NewLabel("Confirm password"), confirmEntry,
			widget.NewLabel("Ask for password at startup"), check(&s.PromptPasswordOnStartup),
		))

	content := container.NewVScroll(container.NewVBox(
		behaviorSection,
		appearanceSection,
		hotkeySection,
		encryptionSection,
	))

	d := dialog.NewCustomConfirm("Settings", "Save", "Cancel", content, func(ok bool) {
		if !ok {
			return
		}

		combo, err := hotkey.ParseCombo(hotkeyEntry.Text)
		if err != nil {
			dialog.ShowError(errors.Wrap(err, "hotkey not saved"), a.win)
			return
		}
		s.HotkeyCombo = combo.String()

		if !validHexColor(colorEntry.Text) || !validHexColor(textColorEntry.Text) {
			dialog.ShowError(errors.New("colors must use the #RRGGBB form"), a.win)
			return
		}
		s.NoteColor = colorEntry.Text
		s.NoteTextColor = textColorEntry.Text

		size, err := strconv.Atoi(strings.TrimSpace(sizeEntry.Text))
		if err != nil || size < 6 || size > 72 {
			dialog.ShowError(errors.New("text size must be a number between 6 and 72"), a.win)
			return
		}
		s.NoteTextSize = size

		if err := a.applyEncryptionChange(&s, passwordEntry.Text, confirmEntry.Text); err != nil {
			dialog.ShowError(err, a.win)
			return
		}

		a.settings = s
		if err := store.SaveSettings(a.settingsPath, a.settings); err != nil {
			a.logger.Error("save settings", zap.Error(err))
			dialog.ShowError(err, a.win)
		}
		a.applyAppearance()
		a.rebindHotkey()
		a.applyAutostart()
		a.keepOnTop()
		a.saveNotesNow()
	}, a.win)
	d.Resize(fyne.NewSize(460, 620))
	d.Show()
}

// applyEncryptionChange handles turning encryption on or off, and password
// changes while it stays on: the keyring entry and the session password
// move together with the flag. The next saveNotesNow rewrites the file in
// the new form.
func (a *App) applyEncryptionChange(next *model.Settings, password, confirm string) error {
	switch {
	case next.EncryptNotes && !a.settings.EncryptNotes:
		if password == "" || password != confirm {
			return errors.New("enter the new password twice to enable encryption")
		}
		a.storePassword(next, password)
	case next.EncryptNotes && password != "":
		if password != confirm {
			return errors.New("enter the new password twice to change it")
		}
		a.storePassword(next, password)
	case !next.EncryptNotes && a.settings.EncryptNotes:
		if err := a.secrets.Delete(secret.PasswordName); err != nil {
			a.logger.Warn("remove password from keyring", zap.Error(err))
		}
		a.password = ""
	}
	return nil
}

func (a *App) storePassword(next *model.Settings, password string) {
	if err := a.secrets.Set(secret.PasswordName, password); err != nil {
		// Without the keyring the password only lives for this session,
		// so the startup prompt has to take over.
		a.logger.Warn("store password in keyring", zap.Error(err))
		next.PromptPasswordOnStartup = true
	}
	a.password = password
}

// validHexColor reports whether s is a #RRGGBB color.
func validHexColor(s string) bool {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return false
	}
	_, err := strconv.ParseUint(s, 16, 32)
	return err == nil
}
