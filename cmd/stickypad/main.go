// StickyPad - desktop sticky notes that live in the system tray.
//
// Notes sit on a board window: drag them by the header, resize them from
// any edge or corner, pin the important ones on top. Everything autosaves
// to ~/.stickypad, optionally encrypted.
//
// Build:
//   go build -o stickypad ./cmd/stickypad
//
// Cross-compile with fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64
//
// Set DEBUG=1 for verbose logging.

package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mvandyk/stickypad/internal/secret"
	"github.com/mvandyk/stickypad/internal/store"
	"github.com/mvandyk/stickypad/internal/ui"
)

func main() {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	settingsPath := store.DefaultSettingsPath()
	if err := store.CleanupLegacyFields(settingsPath); err != nil {
		logger.Warn("legacy settings cleanup failed", zap.Error(err))
	}

	settings, err := store.LoadSettings(settingsPath)
	if err != nil {
		// LoadSettings already fell back to defaults; the app still runs.
		logger.Warn("settings file unreadable, using defaults", zap.Error(err))
	}

	app := ui.NewApp(ui.Config{
		Logger:       logger,
		Settings:     settings,
		SettingsPath: settingsPath,
		NotesPath:    store.DefaultNotesPath(),
		Secrets:      secret.NewKeyring(),
	})
	app.Run()
}

// newLogger builds the console logger. DEBUG in the environment turns on
// debug-level output.
func newLogger() *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderConfig)
	consoleWriter := zapcore.Lock(os.Stderr)

	level := zapcore.InfoLevel
	if os.Getenv("DEBUG") != "" {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(consoleEncoder, consoleWriter, level)
	return zap.New(core, zap.AddCaller())
}
