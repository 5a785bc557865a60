// Package store persists StickyPad state: the settings file and the note
// snapshots, the latter optionally sealed with a password-derived key.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"

	"github.com/mvandyk/stickypad/internal/model"
)

// DefaultConfigDir returns the directory StickyPad keeps its files in.
// On all platforms this is ~/.stickypad/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".stickypad")
}

// DefaultSettingsPath returns the default path of the settings file.
func DefaultSettingsPath() string {
	return filepath.Join(DefaultConfigDir(), "settings.json")
}

// DefaultNotesPath returns the default path of the notes file.
func DefaultNotesPath() string {
	return filepath.Join(DefaultConfigDir(), "notes.json")
}

// DefaultSettings returns settings with every field at the default
// declared on model.Settings. The tags are static, so Set cannot fail.
func DefaultSettings() model.Settings {
	var s model.Settings
	_ = defaults.Set(&s)
	return s
}

// LoadSettings reads settings from path. Defaults are applied before the
// file is parsed, so fields the file does not mention keep their default
// while explicit values, including false and zero, win. A missing file
// yields pure defaults with no error.
func LoadSettings(path string) (model.Settings, error) {
	s := model.Settings{}
	if err := defaults.Set(&s); err != nil {
		return s, errors.Wrap(err, "set default settings")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, errors.Wrap(err, "read settings file")
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), errors.Wrap(err, "parse settings file")
	}
	return s, nil
}

// SaveSettings persists settings to path as indented JSON, creating
// missing parent directories.
func SaveSettings(path string, s model.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "create config dir")
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal settings")
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "write settings file")
}

// CleanupLegacyFields rewrites the settings file without fields older
// releases stored. The plaintext encryptionPassword field in particular
// must not linger on disk once the app has run.
func CleanupLegacyFields(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "read settings file")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "parse settings file")
	}

	changed := false
	for _, field := range []string{"encryptionPassword", "encryption_password"} {
		if _, ok := raw[field]; ok {
			delete(raw, field)
			changed = true
		}
	}
	if !changed {
		return nil
	}

	out, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal settings")
	}
	return errors.Wrap(os.WriteFile(path, out, 0644), "write settings file")
}
