package model

// Settings holds every user-configurable option. Fields missing from the
// settings file pick up the defaults declared in the struct tags; unknown
// fields from older releases are dropped on the next save.
type Settings struct {
	LaunchOnStartup         bool   `json:"launchOnStartup"`
	AlwaysOnTop             bool   `json:"alwaysOnTop"`
	HotkeyCombo             string `json:"hotkeyCombo" default:"ctrl+shift+s"`
	ReopenNotesOnStartup    bool   `json:"reopenNotesOnStartup" default:"true"`
	EncryptNotes            bool   `json:"encryptNotes"`
	PromptPasswordOnStartup bool   `json:"promptPasswordOnStartup"`
	TrayIconTheme           string `json:"trayIconTheme" default:"yellow"`
	NoteColor               string `json:"noteColor" default:"#FFFFE0"`
	NoteTextColor           string `json:"noteTextColor" default:"#000000"`
	NoteTextSize            int    `json:"noteTextSize" default:"12"`
	NoteFontFamily          string `json:"noteFontFamily"`
}
