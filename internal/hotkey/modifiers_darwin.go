//go:build darwin

package hotkey

import xhotkey "golang.design/x/hotkey"

// macOS calls the alt key option.
var modAlt = xhotkey.ModOption
