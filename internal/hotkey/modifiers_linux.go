//go:build linux

package hotkey

import xhotkey "golang.design/x/hotkey"

// X11 exposes alt as Mod1.
var modAlt = xhotkey.Mod1
