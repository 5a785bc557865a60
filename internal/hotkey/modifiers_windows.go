//go:build windows

package hotkey

import xhotkey "golang.design/x/hotkey"

var modAlt = xhotkey.ModAlt
