package hotkey

import (
	"github.com/pkg/errors"
	xhotkey "golang.design/x/hotkey"
)

// keyCodes maps the alphanumeric keys the settings grammar allows onto
// the OS key codes of the hotkey library.
var keyCodes = map[rune]xhotkey.Key{
	'a': xhotkey.KeyA, 'b': xhotkey.KeyB, 'c': xhotkey.KeyC,
	'd': xhotkey.KeyD, 'e': xhotkey.KeyE, 'f': xhotkey.KeyF,
	'g': xhotkey.KeyG, 'h': xhotkey.KeyH, 'i': xhotkey.KeyI,
	'j': xhotkey.KeyJ, 'k': xhotkey.KeyK, 'l': xhotkey.KeyL,
	'm': xhotkey.KeyM, 'n': xhotkey.KeyN, 'o': xhotkey.KeyO,
	'p': xhotkey.KeyP, 'q': xhotkey.KeyQ, 'r': xhotkey.KeyR,
	's': xhotkey.KeyS, 't': xhotkey.KeyT, 'u': xhotkey.KeyU,
	'v': xhotkey.KeyV, 'w': xhotkey.KeyW, 'x': xhotkey.KeyX,
	'y': xhotkey.KeyY, 'z': xhotkey.KeyZ,
	'0': xhotkey.Key0, '1': xhotkey.Key1, '2': xhotkey.Key2,
	'3': xhotkey.Key3, '4': xhotkey.Key4, '5': xhotkey.Key5,
	'6': xhotkey.Key6, '7': xhotkey.Key7, '8': xhotkey.Key8,
	'9': xhotkey.Key9,
}

// keyCode returns the OS key code for the combination's key.
func (c Combo) keyCode() (xhotkey.Key, error) {
	code, ok := keyCodes[c.Key]
	if !ok {
		return 0, errors.Errorf("no key code for %q", string(c.Key))
	}
	return code, nil
}

// modifiers returns the OS modifier set for the combination.
func (c Combo) modifiers() []xhotkey.Modifier {
	mods := make([]xhotkey.Modifier, 0, 3)
	if c.Ctrl {
		mods = append(mods, xhotkey.ModCtrl)
	}
	if c.Shift {
		mods = append(mods, xhotkey.ModShift)
	}
	if c.Alt {
		mods = append(mods, modAlt)
	}
	return mods
}
