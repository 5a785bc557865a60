// Package hotkey parses hotkey combinations and keeps the global
// create-note shortcut registered with the operating system.
package hotkey

import (
	"strings"

	"github.com/pkg/errors"
)

// Combo is a parsed modifier+key combination such as ctrl+shift+s. At
// least one modifier and exactly one alphanumeric key are required.
type Combo struct {
	Ctrl  bool
	Shift bool
	Alt   bool
	Key   rune
}

// ParseCombo parses a textual combination: plus-separated tokens, case
// and whitespace insensitive, modifiers from ctrl/shift/alt plus one key
// from a-z or 0-9.
func ParseCombo(s string) (Combo, error) {
	var c Combo
	keySeen := false

	for _, part := range strings.Split(strings.ToLower(s), "+") {
		part = strings.TrimSpace(part)
		switch part {
		case "":
			return Combo{}, errors.Errorf("empty element in hotkey %q", s)
		case "ctrl", "control":
			c.Ctrl = true
		case "shift":
			c.Shift = true
		case "alt":
			c.Alt = true
		default:
			r := []rune(part)
			if len(r) != 1 || !isAlnum(r[0]) {
				return Combo{}, errors.Errorf("unsupported key %q in hotkey %q", part, s)
			}
			if keySeen {
				return Combo{}, errors.Errorf("hotkey %q names more than one key", s)
			}
			c.Key = r[0]
			keySeen = true
		}
	}

	if !keySeen {
		return Combo{}, errors.Errorf("hotkey %q has no key", s)
	}
	if !c.Ctrl && !c.Shift && !c.Alt {
		return Combo{}, errors.Errorf("hotkey %q has no modifier", s)
	}
	return c, nil
}

// String renders the combination in canonical ctrl+shift+alt+key order,
// the form the settings file stores.
func (c Combo) String() string {
	parts := make([]string, 0, 4)
	if c.Ctrl {
		parts = append(parts, "ctrl")
	}
	if c.Shift {
		parts = append(parts, "shift")
	}
	if c.Alt {
		parts = append(parts, "alt")
	}
	parts = append(parts, string(c.Key))
	return strings.Join(parts, "+")
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
