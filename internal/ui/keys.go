package ui

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/mobile/event/key"
)

// KeyShortcut describes a keyboard combination that triggers an action.
// Printable keys match on Rune, everything else on Code.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

// shortcutList is a helper to easily satisfy the KeyboardShortcuts interface.
type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

var codeNames = map[key.Code]string{
	key.CodeEscape:        "Esc",
	key.CodeTab:           "Tab",
	key.CodeDeleteForward: "Delete",
	key.CodeReturnEnter:   "Enter",
	key.CodeF1:            "F1",
}

func (k KeyShortcut) String() string {
	var sb strings.Builder
	if k.Modifiers&key.ModControl != 0 {
		sb.WriteString("Ctrl+")
	}
	if k.Modifiers&key.ModAlt != 0 {
		sb.WriteString("Alt+")
	}
	if k.Modifiers&key.ModShift != 0 {
		sb.WriteString("Shift+")
	}
	switch {
	case k.Rune > 0:
		sb.WriteRune(k.Rune)
	case codeNames[k.Code] != "":
		sb.WriteString(codeNames[k.Code])
	case k.Code >= key.CodeA && k.Code <= key.CodeZ:
		sb.WriteRune('A' + rune(k.Code-key.CodeA))
	default:
		fmt.Fprintf(&sb, "key%d", k.Code)
	}
	return sb.String()
}

func joinShortcuts(keys []KeyShortcut) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.String()
	}
	return strings.Join(parts, ", ")
}

// lookupKey finds the command bound to e. Printable runes are matched
// without Shift so that '+' and 'R' work regardless of layout; the key
// code with its full modifier set is tried next.
func lookupKey(keymap map[KeyShortcut]string, e key.Event) (string, bool) {
	if e.Rune > 0 && unicode.IsPrint(e.Rune) {
		ks := KeyShortcut{Rune: unicode.ToLower(e.Rune), Modifiers: e.Modifiers &^ key.ModShift}
		if name, ok := keymap[ks]; ok {
			return name, true
		}
	}
	if e.Code != key.CodeUnknown {
		if name, ok := keymap[KeyShortcut{Code: e.Code, Modifiers: e.Modifiers}]; ok {
			return name, true
		}
	}
	return "", false
}
