package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps raw keys to intents
// Letters and arrows are independent entries resolving to the same intents
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyUp:     IntentUp,
			tcell.KeyDown:   IntentDown,
			tcell.KeyLeft:   IntentLeft,
			tcell.KeyRight:  IntentRight,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
		},

		Runes: map[rune]IntentType{
			'w': IntentUp,
			'W': IntentUp,
			's': IntentDown,
			'S': IntentDown,
			'a': IntentLeft,
			'A': IntentLeft,
			'd': IntentRight,
			'D': IntentRight,
			'x': IntentQuit,
			'X': IntentQuit,
		},
	}
}

// Lookup resolves a key, unbound keys yield IntentNone
func (kt *KeyTable) Lookup(k Key) IntentType {
	if k.Code == tcell.KeyRune {
		return kt.Runes[k.Rune]
	}
	return kt.SpecialKeys[k.Code]
}
