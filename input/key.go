package input

import "github.com/gdamore/tcell/v2"

// Key is one raw keypress: a special key code, or tcell.KeyRune with the typed rune
type Key struct {
	Code tcell.Key
	Rune rune
}

// RuneKey builds a printable key
func RuneKey(r rune) Key {
	return Key{Code: tcell.KeyRune, Rune: r}
}

// SpecialKey builds a non-printable key such as an arrow
func SpecialKey(code tcell.Key) Key {
	return Key{Code: code}
}

// KeySource reports a waiting key without blocking
type KeySource interface {
	// Poll consumes and returns one pending key, ok is false if none is waiting
	Poll() (key Key, ok bool)
}
