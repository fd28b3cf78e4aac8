package input

import "github.com/lixenwraith/term-snake/engine"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Steering
	IntentUp
	IntentDown
	IntentLeft
	IntentRight

	// System-level intents
	IntentQuit // x, X, Esc, Ctrl+C
)

// Direction returns the heading for a steering intent, ok is false otherwise
func (i IntentType) Direction() (d engine.Direction, ok bool) {
	switch i {
	case IntentUp:
		return engine.DirectionUp, true
	case IntentDown:
		return engine.DirectionDown, true
	case IntentLeft:
		return engine.DirectionLeft, true
	case IntentRight:
		return engine.DirectionRight, true
	}
	return 0, false
}

func (i IntentType) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentQuit:
		return "quit"
	}
	return "unknown"
}
