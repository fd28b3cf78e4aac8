package engine

import "github.com/lixenwraith/term-snake/core"

// Direction is one of the four headings
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Delta returns the unit cell offset for one move
func (d Direction) Delta() core.Point {
	switch d {
	case DirectionUp:
		return core.Point{X: 0, Y: -1}
	case DirectionDown:
		return core.Point{X: 0, Y: 1}
	case DirectionLeft:
		return core.Point{X: -1, Y: 0}
	default:
		return core.Point{X: 1, Y: 0}
	}
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	default:
		return DirectionLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "unknown"
}
