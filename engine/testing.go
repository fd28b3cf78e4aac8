package engine

import (
	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/core"
)

// ScriptedRand replays fixed values for Intn, wrapping around, each reduced mod n
// Test helper for deterministic food placement
type ScriptedRand struct {
	Values []int
	calls  int
}

// Intn returns the next scripted value mod n
func (r *ScriptedRand) Intn(n int) int {
	if len(r.Values) == 0 {
		return 0
	}
	v := r.Values[r.calls%len(r.Values)]
	r.calls++
	return ((v % n) + n) % n
}

// Calls returns how many values have been drawn
func (r *ScriptedRand) Calls() int {
	return r.calls
}

// NewTestGameState creates a state with an explicit body, heading and food
// Capacity defaults to MaxSnakeLength when capacity is zero
func NewTestGameState(width, height, capacity int, dir Direction, food core.Point, body ...core.Point) *GameState {
	if capacity == 0 {
		capacity = max(len(body), constants.MaxSnakeLength)
	}
	return &GameState{
		Width:     width,
		Height:    height,
		Snake:     NewSnake(capacity, body...),
		Food:      food,
		Direction: dir,
	}
}
