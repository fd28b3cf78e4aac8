package engine

import (
	"log"

	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/core"
)

// Outcome records why a game ended
type Outcome uint8

const (
	OutcomePlaying Outcome = iota
	OutcomeCrashed
	OutcomeQuit
	OutcomeWon
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeCrashed:
		return "crashed"
	case OutcomeQuit:
		return "quit"
	case OutcomeWon:
		return "won"
	}
	return "unknown"
}

// GameState is the authoritative store for one game
// Accessed from the game loop goroutine only
type GameState struct {
	Width, Height int

	Snake     *Snake
	Food      core.Point
	Score     int
	Direction Direction

	// GameOver only ever transitions false to true
	GameOver bool
	Outcome  Outcome

	// FoodPlacements counts successful PlaceFood calls
	FoodPlacements int
}

// NewGameState creates the starting state: snake centred heading right, food placed
func NewGameState(rng RandSource) *GameState {
	cx, cy := constants.BoardWidth/2, constants.BoardHeight/2
	body := make([]core.Point, constants.InitialSnakeLength)
	for i := range body {
		body[i] = core.Point{X: cx - i, Y: cy}
	}

	s := &GameState{
		Width:     constants.BoardWidth,
		Height:    constants.BoardHeight,
		Snake:     NewSnake(constants.MaxSnakeLength, body...),
		Direction: DirectionRight,
	}

	// Initial snake occupies 3 of 800 cells, placement cannot fail
	_ = PlaceFood(s, rng)
	return s
}

// Steer requests a new heading, the exact reverse of the current heading is ignored
func (s *GameState) Steer(d Direction) {
	if d == s.Direction.Opposite() {
		return
	}
	s.Direction = d
}

// End sets the terminal flag, the first outcome recorded wins
func (s *GameState) End(o Outcome) {
	if s.GameOver {
		return
	}
	s.GameOver = true
	s.Outcome = o
	log.Printf("game over: %s, score %d, length %d", o, s.Score, s.Snake.Len())
}
