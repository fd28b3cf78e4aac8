package engine

import (
	"log"

	"github.com/lixenwraith/term-snake/core"
)

// RandSource is the uniform integer generator used by food placement
// Satisfied by *golang.org/x/exp/rand.Rand and *math/rand.Rand
type RandSource interface {
	Intn(n int) int
}

// PlaceFood samples random cells until one is free of the snake
// Returns ErrBoardFull when the snake covers every cell, food is left unchanged
func PlaceFood(s *GameState, rng RandSource) error {
	if freeCells(s) == 0 {
		return ErrBoardFull
	}

	attempts := 0
	for {
		attempts++
		p := core.Point{X: rng.Intn(s.Width), Y: rng.Intn(s.Height)}
		if s.Snake.Contains(p) {
			continue
		}
		s.Food = p
		s.FoodPlacements++
		if attempts > 1 {
			log.Printf("food placed at %d,%d after %d attempts", p.X, p.Y, attempts)
		}
		return nil
	}
}

// freeCells counts board cells not covered by the snake
func freeCells(s *GameState) int {
	occupied := make(map[core.Point]struct{}, s.Snake.Len())
	for i := 0; i < s.Snake.Len(); i++ {
		p := s.Snake.At(i)
		if p.In(s.Width, s.Height) {
			occupied[p] = struct{}{}
		}
	}
	return s.Width*s.Height - len(occupied)
}
