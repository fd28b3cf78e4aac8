package engine

import (
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/term-snake/constants"
)

// Step advances the snake one cell in the current direction and resolves eating
// No bounds checking, out-of-board heads are left for Collides
// A full board ends the game as a win instead of returning an error
func Step(s *GameState, rng RandSource) error {
	next := s.Snake.Head().Add(s.Direction.Delta())
	eating := next == s.Food

	if eating {
		if err := s.Snake.Grow(); err != nil {
			if !errors.Is(err, ErrSnakeFull) {
				return fmt.Errorf("grow snake: %w", err)
			}
			log.Printf("growth rejected at length %d", s.Snake.Len())
		}
	}

	s.Snake.MoveTo(next)

	if !eating {
		return nil
	}

	s.Score += constants.FoodReward
	if err := PlaceFood(s, rng); err != nil {
		if errors.Is(err, ErrBoardFull) {
			s.End(OutcomeWon)
			return nil
		}
		return fmt.Errorf("place food: %w", err)
	}
	return nil
}
