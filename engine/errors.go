package engine

import "errors"

var (
	// ErrSnakeFull is returned when growth would exceed the snake capacity
	ErrSnakeFull = errors.New("snake at maximum length")

	// ErrBoardFull is returned when no free cell remains for food
	ErrBoardFull = errors.New("no free cell for food")
)
