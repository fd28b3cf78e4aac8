package constants

import "time"

// Board dimensions in cells, excluding the border
const (
	BoardWidth  = 40
	BoardHeight = 20
)

// Snake limits
const (
	// InitialSnakeLength is the body length placed at game start
	InitialSnakeLength = 3

	// MaxSnakeLength is the fixed capacity of the snake body
	MaxSnakeLength = 100
)

// Game Loop Timing Constants
const (
	// TickInterval is the fixed pause between simulation ticks, sets game speed
	TickInterval = 100 * time.Millisecond
)

// Scoring
const (
	// FoodReward is the score added per food eaten
	FoodReward = 10
)
