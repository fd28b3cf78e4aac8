package constants

// Cell markers
const (
	BorderRune    = '#'
	SnakeRune     = 'O'
	SnakeHeadRune = '@'
	FoodRune      = '*'
	EmptyRune     = ' '
)

// Status and summary text
const (
	ScoreFormat     = "Score: %d"
	ControlsHint    = "Controls: Arrow keys or WASD to move, X to exit"
	GameOverFormat  = "Game Over! Final Score: %d"
	QuitFormat      = "Game Quit. Final Score: %d"
	WinFormat       = "Board Cleared! Final Score: %d"
	ExitPrompt      = "Press any key to exit..."
	StatusLineCount = 2
)

// FrameWidth is the rendered frame width including both border columns
const FrameWidth = BoardWidth + 2

// FrameHeight is the rendered frame height including borders and status lines
const FrameHeight = BoardHeight + 2 + StatusLineCount
