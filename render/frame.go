package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/engine"
)

// Frame returns the full board as text rows: border, interior, border, score, controls
// Snake cells take priority over food
func Frame(s *engine.GameState) []string {
	lines := make([]string, 0, s.Height+2+constants.StatusLineCount)
	border := strings.Repeat(string(constants.BorderRune), s.Width+2)

	lines = append(lines, border)
	for y := 0; y < s.Height; y++ {
		var row strings.Builder
		row.Grow(s.Width + 2)
		row.WriteRune(constants.BorderRune)
		for x := 0; x < s.Width; x++ {
			row.WriteRune(cellRune(s, x, y))
		}
		row.WriteRune(constants.BorderRune)
		lines = append(lines, row.String())
	}
	lines = append(lines, border)

	lines = append(lines,
		fmt.Sprintf(constants.ScoreFormat, s.Score),
		constants.ControlsHint,
	)
	return lines
}

// GameOverLines returns the summary shown once the loop ends
func GameOverLines(s *engine.GameState) []string {
	format := constants.GameOverFormat
	switch s.Outcome {
	case engine.OutcomeQuit:
		format = constants.QuitFormat
	case engine.OutcomeWon:
		format = constants.WinFormat
	}
	return []string{
		"",
		fmt.Sprintf(format, s.Score),
		constants.ExitPrompt,
	}
}

// cellRune resolves one interior cell
func cellRune(s *engine.GameState, x, y int) rune {
	for i := 0; i < s.Snake.Len(); i++ {
		p := s.Snake.At(i)
		if p.X == x && p.Y == y {
			if i == 0 {
				return constants.SnakeHeadRune
			}
			return constants.SnakeRune
		}
	}
	if s.Food.X == x && s.Food.Y == y {
		return constants.FoodRune
	}
	return constants.EmptyRune
}
