package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/engine"
)

// Screen is the subset of tcell.Screen the renderer draws through
type Screen interface {
	Clear()
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Show()
}

// Styles for each cell kind
var (
	StyleDefault = tcell.StyleDefault
	StyleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleSnake   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	StyleHead    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	StyleFood    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	StyleBanner  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// TerminalRenderer redraws the full frame from the origin each call
type TerminalRenderer struct {
	screen Screen
}

// NewTerminalRenderer creates a renderer over screen
func NewTerminalRenderer(screen Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// Draw implements engine.Renderer
func (r *TerminalRenderer) Draw(s *engine.GameState) {
	r.screen.Clear()

	lines := Frame(s)
	boardRows := s.Height + 2
	for y, line := range lines {
		if y < boardRows {
			r.drawBoardRow(y, line)
		} else {
			r.drawText(0, y, line, StyleDefault)
		}
	}

	r.screen.Show()
}

// DrawGameOver implements engine.Renderer
func (r *TerminalRenderer) DrawGameOver(s *engine.GameState) {
	r.screen.Clear()
	for y, line := range GameOverLines(s) {
		style := StyleDefault
		if y == 1 {
			style = StyleBanner
		}
		r.drawText(0, y, line, style)
	}
	r.screen.Show()
}

func (r *TerminalRenderer) drawBoardRow(y int, line string) {
	x := 0
	for _, ch := range line {
		r.screen.SetContent(x, y, ch, nil, cellStyle(ch))
		x++
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func cellStyle(ch rune) tcell.Style {
	switch ch {
	case constants.BorderRune:
		return StyleBorder
	case constants.SnakeHeadRune:
		return StyleHead
	case constants.SnakeRune:
		return StyleSnake
	case constants.FoodRune:
		return StyleFood
	}
	return StyleDefault
}
