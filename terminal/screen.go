package terminal

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/input"
)

// KeyBufferSize bounds keys held between polls
const KeyBufferSize = 256

// Screen owns a tcell screen and the key pump feeding Poll and WaitKey
type Screen struct {
	screen tcell.Screen
	keys   chan input.Key
	stop   chan struct{}

	finiOnce sync.Once
}

// New creates and initializes a screen on the controlling terminal
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return Wrap(s)
}

// Wrap initializes s, hides the cursor and starts the key pump
func Wrap(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.HideCursor()
	s.Clear()

	sc := &Screen{
		screen: s,
		keys:   make(chan input.Key, KeyBufferSize),
		stop:   make(chan struct{}),
	}
	core.Go(sc.pump)
	return sc, nil
}

// pump forwards key events until the screen is finalized
func (sc *Screen) pump() {
	for {
		ev := sc.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			select {
			case sc.keys <- input.Key{Code: ev.Key(), Rune: ev.Rune()}:
			case <-sc.stop:
				return
			}
		case *tcell.EventResize:
			sc.screen.Sync()
		}
	}
}

// Poll implements input.KeySource
func (sc *Screen) Poll() (input.Key, bool) {
	select {
	case k := <-sc.keys:
		return k, true
	default:
		return input.Key{}, false
	}
}

// WaitKey blocks until a key arrives or ctx is done, reports whether a key was read
func (sc *Screen) WaitKey(ctx context.Context) bool {
	select {
	case <-sc.keys:
		return true
	case <-ctx.Done():
		return false
	}
}

// Tcell returns the underlying screen for drawing
func (sc *Screen) Tcell() tcell.Screen {
	return sc.screen
}

// Fini restores the terminal, safe to call multiple times
func (sc *Screen) Fini() {
	sc.finiOnce.Do(func() {
		close(sc.stop)
		sc.screen.Fini()
	})
}
