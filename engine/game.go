package engine

import (
	"context"
	"fmt"
	"log"
)

// Phase is the game loop state
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game-over"
	}
	return "running"
}

// Renderer draws the full frame for the current state
type Renderer interface {
	Draw(s *GameState)
	DrawGameOver(s *GameState)
}

// Controller applies pending player input to the state, called once per tick
type Controller interface {
	Update(s *GameState)
}

// KeyWaiter blocks until any key is pressed or ctx is done
type KeyWaiter interface {
	WaitKey(ctx context.Context) bool
}

// Game drives render, input, step, collision and the fixed wait each tick
type Game struct {
	State      *GameState
	Renderer   Renderer
	Controller Controller
	Scheduler  *ClockScheduler
	Rand       RandSource

	// Exit is waited on once after the summary is drawn, optional
	Exit KeyWaiter
}

// NewGame creates a game on a fresh starting state
func NewGame(renderer Renderer, controller Controller, scheduler *ClockScheduler, rng RandSource) *Game {
	return &Game{
		State:      NewGameState(rng),
		Renderer:   renderer,
		Controller: controller,
		Scheduler:  scheduler,
		Rand:       rng,
	}
}

// Phase reports the current loop state
func (g *Game) Phase() Phase {
	if g.State.GameOver {
		return PhaseGameOver
	}
	return PhaseRunning
}

// Tick runs one iteration of the loop while running
func (g *Game) Tick() error {
	if g.State.GameOver {
		return nil
	}

	g.Renderer.Draw(g.State)
	g.Controller.Update(g.State)
	if g.State.GameOver {
		return nil
	}

	if err := Step(g.State, g.Rand); err != nil {
		return fmt.Errorf("tick %d: %w", g.Scheduler.TickCount(), err)
	}
	if !g.State.GameOver && Collides(g.State) {
		g.State.End(OutcomeCrashed)
	}
	if g.State.GameOver {
		return nil
	}

	g.Scheduler.Wait()
	return nil
}

// Run ticks until game over or ctx is done, then shows the summary and waits for one key
func (g *Game) Run(ctx context.Context) error {
	log.Printf("game started, tick %v", g.Scheduler.TickInterval())

	for g.Phase() == PhaseRunning {
		select {
		case <-ctx.Done():
			g.State.End(OutcomeQuit)
			continue
		default:
		}

		if err := g.Tick(); err != nil {
			return err
		}
	}

	g.Renderer.DrawGameOver(g.State)
	if g.Exit != nil {
		g.Exit.WaitKey(ctx)
	}
	return nil
}
