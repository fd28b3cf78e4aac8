package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	xrand "golang.org/x/exp/rand"

	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
	"github.com/lixenwraith/term-snake/input"
	"github.com/lixenwraith/term-snake/render"
	"github.com/lixenwraith/term-snake/terminal"
)

var debugFlag = flag.Bool("debug", false, "Write debug log to logs/term-snake.log")

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	// Initialize terminal
	term, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer term.Fini()
	core.SetCrashCleanup(term.Fini)

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			term.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTERM-SNAKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rng := xrand.New(xrand.NewSource(uint64(time.Now().UnixNano())))
	scheduler := engine.NewClockScheduler(engine.NewMonotonicClock(), constants.TickInterval)

	game := engine.NewGame(
		render.NewTerminalRenderer(term.Tcell()),
		input.NewHandler(term, input.DefaultKeyTable()),
		scheduler,
		rng,
	)
	game.Exit = term

	if err := game.Run(ctx); err != nil {
		term.Fini()
		fmt.Fprintf(os.Stderr, "Game error: %v\n", err)
		os.Exit(1)
	}
}
