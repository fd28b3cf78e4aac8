// Package engine holds the snake game state and the rules that advance it.
//
// All state lives in a GameState passed by pointer; there are no package globals.
// One tick is: render, read input, Step, Collides, then the scheduler's fixed wait.
// Terminal and keyboard access is injected through the Renderer and Controller
// interfaces so the loop runs headless in tests.
package engine
