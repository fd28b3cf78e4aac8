// Package terminal adapts a tcell screen to the game's platform needs:
// a full-frame output sink, a non-blocking key source and a blocking any-key wait.
//
// Key events are pumped from tcell into a buffered channel by one goroutine;
// Poll drains at most one key per call and never blocks.
package terminal
