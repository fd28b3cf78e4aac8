package engine

import (
	"fmt"

	"github.com/lixenwraith/term-snake/core"
)

// Snake is a bounded ordered body, index 0 is the head
// Capacity is fixed at construction and never exceeded
type Snake struct {
	body     []core.Point
	capacity int
}

// NewSnake creates a snake from head to tail, panics if the body does not fit capacity
func NewSnake(capacity int, body ...core.Point) *Snake {
	if len(body) == 0 || len(body) > capacity {
		panic(fmt.Sprintf("snake body length %d outside [1, %d]", len(body), capacity))
	}
	s := &Snake{
		body:     make([]core.Point, len(body), capacity),
		capacity: capacity,
	}
	copy(s.body, body)
	return s
}

// Head returns the leading cell
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Tail returns the trailing cell
func (s *Snake) Tail() core.Point {
	return s.body[len(s.body)-1]
}

// Len returns the current body length
func (s *Snake) Len() int {
	return len(s.body)
}

// Cap returns the maximum body length
func (s *Snake) Cap() int {
	return s.capacity
}

// At returns the i-th cell counted from the head
func (s *Snake) At(i int) core.Point {
	return s.body[i]
}

// Cells returns a copy of the body, head first
func (s *Snake) Cells() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}

// Contains reports whether any cell equals p
func (s *Snake) Contains(p core.Point) bool {
	for _, c := range s.body {
		if c == p {
			return true
		}
	}
	return false
}

// BodyContains reports whether any non-head cell equals p
func (s *Snake) BodyContains(p core.Point) bool {
	for _, c := range s.body[1:] {
		if c == p {
			return true
		}
	}
	return false
}

// Grow appends a copy of the tail cell; the following MoveTo leaves it in place
func (s *Snake) Grow() error {
	if len(s.body) >= s.capacity {
		return ErrSnakeFull
	}
	s.body = append(s.body, s.Tail())
	return nil
}

// MoveTo places the head at next and shifts every segment into the cell of the one ahead of it
func (s *Snake) MoveTo(next core.Point) {
	prev := s.body[0]
	s.body[0] = next
	for i := 1; i < len(s.body); i++ {
		prev, s.body[i] = s.body[i], prev
	}
}
