package engine

import (
	"errors"
	"testing"

	"github.com/lixenwraith/term-snake/core"
)

// TestSnakeMoveShiftsBody verifies follow-the-leader ordering after a move
func TestSnakeMoveShiftsBody(t *testing.T) {
	s := NewSnake(10, core.Point{X: 5, Y: 5}, core.Point{X: 4, Y: 5}, core.Point{X: 3, Y: 5})
	s.MoveTo(core.Point{X: 5, Y: 4})

	expected := []core.Point{{X: 5, Y: 4}, {X: 5, Y: 5}, {X: 4, Y: 5}}
	got := s.Cells()
	if len(got) != len(expected) {
		t.Fatalf("Expected length %d, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Segment %d: expected %+v, got %+v", i, expected[i], got[i])
		}
	}
}

// TestSnakeGrowKeepsTail verifies a grow followed by a move leaves the old tail in place
func TestSnakeGrowKeepsTail(t *testing.T) {
	s := NewSnake(10, core.Point{X: 5, Y: 5}, core.Point{X: 4, Y: 5}, core.Point{X: 3, Y: 5})
	if err := s.Grow(); err != nil {
		t.Fatalf("Unexpected grow error: %v", err)
	}
	s.MoveTo(core.Point{X: 6, Y: 5})

	expected := []core.Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	got := s.Cells()
	if len(got) != len(expected) {
		t.Fatalf("Expected length %d, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Segment %d: expected %+v, got %+v", i, expected[i], got[i])
		}
	}
}

// TestSnakeGrowAtCapacity verifies growth is rejected at capacity
func TestSnakeGrowAtCapacity(t *testing.T) {
	s := NewSnake(3, core.Point{X: 2, Y: 0}, core.Point{X: 1, Y: 0}, core.Point{X: 0, Y: 0})
	err := s.Grow()
	if !errors.Is(err, ErrSnakeFull) {
		t.Fatalf("Expected ErrSnakeFull, got %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("Expected length to stay 3, got %d", s.Len())
	}
}

// TestSnakeCellsIsCopy verifies callers cannot mutate the body through Cells
func TestSnakeCellsIsCopy(t *testing.T) {
	s := NewSnake(5, core.Point{X: 1, Y: 1}, core.Point{X: 0, Y: 1})
	cells := s.Cells()
	cells[0] = core.Point{X: 9, Y: 9}
	if s.Head() != (core.Point{X: 1, Y: 1}) {
		t.Errorf("Head changed through Cells copy: %+v", s.Head())
	}
}

func TestNewSnakePanicsOverCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for body longer than capacity")
		}
	}()
	NewSnake(1, core.Point{X: 0, Y: 0}, core.Point{X: 1, Y: 0})
}

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		d, opposite Direction
		delta       core.Point
	}{
		{DirectionUp, DirectionDown, core.Point{X: 0, Y: -1}},
		{DirectionDown, DirectionUp, core.Point{X: 0, Y: 1}},
		{DirectionLeft, DirectionRight, core.Point{X: -1, Y: 0}},
		{DirectionRight, DirectionLeft, core.Point{X: 1, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			if got := tt.d.Opposite(); got != tt.opposite {
				t.Errorf("Opposite of %s: expected %s, got %s", tt.d, tt.opposite, got)
			}
			if got := tt.d.Delta(); got != tt.delta {
				t.Errorf("Delta of %s: expected %+v, got %+v", tt.d, tt.delta, got)
			}
		})
	}
}
