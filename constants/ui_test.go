package constants

import (
	"testing"
	"time"
)

// TestBoardFitsSnake verifies the capacity leaves free cells for food placement
func TestBoardFitsSnake(t *testing.T) {
	area := BoardWidth * BoardHeight
	if MaxSnakeLength >= area {
		t.Errorf("Expected MaxSnakeLength %d to be well below board area %d", MaxSnakeLength, area)
	}
	if InitialSnakeLength > MaxSnakeLength {
		t.Errorf("Initial length %d exceeds capacity %d", InitialSnakeLength, MaxSnakeLength)
	}
	if InitialSnakeLength > BoardWidth/2 {
		t.Errorf("Initial snake of length %d does not fit left of centre", InitialSnakeLength)
	}
}

// TestFrameDimensions verifies derived frame sizes
func TestFrameDimensions(t *testing.T) {
	tests := []struct {
		name     string
		actual   int
		expected int
	}{
		{"Frame width", FrameWidth, 42},
		{"Frame height", FrameHeight, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.actual != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, tt.actual)
			}
		})
	}

	if TickInterval != 100*time.Millisecond {
		t.Errorf("Expected tick interval 100ms, got %v", TickInterval)
	}
}
