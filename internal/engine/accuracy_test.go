package engine

import (
	"math"
	"testing"
)

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name     string
		warnings int
		want     float64
	}{
		{"no warnings", 0, 1.0},
		{"one warning", 1, 0.9},
		{"five warnings", 5, 0.5},
		{"ten warnings", 10, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Accuracy(tt.warnings); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Accuracy(%d) = %v, want %v", tt.warnings, got, tt.want)
			}
		})
	}
}

// The score is floored at 0: eleven or more warnings never go negative.
func TestAccuracy_FloorClamp(t *testing.T) {
	for _, n := range []int{11, 12, 50} {
		if got := Accuracy(n); got != 0 {
			t.Errorf("Accuracy(%d) = %v, want 0", n, got)
		}
	}
}

func TestAccuracy_NonIncreasing(t *testing.T) {
	prev := Accuracy(0)
	for n := 1; n <= 20; n++ {
		cur := Accuracy(n)
		if cur > prev {
			t.Fatalf("Accuracy(%d) = %v > Accuracy(%d) = %v", n, cur, n-1, prev)
		}
		prev = cur
	}
}
