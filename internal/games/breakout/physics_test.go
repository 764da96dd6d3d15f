package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestOverlaps(t *testing.T) {
	block := core.NewRect(23, 23, 54, 20)

	tests := []struct {
		name     string
		center   core.Point
		expected bool
	}{
		{"center inside", core.Point{X: 50, Y: 33}, true},
		{"touching bottom edge", core.Point{X: 50, Y: 48}, false},
		{"just inside bottom edge", core.Point{X: 50, Y: 47.9}, true},
		{"touching left edge", core.Point{X: 18, Y: 33}, false},
		{"far away", core.Point{X: 300, Y: 300}, false},
		// The bounding square reaches the corner even though the circle does not.
		{"corner false positive", core.Point{X: 19, Y: 19}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Overlaps(tc.center, 5, block)
			if result != tc.expected {
				t.Errorf("Overlaps(%v) = %v, expected %v", tc.center, result, tc.expected)
			}
		})
	}
}

func TestPaddleBounce(t *testing.T) {
	bounce := config.DefaultBreakoutConfig().Bounce
	paddle := core.NewRect(100, 456, 80, 16) // center x = 140

	tests := []struct {
		name       string
		ballX      float64
		expectedVX float64
	}{
		{"center hit", 140, 0.2},
		{"left edge", 100, -0.4},
		{"right edge", 180, 0.8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vx, vy := PaddleBounce(tc.ballX, paddle, bounce)
			if math.Abs(vx-tc.expectedVX) > 1e-9 {
				t.Errorf("vx = %f, expected %f", vx, tc.expectedVX)
			}
			if math.Abs(vy-(-1+math.Abs(tc.expectedVX))) > 1e-9 {
				t.Errorf("vy = %f, expected %f", vy, -1+math.Abs(tc.expectedVX))
			}
			if vy >= 0 {
				t.Errorf("vy = %f, paddle bounce must send the ball up", vy)
			}
		})
	}
}

func TestNearestEdge(t *testing.T) {
	block := core.NewRect(23, 23, 54, 20) // x 23..77, y 23..43

	tests := []struct {
		name     string
		p        core.Point
		expected Edge
	}{
		{"below bottom", core.Point{X: 50, Y: 47}, EdgeBottom},
		{"above top", core.Point{X: 50, Y: 20}, EdgeTop},
		{"left of left", core.Point{X: 19, Y: 33}, EdgeLeft},
		{"right of right", core.Point{X: 80, Y: 33}, EdgeRight},
		{"inside near top", core.Point{X: 50, Y: 25}, EdgeTop},
		// Diagonal from the top-left corner: left and top are equally far.
		{"tie left/top", core.Point{X: 20, Y: 20}, EdgeLeft},
		// Diagonal from the bottom-right corner: right and bottom are equally far.
		{"tie right/bottom", core.Point{X: 80, Y: 46}, EdgeRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := NearestEdge(tc.p, block)
			if result != tc.expected {
				t.Errorf("NearestEdge(%v) = %s, expected %s (distances %v)",
					tc.p, result, tc.expected, EdgeDistances(tc.p, block))
			}
		})
	}
}

func TestSquareCenterTiePrefersHorizontal(t *testing.T) {
	block := core.NewRect(0, 0, 20, 20)
	if edge := NearestEdge(core.Point{X: 10, Y: 10}, block); edge != EdgeLeft {
		t.Errorf("NearestEdge(center of square) = %s, expected left", edge)
	}
}

func TestEdgeDistancesClampToSegment(t *testing.T) {
	block := core.NewRect(0, 0, 10, 10)
	d := EdgeDistances(core.Point{X: -3, Y: -4}, block)

	// Beyond the top-left corner every adjacent edge measures to the corner.
	if d[EdgeLeft] != 5 || d[EdgeTop] != 5 {
		t.Errorf("left/top distances = %f/%f, expected 5/5", d[EdgeLeft], d[EdgeTop])
	}
	if d[EdgeBottom] <= d[EdgeTop] || d[EdgeRight] <= d[EdgeLeft] {
		t.Errorf("far edges should be further away, got %v", d)
	}
}

func TestBlockBounceInvertsExactlyOneAxis(t *testing.T) {
	block := core.NewRect(23, 23, 54, 20)
	const vx, vy = 0.3, -0.7

	for x := 10.0; x <= 90; x += 2.5 {
		for y := 10.0; y <= 56; y += 2.5 {
			center := core.Point{X: x, Y: y}
			if !Overlaps(center, 5, block) {
				continue
			}

			nvx, nvy, edge := BlockBounce(center, vx, vy, block)
			flippedX := nvx == -vx
			flippedY := nvy == -vy

			if flippedX == flippedY {
				t.Fatalf("at %v: flippedX=%v flippedY=%v, expected exactly one", center, flippedX, flippedY)
			}
			if edge != NearestEdge(center, block) {
				t.Fatalf("at %v: edge %s does not match NearestEdge", center, edge)
			}
			if flippedX != edge.Horizontal() {
				t.Fatalf("at %v: edge %s but flippedX=%v", center, edge, flippedX)
			}
		}
	}
}
