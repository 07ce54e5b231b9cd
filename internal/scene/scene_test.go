package scene

import (
	"math/rand"
	"testing"

	"chosenoffset.com/linecross/geometry"
)

func TestWallsCount(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(1)), 800, 600, 50)

	walls := gen.Walls(12)
	if len(walls) != 16 {
		t.Fatalf("Expected 12 walls + 4 borders = 16 segments, got %d", len(walls))
	}
}

func TestWallsWithinBounds(t *testing.T) {
	const margin = 50.0
	gen := NewGenerator(rand.New(rand.NewSource(42)), 800, 600, margin)

	walls := gen.Walls(20)
	// Only the random walls are constrained by the margin; the last four
	// are the screen border.
	for _, seg := range walls[:20] {
		for _, p := range []geometry.Point{seg.A, seg.B} {
			if p.X < margin || p.X > 800-margin {
				t.Errorf("Wall endpoint X=%v outside margin bounds", p.X)
			}
			if p.Y < margin || p.Y > 600-margin {
				t.Errorf("Wall endpoint Y=%v outside margin bounds", p.Y)
			}
		}
	}
}

func TestWallsMinimumLength(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(7)), 800, 600, 50)

	walls := gen.Walls(50)
	for i, seg := range walls[:50] {
		if d := geometry.Distance(seg.A, seg.B); d < MinWallLength {
			t.Errorf("Wall %d has length %v, want at least %v", i, d, MinWallLength)
		}
	}
}

func TestWallsDeterministic(t *testing.T) {
	gen1 := NewGenerator(rand.New(rand.NewSource(99)), 800, 600, 50)
	gen2 := NewGenerator(rand.New(rand.NewSource(99)), 800, 600, 50)

	walls1 := gen1.Walls(10)
	walls2 := gen2.Walls(10)

	for i := range walls1 {
		if walls1[i] != walls2[i] {
			t.Fatalf("Wall %d differs between identically seeded generators: %v vs %v",
				i, walls1[i], walls2[i])
		}
	}
}

func TestWallsTinyBoundsTerminate(t *testing.T) {
	// A margin of 50 on a 100x100 screen would inset the sample area to a
	// single point; the clamp must leave room for a MinWallLength wall and
	// generation must complete.
	gen := NewGenerator(rand.New(rand.NewSource(1)), 100, 100, 50)

	walls := gen.Walls(5)
	if len(walls) != 9 {
		t.Fatalf("Expected 5 walls + 4 borders = 9 segments, got %d", len(walls))
	}

	if gen.margin != 30 {
		t.Errorf("Expected margin clamped to 30 on a 100x100 screen, got %v", gen.margin)
	}

	for i, seg := range walls[:5] {
		if d := geometry.Distance(seg.A, seg.B); d < MinWallLength {
			t.Errorf("Wall %d has length %v, want at least %v", i, d, MinWallLength)
		}
	}
}

func TestWallsDegenerateScreenTerminates(t *testing.T) {
	// A screen smaller than MinWallLength cannot hold a full-length wall at
	// all; generation must still return rather than reroll forever.
	gen := NewGenerator(rand.New(rand.NewSource(3)), 20, 20, 10)

	walls := gen.Walls(3)
	if len(walls) != 7 {
		t.Fatalf("Expected 3 walls + 4 borders = 7 segments, got %d", len(walls))
	}
}

func TestNegativeMarginClamped(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(5)), 800, 600, -25)

	if gen.margin != 0 {
		t.Errorf("Expected negative margin clamped to 0, got %v", gen.margin)
	}

	walls := gen.Walls(10)
	for _, seg := range walls[:10] {
		for _, p := range []geometry.Point{seg.A, seg.B} {
			if p.X < 0 || p.X > 800 || p.Y < 0 || p.Y > 600 {
				t.Errorf("Wall endpoint %v outside screen bounds", p)
			}
		}
	}
}

func TestBorderSegments(t *testing.T) {
	borders := BorderSegments(800, 600)
	if len(borders) != 4 {
		t.Fatalf("Expected 4 border segments, got %d", len(borders))
	}

	// The border loop should be closed: each segment ends where the next begins.
	for i, seg := range borders {
		next := borders[(i+1)%len(borders)]
		if seg.B != next.A {
			t.Errorf("Border %d ends at %v but border %d starts at %v", i, seg.B, (i+1)%4, next.A)
		}
	}
}
