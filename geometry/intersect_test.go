package geometry

import (
	"math"
	"testing"
)

func TestIntersectCrossing(t *testing.T) {
	ab := Segment{A: Point{0, 0}, B: Point{10, 10}}
	cd := Segment{A: Point{0, 10}, B: Point{10, 0}}

	p, ok := Intersect(ab, cd)
	if !ok {
		t.Fatal("Expected crossing segments to intersect")
	}

	if p.X != 5 || p.Y != 5 {
		t.Errorf("Expected intersection at (5, 5), got (%v, %v)", p.X, p.Y)
	}
}

func TestIntersectOrderIndependent(t *testing.T) {
	ab := Segment{A: Point{0, 0}, B: Point{10, 10}}
	cd := Segment{A: Point{0, 10}, B: Point{10, 0}}

	p1, ok1 := Intersect(ab, cd)
	p2, ok2 := Intersect(cd, ab)

	if !ok1 || !ok2 {
		t.Fatal("Expected intersection in both argument orders")
	}

	if p1 != p2 {
		t.Errorf("Expected same point both ways, got %v and %v", p1, p2)
	}
}

func TestIntersectParallel(t *testing.T) {
	ab := Segment{A: Point{0, 0}, B: Point{10, 0}}
	cd := Segment{A: Point{0, 5}, B: Point{10, 5}}

	if _, ok := Intersect(ab, cd); ok {
		t.Error("Expected parallel segments not to intersect")
	}
}

func TestIntersectCollinear(t *testing.T) {
	// Collinear overlap also degenerates the denominator and reports none.
	ab := Segment{A: Point{0, 0}, B: Point{10, 0}}
	cd := Segment{A: Point{5, 0}, B: Point{15, 0}}

	if _, ok := Intersect(ab, cd); ok {
		t.Error("Expected collinear segments not to intersect")
	}
}

func TestIntersectOutsideExtents(t *testing.T) {
	// The infinite lines cross at (5, 5), well past both segments.
	ab := Segment{A: Point{0, 0}, B: Point{1, 1}}
	cd := Segment{A: Point{5, 0}, B: Point{5, -1}}

	if _, ok := Intersect(ab, cd); ok {
		t.Error("Expected no intersection outside segment extents")
	}
}

func TestIntersectSharedEndpoint(t *testing.T) {
	// Boundary values of t and u are inclusive, so a shared endpoint counts.
	ab := Segment{A: Point{0, 0}, B: Point{10, 10}}
	cd := Segment{A: Point{10, 10}, B: Point{20, 0}}

	p, ok := Intersect(ab, cd)
	if !ok {
		t.Fatal("Expected segments sharing an endpoint to intersect")
	}

	if p.X != 10 || p.Y != 10 {
		t.Errorf("Expected intersection at shared endpoint (10, 10), got (%v, %v)", p.X, p.Y)
	}
}

func TestIntersectTouchingMidpoint(t *testing.T) {
	// CD ends exactly on AB's interior: u == 1 is accepted.
	ab := Segment{A: Point{0, 0}, B: Point{10, 0}}
	cd := Segment{A: Point{5, 5}, B: Point{5, 0}}

	p, ok := Intersect(ab, cd)
	if !ok {
		t.Fatal("Expected touching segments to intersect")
	}

	if p.X != 5 || p.Y != 0 {
		t.Errorf("Expected intersection at (5, 0), got (%v, %v)", p.X, p.Y)
	}
}

func TestIntersectDegenerateSegment(t *testing.T) {
	// A point "segment" lying on CD. The t denominator collapses to zero
	// here, so the parallel check fires and no intersection is reported,
	// even though the point geometrically touches CD.
	ab := Segment{A: Point{5, 5}, B: Point{5, 5}}
	cd := Segment{A: Point{0, 0}, B: Point{10, 10}}

	if _, ok := Intersect(ab, cd); ok {
		t.Error("Expected degenerate segment to report no intersection")
	}
}

func TestIntersectNaNInput(t *testing.T) {
	nan := math.NaN()
	ab := Segment{A: Point{nan, 0}, B: Point{10, 10}}
	cd := Segment{A: Point{0, 10}, B: Point{10, 0}}

	if _, ok := Intersect(ab, cd); ok {
		t.Error("Expected NaN input to report no intersection")
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, f float64
		want    float64
	}{
		{"midpoint", 0, 10, 0.5, 5},
		{"start", 0, 10, 0, 0},
		{"end", 0, 10, 1, 10},
		{"extrapolate past", 0, 10, 2, 20},
		{"extrapolate before", 0, 10, -1, -10},
		{"negative range", 10, -10, 0.25, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Lerp(tc.a, tc.b, tc.f)
			if got != tc.want {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tc.a, tc.b, tc.f, got, tc.want)
			}
		})
	}
}

func TestLerpPoint(t *testing.T) {
	a := Point{0, 0}
	b := Point{10, 20}

	p := LerpPoint(a, b, 0.5)
	if p.X != 5 || p.Y != 10 {
		t.Errorf("Expected (5, 10), got (%v, %v)", p.X, p.Y)
	}
}
