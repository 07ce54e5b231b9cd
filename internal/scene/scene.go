// Package scene generates the wall segments the demo probes for
// intersections: a random scatter of segments plus the screen border.
package scene

import (
	"math"
	"math/rand"

	"chosenoffset.com/linecross/geometry"
)

// MinWallLength rejects walls too short to be visible or interesting.
const MinWallLength = 40.0

// maxWallAttempts bounds the random sampling for a single wall before
// falling back to the inset diagonal.
const maxWallAttempts = 32

// Generator produces wall segments with a configurable random source
type Generator struct {
	rng    *rand.Rand
	width  float64
	height float64
	margin float64
}

// NewGenerator creates a new Generator for a screen of the given size.
// The margin keeps random walls away from the screen edges; it is clamped
// so the inset area can still hold a wall of MinWallLength.
func NewGenerator(rng *rand.Rand, width, height int, margin float64) *Generator {
	w := float64(width)
	h := float64(height)

	maxMargin := (math.Min(w, h) - MinWallLength) / 2
	if maxMargin < 0 {
		maxMargin = 0
	}
	if margin > maxMargin {
		margin = maxMargin
	}
	if margin < 0 {
		margin = 0
	}

	return &Generator{
		rng:    rng,
		width:  w,
		height: h,
		margin: margin,
	}
}

// Walls returns count random segments within the screen bounds followed by
// the four border segments. Results are deterministic for a seeded source.
func (g *Generator) Walls(count int) []geometry.Segment {
	segments := make([]geometry.Segment, 0, count+4)

	for i := 0; i < count; i++ {
		segments = append(segments, g.randomWall())
	}

	segments = append(segments, BorderSegments(g.width, g.height)...)
	return segments
}

// randomWall samples endpoint pairs inside the margin-inset bounds until
// the wall is long enough to matter. Attempts are bounded so cramped
// bounds cannot stall generation; the fallback is the inset diagonal,
// the longest wall the area can hold.
func (g *Generator) randomWall() geometry.Segment {
	for i := 0; i < maxWallAttempts; i++ {
		a := g.randomPoint()
		b := g.randomPoint()
		if geometry.Distance(a, b) >= MinWallLength {
			return geometry.Segment{A: a, B: b}
		}
	}

	return geometry.Segment{
		A: geometry.Point{X: g.margin, Y: g.margin},
		B: geometry.Point{X: g.width - g.margin, Y: g.height - g.margin},
	}
}

func (g *Generator) randomPoint() geometry.Point {
	return geometry.Point{
		X: g.margin + g.rng.Float64()*(g.width-2*g.margin),
		Y: g.margin + g.rng.Float64()*(g.height-2*g.margin),
	}
}

// BorderSegments returns the four segments outlining a width x height screen,
// wound clockwise so each edge faces inward.
func BorderSegments(width, height float64) []geometry.Segment {
	topLeft := geometry.Point{X: 0, Y: 0}
	topRight := geometry.Point{X: width, Y: 0}
	bottomRight := geometry.Point{X: width, Y: height}
	bottomLeft := geometry.Point{X: 0, Y: height}

	return []geometry.Segment{
		{A: topLeft, B: topRight},
		{A: topRight, B: bottomRight},
		{A: bottomRight, B: bottomLeft},
		{A: bottomLeft, B: topLeft},
	}
}
