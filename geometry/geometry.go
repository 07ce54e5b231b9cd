package geometry

import "math"

// IsFacingPoint checks if a segment is facing towards a given point
// Uses cross product to determine if the point is on the "front" side of the segment
func IsFacingPoint(seg Segment, point Point) bool {
	dx1 := seg.B.X - seg.A.X
	dy1 := seg.B.Y - seg.A.Y
	dx2 := point.X - seg.A.X
	dy2 := point.Y - seg.A.Y

	cross := dx1*dy2 - dy1*dx2
	// Return true if point is on the positive side (segment is facing point)
	return cross > 0
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return LerpPoint(a, b, 0.5)
}

// SpanAngle builds a segment of the given total length centered on c,
// oriented at angle radians. The A endpoint sits at angle+pi.
func SpanAngle(c Point, angle, length float64) Segment {
	half := length / 2
	dx := math.Cos(angle) * half
	dy := math.Sin(angle) * half
	return Segment{
		A: Point{X: c.X - dx, Y: c.Y - dy},
		B: Point{X: c.X + dx, Y: c.Y + dy},
	}
}
