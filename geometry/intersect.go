package geometry

// Lerp linearly interpolates between a and b by t.
// t is not clamped; values outside [0,1] extrapolate.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpPoint interpolates between two points componentwise by t.
func LerpPoint(a, b Point, t float64) Point {
	return Point{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
	}
}

// Intersect computes where two finite segments cross, if they do.
// It solves for parameters t (position along ab) and u (position along cd)
// such that the interpolated point on ab at t equals the one on cd at u,
// and accepts the solution only when both lie in [0,1] inclusive.
//
// A zero t denominator means the segments are parallel (or a degenerate
// configuration) and always reports no intersection. The u denominator is
// deliberately not zero-checked: a zero there yields a non-finite u that
// fails the range test anyway. All comparisons are exact; there is no
// epsilon, so near-parallel and near-endpoint inputs are sensitive to
// float64 rounding.
func Intersect(ab, cd Segment) (Point, bool) {
	a, b := ab.A, ab.B
	c, d := cd.A, cd.B

	tNumerator := a.Y*d.X - c.Y*d.X - a.Y*c.X + c.Y*c.X - a.X*d.Y + c.X*d.Y + a.X*c.Y - c.X*c.Y
	tDivider := b.X*d.Y - a.X*d.Y - b.X*c.Y + a.X*c.Y - b.Y*d.X + a.Y*d.X + b.Y*c.X - a.Y*c.X

	if tDivider == 0 {
		return Point{}, false
	}

	uNumerator := c.X*b.Y - a.X*b.Y - c.X*a.Y + a.X*a.Y - c.Y*b.X + a.Y*b.X + c.Y*a.X - a.Y*a.X
	uDivider := d.Y*b.X - c.Y*b.X - d.Y*a.X + c.Y*a.X - d.X*b.Y + c.X*b.Y + d.X*a.Y - c.X*a.Y

	t := tNumerator / tDivider
	u := uNumerator / uDivider

	// NaN fails these comparisons, so malformed input falls through to "none".
	if t >= 0 && t <= 1 && u >= 0 && u <= 1 {
		return LerpPoint(a, b, t), true
	}

	return Point{}, false
}
