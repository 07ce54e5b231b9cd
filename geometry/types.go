package geometry

// Point represents a 2D point in space
type Point struct {
	X, Y float64
}

// Segment represents a finite line between two endpoints
type Segment struct {
	A, B Point
}
