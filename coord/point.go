package coord

import (
	"fmt"
	"math"
)

// Point is a point (or free vector) in 3D space. It does double duty: a
// physical robot position, and a 2D point in a pair's configuration
// space, where X is the first robot's arclength, Y the second's, and Z
// is ignored.
type Point struct {
	X, Y, Z float64
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

func (p Point) Neg() Point {
	return Point{-p.X, -p.Y, -p.Z}
}

func (p Point) Scale(k float64) Point {
	return Point{p.X * k, p.Y * k, p.Z * k}
}

// Inner is the dot product.
func (p Point) Inner(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

func (p Point) Cross(q Point) Point {
	return Point{
		p.Y*q.Z - p.Z*q.Y,
		p.Z*q.X - p.X*q.Z,
		p.X*q.Y - p.Y*q.X,
	}
}

func (p Point) Norm() float64 {
	return math.Sqrt(p.Inner(p))
}

func (p Point) Dist(q Point) float64 {
	return p.Sub(q).Norm()
}

// Eq is tolerance-based equality: two points are equal when they are
// within EPS of each other. Exact float equality would break every
// downstream corner comparison.
func (p Point) Eq(q Point) bool {
	return p.Dist(q) < EPS
}

func (p Point) String() string {
	return fmt.Sprintf("[%g, %g, %g]", p.X, p.Y, p.Z)
}

// cross2 is the scalar cross product of the XY projections, used by the
// 2D configuration-space queries.
func cross2(p, q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}
