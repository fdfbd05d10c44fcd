package coord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentDistToPoint(t *testing.T) {
	s := Segment{Point{0, 0, 0}, Point{4, 0, 0}}

	t.Run("perpendicular foot inside segment", func(t *testing.T) {
		assert.InDelta(t, 2.0, s.DistToPoint(Point{2, 2, 0}), EPS)
	})

	t.Run("clamps beyond the ends", func(t *testing.T) {
		assert.InDelta(t, 5.0, s.DistToPoint(Point{-3, 4, 0}), EPS)
		assert.InDelta(t, 3.0, s.DistToPoint(Point{7, 0, 0}), EPS)
	})

	t.Run("degenerate segment", func(t *testing.T) {
		deg := Segment{Point{1, 1, 1}, Point{1, 1, 1}}
		assert.InDelta(t, 1.0, deg.DistToPoint(Point{1, 1, 2}), EPS)
	})
}

func TestSegmentContains(t *testing.T) {
	s := Segment{Point{0, 0, 0}, Point{2, 2, 0}}

	assert.True(t, s.Contains(Point{1, 1, 0}))
	assert.True(t, s.Contains(Point{0, 0, 0}))
	assert.True(t, s.Contains(Point{2, 2, 0}))
	// Slightly off the line, within tolerance.
	assert.True(t, s.Contains(Point{1 + EPS/10, 1, 0}))
	assert.False(t, s.Contains(Point{1, 1.1, 0}))
	// On the line but beyond the ends.
	assert.False(t, s.Contains(Point{3, 3, 0}))
}

func TestSegmentDistToSegment(t *testing.T) {
	t.Run("crossing segments touch", func(t *testing.T) {
		a := Segment{Point{-1, 0, 0}, Point{1, 0, 0}}
		b := Segment{Point{0, -1, 0}, Point{0, 1, 0}}
		assert.InDelta(t, 0.0, a.DistToSegment(b), EPS)
	})

	t.Run("parallel segments", func(t *testing.T) {
		a := Segment{Point{0, 0, 0}, Point{4, 0, 0}}
		b := Segment{Point{0, 3, 0}, Point{4, 3, 0}}
		assert.InDelta(t, 3.0, a.DistToSegment(b), EPS)
	})

	t.Run("skew segments in 3D", func(t *testing.T) {
		a := Segment{Point{-1, 0, 0}, Point{1, 0, 0}}
		b := Segment{Point{0, -1, 2}, Point{0, 1, 2}}
		assert.InDelta(t, 2.0, a.DistToSegment(b), EPS)
	})

	t.Run("closest at endpoints", func(t *testing.T) {
		a := Segment{Point{0, 0, 0}, Point{1, 0, 0}}
		b := Segment{Point{4, 4, 0}, Point{4, 8, 0}}
		assert.InDelta(t, 5.0, a.DistToSegment(b), EPS)
	})

	t.Run("degenerate on both sides", func(t *testing.T) {
		a := Segment{Point{0, 0, 0}, Point{0, 0, 0}}
		b := Segment{Point{0, 0, 7}, Point{0, 0, 7}}
		assert.InDelta(t, 7.0, a.DistToSegment(b), EPS)
	})
}

func TestSegmentIntersectsRay(t *testing.T) {
	// A vertical edge like the guarded left edge of a conflict rectangle.
	edge := Segment{Point{2, 0, 0}, Point{2, 3, 0}}

	t.Run("diagonal ray crosses", func(t *testing.T) {
		assert.True(t, edge.IntersectsRay(Point{0, 0, 0}, Point{1, 1, 0}))
	})

	t.Run("crossing behind the origin does not count", func(t *testing.T) {
		assert.False(t, edge.IntersectsRay(Point{3, 0, 0}, Point{1, 1, 0}))
	})

	t.Run("ray from a point on the edge does not count", func(t *testing.T) {
		assert.False(t, edge.IntersectsRay(Point{2, 3, 0}, Point{1, 1, 0}))
	})

	t.Run("ray passing beyond the far end misses", func(t *testing.T) {
		// Crosses the edge's line at y=4, above the edge.
		assert.False(t, edge.IntersectsRay(Point{1, 3, 0}, Point{1, 1, 0}))
	})

	t.Run("parallel ray never crosses", func(t *testing.T) {
		assert.False(t, edge.IntersectsRay(Point{0, 0, 0}, Point{0, 1, 0}))
	})

	t.Run("horizontal ray from a stopped partner", func(t *testing.T) {
		assert.True(t, edge.IntersectsRay(Point{0, 1.5, 0}, Point{0.5, 0, 0}))
		assert.False(t, edge.IntersectsRay(Point{0, 4, 0}, Point{0.5, 0, 0}))
	})
}
