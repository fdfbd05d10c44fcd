package coord

import "math"

// Segment is an ordered pair of points. Like Point it is used both for
// physical 3D path segments and for the 2D edges of conflict rectangles
// in configuration space.
type Segment struct {
	A, B Point
}

func (s Segment) Len() float64 {
	return s.A.Dist(s.B)
}

// DistToPoint is the minimum distance from p to any point of the segment.
func (s Segment) DistToPoint(p Point) float64 {
	d := s.B.Sub(s.A)
	dd := d.Inner(d)
	if dd < EPS*EPS {
		// Degenerate segment.
		return s.A.Dist(p)
	}
	t := clamp(p.Sub(s.A).Inner(d)/dd, 0, 1)
	return s.A.Add(d.Scale(t)).Dist(p)
}

// Contains reports whether p lies on the segment, within EPS.
func (s Segment) Contains(p Point) bool {
	return s.DistToPoint(p) < EPS
}

// DistToSegment is the minimum distance between two segments in 3D,
// found by clamping the closest points of the underlying lines to both
// segments.
func (s Segment) DistToSegment(o Segment) float64 {
	d1 := s.B.Sub(s.A)
	d2 := o.B.Sub(o.A)
	r := s.A.Sub(o.A)
	a := d1.Inner(d1)
	e := d2.Inner(d2)
	f := d2.Inner(r)

	var t, u float64
	switch {
	case a < EPS*EPS && e < EPS*EPS:
		// Both segments degenerate to points.
		return s.A.Dist(o.A)
	case a < EPS*EPS:
		u = clamp(f/e, 0, 1)
	default:
		c := d1.Inner(r)
		if e < EPS*EPS {
			t = clamp(-c/a, 0, 1)
		} else {
			b := d1.Inner(d2)
			denom := a*e - b*b
			if denom > EPS {
				t = clamp((b*f-c*e)/denom, 0, 1)
			}
			u = (b*t + f) / e
			// If u left [0, 1], clamp it and recompute t against it.
			if u < 0 {
				u = 0
				t = clamp(-c/a, 0, 1)
			} else if u > 1 {
				u = 1
				t = clamp((b-c)/a, 0, 1)
			}
		}
	}
	return s.A.Add(d1.Scale(t)).Dist(o.A.Add(d2.Scale(u)))
}

// IntersectsRay reports whether the ray from origin along dir crosses
// the segment, looking only at the XY plane. A crossing at the ray's own
// origin does not count; the caller handles the already-on-the-edge case
// through Contains.
func (s Segment) IntersectsRay(origin, dir Point) bool {
	e := s.B.Sub(s.A)
	denom := cross2(dir, e)
	if math.Abs(denom) < EPS {
		// Parallel to the segment; overlap is the caller's Contains case.
		return false
	}
	ao := s.A.Sub(origin)
	t := cross2(ao, e) / denom   // parameter along the ray
	u := cross2(ao, dir) / denom // parameter along the segment
	return t > EPS && u >= -EPS && u <= 1+EPS
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
