// Package coord times a fleet of robot paths so that no two robots ever
// occupy a mutually exclusive region of space at the same moment.
//
// The algorithm follows Ghrist, O'Kane and LaValle, "Computing Pareto
// Optimal Coordinations on Roadmaps" (IJRR 2005). Each unordered pair of
// robots gets a 2D configuration space (arclength x arclength) holding
// the rectangles where the robots' physical paths come within the safety
// margin of each other. An event-driven simulation then repeatedly picks
// the maximal safe velocity for every robot (either the global cap or a
// full stop at a guarded rectangle edge) and jumps straight to the next
// event: a robot reaching its goal or a pair reaching a rectangle edge.
// The resulting piecewise-linear trace is folded back onto the original
// path geometry, preserving every input waypoint.
package coord

import (
	"math"

	"github.com/pkg/errors"
)

// ErrDeadlock means every robot was simultaneously blocked or finished
// while some had not reached its goal: the input paths are not jointly
// resolvable. The caller should keep its previous trajectories or plan
// new paths.
var ErrDeadlock = errors.New("no robot can move; are the paths monotone?")

// ErrNoProgress means the next computed event was not after the current
// one. It indicates degenerate geometry rather than a bad input.
var ErrNoProgress = errors.New("next event is not after the current event")

// Coordinator runs the event simulation. The zero value is not useful;
// use NewCoordinator and override MaxVel or Margin as needed. A
// Coordinator keeps only diagnostic state between calls (the last
// conflict table and trace); every call starts from scratch.
type Coordinator struct {
	MaxVel float64 // velocity cap in configuration space
	Margin float64 // safety margin for the conflict table

	ids   []int
	delta *Delta
	trace [][]float64
	times []float64
}

func NewCoordinator() *Coordinator {
	return &Coordinator{MaxVel: MaxVel, Margin: ObstacleMargin}
}

// Coordinate times the given untimed paths, keyed by robot id, so the
// robots never conflict. With zero or one robots the input is returned
// unchanged. The input paths are never modified; on error the caller
// keeps its originals.
func (c *Coordinator) Coordinate(paths map[int]*Path) (map[int]*Path, error) {
	if len(paths) <= 1 {
		return paths, nil
	}
	return c.run(paths, NewDelta(paths, c.Margin))
}

// CoordinateStub passes paths through untouched. It stands in for
// Coordinate when coordination is deliberately bypassed.
func CoordinateStub(paths map[int]*Path) map[int]*Path {
	return paths
}

// LastDelta returns the conflict table computed by the most recent call,
// for inspection only.
func (c *Coordinator) LastDelta() *Delta {
	return c.delta
}

// LastTrace returns the configuration-space positions and times of the
// most recent call's events, for inspection only. Row k holds every
// robot's arclength at event k, in ascending robot id order.
func (c *Coordinator) LastTrace() ([][]float64, []float64) {
	return c.trace, c.times
}

// run is the event loop proper, with the conflict table supplied by the
// caller. Fatal conditions arrive as panics from the step helpers.
func (c *Coordinator) run(paths map[int]*Path, delta *Delta) (result map[int]*Path, err error) {
	defer func() {
		if rerr := recoverCoordError(recover()); rerr != nil {
			result, err = nil, rerr
		}
	}()

	c.ids = sortedIDs(paths)
	c.delta = delta
	n := len(c.ids)

	goal := make([]float64, n)
	for i, id := range c.ids {
		if paths[id] == nil || paths[id].Len() == 0 {
			fatalf("robot %d has no path", id)
		}
		goal[i] = paths[id].Length()
	}

	x := [][]float64{make([]float64, n)}
	t := []float64{0}
	for !atGoal(x[len(x)-1], goal) {
		v := c.maximalVelocity(x[len(x)-1], goal)
		dt := c.eventDt(x[len(x)-1], goal, v)
		next := make([]float64, n)
		for i := range next {
			next[i] = x[len(x)-1][i] + v[i]*dt
		}
		x = append(x, next)
		t = append(t, t[len(t)-1]+dt)
	}
	c.trace, c.times = x, t

	return c.toPaths(x, t, paths), nil
}

// atGoal reports whether every robot's position is within EPS of its
// path length.
func atGoal(x, goal []float64) bool {
	for i := range x {
		if math.Abs(x[i]-goal[i]) > EPS {
			return false
		}
	}
	return true
}

// maximalVelocity computes the fastest safe velocity for every robot at
// the current positions: the cap, or zero for finished robots and for
// robots held at a guarded rectangle edge. O(n + i) over the i conflict
// rectangles.
func (c *Coordinator) maximalVelocity(x, goal []float64) []float64 {
	n := len(c.ids)
	v := make([]float64, n)
	for i := range v {
		v[i] = c.MaxVel
		if math.Abs(x[i]-goal[i]) < EPS {
			v[i] = 0
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for _, inter := range c.delta.Between(c.ids[i], c.ids[j]) {
				if inter.Orientation == 1 {
					// Hold i at the left edge of the rectangle, except at the
					// top-left corner where j is already clear.
					if x[i] > inter.Interval1.Lo-EPS && x[j] < inter.Interval2.Hi-EPS {
						v[i] = 0
					}
				} else {
					// Hold j at the bottom edge, except at the bottom-right
					// corner.
					if x[i] < inter.Interval1.Hi-EPS && x[j] > inter.Interval2.Lo-EPS {
						v[j] = 0
					}
				}
			}
		}
	}

	// Everyone stopped with goals outstanding is a dead end, not a state
	// to simulate.
	stuck := true
	for i := range v {
		if v[i] > EPS {
			stuck = false
			break
		}
	}
	if stuck {
		fatal(errors.WithStack(ErrDeadlock))
	}
	return v
}

// eventDt computes the time until the next event: a robot arriving at
// its goal, or a pair's configuration-space position reaching the
// guarded edge of a conflict rectangle. O(n + i).
func (c *Coordinator) eventDt(x, goal, v []float64) float64 {
	dt := math.Inf(1)

	for i := range v {
		if v[i] > EPS {
			dt = math.Min(dt, (goal[i]-x[i])/v[i])
		}
	}

	n := len(c.ids)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for _, inter := range c.delta.Between(c.ids[i], c.ids[j]) {
				// The pair's position and velocity as a 2D point and ray.
				pt := Point{X: x[i], Y: x[j]}
				vec := Point{X: v[i], Y: v[j]}

				var seg Segment
				if inter.Orientation == 1 {
					// Left edge, from the s-axis up to the safe corner.
					seg = Segment{
						Point{X: inter.Interval1.Lo},
						Point{X: inter.Interval1.Lo, Y: inter.Interval2.Hi},
					}
				} else {
					// Bottom edge, out to the safe corner.
					seg = Segment{
						Point{Y: inter.Interval2.Lo},
						Point{X: inter.Interval1.Hi, Y: inter.Interval2.Lo},
					}
				}

				if seg.Contains(pt) {
					// Already held on the edge: the event is the far end of the
					// edge, unless we are sitting exactly on an end already.
					if !seg.A.Eq(pt) && !seg.B.Eq(pt) {
						if inter.Orientation == 1 {
							dt = math.Min(dt, (inter.Interval2.Hi-pt.Y)/v[j])
						} else {
							dt = math.Min(dt, (inter.Interval1.Hi-pt.X)/v[i])
						}
					}
				} else if seg.IntersectsRay(pt, vec) {
					if inter.Orientation == 1 {
						dt = math.Min(dt, (inter.Interval1.Lo-pt.X)/v[i])
					} else {
						dt = math.Min(dt, (inter.Interval2.Lo-pt.Y)/v[j])
					}
				}
			}
		}
	}

	if dt < EPS {
		fatal(errors.Wrapf(ErrNoProgress, "dt=%g", dt))
	}
	return dt
}

// mergeEvents drops interior trace points where the robot's velocity did
// not change, so collinear position-vs-time segments collapse into one.
// Applying it to an already merged trace is a no-op.
func mergeEvents(xs, ts []float64) ([]float64, []float64) {
	if len(xs) < 2 {
		return xs, ts
	}
	mergedX := []float64{xs[0]}
	mergedT := []float64{ts[0]}
	for i := 1; i < len(xs)-1; i++ {
		vl := (xs[i] - xs[i-1]) / (ts[i] - ts[i-1])
		vr := (xs[i+1] - xs[i]) / (ts[i+1] - ts[i])
		if math.Abs(vl-vr) > EPS {
			mergedX = append(mergedX, xs[i])
			mergedT = append(mergedT, ts[i])
		}
	}
	mergedX = append(mergedX, xs[len(xs)-1])
	mergedT = append(mergedT, ts[len(ts)-1])
	return mergedX, mergedT
}

// toPaths converts the event trace back into per-robot timed paths,
// walking each robot's original waypoints together with its merged
// events. Original waypoints keep their poses and get interpolated
// times; velocity changes between waypoints get interpolated poses.
func (c *Coordinator) toPaths(x [][]float64, t []float64, old map[int]*Path) map[int]*Path {
	paths := make(map[int]*Path, len(c.ids))
	for k, id := range c.ids {
		lengths := old[id].Lengths()
		poses := old[id].Poses

		xs := make([]float64, len(x))
		for e := range x {
			xs[e] = x[e][k]
		}
		mergedX, mergedT := mergeEvents(xs, t)

		path := NewPath()
		path.AddPose(poses[0], 0)

		// prevX and prevT track the last emitted keyframe; interpolating
		// from there keeps waypoint times exact when several waypoints fall
		// between the same two events.
		i, j := 1, 1
		prevX, prevT := 0.0, 0.0
		for i < len(mergedX) && j < len(poses) {
			switch {
			case lengths[j]+EPS < mergedX[i]:
				// Waypoint comes before the next event: same velocity, new
				// direction.
				f := (lengths[j] - prevX) / (mergedX[i] - prevX)
				tt := prevT + (mergedT[i]-prevT)*f
				path.AddPose(poses[j], tt)
				prevX, prevT = lengths[j], tt
				j++
			case mergedX[i] < lengths[j]-EPS:
				// Velocity changes between two waypoints: insert a pose on the
				// original geometry.
				f := (mergedX[i] - lengths[j-1]) / (lengths[j] - lengths[j-1])
				path.AddPose(lerp(poses[j-1], poses[j], f), mergedT[i])
				prevX, prevT = mergedX[i], mergedT[i]
				i++
			default:
				// Waypoint and event coincide.
				path.AddPose(poses[j], mergedT[i])
				prevX, prevT = mergedX[i], mergedT[i]
				i++
				j++
			}
		}
		paths[id] = path
	}
	return paths
}
