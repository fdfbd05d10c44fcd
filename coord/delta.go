package coord

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/logrusorgru/aurora"
)

// Interval is a 1D range of arclength along one robot's path.
type Interval struct {
	Lo, Hi float64
}

// Intersection is one conflict rectangle between two robots: while the
// first robot's arclength is inside Interval1 and the second's is inside
// Interval2, the robots are within the safety margin of each other.
// Orientation 1 means the first robot yields at the rectangle's left
// edge; any other value means the second robot yields at the bottom
// edge.
type Intersection struct {
	Interval1   Interval
	Interval2   Interval
	Orientation int
}

func (x Intersection) String() string {
	yields := aurora.Green("second yields")
	if x.Orientation == 1 {
		yields = aurora.Red("first yields")
	}
	return fmt.Sprintf("[%.3f, %.3f] x [%.3f, %.3f] (%s)",
		x.Interval1.Lo, x.Interval1.Hi, x.Interval2.Lo, x.Interval2.Hi, yields)
}

// mirror swaps the two axes of the rectangle, for answering a pair query
// in the reverse id order. The left edge of (a, b) is the bottom edge of
// (b, a), so the orientation toggles.
func (x Intersection) mirror() Intersection {
	orientation := 1
	if x.Orientation == 1 {
		orientation = 0
	}
	return Intersection{
		Interval1:   x.Interval2,
		Interval2:   x.Interval1,
		Orientation: orientation,
	}
}

type pairKey struct {
	lo, hi int
}

// Delta is the conflict table: for every unordered pair of robots, the
// conflict rectangles in that pair's configuration space. It is built
// once per coordination call and read-only afterwards; the coordinator
// scans it on every event step.
type Delta struct {
	table map[pairKey][]Intersection
}

// NewDelta computes the conflict table for the given physical paths.
// Rectangles are found by cutting each polyline into cells of at most
// margin/2 arclength, marking every cell pair whose exact 3D distance is
// below the margin, and merging 8-connected marked cells into their
// bounding boxes in arclength space.
func NewDelta(paths map[int]*Path, margin float64) *Delta {
	ids := sortedIDs(paths)
	d := &Delta{table: make(map[pairKey][]Intersection)}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			inters := pairIntersections(paths[ids[i]], paths[ids[j]], margin)
			if len(inters) > 0 {
				d.table[pairKey{ids[i], ids[j]}] = inters
			}
		}
	}
	return d
}

// Between returns the conflict rectangles for a pair of robots, with
// Interval1 along a's path and Interval2 along b's. The table stores the
// smaller id first; a reversed query gets the mirrored rectangles.
func (d *Delta) Between(a, b int) []Intersection {
	if a <= b {
		return d.table[pairKey{a, b}]
	}
	stored := d.table[pairKey{b, a}]
	if len(stored) == 0 {
		return nil
	}
	mirrored := make([]Intersection, len(stored))
	for i, x := range stored {
		mirrored[i] = x.mirror()
	}
	return mirrored
}

// Size is the total number of conflict rectangles across all pairs.
func (d *Delta) Size() int {
	n := 0
	for _, inters := range d.table {
		n += len(inters)
	}
	return n
}

func (d *Delta) String() string {
	keys := make([]pairKey, 0, len(d.table))
	for k := range d.table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].lo != keys[j].lo {
			return keys[i].lo < keys[j].lo
		}
		return keys[i].hi < keys[j].hi
	})
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "(%d, %d):\n", k.lo, k.hi)
		for _, x := range d.table[k] {
			fmt.Fprintf(&b, "  %s\n", x)
		}
	}
	return b.String()
}

// cell is one subdivision of a polyline: a short physical segment and
// the arclength range it covers.
type cell struct {
	seg    Segment
	lo, hi float64
}

// subdivide cuts a path into cells of at most step arclength each.
// Zero-length path segments produce no cells.
func subdivide(p *Path, step float64) []cell {
	var cells []cell
	acc := 0.0
	for k := 1; k < len(p.Poses); k++ {
		a, b := p.Poses[k-1], p.Poses[k]
		l := a.Dist(b)
		if l < EPS {
			continue
		}
		n := int(math.Ceil(l / step))
		for c := 0; c < n; c++ {
			f0 := float64(c) / float64(n)
			f1 := float64(c+1) / float64(n)
			cells = append(cells, cell{
				seg: Segment{lerp(a, b, f0), lerp(a, b, f1)},
				lo:  acc + l*f0,
				hi:  acc + l*f1,
			})
		}
		acc += l
	}
	return cells
}

func lerp(a, b Point, f float64) Point {
	return a.Add(b.Sub(a).Scale(f))
}

func pairIntersections(pa, pb *Path, margin float64) []Intersection {
	step := margin / 2
	ca := subdivide(pa, step)
	cb := subdivide(pb, step)

	// Conflict grid over cell pairs.
	grid := make([][]bool, len(ca))
	for i := range ca {
		grid[i] = make([]bool, len(cb))
		for j := range cb {
			grid[i][j] = ca[i].seg.DistToSegment(cb[j].seg) < margin
		}
	}

	// Merge 8-connected components into bounding rectangles.
	seen := make([][]bool, len(ca))
	for i := range seen {
		seen[i] = make([]bool, len(cb))
	}
	var inters []Intersection
	for i := range ca {
		for j := range cb {
			if !grid[i][j] || seen[i][j] {
				continue
			}
			minI, maxI, minJ, maxJ := floodComponent(grid, seen, i, j)
			i1 := Interval{ca[minI].lo, ca[maxI].hi}
			i2 := Interval{cb[minJ].lo, cb[maxJ].hi}
			orientation := 0
			// The robot with the longer approach to the conflict yields;
			// ties yield the first robot.
			if i1.Lo >= i2.Lo {
				orientation = 1
			}
			inters = append(inters, Intersection{i1, i2, orientation})
		}
	}
	return inters
}

// floodComponent walks the 8-connected component of marked cells
// containing (i0, j0), marking it seen, and returns its bounding cell
// indices.
func floodComponent(grid, seen [][]bool, i0, j0 int) (minI, maxI, minJ, maxJ int) {
	minI, maxI, minJ, maxJ = i0, i0, j0, j0
	stack := [][2]int{{i0, j0}}
	seen[i0][j0] = true
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if c[0] < minI {
			minI = c[0]
		}
		if c[0] > maxI {
			maxI = c[0]
		}
		if c[1] < minJ {
			minJ = c[1]
		}
		if c[1] > maxJ {
			maxJ = c[1]
		}
		for di := -1; di <= 1; di++ {
			for dj := -1; dj <= 1; dj++ {
				ni, nj := c[0]+di, c[1]+dj
				if ni < 0 || nj < 0 || ni >= len(grid) || nj >= len(grid[ni]) {
					continue
				}
				if grid[ni][nj] && !seen[ni][nj] {
					seen[ni][nj] = true
					stack = append(stack, [2]int{ni, nj})
				}
			}
		}
	}
	return minI, maxI, minJ, maxJ
}

func sortedIDs(paths map[int]*Path) []int {
	ids := make([]int, 0, len(paths))
	for id := range paths {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
