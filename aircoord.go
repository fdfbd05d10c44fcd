// Package aircoord turns one untimed geometric path per robot into timed
// trajectories that are free of mid-air collisions.
//
// Feed it a mapping from robot id to path; it computes where each pair
// of paths comes within the safety margin, then times every robot so
// that at most one of a conflicting pair is ever inside a shared region,
// while everyone still reaches their goal as fast as the velocity cap
// allows. See the coord package for the algorithm.
package aircoord

import "github.com/hmeira/aircoord/coord"

type Point = coord.Point
type Path = coord.Path
type Coordinator = coord.Coordinator
type Delta = coord.Delta
type Intersection = coord.Intersection

var (
	ErrDeadlock   = coord.ErrDeadlock
	ErrNoProgress = coord.ErrNoProgress
)

// Coordinate times the given paths with the default velocity cap and
// safety margin. The input paths are never modified; each output path
// visits the same waypoints with explicit timestamps, plus interpolated
// keyframes where velocities change.
func Coordinate(paths map[int]*Path) (map[int]*Path, error) {
	return coord.NewCoordinator().Coordinate(paths)
}

// CoordinateStub passes paths through untouched, for when coordination
// is deliberately bypassed.
func CoordinateStub(paths map[int]*Path) map[int]*Path {
	return coord.CoordinateStub(paths)
}
