package fleet

import (
	"fmt"

	"github.com/hmeira/aircoord/coord"
	"github.com/hmeira/aircoord/dbg"
)

// Positioned is anything that can take part in a distance query: a
// robot, a pose, a goal marker. Whatever it is, distance is always
// point to point through this projection.
type Positioned interface {
	Position() coord.Point
}

// Dist is the distance between any two positioned things.
func Dist(a, b Positioned) float64 {
	return a.Position().Dist(b.Position())
}

// Robot is one member of the fleet: an id, the last reported pose, and
// the currently assigned timed path. Access is guarded by the owning
// Fleet's lock.
type Robot struct {
	ID   int
	pose Pose
	path *coord.Path
}

func NewRobot(id int) *Robot {
	return &Robot{ID: id}
}

func (r *Robot) Position() coord.Point {
	return r.pose.Pos
}

func (r *Robot) Pose() Pose {
	return r.pose
}

func (r *Robot) SetPose(p Pose) {
	r.pose = p
}

func (r *Robot) Path() *coord.Path {
	return r.path
}

func (r *Robot) SetPath(p *coord.Path) {
	r.path = p
}

func (r *Robot) String() string {
	return fmt.Sprintf("%s(%d)@%s", dbg.Name(r.ID), r.ID, r.pose.Pos)
}
