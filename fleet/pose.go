package fleet

import (
	"math"

	"github.com/hmeira/aircoord/coord"
)

// Pose is a robot position plus heading.
type Pose struct {
	Pos coord.Point
	Yaw float64 // radians
}

func (p Pose) Position() coord.Point {
	return p.Pos
}

// GotoDuration is how long a direct motion from one pose to another
// takes when every axis moves at its cap: the slowest axis sets the
// duration.
func GotoDuration(from, to Pose) float64 {
	d := to.Pos.Sub(from.Pos)
	dyaw := math.Abs(wrapAngle(to.Yaw - from.Yaw))
	return math.Max(
		math.Max(math.Abs(d.X)/MaxVelX, math.Abs(d.Y)/MaxVelY),
		math.Max(math.Abs(d.Z)/MaxVelZ, dyaw/MaxVelYaw),
	)
}

// wrapAngle maps an angle to (-pi, pi].
func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
