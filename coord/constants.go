package coord

import "math"

// EPS is the shared tolerance used for every geometric and temporal
// comparison in the engine. If we compared floats exactly, accumulated
// rounding in the event loop would make robots miss rectangle corners by
// a hair and either block forever or slip into a conflict region.
const EPS = 1e-6

// MaxVel is the default velocity cap, in m/s, for a robot moving along
// its path. Callers timing motions outside the coordinator must use the
// same cap or the produced timestamps will not line up end to end.
const MaxVel = 0.5

// ObstacleMargin is the default safety margin, in metres, within which
// two robots are considered to be in conflict.
const ObstacleMargin = 0.2

// Equal compares two floats under the shared tolerance.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < EPS
}
