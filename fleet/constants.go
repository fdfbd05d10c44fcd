package fleet

import "github.com/hmeira/aircoord/coord"

// Rate is the control loop frequency in Hz.
const Rate = 30

// Flight volume limits, in metres.
const (
	MinX = -0.5
	MaxX = 0.5
	MinY = -0.5
	MaxY = 0.5
	MinZ = 0.0
	MaxZ = 1.0
)

// Per-axis velocity caps used when timing a direct point-to-point
// motion. The translational caps match the coordinator's cap so that
// timings stay consistent end to end.
const (
	MaxVelX   = coord.MaxVel
	MaxVelY   = coord.MaxVel
	MaxVelZ   = coord.MaxVel
	MaxVelYaw = 0.8 // rad/s
)

// InRoom reports whether p lies inside the flight volume.
func InRoom(p coord.Point) bool {
	return p.X >= MinX && p.X <= MaxX &&
		p.Y >= MinY && p.Y <= MaxY &&
		p.Z >= MinZ && p.Z <= MaxZ
}
