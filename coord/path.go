package coord

// Path is an ordered, growable sequence of (pose, elapsed time)
// keyframes. Untimed paths coming out of a planner carry zero times; the
// coordinator fills the times in. Poses and Times always have the same
// length.
type Path struct {
	Poses []Point
	Times []float64
}

func NewPath() *Path {
	return &Path{}
}

// AddPose appends a keyframe at time t since the start of the path.
func (p *Path) AddPose(pose Point, t float64) {
	p.Poses = append(p.Poses, pose)
	p.Times = append(p.Times, t)
}

func (p *Path) Len() int {
	return len(p.Poses)
}

// Lengths returns the cumulative arclength at each keyframe, starting
// at 0 for the first pose.
func (p *Path) Lengths() []float64 {
	lengths := make([]float64, len(p.Poses))
	for i := 1; i < len(p.Poses); i++ {
		lengths[i] = lengths[i-1] + p.Poses[i-1].Dist(p.Poses[i])
	}
	return lengths
}

// Length is the total arclength of the path, 0 for an empty path.
func (p *Path) Length() float64 {
	total := 0.0
	for i := 1; i < len(p.Poses); i++ {
		total += p.Poses[i-1].Dist(p.Poses[i])
	}
	return total
}
