// Package fleet holds the per-fleet state around the coordination
// engine: the robot set, the current plan, pause flags, and the periodic
// control tick that replans from scratch every cycle. The planner that
// produces untimed paths and the uploader that drives hardware are
// opaque collaborators.
package fleet

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/hmeira/aircoord/coord"
)

// Planner produces one untimed path per robot toward a shared goal.
type Planner interface {
	Plan(poses map[int]Pose, goal Pose) (map[int]*coord.Path, error)
}

// Uploader hands a timed trajectory to a robot.
type Uploader interface {
	Upload(id int, path *coord.Path) error
}

// Fleet is a set of robots sharing one coordinator. All state is
// guarded by a single lock so that paths, decisions, and whatever a
// caller observes stay mutually consistent within one tick.
type Fleet struct {
	mu          sync.Mutex
	robots      map[int]*Robot
	planner     Planner
	uploader    Uploader
	coordinator *coord.Coordinator

	paused  bool
	goal    Pose
	plan    map[int]*coord.Path // last successfully coordinated plan
	lastErr error

	stop chan struct{}
	done chan struct{}
}

// NewFleet creates a paused fleet with the given robots.
func NewFleet(planner Planner, uploader Uploader, ids ...int) *Fleet {
	robots := make(map[int]*Robot, len(ids))
	for _, id := range ids {
		robots[id] = NewRobot(id)
	}
	return &Fleet{
		robots:      robots,
		planner:     planner,
		uploader:    uploader,
		coordinator: coord.NewCoordinator(),
		paused:      true,
	}
}

func (f *Fleet) AddRobot(id int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.robots[id] = NewRobot(id)
}

func (f *Fleet) RemoveRobot(id int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.robots, id)
	delete(f.plan, id)
}

func (f *Fleet) Robot(id int) *Robot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.robots[id]
}

// Pause stops replanning; robots hold position. Fleets start paused.
func (f *Fleet) Pause() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paused = true
}

// Unpause resumes autonomous motion toward the given goal.
func (f *Fleet) Unpause(goal Pose) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paused = false
	f.goal = goal
}

// Plan returns the last successfully coordinated plan.
func (f *Fleet) Plan() map[int]*coord.Path {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.plan
}

// LastErr returns the most recent tick error, nil after a clean tick.
func (f *Fleet) LastErr() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// Tick runs one control cycle: plan, coordinate, upload. On a planning
// or coordination failure the previous plan is kept and the error
// returned; a wrong trajectory is never uploaded.
func (f *Fleet) Tick() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	err := f.tickLocked()
	f.lastErr = err
	return err
}

func (f *Fleet) tickLocked() error {
	if f.paused || len(f.robots) == 0 {
		return nil
	}

	poses := make(map[int]Pose, len(f.robots))
	for id, r := range f.robots {
		poses[id] = r.Pose()
	}

	untimed, err := f.planner.Plan(poses, f.goal)
	if err != nil {
		return errors.Wrap(err, "planning")
	}

	timed, err := f.coordinator.Coordinate(untimed)
	if err != nil {
		return errors.Wrap(err, "coordinating")
	}
	f.plan = timed

	for id, r := range f.robots {
		path, ok := timed[id]
		if !ok {
			continue
		}
		r.SetPath(path)
		if err := f.uploader.Upload(id, path); err != nil {
			return errors.Wrapf(err, "uploading to robot %d", id)
		}
	}
	return nil
}

// Run ticks the fleet at the control rate until Stop is called. Tick
// errors leave the previous plan in place and are available through
// LastErr.
func (f *Fleet) Run() {
	f.mu.Lock()
	if f.stop != nil {
		f.mu.Unlock()
		return
	}
	f.stop = make(chan struct{})
	f.done = make(chan struct{})
	f.mu.Unlock()

	go func() {
		ticker := time.NewTicker(time.Second / Rate)
		defer ticker.Stop()
		defer close(f.done)
		for {
			select {
			case <-f.stop:
				return
			case <-ticker.C:
				f.Tick()
			}
		}
	}()
}

// Stop halts the tick loop and waits for it to finish.
func (f *Fleet) Stop() {
	f.mu.Lock()
	stop, done := f.stop, f.done
	f.stop, f.done = nil, nil
	f.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-done
}
