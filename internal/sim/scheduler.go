package sim

import (
	"errors"
	"math"

	"github.com/vovakirdan/voxel-cube/internal/core"
	"github.com/vovakirdan/voxel-cube/internal/cube"
)

// Animation limits. The speed range mirrors the 0.25x..4x span of the
// original control surface; framesPerTurn is divided by speed and clamped so
// a turn always takes at least one frame.
const (
	DefaultFramesPerTurn = 12
	DefaultSpeed         = 1.0
	MinSpeed             = 0.25
	MaxSpeed             = 4.0
)

var (
	ErrInvalidSpeed  = errors.New("sim: speed must be positive")
	ErrInvalidFrames = errors.New("sim: frames per turn must be at least 1")
)

// unitTurn is one queued 90° rotation. Arbitrary-multiplicity turns are
// expanded into unit turns with dir = +1 before queueing.
type unitTurn struct {
	axis  cube.Axis
	index int
	dir   int
}

// Scheduler turns logical instantaneous quarter-turns into smooth, queued,
// cancellable visual transitions. It owns the lattice mutation schedule:
// the authoritative lattice is only ever written at turn completion, so it
// is always fully pre-turn or fully post-turn, never partially rotated.
//
// The scheduler is single-threaded and tick-driven: it advances only inside
// Tick, which any driver (timer, test harness, fixed-step loop) may call.
type Scheduler struct {
	lat           *cube.Lattice
	framesPerTurn int
	speed         float64

	queue     []unitTurn
	animating bool
	current   unitTurn
	frame     int
	moving    []int

	// positions is the presentation feed: interpolated during animation,
	// exact lattice coordinates otherwise. Never written back into the
	// lattice.
	positions [][3]float64
}

// NewScheduler creates a scheduler over the given lattice.
// framesPerTurn and speed must be strictly positive.
func NewScheduler(lat *cube.Lattice, framesPerTurn int, speed float64) (*Scheduler, error) {
	if framesPerTurn < 1 {
		return nil, ErrInvalidFrames
	}
	if speed <= 0 {
		return nil, ErrInvalidSpeed
	}

	s := &Scheduler{
		lat:           lat,
		framesPerTurn: framesPerTurn,
		speed:         core.ClampF(speed, MinSpeed, MaxSpeed),
		positions:     make([][3]float64, lat.Len()),
	}
	s.snapAll()
	return s, nil
}

// Enqueue expands quarters mod 4 into that many unit quarter-turns appended
// to the FIFO queue. It validates but does not change the animation state;
// the next Tick picks the work up.
func (s *Scheduler) Enqueue(axis cube.Axis, index, quarters int) error {
	if axis < cube.AxisX || axis > cube.AxisZ {
		return cube.ErrInvalidAxis
	}
	if index < 0 || index >= s.lat.Size() {
		return cube.ErrSliceOutOfRange
	}

	q := ((quarters % 4) + 4) % 4
	for i := 0; i < q; i++ {
		s.queue = append(s.queue, unitTurn{axis: axis, index: index, dir: 1})
	}
	return nil
}

// Tick advances the animation by one frame. When a turn finishes its last
// frame the rotation is committed into the lattice (exact integer re-snap)
// and the next queued turn starts without an idle gap.
// Returns true when a commit happened this tick.
func (s *Scheduler) Tick() bool {
	if !s.animating {
		s.startNext()
	}
	if !s.animating {
		return false
	}

	total := s.totalFrames()
	t := float64(s.frame) / float64(core.Max(1, total-1))
	angle := float64(s.current.dir) * (math.Pi / 2.0) * t

	// Interpolate the moving cubelets from their pre-turn base positions.
	// The lattice still holds those bases: nothing is committed mid-turn.
	for _, i := range s.moving {
		s.positions[i] = cube.RotatePoint(s.current.axis, angle, s.lat.Half(), s.lat.Coord(i))
	}

	s.frame++
	if s.frame < total {
		return false
	}

	// Validated at enqueue; the slice cannot fail here.
	_ = s.lat.RotateSlice(s.current.axis, s.current.index, s.current.dir)
	s.snapMoving()
	s.startNext()
	return true
}

// Cancel clears the queue and discards the in-flight partial rotation
// without committing it. The presentation feed snaps back to the last fully
// committed lattice state.
func (s *Scheduler) Cancel() {
	s.queue = nil
	s.animating = false
	s.moving = nil
	s.frame = 0
	s.snapAll()
}

// Animating reports whether a turn is currently in flight.
func (s *Scheduler) Animating() bool {
	return s.animating
}

// Pending returns the number of unit quarter-turns not yet committed,
// including the one currently animating.
func (s *Scheduler) Pending() int {
	n := len(s.queue)
	if s.animating {
		n++
	}
	return n
}

// Frame returns the current frame within the animating turn.
func (s *Scheduler) Frame() int {
	return s.frame
}

// Speed returns the current speed multiplier.
func (s *Scheduler) Speed() float64 {
	return s.speed
}

// SetSpeed clamps the multiplier into [MinSpeed, MaxSpeed] so totalFrames
// stays at least 1. Takes effect on the next tick.
func (s *Scheduler) SetSpeed(v float64) {
	s.speed = core.ClampF(v, MinSpeed, MaxSpeed)
}

// Positions returns a copy of the presentation feed in cubelet identity
// order.
func (s *Scheduler) Positions() [][3]float64 {
	out := make([][3]float64, len(s.positions))
	copy(out, s.positions)
	return out
}

// position is the zero-copy accessor used by the renderer.
func (s *Scheduler) position(i int) [3]float64 {
	return s.positions[i]
}

func (s *Scheduler) totalFrames() int {
	return core.Max(1, int(math.Round(float64(s.framesPerTurn)/s.speed)))
}

func (s *Scheduler) startNext() {
	if len(s.queue) == 0 {
		s.animating = false
		s.moving = nil
		return
	}
	s.current = s.queue[0]
	s.queue = s.queue[1:]
	s.frame = 0
	// Cannot fail: bounds were checked at enqueue.
	s.moving, _ = s.lat.SliceIndices(s.current.axis, s.current.index)
	s.animating = true
}

func (s *Scheduler) snapAll() {
	for i := 0; i < s.lat.Len(); i++ {
		c := s.lat.Coord(i)
		s.positions[i] = [3]float64{float64(c[0]), float64(c[1]), float64(c[2])}
	}
}

func (s *Scheduler) snapMoving() {
	for _, i := range s.moving {
		c := s.lat.Coord(i)
		s.positions[i] = [3]float64{float64(c[0]), float64(c[1]), float64(c[2])}
	}
}
