package sim

import (
	"testing"

	"github.com/vovakirdan/voxel-cube/internal/cube"
)

func newTestScheduler(t *testing.T, n, framesPerTurn int, speed float64) (*cube.Lattice, *Scheduler) {
	t.Helper()
	lat, err := cube.New(n)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewScheduler(lat, framesPerTurn, speed)
	if err != nil {
		t.Fatal(err)
	}
	return lat, s
}

func TestNewSchedulerValidation(t *testing.T) {
	lat, err := cube.New(3)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewScheduler(lat, 0, 1.0); err != ErrInvalidFrames {
		t.Errorf("frames 0 error = %v, expected ErrInvalidFrames", err)
	}
	if _, err := NewScheduler(lat, -3, 1.0); err != ErrInvalidFrames {
		t.Errorf("negative frames error = %v, expected ErrInvalidFrames", err)
	}
	if _, err := NewScheduler(lat, 12, 0); err != ErrInvalidSpeed {
		t.Errorf("speed 0 error = %v, expected ErrInvalidSpeed", err)
	}
	if _, err := NewScheduler(lat, 12, -1.5); err != ErrInvalidSpeed {
		t.Errorf("negative speed error = %v, expected ErrInvalidSpeed", err)
	}
}

func TestEnqueueValidation(t *testing.T) {
	_, s := newTestScheduler(t, 3, 12, 1.0)

	if err := s.Enqueue(cube.Axis(9), 0, 1); err != cube.ErrInvalidAxis {
		t.Errorf("bad axis error = %v", err)
	}
	if err := s.Enqueue(cube.AxisX, 3, 1); err != cube.ErrSliceOutOfRange {
		t.Errorf("bad index error = %v", err)
	}
	if s.Pending() != 0 {
		t.Errorf("rejected enqueue left %d pending turns", s.Pending())
	}
}

func TestEnqueueExpandsQuarterTurns(t *testing.T) {
	tests := []struct {
		quarters int
		want     int
	}{
		{1, 1},
		{2, 2},
		{3, 3},
		{4, 0}, // full turn normalizes to a no-op
		{0, 0},
		{5, 1},
		{-1, 3},
	}

	for _, tc := range tests {
		_, s := newTestScheduler(t, 3, 12, 1.0)
		if err := s.Enqueue(cube.AxisX, 0, tc.quarters); err != nil {
			t.Fatalf("Enqueue(%d) failed: %v", tc.quarters, err)
		}
		if s.Pending() != tc.want {
			t.Errorf("quarters %d: pending = %d, expected %d", tc.quarters, s.Pending(), tc.want)
		}
	}
}

func TestSchedulerDrainsFIFO(t *testing.T) {
	lat, s := newTestScheduler(t, 3, 4, 1.0)

	// Reference lattice applies the same turns instantly, in order.
	ref, _ := cube.New(3)
	if err := ref.Apply(cube.Move{Axis: cube.AxisX, Index: 0, Quarters: 1}); err != nil {
		t.Fatal(err)
	}
	if err := ref.Apply(cube.Move{Axis: cube.AxisY, Index: 1, Quarters: 2}); err != nil {
		t.Fatal(err)
	}

	if err := s.Enqueue(cube.AxisX, 0, 1); err != nil {
		t.Fatal(err)
	}
	if err := s.Enqueue(cube.AxisY, 1, 2); err != nil {
		t.Fatal(err)
	}
	if s.Pending() != 3 {
		t.Fatalf("pending = %d, expected 1+2=3 unit turns", s.Pending())
	}

	commits := 0
	for i := 0; i < 1000 && s.Pending() > 0; i++ {
		if s.Tick() {
			commits++
		}
	}

	if commits != 3 {
		t.Errorf("commits = %d, expected exactly 3", commits)
	}
	if s.Animating() {
		t.Error("scheduler still animating after drain")
	}
	for i := 0; i < lat.Len(); i++ {
		if lat.Coord(i) != ref.Coord(i) {
			t.Fatalf("cubelet %d: scheduled %v vs instant %v", i, lat.Coord(i), ref.Coord(i))
		}
	}
}

func TestLatticeUntouchedMidAnimation(t *testing.T) {
	lat, s := newTestScheduler(t, 3, 10, 1.0)
	before := lat.Coords()

	if err := s.Enqueue(cube.AxisZ, 0, 1); err != nil {
		t.Fatal(err)
	}

	// Advance most of the way through the turn: the authoritative lattice
	// must still hold the pre-turn positions.
	for i := 0; i < 5; i++ {
		if s.Tick() {
			t.Fatalf("commit on frame %d of a 10-frame turn", i)
		}
	}

	got := lat.Coords()
	for i := range before {
		if got[i] != before[i] {
			t.Fatalf("cubelet %d moved mid-animation: %v -> %v", i, before[i], got[i])
		}
	}

	// But the presentation feed has left the integer lattice.
	moved := false
	for _, p := range s.Positions() {
		c := [3]float64{float64(int(p[0])), float64(int(p[1])), float64(int(p[2]))}
		if p != c {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("presentation positions did not interpolate")
	}
}

func TestCancelDiscardsInFlightTurn(t *testing.T) {
	lat, s := newTestScheduler(t, 3, 10, 1.0)

	// Commit one full turn first so there is a non-solved committed state.
	if err := s.Enqueue(cube.AxisX, 0, 1); err != nil {
		t.Fatal(err)
	}
	for s.Pending() > 0 {
		s.Tick()
	}
	committed := lat.Coords()

	// Now cancel mid-way through the second turn with more work queued.
	if err := s.Enqueue(cube.AxisY, 2, 1); err != nil {
		t.Fatal(err)
	}
	if err := s.Enqueue(cube.AxisZ, 1, 2); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		s.Tick()
	}
	s.Cancel()

	if s.Pending() != 0 || s.Animating() {
		t.Errorf("cancel left pending=%d animating=%v", s.Pending(), s.Animating())
	}
	got := lat.Coords()
	for i := range committed {
		if got[i] != committed[i] {
			t.Fatalf("cubelet %d not at last committed position after cancel", i)
		}
	}
	// Presentation snaps back to the committed lattice.
	for i, p := range s.Positions() {
		c := lat.Coord(i)
		if p != ([3]float64{float64(c[0]), float64(c[1]), float64(c[2])}) {
			t.Fatalf("position %d = %v, expected snap to %v", i, p, c)
		}
	}

	// The scheduler keeps working after a cancel.
	if err := s.Enqueue(cube.AxisX, 0, 1); err != nil {
		t.Fatal(err)
	}
	commits := 0
	for s.Pending() > 0 {
		if s.Tick() {
			commits++
		}
	}
	if commits != 1 {
		t.Errorf("commits after cancel = %d, expected 1", commits)
	}
}

func TestTotalFramesSpeedClamp(t *testing.T) {
	tests := []struct {
		frames int
		speed  float64
		want   int
	}{
		{12, 1.0, 12},
		{12, 2.0, 6},
		{12, 0.25, 48},
		{12, 4.0, 3},
		{1, 4.0, 1}, // never below one frame
		{12, 100.0, 3}, // speed clamps to MaxSpeed
	}

	for _, tc := range tests {
		_, s := newTestScheduler(t, 2, tc.frames, 1.0)
		s.SetSpeed(tc.speed)
		if got := s.totalFrames(); got != tc.want {
			t.Errorf("frames=%d speed=%v: totalFrames = %d, expected %d",
				tc.frames, tc.speed, got, tc.want)
		}
	}
}

func TestSetSpeedClampsRange(t *testing.T) {
	_, s := newTestScheduler(t, 2, 12, 1.0)

	s.SetSpeed(0.01)
	if s.Speed() != MinSpeed {
		t.Errorf("speed = %v, expected clamp to %v", s.Speed(), MinSpeed)
	}
	s.SetSpeed(99)
	if s.Speed() != MaxSpeed {
		t.Errorf("speed = %v, expected clamp to %v", s.Speed(), MaxSpeed)
	}
}

func TestSingleFrameTurnCommitsImmediately(t *testing.T) {
	lat, s := newTestScheduler(t, 2, 1, 1.0)

	if err := s.Enqueue(cube.AxisX, 0, 1); err != nil {
		t.Fatal(err)
	}
	if !s.Tick() {
		t.Fatal("one-frame turn did not commit on its first tick")
	}
	if lat.Solved() {
		t.Error("lattice unchanged after committed turn")
	}
}
