// Package sim couples the cube lattice to the turn scheduler and exposes
// the command surface a UI drives: turn, scramble, solve, reset, and a
// per-tick presentation feed. All state transitions complete within one
// tick; nothing blocks and nothing runs concurrently with the tick driver.
package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/voxel-cube/internal/core"
	"github.com/vovakirdan/voxel-cube/internal/cube"
)

// Config describes one puzzle session.
// All fields are validated strictly: the caller (the config package or a
// test) supplies defaults.
type Config struct {
	Size          int     // cube edge length, >= 2
	FramesPerTurn int     // animation frames for one quarter-turn at speed 1
	Speed         float64 // initial speed multiplier, > 0
	ScrambleMoves int     // moves per scramble request, >= 1
	Seed          int64   // RNG seed for unseeded scrambles
}

// State is the per-tick view of the session the platform renders a HUD from.
type State struct {
	Tick       uint64
	Solved     bool
	Animating  bool
	Pending    int
	HistoryLen int
	Speed      float64
	SelAxis    cube.Axis
	SelSlice   int
}

// SolveRecord is emitted once when a scrambled lattice returns to the
// solved snapshot, for persistence by the platform.
type SolveRecord struct {
	CubeSize      int
	ScrambleMoves int
	SeedText      string
	MoveCount     int
	Duration      time.Duration
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State  State
	Solved *SolveRecord // non-nil on the tick the puzzle became solved
}

// Engine owns a lattice, its move history and the turn scheduler.
// The move queue and the lattice are owned exclusively by the engine's
// single execution context; no external concurrent mutation is permitted.
type Engine struct {
	cfg   Config
	lat   *cube.Lattice
	sched *Scheduler
	hist  cube.History
	rng   *rand.Rand
	tick  uint64

	// selection cursor for interactive play
	selAxis  cube.Axis
	selSlice int

	// colors are derived once from the immutable masks
	colors []core.Color

	// scramble bookkeeping for solve records
	scrambled     bool
	scrambleMoves int
	scrambleSeed  string
	scrambleStart time.Time
	movesAfterScr int
}

// New validates the configuration and builds a session.
func New(cfg Config) (*Engine, error) {
	lat, err := cube.New(cfg.Size)
	if err != nil {
		return nil, err
	}
	sched, err := NewScheduler(lat, cfg.FramesPerTurn, cfg.Speed)
	if err != nil {
		return nil, err
	}
	if cfg.ScrambleMoves < 1 {
		return nil, cube.ErrInvalidMoveCount
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		cfg:   cfg,
		lat:   lat,
		sched: sched,
		rng:   rand.New(rand.NewSource(seed)),
	}
	e.colors = make([]core.Color, lat.Len())
	for i := range e.colors {
		e.colors[i] = maskColor(lat.Mask(i))
	}
	return e, nil
}

// Turn validates, records and enqueues a user turn. A quarter count that
// normalizes to zero is a no-op: nothing is recorded or queued.
func (e *Engine) Turn(axis cube.Axis, index, quarters int) error {
	m := cube.Move{Axis: axis, Index: index, Quarters: quarters}.Normalized()
	// Validate before mutating anything: a rejected turn must not leave a
	// partial queue entry or history record behind.
	if axis < cube.AxisX || axis > cube.AxisZ {
		return cube.ErrInvalidAxis
	}
	if index < 0 || index >= e.lat.Size() {
		return cube.ErrSliceOutOfRange
	}
	if m.Quarters == 0 {
		return nil
	}

	e.hist.Record(m)
	if e.scrambled {
		e.movesAfterScr++
	}
	return e.sched.Enqueue(m.Axis, m.Index, m.Quarters)
}

// Scramble draws count random moves, records them exactly as manual turns
// and queues them. A non-empty seedText fixes the sequence via its FNV-1a
// hash; otherwise the session RNG is used.
func (e *Engine) Scramble(count int, seedText string) ([]cube.Move, error) {
	if count < 1 {
		return nil, cube.ErrInvalidMoveCount
	}

	rng := e.rng
	if seedText != "" {
		rng = rand.New(rand.NewSource(int64(cube.SeedFromText(seedText))))
	}

	moves, err := cube.Scramble(rng, e.lat.Size(), count)
	if err != nil {
		return nil, err
	}
	for _, m := range moves {
		e.hist.Record(m)
		if err := e.sched.Enqueue(m.Axis, m.Index, m.Quarters); err != nil {
			return nil, fmt.Errorf("sim: queueing scramble move %s: %w", m, err)
		}
	}

	e.scrambled = true
	e.scrambleMoves = count
	e.scrambleSeed = seedText
	e.scrambleStart = time.Now()
	e.movesAfterScr = 0
	return moves, nil
}

// Solve queues the inverse of the history, oldest-first of the reversed
// per-move-inverted sequence, without recording the replay moves, then
// clears the history. Returns the queued sequence.
func (e *Engine) Solve() []cube.Move {
	inv := e.hist.Inverse()
	for _, m := range inv {
		// Moves in history were validated when recorded.
		_ = e.sched.Enqueue(m.Axis, m.Index, m.Quarters)
	}
	e.hist.Clear()
	e.movesAfterScr += len(inv)
	return inv
}

// Reset cancels the scheduler (dropping queued and in-flight turns without
// committing), restores the solved snapshot and clears the history.
func (e *Engine) Reset() {
	e.sched.Cancel()
	e.lat.Reset()
	e.hist.Clear()
	e.scrambled = false
	e.movesAfterScr = 0
}

// Step consumes one frame of input and advances the simulation one tick.
// It is the entry point the platform's tick loop calls.
func (e *Engine) Step(input core.InputFrame) StepResult {
	e.applyInput(input)
	return e.Tick()
}

// Tick advances the scheduler one frame without consuming input.
// Test harnesses drive this directly.
func (e *Engine) Tick() StepResult {
	e.tick++
	committed := e.sched.Tick()

	res := StepResult{State: e.State()}
	if committed && e.scrambled && !e.sched.Animating() && e.lat.Solved() {
		res.Solved = &SolveRecord{
			CubeSize:      e.lat.Size(),
			ScrambleMoves: e.scrambleMoves,
			SeedText:      e.scrambleSeed,
			MoveCount:     e.movesAfterScr,
			Duration:      time.Since(e.scrambleStart),
		}
		res.State.Solved = true
		e.scrambled = false
		e.movesAfterScr = 0
	}
	return res
}

func (e *Engine) applyInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionAxisNext):
		e.selAxis = (e.selAxis + 1) % 3
	case input.Has(core.ActionSliceNext):
		e.selSlice = core.Clamp(e.selSlice+1, 0, e.lat.Size()-1)
	case input.Has(core.ActionSlicePrev):
		e.selSlice = core.Clamp(e.selSlice-1, 0, e.lat.Size()-1)
	}

	switch {
	case input.Has(core.ActionTurnCW):
		_ = e.Turn(e.selAxis, e.selSlice, 1)
	case input.Has(core.ActionTurnHalf):
		_ = e.Turn(e.selAxis, e.selSlice, 2)
	case input.Has(core.ActionTurnCCW):
		_ = e.Turn(e.selAxis, e.selSlice, 3)
	case input.Has(core.ActionScramble):
		_, _ = e.Scramble(e.cfg.ScrambleMoves, "")
	case input.Has(core.ActionSolve):
		e.Solve()
	case input.Has(core.ActionReset):
		e.Reset()
	}

	if input.Has(core.ActionSpeedUp) {
		e.sched.SetSpeed(e.sched.Speed() * 1.25)
	}
	if input.Has(core.ActionSpeedDown) {
		e.sched.SetSpeed(e.sched.Speed() / 1.25)
	}
}

// State returns the current per-tick session view.
func (e *Engine) State() State {
	return State{
		Tick:       e.tick,
		Solved:     e.lat.Solved() && !e.sched.Animating() && e.sched.Pending() == 0,
		Animating:  e.sched.Animating(),
		Pending:    e.sched.Pending(),
		HistoryLen: e.hist.Len(),
		Speed:      e.sched.Speed(),
		SelAxis:    e.selAxis,
		SelSlice:   e.selSlice,
	}
}

// Size returns the cube edge length.
func (e *Engine) Size() int {
	return e.lat.Size()
}

// Lattice exposes the authoritative lattice for tests and the CLI.
func (e *Engine) Lattice() *cube.Lattice {
	return e.lat
}

// HistoryMoves returns a copy of the recorded history.
func (e *Engine) HistoryMoves() []cube.Move {
	return e.hist.Moves()
}

// Positions returns a copy of the current presentation feed.
func (e *Engine) Positions() [][3]float64 {
	return e.sched.Positions()
}

// Color returns the static display color of cubelet i, derived once from
// its mask: cubelets sharing a mask always render identically.
func (e *Engine) Color(i int) core.Color {
	return e.colors[i]
}
