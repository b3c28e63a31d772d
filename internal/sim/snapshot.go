package sim

import (
	"encoding/binary"
	"hash/fnv"
)

// Snapshot captures the session state for determinism testing.
// CoordsHash folds every committed cubelet coordinate into one value, so
// two sessions that played the same moves compare equal without walking
// the lattice in every assertion.
type Snapshot struct {
	Tick       uint64
	Size       int
	HistoryLen int
	Pending    int
	Animating  bool
	Solved     bool
	Speed      float64
	CoordsHash uint32
}

// Snapshot returns the current snapshot.
func (e *Engine) Snapshot() Snapshot {
	h := fnv.New32a()
	var buf [4]byte
	for i := 0; i < e.lat.Len(); i++ {
		c := e.lat.Coord(i)
		for _, v := range c {
			binary.LittleEndian.PutUint32(buf[:], uint32(int32(v)))
			h.Write(buf[:]) //nolint:errcheck // hash.Hash Write never fails
		}
	}

	return Snapshot{
		Tick:       e.tick,
		Size:       e.lat.Size(),
		HistoryLen: e.hist.Len(),
		Pending:    e.sched.Pending(),
		Animating:  e.sched.Animating(),
		Solved:     e.lat.Solved(),
		Speed:      e.sched.Speed(),
		CoordsHash: h.Sum32(),
	}
}
