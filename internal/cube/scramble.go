package cube

import (
	"hash/fnv"
	"math/rand"
)

// SeedFromText derives a deterministic 32-bit seed from arbitrary text using
// FNV-1a (offset basis 2166136261, prime 16777619) over the UTF-8 bytes.
// Identical text always yields an identical scramble sequence.
func SeedFromText(text string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(text)) //nolint:errcheck // hash.Hash Write never fails
	return h.Sum32()
}

// Scramble draws count independent uniformly random moves for an n-sized
// lattice: axis from {x,y,z}, index from [0,n-1], quarters from {1,2,3}.
// The generator is passed in explicitly so callers control determinism;
// there is no ambient random state.
func Scramble(rng *rand.Rand, n, count int) ([]Move, error) {
	if count < 1 {
		return nil, ErrInvalidMoveCount
	}
	if n < 2 {
		return nil, ErrInvalidSize
	}

	moves := make([]Move, count)
	for i := range moves {
		moves[i] = Move{
			Axis:     Axis(rng.Intn(3)),
			Index:    rng.Intn(n),
			Quarters: 1 + rng.Intn(3),
		}
	}
	return moves, nil
}
