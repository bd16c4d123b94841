package mines

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
)

// Rand is the subset of *rand.Rand used for mine placement.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG generator seeded from the runtime's hash seed.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// Placer chooses which of cells panels hold the mines.
type Placer interface {
	Place(cells, mines int) ([]int, error)
}

// RandomPlacer draws uniformly without replacement. A duplicate draw is
// thrown away and redrawn, so exactly mines distinct indices come back.
type RandomPlacer struct {
	Rand Rand
}

// [RandomPlacer] implements [Placer]
func (p RandomPlacer) Place(cells, mines int) ([]int, error) {
	if mines < 0 || mines > cells {
		return nil, fmt.Errorf("%w: %d mines on %d panels",
			ErrInvalidPlacement, mines, cells)
	}
	taken := make([]bool, cells)
	placed := make([]int, 0, mines)
	for len(placed) < mines {
		i := p.Rand.IntN(cells)
		if taken[i] {
			continue
		}
		taken[i] = true
		placed = append(placed, i)
	}
	return placed, nil
}

// FixedPlacer always returns the same layout.
type FixedPlacer []int

// [FixedPlacer] implements [Placer]
func (p FixedPlacer) Place(cells, mines int) ([]int, error) {
	placed := make([]int, len(p))
	copy(placed, p)
	return placed, validatePlacement(placed, cells, mines)
}

func validatePlacement(placed []int, cells, mines int) error {
	if len(placed) != mines {
		return fmt.Errorf("%w: want %d mines, have %d",
			ErrInvalidPlacement, mines, len(placed))
	}
	seen := make(map[int]struct{}, len(placed))
	for _, i := range placed {
		if i < 0 || i >= cells {
			return fmt.Errorf("%w: index %d out of range [0, %d)",
				ErrInvalidPlacement, i, cells)
		}
		if _, ok := seen[i]; ok {
			return fmt.Errorf("%w: duplicate index %d", ErrInvalidPlacement, i)
		}
		seen[i] = struct{}{}
	}
	return nil
}
