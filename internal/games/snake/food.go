package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// DefaultMaxAttempts bounds the number of samples a single spawn may draw.
const DefaultMaxAttempts = 100

// Rand is the random source used for food placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Occupier reports whether a cell is taken.
type Occupier interface {
	Occupies(p core.Point) bool
}

// FoodSpawner places food on a random free interior cell.
type FoodSpawner struct {
	rng         Rand
	maxAttempts int
}

// NewFoodSpawner creates a spawner. A non-positive maxAttempts selects
// DefaultMaxAttempts.
func NewFoodSpawner(rng Rand, maxAttempts int) *FoodSpawner {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &FoodSpawner{
		rng:         rng,
		maxAttempts: maxAttempts,
	}
}

// MaxAttempts returns the sample bound.
func (f *FoodSpawner) MaxAttempts() int {
	return f.maxAttempts
}

// Spawn samples cells with 1 <= x <= w-2 and 1 <= y <= h-2, skipping cells
// the body occupies. The outer ring of the board never holds food.
// ok is false when every sample was rejected or the board has no interior.
func (f *FoodSpawner) Spawn(body Occupier, w, h int) (p core.Point, ok bool) {
	if w < 3 || h < 3 {
		return core.Point{}, false
	}

	for range f.maxAttempts {
		p = core.Point{
			X: 1 + f.rng.Intn(w-2),
			Y: 1 + f.rng.Intn(h-2),
		}
		if body == nil || !body.Occupies(p) {
			return p, true
		}
	}
	return core.Point{}, false
}
