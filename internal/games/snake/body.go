package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/skin"
)

// Body is the snake: an ordered run of cells from tail (index 0) to head
// (last index), its heading, and the heading buffered for the next move.
type Body struct {
	size          core.Size
	skin          *skin.Skin
	segments      []core.Point
	direction     core.Direction
	nextDirection core.Direction
	growthPending bool
}

// NewBody creates an empty body on a board of the given size.
// The skin is required by Reset.
func NewBody(size core.Size, sk *skin.Skin) *Body {
	return &Body{
		size:          size,
		skin:          sk,
		direction:     core.DirRight,
		nextDirection: core.DirRight,
	}
}

// Reset lays out three segments ending at start, all facing right.
// It fails without touching the body if the skin is missing or invalid.
func (b *Body) Reset(start core.Point) error {
	if b.skin == nil {
		return ErrMissingSkin
	}
	if err := b.skin.Validate(); err != nil {
		return err
	}

	b.segments = []core.Point{
		{X: start.X - 2, Y: start.Y},
		{X: start.X - 1, Y: start.Y},
		start,
	}
	b.direction = core.DirRight
	b.nextDirection = core.DirRight
	b.growthPending = false
	return nil
}

// SetNextDirection buffers d for the next move unless it reverses the
// current heading.
func (b *Body) SetNextDirection(d core.Direction) {
	if d == b.direction.Opposite() {
		return
	}
	b.nextDirection = d
}

// Move applies the buffered direction and advances one cell.
// Returns false on a wall or self collision, leaving the segments unchanged.
//
// The cell the tail currently occupies counts as occupied even though the
// tail would leave it on a non-growing move.
func (b *Body) Move() bool {
	if len(b.segments) == 0 {
		return false
	}

	b.direction = b.nextDirection
	next := b.Head().Add(b.direction)

	if !b.size.Contains(next) {
		return false
	}

	// Every segment except the current head.
	for _, seg := range b.segments[:len(b.segments)-1] {
		if seg == next {
			return false
		}
	}

	b.segments = append(b.segments, next)
	if b.growthPending {
		b.growthPending = false
	} else {
		b.segments = b.segments[1:]
	}
	return true
}

// Grow makes the next successful move keep the tail.
func (b *Body) Grow() {
	b.growthPending = true
}

// Head returns the head cell, or the zero point for an empty body.
func (b *Body) Head() core.Point {
	if len(b.segments) == 0 {
		return core.Point{}
	}
	return b.segments[len(b.segments)-1]
}

// Occupies reports whether p is one of the segments.
func (b *Body) Occupies(p core.Point) bool {
	return slices.Contains(b.segments, p)
}

// Segments returns a copy of the cells, tail first.
func (b *Body) Segments() []core.Point {
	return slices.Clone(b.segments)
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.segments)
}

// Direction returns the heading applied on the last move.
func (b *Body) Direction() core.Direction {
	return b.direction
}

// NextDirection returns the buffered heading.
func (b *Body) NextDirection() core.Direction {
	return b.nextDirection
}

// GrowthPending reports whether the next move will lengthen the body.
func (b *Body) GrowthPending() bool {
	return b.growthPending
}

// Skin returns the skin the body was created with.
func (b *Body) Skin() *skin.Skin {
	return b.skin
}
