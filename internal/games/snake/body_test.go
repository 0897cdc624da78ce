package snake

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/skin"
)

func TestBodyResetLayout(t *testing.T) {
	for w := 3; w <= 30; w++ {
		for h := 3; h <= 20; h++ {
			start := DefaultStart(w, h)
			b := NewBody(core.Size{W: w, H: h}, testSkin())
			if err := b.Reset(start); err != nil {
				t.Fatalf("%dx%d: Reset() failed: %v", w, h, err)
			}

			segs := b.Segments()
			if len(segs) != 3 {
				t.Fatalf("%dx%d: length = %d, expected 3", w, h, len(segs))
			}
			if b.Head() != start {
				t.Errorf("%dx%d: head = %v, expected %v", w, h, b.Head(), start)
			}
			if tail := (core.Point{X: start.X - 2, Y: start.Y}); segs[0] != tail {
				t.Errorf("%dx%d: tail = %v, expected %v", w, h, segs[0], tail)
			}
			if b.Direction() != core.DirRight || b.NextDirection() != core.DirRight {
				t.Errorf("%dx%d: directions = %v/%v, expected right/right", w, h, b.Direction(), b.NextDirection())
			}
			if b.GrowthPending() {
				t.Errorf("%dx%d: growth pending after reset", w, h)
			}
			for _, p := range segs {
				if !core.InBounds(p, w, h) {
					t.Errorf("%dx%d: segment %v out of bounds", w, h, p)
				}
			}
		}
	}
}

func TestBodyResetMissingSkin(t *testing.T) {
	b := NewBody(core.Size{W: 25, H: 15}, nil)
	err := b.Reset(core.Point{X: 12, Y: 7})
	if !errors.Is(err, ErrMissingSkin) {
		t.Errorf("Reset() = %v, expected ErrMissingSkin", err)
	}
	if b.Len() != 0 {
		t.Errorf("length after failed reset = %d, expected 0", b.Len())
	}
}

func TestBodyResetInvalidSkinLeavesBody(t *testing.T) {
	sk := testSkin()
	b := NewBody(core.Size{W: 25, H: 15}, sk)
	if err := b.Reset(core.Point{X: 12, Y: 7}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	move(t, b, core.DirUp)
	before := b.Segments()

	sk.Food = ""
	err := b.Reset(core.Point{X: 5, Y: 5})
	if !errors.Is(err, skin.ErrInvalidSkin) {
		t.Fatalf("Reset() = %v, expected ErrInvalidSkin", err)
	}
	if !samePoints(b.Segments(), before) {
		t.Errorf("segments changed by failed reset: %v, expected %v", b.Segments(), before)
	}
	if b.Direction() != core.DirUp {
		t.Errorf("direction changed by failed reset: %v", b.Direction())
	}
}

func TestConcreteMove(t *testing.T) {
	b := newTestBody(t, core.Point{X: 12, Y: 7})

	want := []core.Point{{X: 10, Y: 7}, {X: 11, Y: 7}, {X: 12, Y: 7}}
	if !samePoints(b.Segments(), want) {
		t.Fatalf("after reset segments = %v, expected %v", b.Segments(), want)
	}

	if !b.Move() {
		t.Fatal("Move() collided")
	}
	want = []core.Point{{X: 11, Y: 7}, {X: 12, Y: 7}, {X: 13, Y: 7}}
	if !samePoints(b.Segments(), want) {
		t.Errorf("after move segments = %v, expected %v", b.Segments(), want)
	}
}

func TestReversalGuard(t *testing.T) {
	b := newTestBody(t, core.Point{X: 12, Y: 7})

	b.SetNextDirection(core.DirLeft)
	if b.NextDirection() != core.DirRight {
		t.Errorf("NextDirection() = %v after reversal request, expected right", b.NextDirection())
	}

	b.SetNextDirection(core.DirUp)
	if b.NextDirection() != core.DirUp {
		t.Errorf("NextDirection() = %v, expected up", b.NextDirection())
	}
}

func TestReversalGuardUsesAppliedDirection(t *testing.T) {
	b := newTestBody(t, core.Point{X: 12, Y: 7})

	// Buffered up, then down: down only reverses the buffered heading, not
	// the applied one, so it is accepted.
	b.SetNextDirection(core.DirUp)
	b.SetNextDirection(core.DirDown)
	if b.NextDirection() != core.DirDown {
		t.Errorf("NextDirection() = %v, expected down", b.NextDirection())
	}

	// Left still reverses the applied heading.
	b.SetNextDirection(core.DirLeft)
	if b.NextDirection() != core.DirDown {
		t.Errorf("NextDirection() = %v, expected down to survive a reversal request", b.NextDirection())
	}

	move(t, b, core.DirDown)
	if b.Direction() != core.DirDown || b.Head() != (core.Point{X: 12, Y: 8}) {
		t.Errorf("after move direction=%v head=%v, expected down (12,8)", b.Direction(), b.Head())
	}
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name  string
		start core.Point
		dir   core.Direction
	}{
		{"right wall", core.Point{X: 24, Y: 7}, core.DirRight},
		{"top wall", core.Point{X: 12, Y: 0}, core.DirUp},
		{"bottom wall", core.Point{X: 12, Y: 14}, core.DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBody(t, tc.start)
			before := b.Segments()
			b.SetNextDirection(tc.dir)
			if b.Move() {
				t.Fatalf("Move() = true, expected wall collision at head %v", b.Head())
			}
			if !samePoints(b.Segments(), before) {
				t.Errorf("segments changed on collision: %v", b.Segments())
			}
		})
	}
}

func TestLeftWallCollision(t *testing.T) {
	b := newTestBody(t, core.Point{X: 2, Y: 3})
	move(t, b, core.DirUp)
	move(t, b, core.DirLeft)
	move(t, b, core.DirLeft)
	if b.Head() != (core.Point{X: 0, Y: 2}) {
		t.Fatalf("head = %v, expected (0,2)", b.Head())
	}
	if b.Move() {
		t.Error("Move() = true, expected left wall collision")
	}
}

func TestSelfCollision(t *testing.T) {
	b := newTestBody(t, core.Point{X: 5, Y: 5})
	b.Grow()
	move(t, b, core.DirRight)
	b.Grow()
	move(t, b, core.DirRight)
	move(t, b, core.DirDown)
	move(t, b, core.DirLeft)

	want := []core.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 7, Y: 5}, {X: 7, Y: 6}, {X: 6, Y: 6}}
	if !samePoints(b.Segments(), want) {
		t.Fatalf("segments = %v, expected %v", b.Segments(), want)
	}

	// Up from (6,6) lands on (6,5), a middle segment.
	b.SetNextDirection(core.DirUp)
	if b.Move() {
		t.Error("Move() = true, expected self collision")
	}
	if !samePoints(b.Segments(), want) {
		t.Errorf("segments changed on collision: %v", b.Segments())
	}
}

func TestTailEntryIsCollision(t *testing.T) {
	for _, growing := range []bool{false, true} {
		b := newTestBody(t, core.Point{X: 6, Y: 5})
		b.Grow()
		move(t, b, core.DirDown)
		move(t, b, core.DirLeft)

		want := []core.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}
		if !samePoints(b.Segments(), want) {
			t.Fatalf("segments = %v, expected %v", b.Segments(), want)
		}

		if growing {
			b.Grow()
		}
		// Up from (5,6) is the tail cell (5,5), which counts as occupied.
		b.SetNextDirection(core.DirUp)
		if b.Move() {
			t.Errorf("growing=%v: Move() into the tail cell = true, expected collision", growing)
		}
	}
}

func TestGrowthConservation(t *testing.T) {
	b := newTestBody(t, core.Point{X: 5, Y: 7})

	b.Grow()
	if !b.GrowthPending() {
		t.Fatal("GrowthPending() = false after Grow()")
	}
	if b.Len() != 3 {
		t.Errorf("Grow() changed length immediately: %d", b.Len())
	}

	move(t, b, core.DirRight)
	if b.Len() != 4 {
		t.Errorf("length after growing move = %d, expected 4", b.Len())
	}
	if b.GrowthPending() {
		t.Error("growth flag not cleared by move")
	}

	move(t, b, core.DirRight)
	if b.Len() != 4 {
		t.Errorf("length after plain move = %d, expected 4", b.Len())
	}
}

func TestGrowthSurvivesCollision(t *testing.T) {
	b := newTestBody(t, core.Point{X: 24, Y: 7})
	b.Grow()
	if b.Move() {
		t.Fatal("Move() = true, expected wall collision")
	}
	if !b.GrowthPending() {
		t.Error("failed move consumed the growth flag")
	}
}

func TestOccupies(t *testing.T) {
	b := newTestBody(t, core.Point{X: 12, Y: 7})

	for _, p := range []core.Point{{X: 10, Y: 7}, {X: 11, Y: 7}, {X: 12, Y: 7}} {
		if !b.Occupies(p) {
			t.Errorf("Occupies(%v) = false, expected true", p)
		}
	}
	for _, p := range []core.Point{{X: 9, Y: 7}, {X: 13, Y: 7}, {X: 12, Y: 6}} {
		if b.Occupies(p) {
			t.Errorf("Occupies(%v) = true, expected false", p)
		}
	}
}

func TestSegmentsIsCopy(t *testing.T) {
	b := newTestBody(t, core.Point{X: 12, Y: 7})
	segs := b.Segments()
	segs[0] = core.Point{X: 99, Y: 99}
	if b.Occupies(core.Point{X: 99, Y: 99}) {
		t.Error("mutating Segments() result changed the body")
	}
}

func TestMoveEmptyBody(t *testing.T) {
	b := NewBody(core.Size{W: 25, H: 15}, testSkin())
	if b.Move() {
		t.Error("Move() on an empty body = true, expected false")
	}
	if b.Head() != (core.Point{}) {
		t.Errorf("Head() of empty body = %v, expected zero point", b.Head())
	}
}
