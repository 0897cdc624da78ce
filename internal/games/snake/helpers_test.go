package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/skin"
)

func testSkin() *skin.Skin {
	return &skin.Skin{
		Name:  "test",
		Color: "green",
		Head:  skin.DirGlyphs{Up: "^", Down: "v", Left: "<", Right: ">"},
		Tail:  skin.DirGlyphs{Up: "o", Down: "o", Left: "o", Right: "o"},
		Body: skin.BodyGlyphs{
			Vertical: "|", Horizontal: "-",
			TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
		},
		Food: "*",
	}
}

// seqRand replays a fixed sequence of values, each reduced modulo n.
type seqRand struct {
	vals  []int
	calls int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.calls%len(r.vals)] % n
	r.calls++
	return v
}

func newTestBody(t *testing.T, start core.Point) *Body {
	t.Helper()
	b := NewBody(core.Size{W: 25, H: 15}, testSkin())
	if err := b.Reset(start); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	return b
}

func move(t *testing.T, b *Body, d core.Direction) {
	t.Helper()
	b.SetNextDirection(d)
	if !b.Move() {
		t.Fatalf("Move(%v) from head %v collided", d, b.Head())
	}
}

func samePoints(a, b []core.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
