package core

import "testing"

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := range 4 {
		if got := s.Row(y); got != "            " {
			t.Errorf("Row(%d) = %q, expected blanks", y, got)
		}
	}
}

func TestScreenSetOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(2, 1, 'X')

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		s.Set(p[0], p[1], 'A')
		if got := s.Get(p[0], p[1]); got != ' ' {
			t.Errorf("Get(%d, %d) = %q outside the screen, expected space", p[0], p[1], got)
		}
	}
	if s.Get(2, 1) != 'X' {
		t.Errorf("Get(2, 1) = %q, expected 'X'", s.Get(2, 1))
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawTextColored(1, 0, "ok", ColorGreen)

	if c := s.GetCell(1, 0); c.Rune != 'o' || c.Color != ColorGreen {
		t.Errorf("GetCell(1, 0) = %+v, expected green 'o'", c)
	}
	if c := s.GetCell(0, 0); c.Color != ColorDefault {
		t.Errorf("untouched cell color = %v, expected default", c.Color)
	}

	s.Clear()
	if c := s.GetCell(2, 0); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("after Clear, GetCell(2, 0) = %+v, expected blank", c)
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawText(5, 0, "Score")
	if got := s.Row(0); got != "     Sco" {
		t.Errorf("Row(0) = %q, expected %q", got, "     Sco")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "▲▼", ColorRed)

	if s.Get(4, 0) != '▲' || s.Get(5, 0) != '▼' {
		t.Errorf("Row(0) = %q, expected the glyphs centred at column 4", s.Row(0))
	}
	if s.GetCell(4, 0).Color != ColorRed {
		t.Error("centred text lost its colour")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	want := "┌────┐\n│    │\n│    │\n└────┘"
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nexpected\n%s", got, want)
	}
}
