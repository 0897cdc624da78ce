// Package skin defines the visual skin a snake body is drawn with: one glyph
// per head/tail orientation, straight and corner body pieces, and food.
// The simulation only requires that a valid skin exists; picking glyphs for
// segments is done here on behalf of the renderer.
package skin

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalidSkin is returned when a skin definition is incomplete or malformed.
var ErrInvalidSkin = errors.New("invalid skin")

// DirGlyphs holds one glyph per facing direction.
type DirGlyphs struct {
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// BodyGlyphs holds straight and corner body pieces.
// Corner names list the two sides of the cell the piece connects.
type BodyGlyphs struct {
	Vertical    string `yaml:"vertical"`
	Horizontal  string `yaml:"horizontal"`
	TopLeft     string `yaml:"top_left"`
	TopRight    string `yaml:"top_right"`
	BottomLeft  string `yaml:"bottom_left"`
	BottomRight string `yaml:"bottom_right"`
}

// Skin is a named glyph set.
type Skin struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Color       string     `yaml:"color"`
	HeadColor   string     `yaml:"head_color"`
	FoodColor   string     `yaml:"food_color"`
	Head        DirGlyphs  `yaml:"head"`
	Tail        DirGlyphs  `yaml:"tail"`
	Body        BodyGlyphs `yaml:"body"`
	Food        string     `yaml:"food"`
}

// Validate checks that every glyph is exactly one rune and every colour is known.
func (s *Skin) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidSkin)
	}

	glyphs := []struct {
		field, value string
	}{
		{"head.up", s.Head.Up},
		{"head.down", s.Head.Down},
		{"head.left", s.Head.Left},
		{"head.right", s.Head.Right},
		{"tail.up", s.Tail.Up},
		{"tail.down", s.Tail.Down},
		{"tail.left", s.Tail.Left},
		{"tail.right", s.Tail.Right},
		{"body.vertical", s.Body.Vertical},
		{"body.horizontal", s.Body.Horizontal},
		{"body.top_left", s.Body.TopLeft},
		{"body.top_right", s.Body.TopRight},
		{"body.bottom_left", s.Body.BottomLeft},
		{"body.bottom_right", s.Body.BottomRight},
		{"food", s.Food},
	}
	for _, g := range glyphs {
		if utf8.RuneCountInString(g.value) != 1 {
			return fmt.Errorf("%w: %s: glyph %s must be a single character, got %q",
				ErrInvalidSkin, s.Name, g.field, g.value)
		}
	}

	for field, name := range map[string]string{
		"color":      s.Color,
		"head_color": s.HeadColor,
		"food_color": s.FoodColor,
	} {
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("%w: %s: unknown %s %q", ErrInvalidSkin, s.Name, field, name)
		}
	}

	return nil
}

// Colors returns the body, head and food colours.
// Unknown names fall back to the default colour.
func (s *Skin) Colors() (body, head, food core.Color) {
	body, _ = core.ParseColor(s.Color)
	head, _ = core.ParseColor(s.HeadColor)
	food, _ = core.ParseColor(s.FoodColor)
	if s.HeadColor == "" {
		head = body
	}
	return body, head, food
}

// FoodGlyph returns the glyph drawn on the food cell.
func (s *Skin) FoodGlyph() rune {
	return glyph(s.Food)
}

// Connector returns the glyph drawn between two horizontally adjacent segments.
func (s *Skin) Connector() rune {
	return glyph(s.Body.Horizontal)
}

// SegmentGlyph picks the glyph for segments[i], where segments run tail to
// head and heading is the body's current direction.
func (s *Skin) SegmentGlyph(segments []core.Point, i int, heading core.Direction) rune {
	last := len(segments) - 1
	switch {
	case i < 0 || i > last:
		return ' '
	case i == last:
		return s.headGlyph(heading)
	case i == 0:
		toBody, _ := core.DirectionOf(segments[1].Sub(segments[0]))
		return s.tailGlyph(toBody)
	default:
		from, _ := core.DirectionOf(segments[i].Sub(segments[i-1]))
		to, _ := core.DirectionOf(segments[i+1].Sub(segments[i]))
		return s.bodyGlyph(from, to)
	}
}

func (s *Skin) headGlyph(d core.Direction) rune {
	switch d {
	case core.DirUp:
		return glyph(s.Head.Up)
	case core.DirDown:
		return glyph(s.Head.Down)
	case core.DirLeft:
		return glyph(s.Head.Left)
	default:
		return glyph(s.Head.Right)
	}
}

// tailGlyph takes the direction from the tail towards the rest of the body;
// the tail points the other way.
func (s *Skin) tailGlyph(toBody core.Direction) rune {
	switch toBody {
	case core.DirRight:
		return glyph(s.Tail.Left)
	case core.DirLeft:
		return glyph(s.Tail.Right)
	case core.DirUp:
		return glyph(s.Tail.Down)
	default:
		return glyph(s.Tail.Up)
	}
}

// bodyGlyph takes the travel direction into the segment and out of it.
func (s *Skin) bodyGlyph(from, to core.Direction) rune {
	if from == to {
		if from == core.DirUp || from == core.DirDown {
			return glyph(s.Body.Vertical)
		}
		return glyph(s.Body.Horizontal)
	}

	switch {
	case (from == core.DirRight && to == core.DirUp) || (from == core.DirDown && to == core.DirLeft):
		return glyph(s.Body.TopLeft)
	case (from == core.DirLeft && to == core.DirUp) || (from == core.DirDown && to == core.DirRight):
		return glyph(s.Body.TopRight)
	case (from == core.DirRight && to == core.DirDown) || (from == core.DirUp && to == core.DirLeft):
		return glyph(s.Body.BottomLeft)
	case (from == core.DirLeft && to == core.DirDown) || (from == core.DirUp && to == core.DirRight):
		return glyph(s.Body.BottomRight)
	}
	return glyph(s.Body.Horizontal)
}

func glyph(s string) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return '?'
	}
	return r
}
