package core

import "math"

// Point is a cell address on the board.
type Point struct {
	X, Y int
}

// Add returns the neighbouring cell one step in direction d.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit step for the direction. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// DirectionOf returns the direction whose delta equals step.
// ok is false when step is not a unit cardinal step.
func DirectionOf(step Point) (d Direction, ok bool) {
	switch step {
	case Point{X: 0, Y: -1}:
		return DirUp, true
	case Point{X: 0, Y: 1}:
		return DirDown, true
	case Point{X: -1, Y: 0}:
		return DirLeft, true
	case Point{X: 1, Y: 0}:
		return DirRight, true
	}
	return DirRight, false
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Size is the board dimension in cells.
type Size struct {
	W, H int
}

// Contains reports whether p lies on the board.
func (s Size) Contains(p Point) bool {
	return InBounds(p, s.W, s.H)
}

// InBounds reports whether 0 <= x < w and 0 <= y < h.
func InBounds(p Point, w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// ToPixel returns the top-left pixel of a cell.
func ToPixel(p Point, cellSize int) (x, y float64) {
	return float64(p.X * cellSize), float64(p.Y * cellSize)
}

// ToGrid returns the cell containing the pixel (x, y).
func ToGrid(x, y float64, cellSize int) Point {
	cs := float64(cellSize)
	return Point{
		X: int(math.Floor(x / cs)),
		Y: int(math.Floor(y / cs)),
	}
}
