package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/skin"
)

// Status texts shown under the board.
const (
	readyText        = "Ready! Press any key to start."
	resetText        = "Press any key to reset."
	missingSkinText  = "ERROR: Missing snake skin!"
	invalidSkinText  = "ERROR: Invalid snake skin!"
	minScreenWidth   = len(readyText) + 2
	statusLines      = 2
	hudLines         = 1
	cellColumns      = 2 // terminal columns per board cell
	boardBorderWidth = 2
	helpLines        = 2 // blank separator and the short help
)

// ansiCodes maps core.Color to terminal palette indices.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// colorStyle returns the lipgloss style for a colour.
func colorStyle(c core.Color) lipgloss.Style {
	code, ok := ansiCodes[c]
	if !ok {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same colour share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		var run strings.Builder
		runColor := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				sb.WriteString(colorStyle(runColor).Render(run.String()))
				run.Reset()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		sb.WriteString(colorStyle(runColor).Render(run.String()))
	}
	return sb.String()
}

// screenSize returns the buffer size needed to draw a board of size cells.
func screenSize(size core.Size) (w, h int) {
	w = max(size.W*cellColumns+boardBorderWidth, minScreenWidth)
	h = hudLines + size.H + boardBorderWidth + statusLines
	return w, h
}

// NewSessionScreen returns a buffer sized for DrawSession.
func NewSessionScreen(size core.Size) *core.Screen {
	return core.NewScreen(screenSize(size))
}

// RequiredSize returns the terminal size needed to show a board of size cells
// together with the help footer.
func RequiredSize(size core.Size) (w, h int) {
	w, h = screenSize(size)
	return w, h + helpLines
}

// DrawSession draws the HUD, the board and the status lines of a snapshot.
// The skin may be nil, in which case only the frame and text are drawn.
func DrawSession(s *core.Screen, snap snake.Snapshot, sk *skin.Skin) {
	s.Clear()

	boardW := snap.Size.W*cellColumns + boardBorderWidth
	boardH := snap.Size.H + boardBorderWidth
	ox := (s.Width() - boardW) / 2
	oy := hudLines

	s.DrawText(ox, 0, fmt.Sprintf("Score: %d", snap.Score))
	s.DrawBox(core.NewRect(ox, oy, boardW, boardH))

	// cellX maps a board column to the screen column of its glyph.
	cellX := func(x int) int { return ox + 1 + x*cellColumns }
	cellY := func(y int) int { return oy + 1 + y }

	if sk != nil {
		body, head, food := sk.Colors()

		if snap.HasFood {
			s.SetColored(cellX(snap.Food.X), cellY(snap.Food.Y), sk.FoodGlyph(), food)
		}

		segs := snap.Segments
		for i, p := range segs {
			color := body
			if i == len(segs)-1 {
				color = head
			}
			s.SetColored(cellX(p.X), cellY(p.Y), sk.SegmentGlyph(segs, i, snap.Direction), color)

			// Fill the gap column between horizontal neighbours.
			if i > 0 && segs[i-1].Y == p.Y && abs(segs[i-1].X-p.X) == 1 {
				left := min(segs[i-1].X, p.X)
				s.SetColored(cellX(left)+1, cellY(p.Y), sk.Connector(), body)
			}
		}
	}

	color := core.ColorDefault
	if snap.Err != nil {
		color = core.ColorBrightRed
	}
	for i, line := range statusText(snap) {
		s.DrawTextCentered(oy+boardH+i, line, color)
	}
}

// statusText returns the lines shown under the board for the session state.
func statusText(snap snake.Snapshot) []string {
	if snap.Err != nil {
		if errors.Is(snap.Err, snake.ErrMissingSkin) {
			return []string{missingSkinText}
		}
		return []string{invalidSkinText}
	}

	switch snap.State {
	case snake.StateReady:
		return []string{readyText}
	case snake.StateGameOver:
		return []string{fmt.Sprintf("Game Over! Score: %d", snap.Score), resetText}
	default:
		return nil
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
