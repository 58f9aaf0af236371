package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDarkGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
}

// cellColors is the palette for board cells.
var cellColors = map[tetris.Cell]core.Color{
	tetris.Empty: core.ColorDarkGray,
	tetris.Wall:  core.ColorGray,
	tetris.Ghost: core.ColorDarkGray,
	tetris.CellI: core.ColorCyan,
	tetris.CellO: core.ColorYellow,
	tetris.CellS: core.ColorGreen,
	tetris.CellZ: core.ColorRed,
	tetris.CellJ: core.ColorBlue,
	tetris.CellL: core.ColorOrange,
	tetris.CellT: core.ColorMagenta,
}

// cellGlyph returns the two runes a board cell is drawn with.
func cellGlyph(c tetris.Cell) string {
	switch c {
	case tetris.Empty:
		return " ."
	case tetris.Ghost:
		return "[]"
	default:
		return "██"
	}
}

// Layout of the play screen, in screen cells.
const (
	boardX   = 2
	boardY   = 1
	cellW    = 2
	boardW   = (tetris.InteriorRight - tetris.InteriorLeft + 2) * cellW // walls included
	panelX   = boardX + boardW + 3
	ScreenW  = panelX + 20
	ScreenH  = boardY + tetris.InteriorBottom + 2
	firstCol = tetris.InteriorLeft - 1
)

// HUD is the text drawn beside the board.
type HUD struct {
	Title     string
	HighScore int
	Paused    bool
}

// DrawSnapshot renders the board, ghost, falling piece and side panel.
func DrawSnapshot(s *core.Screen, snap tetris.Snapshot, hud HUD) {
	s.Clear()

	board := snap.Compose()
	for y := tetris.InteriorTop; y <= tetris.InteriorBottom; y++ {
		for x := firstCol; x <= tetris.InteriorRight; x++ {
			drawCell(s, boardX+(x-firstCol)*cellW, boardY+y, board[y][x])
		}
	}

	y := boardY
	s.DrawColorText(panelX, y, hud.Title, core.ColorBrightWhite)
	y++

	s.DrawColorText(panelX, y, "HOLD", core.ColorWhite)
	if snap.HasHold {
		drawPreview(s, panelX, y+1, snap.Hold)
	}
	y += 1 + tetris.ShapeSize

	s.DrawColorText(panelX, y, "NEXT", core.ColorWhite)
	row := y + 1
	for _, shape := range snap.Preview() {
		row += drawPreview(s, panelX, row, shape) + 1
	}
	y += 1 + tetris.NextLength*3

	s.DrawText(panelX, y, fmt.Sprintf("SCORE %7d", snap.Score))
	s.DrawText(panelX, y+1, fmt.Sprintf("LINES %7d", snap.Lines))
	s.DrawColorText(panelX, y+2, fmt.Sprintf("HIGH  %7d", hud.HighScore), core.ColorGray)

	switch {
	case snap.GameOver:
		s.DrawColorText(panelX, y+3, "GAME OVER", core.ColorRed)
		s.DrawColorText(panelX, y+4, "r restart  q quit", core.ColorGray)
	case hud.Paused:
		s.DrawColorText(panelX, y+3, "PAUSED", core.ColorYellow)
	}
}

func drawCell(s *core.Screen, x, y int, c tetris.Cell) {
	s.DrawColorText(x, y, cellGlyph(c), cellColors[c])
}

// drawPreview draws the non-empty rows of shape starting at (x, y) and
// returns how many rows it used.
func drawPreview(s *core.Screen, x, y int, shape tetris.Shape) int {
	rows := 0
	for _, line := range shape {
		empty := true
		for col, c := range line {
			if c.Filled() {
				drawCell(s, x+col*cellW, y+rows, c)
				empty = false
			}
		}
		if !empty {
			rows++
		}
	}
	return rows
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
