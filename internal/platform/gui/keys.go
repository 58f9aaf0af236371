package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// keyBinding maps one key to an action.
type keyBinding struct {
	Key    ebiten.Key
	Action core.Action
}

// defaultBindings mirrors the terminal key map.
var defaultBindings = []keyBinding{
	{ebiten.KeyArrowLeft, core.ActionMoveLeft},
	{ebiten.KeyA, core.ActionMoveLeft},
	{ebiten.KeyArrowRight, core.ActionMoveRight},
	{ebiten.KeyD, core.ActionMoveRight},
	{ebiten.KeyArrowDown, core.ActionSoftDrop},
	{ebiten.KeyS, core.ActionSoftDrop},
	{ebiten.KeyZ, core.ActionRotateLeft},
	{ebiten.KeyArrowUp, core.ActionRotateRight},
	{ebiten.KeyX, core.ActionRotateRight},
	{ebiten.KeyW, core.ActionRotateRight},
	{ebiten.KeySpace, core.ActionHardDrop},
	{ebiten.KeyC, core.ActionHold},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyQ, core.ActionQuit},
}

// pressedActions returns the actions whose keys were just pressed, in
// binding order, without duplicates.
func pressedActions(bindings []keyBinding, justPressed func(ebiten.Key) bool) []core.Action {
	var out []core.Action
	seen := make(map[core.Action]bool)
	for _, b := range bindings {
		if seen[b.Action] || !justPressed(b.Key) {
			continue
		}
		seen[b.Action] = true
		out = append(out, b.Action)
	}
	return out
}

var (
	colorBackground = color.RGBA{0x10, 0x10, 0x18, 0xff}
	colorGrid       = color.RGBA{0x22, 0x22, 0x2c, 0xff}
	colorWall       = color.RGBA{0x70, 0x70, 0x78, 0xff}
	colorGhost      = color.RGBA{0x48, 0x48, 0x52, 0xff}
)

// cellColors is the palette for filled cells, matching the terminal colours.
var cellColors = map[tetris.Cell]color.RGBA{
	tetris.Wall:  colorWall,
	tetris.Ghost: colorGhost,
	tetris.CellI: {0x00, 0xc8, 0xd8, 0xff},
	tetris.CellO: {0xe8, 0xd0, 0x20, 0xff},
	tetris.CellS: {0x30, 0xc0, 0x40, 0xff},
	tetris.CellZ: {0xd8, 0x30, 0x30, 0xff},
	tetris.CellJ: {0x30, 0x60, 0xe0, 0xff},
	tetris.CellL: {0xf0, 0x90, 0x20, 0xff},
	tetris.CellT: {0xa0, 0x40, 0xd0, 0xff},
}

// cellColor returns the fill for c. Empty cells use the grid colour.
func cellColor(c tetris.Cell) color.RGBA {
	if col, ok := cellColors[c]; ok {
		return col
	}
	return colorGrid
}
