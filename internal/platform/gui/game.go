// Package gui is the graphical front-end: an ebiten window over a
// tetris.Session, driven by the same gravity and autopilot loops as the
// terminal screen.
package gui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-tetris/internal/ai"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Window layout in pixels.
const (
	cellSize    = 24
	boardCols   = tetris.InteriorRight - tetris.InteriorLeft + 2 // walls included
	boardRows   = tetris.InteriorBottom + 1                      // floor included
	panelX      = boardCols*cellSize + 16
	panelWidth  = 6 * cellSize
	previewCell = cellSize / 2

	ScreenWidth  = panelX + panelWidth
	ScreenHeight = boardRows * cellSize
)

// Options configures the window.
type Options struct {
	Auto   bool // the AI plays instead of the player
	Seed   int64
	Config config.TetrisConfig
	Genome ai.Genome
	Store  *storage.Store // optional
	Logger *log.Logger    // optional
}

// Game implements ebiten.Game over a Session.
type Game struct {
	opts      Options
	session   *tetris.Session
	ctx       context.Context
	cancel    context.CancelFunc
	drivers   sync.WaitGroup
	logger    *log.Logger
	highScore int
	saved     bool
	quit      bool
}

// NewGame creates the window state and starts its driver.
// Call Close when the window exits.
func NewGame(opts Options) *Game {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ctx, cancel := context.WithCancel(context.Background())

	g := &Game{
		opts:    opts,
		session: tetris.NewSession(tetris.New(opts.Seed)),
		ctx:     ctx,
		cancel:  cancel,
		logger:  logger,
	}
	if opts.Store != nil {
		if hs, err := opts.Store.HighScore(g.mode()); err == nil {
			g.highScore = hs
		}
	}
	g.startDriver()
	return g
}

func (g *Game) mode() string {
	if g.opts.Auto {
		return storage.ModeAuto
	}
	return storage.ModeNormal
}

// startDriver runs gravity or the autopilot for the current game.
func (g *Game) startDriver() {
	g.drivers.Add(1)
	go func() {
		defer g.drivers.Done()
		var err error
		if g.opts.Auto {
			genome := g.opts.Genome
			decide := func(t *tetris.Game) *tetris.Game { return ai.BestPlacement(t, genome) }
			err = g.session.RunAutopilot(g.ctx, decide, g.opts.Config.AutoplayInterval())
		} else {
			err = g.session.RunGravity(g.ctx, g.opts.Config.GravityInterval)
		}
		if err != nil && !errors.Is(err, tetris.ErrGameOver) && !errors.Is(err, context.Canceled) {
			g.logger.Error("driver stopped", "err", err)
		}
	}()
}

// Close stops the driver and waits for it.
func (g *Game) Close() {
	g.cancel()
	g.drivers.Wait()
}

// Update reads input and records finished games.
func (g *Game) Update() error {
	g.handle(pressedActions(defaultBindings, inpututil.IsKeyJustPressed))
	if g.quit {
		return ebiten.Termination
	}
	g.checkGameOver()
	return nil
}

// handle applies one frame of actions.
func (g *Game) handle(actions []core.Action) {
	for _, a := range actions {
		switch {
		case a == core.ActionQuit:
			g.quit = true
			return
		case a == core.ActionRestart:
			g.restart()
		case g.opts.Auto && a.Mutates():
			// The AI owns the piece.
		default:
			if err := g.session.Apply(a); err != nil && !errors.Is(err, tetris.ErrGameOver) {
				g.logger.Error("apply failed", "action", a, "err", err)
			}
		}
	}
}

func (g *Game) restart() {
	seed := time.Now().UnixNano()
	g.session.Reset(tetris.New(seed))
	g.saved = false
	g.logger.Info("game restarted", "mode", g.mode(), "seed", seed)
	g.startDriver()
}

// checkGameOver saves the score once per finished game.
func (g *Game) checkGameOver() {
	snap := g.session.Snapshot()
	if !snap.GameOver || g.saved {
		return
	}
	g.saved = true
	g.highScore = max(g.highScore, snap.Score)
	g.logger.Info("game over", "mode", g.mode(), "score", snap.Score, "lines", snap.Lines)
	if g.opts.Store == nil {
		return
	}
	if _, err := g.opts.Store.SaveScore(g.mode(), snap.Score, snap.Lines); err != nil {
		g.logger.Error("save score", "err", err)
	}
}

// Draw renders the board and the side panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	snap := g.session.Snapshot()
	board := snap.Compose()
	first := tetris.InteriorLeft - 1
	for y := 0; y < boardRows; y++ {
		for x := 0; x < boardCols; x++ {
			fillCell(screen, float32(x*cellSize), float32(y*cellSize), cellSize, board[y][x+first])
		}
	}

	y := 4
	ebitenutil.DebugPrintAt(screen, "HOLD", panelX, y)
	if snap.HasHold {
		drawPreview(screen, panelX, y+16, snap.Hold)
	}
	y += 16 + tetris.ShapeSize*previewCell + 8

	ebitenutil.DebugPrintAt(screen, "NEXT", panelX, y)
	row := y + 16
	for _, s := range snap.Preview() {
		row += (drawPreview(screen, panelX, row, s) + 1) * previewCell
	}
	y += 16 + tetris.NextLength*3*previewCell + 8

	hud := fmt.Sprintf("SCORE %d\nLINES %d\nHIGH  %d", snap.Score, snap.Lines, g.highScore)
	ebitenutil.DebugPrintAt(screen, hud, panelX, y)
	y += 56

	switch {
	case snap.GameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER\nR restart\nQ quit", panelX, y)
	case g.session.Paused():
		ebitenutil.DebugPrintAt(screen, "PAUSED", panelX, y)
	}
}

// fillCell draws one square with a one-pixel gap.
func fillCell(dst *ebiten.Image, x, y, size float32, c tetris.Cell) {
	vector.DrawFilledRect(dst, x+1, y+1, size-2, size-2, cellColor(c), false)
}

// drawPreview draws the non-empty rows of s and returns how many it used.
func drawPreview(dst *ebiten.Image, x, y int, s tetris.Shape) int {
	rows := 0
	for _, line := range s {
		empty := true
		for col, c := range line {
			if c.Filled() {
				fillCell(dst, float32(x+col*previewCell), float32(y+rows*previewCell), previewCell, c)
				empty = false
			}
		}
		if !empty {
			rows++
		}
	}
	return rows
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(opts Options) error {
	g := NewGame(opts)
	defer g.Close()

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Tetris")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
