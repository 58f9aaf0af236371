package tetris

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// errReplaced stops a driver loop whose game was swapped out by Reset.
var errReplaced = errors.New("tetris: game replaced")

// Session shares one Game between an input goroutine and a timer-driven
// driver (gravity or autopilot). A single mutex guards the whole game and is
// held for the full duration of every operation, so a fall never interleaves
// with a player command.
type Session struct {
	mu     sync.Mutex
	game   *Game
	paused bool
}

// NewSession wraps g for concurrent use.
func NewSession(g *Game) *Session {
	return &Session{game: g}
}

// Apply runs one command against the game.
// A hard drop locks the piece and may return ErrGameOver.
func (s *Session) Apply(a core.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a == core.ActionPause {
		s.paused = !s.paused
		return nil
	}
	if s.paused || s.game.GameOver() {
		return nil
	}

	g := s.game
	switch a {
	case core.ActionMoveLeft:
		g.Move(Left)
	case core.ActionMoveRight:
		g.Move(Right)
	case core.ActionSoftDrop:
		g.Move(Down)
	case core.ActionRotateLeft:
		g.RotateLeft()
	case core.ActionRotateRight:
		g.RotateRight()
	case core.ActionHardDrop:
		g.HardDrop()
		return g.Lock()
	case core.ActionHold:
		g.Hold()
	}
	return nil
}

// Step advances gravity by one row, locking the piece when it cannot fall.
func (s *Session) Step() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step(s.game)
}

func (s *Session) step(owner *Game) error {
	if s.game != owner {
		return errReplaced
	}
	if s.game.GameOver() {
		return ErrGameOver
	}
	if s.paused {
		return nil
	}
	if s.game.Move(Down) {
		return nil
	}
	return s.game.Lock()
}

// Snapshot returns a consistent view of the game.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// Paused reports whether the session is paused.
func (s *Session) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Reset swaps in a fresh game. Driver loops bound to the old game exit on
// their next tick, so callers start a new driver afterwards.
func (s *Session) Reset(g *Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game = g
	s.paused = false
}

// current returns the game drivers bind to.
func (s *Session) current() (*Game, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game, s.game.Lines()
}

// RunGravity drops the piece one row every interval(lines) until the game
// ends, the game is replaced or ctx is cancelled. It returns ErrGameOver when
// the game ended.
func (s *Session) RunGravity(ctx context.Context, interval func(lines int) time.Duration) error {
	owner, lines := s.current()
	for {
		if err := sleep(ctx, interval(lines)); err != nil {
			return err
		}

		s.mu.Lock()
		err := s.step(owner)
		lines = owner.Lines()
		s.mu.Unlock()

		switch {
		case errors.Is(err, errReplaced):
			return nil
		case err != nil:
			return err
		}
	}
}

// RunAutopilot lets decide pick every placement. Each interval the chosen
// state is installed and locked. It returns ErrGameOver when the game ended.
func (s *Session) RunAutopilot(ctx context.Context, decide func(*Game) *Game, interval time.Duration) error {
	owner, _ := s.current()
	for {
		if err := sleep(ctx, interval); err != nil {
			return err
		}

		s.mu.Lock()
		err := s.autoStep(owner, decide)
		s.mu.Unlock()

		switch {
		case errors.Is(err, errReplaced):
			return nil
		case err != nil:
			return err
		}
	}
}

func (s *Session) autoStep(owner *Game, decide func(*Game) *Game) error {
	if s.game != owner {
		return errReplaced
	}
	if owner.GameOver() {
		return ErrGameOver
	}
	if s.paused {
		return nil
	}
	*owner = *decide(owner)
	return owner.Lock()
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
