package src

import (
	"fmt"
	"math/rand"
	"time"

	"jigsaw/src/logx"
	"jigsaw/src/puzzle"
)

// GridSizes are the supported difficulties. Anything else is a caller
// contract violation, not a recoverable runtime condition.
var GridSizes = []int{3, 4, 6, 8}

func ValidGrid(n int) bool {
	for _, g := range GridSizes {
		if g == n {
			return true
		}
	}
	return false
}

// GameSession is the facade the UI talks to: it owns the board plus the
// session bookkeeping the board itself does not (move counter, elapsed
// time, solved flag).
type GameSession struct {
	board  *puzzle.Board
	logger logx.Logger

	grid       int
	imgW, imgH float64

	moves   int
	started time.Time
	stopped time.Time
	solved  bool

	// LockHook and SolveHook let the UI attach feedback (sound, modal)
	// without taking over the board callbacks the session needs itself.
	LockHook  func()
	SolveHook func()
}

func NewGameSession(logger logx.Logger, rng *rand.Rand) *GameSession {
	gs := &GameSession{
		board:  puzzle.NewBoard(rng),
		logger: logger,
	}
	gs.board.OnMove = func() {
		gs.moves++
	}
	gs.board.OnLock = func() {
		gs.logger.Debugf("piece locked (%d/%d)", gs.board.LockedCount(), gs.board.Len())
		if gs.LockHook != nil {
			gs.LockHook()
		}
	}
	gs.board.OnSolved = func() {
		gs.solved = true
		gs.stopped = time.Now()
		gs.logger.Infof("puzzle solved in %d moves, %s", gs.moves, gs.Elapsed().Round(time.Second))
		if gs.SolveHook != nil {
			gs.SolveHook()
		}
	}
	return gs
}

// Configure starts a fresh puzzle: new scatter, counters reset. The image
// stays whatever the UI loaded; the session only needs its dimensions.
func (gs *GameSession) Configure(imgW, imgH, contW, contH float64, grid int) error {
	if !ValidGrid(grid) {
		return fmt.Errorf("unsupported grid size %d (want one of %v)", grid, GridSizes)
	}
	gs.grid = grid
	gs.imgW, gs.imgH = imgW, imgH
	gs.moves = 0
	gs.solved = false
	gs.started = time.Now()
	gs.stopped = time.Time{}
	if !gs.board.Init(imgW, imgH, contW, contH, grid) {
		gs.logger.Warnf("degenerate display area %.0fx%.0f, board deferred", contW, contH)
		return nil
	}
	gs.logger.Infof("new %dx%d puzzle, image %.0fx%.0f", grid, grid, imgW, imgH)
	return nil
}

// Resize rebuilds the board for a new display area. Progress is discarded;
// counters keep running since it is the same play session.
func (gs *GameSession) Resize(contW, contH float64) {
	gs.solved = false
	gs.board.Resize(contW, contH)
}

func (gs *GameSession) Board() *puzzle.Board { return gs.board }

func (gs *GameSession) Moves() int { return gs.moves }

func (gs *GameSession) Solved() bool { return gs.solved }

func (gs *GameSession) Grid() int { return gs.grid }

// Elapsed is the running play time, frozen once the puzzle is solved.
func (gs *GameSession) Elapsed() time.Duration {
	if gs.started.IsZero() {
		return 0
	}
	if !gs.stopped.IsZero() {
		return gs.stopped.Sub(gs.started)
	}
	return time.Since(gs.started)
}
