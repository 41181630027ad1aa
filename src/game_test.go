package src

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jigsaw/src/logx"
	"jigsaw/src/puzzle"
)

func TestConfigureRejectsBadGrid(t *testing.T) {
	gs := NewGameSession(logx.NewNop(), rand.New(rand.NewSource(1)))
	for _, n := range []int{0, 1, 2, 5, 7, 9, -3} {
		assert.Error(t, gs.Configure(800, 600, 1000, 700, n), "grid %d", n)
	}
	for _, n := range GridSizes {
		assert.NoError(t, gs.Configure(800, 600, 1000, 700, n), "grid %d", n)
		assert.Equal(t, n*n, gs.Board().Len())
	}
}

func TestDegenerateAreaDefersBoard(t *testing.T) {
	gs := NewGameSession(logx.NewNop(), rand.New(rand.NewSource(1)))
	require.NoError(t, gs.Configure(800, 600, 0, 0, 4))
	assert.Equal(t, 0, gs.Board().Len())

	gs.Resize(1000, 700)
	assert.Equal(t, 16, gs.Board().Len())
}

// placeAll drags pieces through the real input path until every piece is
// locked. Pieces overlap after a scatter, so each pick takes whatever is
// topmost and drops it exactly on its own target.
func placeAll(b *puzzle.Board) {
	l, _ := b.Layout()
	for !b.Complete() {
		progressed := false
		for i := 0; i < b.Len(); i++ {
			p := b.PieceByIndex(i)
			if p.Locked {
				continue
			}
			cx, cy := p.X+l.PieceW/2, p.Y+l.PieceH/2
			if !b.PointerDown(cx, cy) {
				continue
			}
			q := b.PieceByIndex(b.DraggingID())
			b.PointerUp(q.TargetX+(cx-q.X), q.TargetY+(cy-q.Y))
			progressed = true
		}
		if !progressed {
			return
		}
	}
}

func TestSessionCountsMovesAndLocks(t *testing.T) {
	gs := NewGameSession(logx.NewNop(), rand.New(rand.NewSource(1)))
	require.NoError(t, gs.Configure(1000, 1000, 800, 800, 3))

	b := gs.Board()
	l, _ := b.Layout()

	// one completed drag that misses is still one move: the release clamps
	// the piece to the canvas corner, well outside every target's tolerance
	p := b.PieceByIndex(0)
	require.True(t, b.PointerDown(p.X+l.PieceW/2, p.Y+l.PieceH/2))
	b.PointerUp(-1000, -1000)
	assert.Equal(t, 1, gs.Moves())
	assert.Equal(t, 0, b.LockedCount())

	locks := 0
	gs.LockHook = func() { locks++ }
	placeAll(b)
	require.True(t, b.Complete())
	assert.Equal(t, 9, locks)
	assert.GreaterOrEqual(t, gs.Moves(), 10)
	assert.False(t, gs.Solved(), "solved waits for the board's delayed notification")

	solves := 0
	gs.SolveHook = func() { solves++ }
	// the session flips its flag when the board notification arrives
	b.OnSolved()
	assert.True(t, gs.Solved())
	assert.Equal(t, 1, solves)
	assert.GreaterOrEqual(t, gs.Elapsed(), time.Duration(0))
}

func TestResizeKeepsSession(t *testing.T) {
	gs := NewGameSession(logx.NewNop(), rand.New(rand.NewSource(5)))
	require.NoError(t, gs.Configure(640, 480, 1000, 700, 4))
	placeAll(gs.Board())
	require.True(t, gs.Board().Complete())

	gs.Resize(900, 600)
	assert.False(t, gs.Solved())
	assert.Equal(t, 16, gs.Board().Len())
	assert.Equal(t, 0, gs.Board().LockedCount())
	assert.Equal(t, 4, gs.Grid())
}
