package puzzle

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock drives the board's solved timer and effect aging by hand.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestBoard(grid int) (*Board, *fakeClock) {
	b := NewBoard(rand.New(rand.NewSource(1)))
	clk := newFakeClock()
	b.SetClock(clk.now)
	ok := b.Init(1000, 1000, 800, 800, grid)
	if !ok {
		panic("test board init failed")
	}
	return b, clk
}

// dragToTarget picks the piece at its current position and releases it at
// the given offset from its target.
func dragToTarget(b *Board, id int, offX, offY float64) {
	// raise it first so an overlapping scattered piece cannot steal the pick
	b.pieces[id].Z = b.nextZ
	b.nextZ++
	p := b.PieceByIndex(id)
	l, _ := b.Layout()
	cx, cy := p.X+l.PieceW/2, p.Y+l.PieceH/2
	if !b.PointerDown(cx, cy) {
		panic("pick missed")
	}
	b.PointerMove(p.TargetX+offX+l.PieceW/2, p.TargetY+offY+l.PieceH/2)
	b.PointerUp(p.TargetX+offX+l.PieceW/2, p.TargetY+offY+l.PieceH/2)
}

func TestInitProducesAllPieces(t *testing.T) {
	for _, grid := range []int{3, 4, 6, 8} {
		b, _ := newTestBoard(grid)
		require.Equal(t, grid*grid, b.Len())

		seen := map[int]bool{}
		cells := map[[2]int]bool{}
		l, ok := b.Layout()
		require.True(t, ok)
		for i := 0; i < b.Len(); i++ {
			p := b.PieceByIndex(i)
			assert.Equal(t, p.Row*grid+p.Col, p.ID)
			assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
			seen[p.ID] = true
			cells[[2]int{p.Row, p.Col}] = true
			assert.False(t, p.Locked)
			// scattered inside the canvas
			assert.GreaterOrEqual(t, p.X, 0.0)
			assert.GreaterOrEqual(t, p.Y, 0.0)
			assert.LessOrEqual(t, p.X, 800-l.PieceW)
			assert.LessOrEqual(t, p.Y, 800-l.PieceH)
		}
		assert.Len(t, cells, grid*grid)
	}
}

func TestScatterReproducible(t *testing.T) {
	a := NewBoard(rand.New(rand.NewSource(7)))
	b := NewBoard(rand.New(rand.NewSource(7)))
	a.Init(500, 500, 600, 600, 4)
	b.Init(500, 500, 600, 600, 4)
	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, a.PieceByIndex(i).X, b.PieceByIndex(i).X)
		assert.Equal(t, a.PieceByIndex(i).Y, b.PieceByIndex(i).Y)
	}
}

func TestPickTopmostAndRaise(t *testing.T) {
	b, _ := newTestBoard(3)
	// stack every piece on the same spot; the one with the highest z wins
	for i := 0; i < b.Len(); i++ {
		b.pieces[i].X, b.pieces[i].Y = 100, 100
	}
	require.True(t, b.PointerDown(110, 110))
	top := b.Len() - 1 // z == id after init, so the last piece is topmost
	assert.Equal(t, top, b.DraggingID())
	// raised above every other piece
	for i := 0; i < b.Len(); i++ {
		if i != top {
			assert.Greater(t, b.PieceByIndex(top).Z, b.PieceByIndex(i).Z)
		}
	}
	b.PointerUp(110, 110)
}

func TestPickMissStaysIdle(t *testing.T) {
	b, _ := newTestBoard(3)
	for i := 0; i < b.Len(); i++ {
		b.pieces[i].X, b.pieces[i].Y = 0, 0
	}
	assert.False(t, b.PointerDown(790, 790))
	assert.Equal(t, -1, b.DraggingID())
}

func TestDragKeepsPickOffsetAndClamps(t *testing.T) {
	b, _ := newTestBoard(4)
	l, _ := b.Layout()
	b.pieces[0].X, b.pieces[0].Y = 200, 200

	// grab 10px inside the piece: the piece must not jump to the cursor
	require.True(t, b.PointerDown(210, 210))
	b.PointerMove(310, 260)
	p := b.PieceByIndex(0)
	assert.InDelta(t, 300, p.X, 1e-9)
	assert.InDelta(t, 250, p.Y, 1e-9)

	// drag far off-canvas: clamped per axis
	b.PointerMove(-500, 5000)
	p = b.PieceByIndex(0)
	assert.Equal(t, 0.0, p.X)
	assert.InDelta(t, 800-l.PieceH, p.Y, 1e-9)
	b.PointerUp(-500, 5000)
	p = b.PieceByIndex(0)
	assert.False(t, p.Locked)
}

func TestReleaseInsideToleranceLocks(t *testing.T) {
	b, _ := newTestBoard(4)
	l, _ := b.Layout()
	tol := SnapRatio * l.PieceW

	moves := 0
	b.OnMove = func() { moves++ }
	locks := 0
	b.OnLock = func() { locks++ }

	dragToTarget(b, 5, tol*0.4, tol*0.4)
	p := b.PieceByIndex(5)
	assert.True(t, p.Locked)
	// snapped exactly onto the target
	assert.Equal(t, p.TargetX, p.X)
	assert.Equal(t, p.TargetY, p.Y)
	assert.Equal(t, 0, p.Z)
	assert.Equal(t, 1, moves)
	assert.Equal(t, 1, locks)
	assert.Len(t, b.Effects(), 1)
}

func TestReleaseOutsideToleranceStays(t *testing.T) {
	b, _ := newTestBoard(4)
	l, _ := b.Layout()
	tol := SnapRatio * l.PieceW

	moves := 0
	b.OnMove = func() { moves++ }

	// diagonal offset of tol per axis: distance = tol*sqrt(2) > tol
	dragToTarget(b, 5, tol, tol)
	p := b.PieceByIndex(5)
	assert.False(t, p.Locked)
	assert.InDelta(t, p.TargetX+tol, p.X, 1e-9)
	assert.InDelta(t, p.TargetY+tol, p.Y, 1e-9)
	assert.Equal(t, 1, moves, "a miss still counts as a move")
	assert.Empty(t, b.Effects())
}

func TestToleranceBoundaryNumbers(t *testing.T) {
	// pieceWidth=100 -> threshold 25: release at distance ~7 locks,
	// distance ~212 does not
	b := NewBoard(rand.New(rand.NewSource(3)))
	clk := newFakeClock()
	b.SetClock(clk.now)
	// 400x400 board in 471x471 container => piece 100x100
	side := 400.0 / FillRatio
	require.True(t, b.Init(800, 800, side, side, 4))
	l, _ := b.Layout()
	require.InDelta(t, 100, l.PieceW, 1e-9)

	dragToTarget(b, 0, -5, -5) // distance ~7.07
	assert.True(t, b.PieceByIndex(0).Locked)

	dragToTarget(b, 1, 150, 150) // distance ~212
	assert.False(t, b.PieceByIndex(1).Locked)
}

func TestLockedPieceIgnoresInput(t *testing.T) {
	b, _ := newTestBoard(3)
	dragToTarget(b, 0, 0, 0)
	p := b.PieceByIndex(0)
	require.True(t, p.Locked)

	l, _ := b.Layout()
	// a pick on the locked piece must not grab it
	picked := b.PointerDown(p.X+l.PieceW/2, p.Y+l.PieceH/2)
	if picked {
		// some unlocked piece may overlap the target; it must not be piece 0
		assert.NotEqual(t, 0, b.DraggingID())
		b.PointerUp(0, 0)
	}
	after := b.PieceByIndex(0)
	assert.Equal(t, p.X, after.X)
	assert.Equal(t, p.Y, after.Y)
	assert.Equal(t, 0, after.Z)
	assert.True(t, after.Locked)
}

func TestSolvedFiresOnceAfterDelay(t *testing.T) {
	b, clk := newTestBoard(3)

	moves, solved := 0, 0
	b.OnMove = func() { moves++ }
	b.OnSolved = func() { solved++ }

	// lock all 9 pieces in arbitrary order
	for _, id := range []int{4, 0, 8, 2, 6, 1, 7, 3, 5} {
		dragToTarget(b, id, 0, 0)
		b.Update()
	}
	require.True(t, b.Complete())
	assert.Equal(t, 9, moves)
	assert.Equal(t, 0, solved, "solved must wait for the delay")

	clk.advance(SolvedDelay - time.Millisecond)
	b.Update()
	assert.Equal(t, 0, solved)

	clk.advance(2 * time.Millisecond)
	b.Update()
	assert.Equal(t, 1, solved)

	// never again, no matter how often Update runs
	for i := 0; i < 100; i++ {
		clk.advance(time.Second)
		b.Update()
	}
	assert.Equal(t, 1, solved)
}

func TestRebuildInvalidatesSolvedTimer(t *testing.T) {
	b, clk := newTestBoard(3)
	solved := 0
	b.OnSolved = func() { solved++ }

	for id := 0; id < 9; id++ {
		dragToTarget(b, id, 0, 0)
	}
	require.True(t, b.Complete())

	// new puzzle before the timer fires: the old timer must not fire into
	// the reset board
	require.True(t, b.Init(1000, 1000, 800, 800, 3))
	clk.advance(SolvedDelay * 2)
	b.Update()
	assert.Equal(t, 0, solved)
	assert.Equal(t, 0, b.LockedCount())
}

func TestResizeRebuilds(t *testing.T) {
	b, _ := newTestBoard(4)
	dragToTarget(b, 0, 0, 0)
	require.Equal(t, 1, b.LockedCount())

	require.True(t, b.Resize(640, 480))
	assert.Equal(t, 16, b.Len())
	assert.Equal(t, 0, b.LockedCount(), "full reset is the only supported transition")
	l, ok := b.Layout()
	require.True(t, ok)
	for i := 0; i < b.Len(); i++ {
		p := b.PieceByIndex(i)
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y))
		assert.False(t, math.IsNaN(p.TargetX) || math.IsNaN(p.TargetY))
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X, 640-l.PieceW)
	}
}

func TestDegenerateContainer(t *testing.T) {
	b := NewBoard(rand.New(rand.NewSource(1)))
	assert.False(t, b.Init(1000, 1000, 0, 600, 4))
	assert.Equal(t, 0, b.Len())
	_, ok := b.Layout()
	assert.False(t, ok)
	// input is a no-op, not a panic
	assert.False(t, b.PointerDown(10, 10))
	b.PointerMove(10, 10)
	b.PointerUp(10, 10)
	b.Update()

	// retry on next resize
	assert.True(t, b.Resize(800, 600))
	assert.Equal(t, 16, b.Len())
}

func TestDrawOrderAscendingZ(t *testing.T) {
	b, _ := newTestBoard(4)
	// lock one piece and drag another so z values diverge
	dragToTarget(b, 3, 0, 0)
	b.pieces[7].Z = b.nextZ
	b.nextZ++
	p := b.PieceByIndex(7)
	l, _ := b.Layout()
	require.True(t, b.PointerDown(p.X+l.PieceW/2, p.Y+l.PieceH/2))

	order := b.DrawOrder()
	require.Len(t, order, 16)
	for i := 1; i < len(order); i++ {
		assert.LessOrEqual(t, b.PieceByIndex(order[i-1]).Z, b.PieceByIndex(order[i]).Z)
	}
	assert.Equal(t, 3, order[0], "locked piece sinks to the bottom")
	assert.Equal(t, 7, order[len(order)-1], "dragged piece renders above everything")
	b.PointerUp(0, 0)
}
