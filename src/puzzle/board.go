package puzzle

import (
	"math"
	"math/rand"
	"sort"
	"time"
)

const (
	// SnapRatio scales piece width into the tolerance radius: releasing a
	// piece closer than SnapRatio*PieceW to its target locks it.
	SnapRatio = 0.25

	// SolvedDelay leaves the last placement effect visible before the
	// solved notification fires.
	SolvedDelay = 800 * time.Millisecond
)

// Board owns every piece and all live effects. It is a single-owner store:
// pointer handlers and the per-tick Update run on the game loop thread, so
// no locking. Callbacks fire synchronously from that same thread.
type Board struct {
	layout    Layout
	hasLayout bool

	canvasW, canvasH float64
	imgW, imgH       float64
	grid             int

	pieces      []Piece
	nextZ       int
	lockedCount int

	dragID         int // -1 while idle
	dragDX, dragDY float64

	effects []*Effect

	solveAt      time.Time
	solvePending bool
	solvedFired  bool

	rng *rand.Rand
	now func() time.Time

	// OnMove fires exactly once per completed drag release, locked or not.
	// OnLock fires on every successful placement, OnSolved exactly once
	// per board instance, SolvedDelay after the last lock.
	OnMove   func()
	OnLock   func()
	OnSolved func()
}

// NewBoard creates an empty board. A nil rng gets a time-seeded source;
// tests inject their own for reproducible scatters.
func NewBoard(rng *rand.Rand) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Board{rng: rng, now: time.Now, dragID: -1}
}

// SetClock replaces the time source. Test hook for the solved timer and
// effect aging.
func (b *Board) SetClock(now func() time.Time) {
	b.now = now
}

// Init rebuilds the board from scratch: new layout, fresh scatter of
// grid*grid pieces, all progress and pending timers discarded. Returns
// false (empty board) for a degenerate image or container.
func (b *Board) Init(imgW, imgH, contW, contH float64, grid int) bool {
	b.imgW, b.imgH = imgW, imgH
	b.grid = grid
	b.canvasW, b.canvasH = contW, contH

	b.pieces = nil
	b.effects = nil
	b.dragID = -1
	b.lockedCount = 0
	b.solvePending = false // a pending solved timer must not fire into a new board
	b.solvedFired = false
	b.hasLayout = false

	layout, ok := FitLayout(imgW, imgH, contW, contH, grid)
	if !ok {
		return false
	}
	b.layout = layout
	b.hasLayout = true

	n := grid * grid
	b.pieces = make([]Piece, 0, n)
	for row := 0; row < grid; row++ {
		for col := 0; col < grid; col++ {
			id := row*grid + col
			tx, ty := layout.TargetPos(row, col)
			b.pieces = append(b.pieces, Piece{
				ID:      id,
				Row:     row,
				Col:     col,
				X:       b.rng.Float64() * (contW - layout.PieceW),
				Y:       b.rng.Float64() * (contH - layout.PieceH),
				TargetX: tx,
				TargetY: ty,
				Z:       id,
			})
		}
	}
	b.nextZ = n
	return true
}

// Resize recomputes geometry for a new container. Per current design this
// is a full rebuild with a fresh scatter; in-progress placement is
// discarded.
func (b *Board) Resize(contW, contH float64) bool {
	return b.Init(b.imgW, b.imgH, contW, contH, b.grid)
}

// PointerDown picks the topmost unlocked piece under the canvas point, if
// any, and starts a drag. Ignored while a drag is already active.
func (b *Board) PointerDown(x, y float64) bool {
	if !b.hasLayout || b.dragID != -1 {
		return false
	}
	hit := -1
	for i := range b.pieces {
		p := &b.pieces[i]
		if p.Locked || !p.Contains(x, y, b.layout.PieceW, b.layout.PieceH) {
			continue
		}
		// overlap resolves by visual stacking order, topmost wins
		if hit == -1 || p.Z > b.pieces[hit].Z {
			hit = i
		}
	}
	if hit == -1 {
		return false
	}
	p := &b.pieces[hit]
	b.dragID = p.ID
	b.dragDX = x - p.X
	b.dragDY = y - p.Y
	p.Z = b.nextZ // above everything for the duration of the drag
	b.nextZ++
	return true
}

// PointerMove positions the dragged piece under the pointer, keeping the
// stored pick offset and clamping each axis to the canvas.
func (b *Board) PointerMove(x, y float64) {
	if b.dragID == -1 {
		return
	}
	p := &b.pieces[b.dragID]
	p.X = clamp(x-b.dragDX, 0, b.canvasW-b.layout.PieceW)
	p.Y = clamp(y-b.dragDY, 0, b.canvasH-b.layout.PieceH)
}

// PointerUp ends the drag: evaluate placement, then return to idle and
// report exactly one move, locked or not.
func (b *Board) PointerUp(x, y float64) {
	if b.dragID == -1 {
		return
	}
	b.PointerMove(x, y)
	p := &b.pieces[b.dragID]
	b.dragID = -1

	dist := math.Hypot(p.X-p.TargetX, p.Y-p.TargetY)
	if dist < SnapRatio*b.layout.PieceW {
		b.lock(p)
	}
	if b.OnMove != nil {
		b.OnMove()
	}
}

func (b *Board) lock(p *Piece) {
	p.X, p.Y = p.TargetX, p.TargetY
	p.Locked = true
	p.Z = 0 // sinks below every unlocked piece for good
	b.lockedCount++

	now := b.now()
	b.effects = append(b.effects, NewEffect(
		p.TargetX+b.layout.PieceW/2,
		p.TargetY+b.layout.PieceH/2,
		now, b.rng,
	))
	if b.OnLock != nil {
		b.OnLock()
	}
	if b.lockedCount == len(b.pieces) && !b.solvedFired {
		b.solvePending = true
		b.solveAt = now.Add(SolvedDelay)
	}
}

// Update is the per-tick state phase: age and prune effects, fire the
// delayed solved notification. Rendering reads the result afterwards.
func (b *Board) Update() {
	now := b.now()

	live := b.effects[:0]
	for _, e := range b.effects {
		if e.Expired(now) {
			continue
		}
		e.Update(now)
		live = append(live, e)
	}
	b.effects = live

	if b.solvePending && !now.Before(b.solveAt) {
		b.solvePending = false
		b.solvedFired = true
		if b.OnSolved != nil {
			b.OnSolved()
		}
	}
}

// Layout returns the current board placement; ok is false while no usable
// container has been seen.
func (b *Board) Layout() (Layout, bool) {
	return b.layout, b.hasLayout
}

// Len is the piece count; PieceByIndex copies piece i out of the store.
// Pieces are indexed by id: slot i always holds the piece with ID i.
func (b *Board) Len() int { return len(b.pieces) }

func (b *Board) PieceByIndex(i int) Piece { return b.pieces[i] }

// DraggingID is the id of the actively dragged piece, -1 while idle.
func (b *Board) DraggingID() int { return b.dragID }

// LockedCount reports placed pieces; Complete is true once all are placed
// (before the solved notification necessarily fired).
func (b *Board) LockedCount() int { return b.lockedCount }
func (b *Board) Complete() bool   { return len(b.pieces) > 0 && b.lockedCount == len(b.pieces) }

// DrawOrder returns piece indices sorted by ascending Z, so higher pieces
// paint over lower ones.
func (b *Board) DrawOrder() []int {
	order := make([]int, len(b.pieces))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return b.pieces[order[i]].Z < b.pieces[order[j]].Z
	})
	return order
}

// Effects exposes the live effect list for drawing. The slice is owned by
// the board and valid until the next Update.
func (b *Board) Effects() []*Effect { return b.effects }

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
