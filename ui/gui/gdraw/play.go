package gdraw

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"jigsaw/src/puzzle"
	"jigsaw/ui/gui/gctx"
	"jigsaw/ui/gui/ghelper"
)

// GUIPlayDrawer hosts the board: it feeds pointer input into the engine,
// runs the per-tick update phase, and composites the whole frame.
type GUIPlayDrawer struct {
	winW, winH int

	buttons    []*ghelper.Button
	idxScatter int
	idxPreview int
	idxBack    int

	msg        *ghelper.MessageBox
	solvedSeen bool
	toMenu     bool

	// pre-rendered drop shadow sized to the current piece
	dragShadow *ebiten.Image

	touchID     ebiten.TouchID
	touchActive bool
	touchX      int
	touchY      int

	prevTime time.Time
}

func NewGUIPlayDrawer(ctx *gctx.GUIGameContext) *GUIPlayDrawer {
	pd := &GUIPlayDrawer{prevTime: time.Now()}
	pd.msg = &ghelper.MessageBox{}

	src := ctx.AssetsWorker.Source()
	if src == nil {
		// menu normally guarantees a source; keep the scene alive anyway
		ctx.Logx.Error("play scene without a source picture")
	} else {
		pd.startPuzzle(ctx)
	}

	ctx.Session.LockHook = func() {
		ctx.Audio.PlaySnap()
	}
	ctx.Session.SolveHook = func() {
		ctx.Audio.PlaySolved()
	}

	pd.makeLayout(ctx)
	return pd
}

func (pd *GUIPlayDrawer) startPuzzle(ctx *gctx.GUIGameContext) {
	src := ctx.AssetsWorker.Source()
	b := src.Bounds()
	err := ctx.Session.Configure(
		float64(b.Dx()), float64(b.Dy()),
		float64(ctx.Window.W), float64(ctx.Window.H),
		ctx.Config.Grid,
	)
	if err != nil {
		ctx.Logx.Errorf("configure: %v", err)
	}
	pd.solvedSeen = false
	pd.rebuildShadow(ctx)
}

func (pd *GUIPlayDrawer) rebuildShadow(ctx *gctx.GUIGameContext) {
	if l, ok := ctx.Session.Board().Layout(); ok {
		pd.dragShadow = ghelper.RenderSoftShadow(int(l.PieceW), int(l.PieceH))
	}
}

func (pd *GUIPlayDrawer) makeLayout(ctx *gctx.GUIGameContext) {
	pd.winW = ctx.Window.W
	pd.winH = ctx.Window.H

	pd.buttons = []*ghelper.Button{}
	w, h := 150, 44
	x, y := 20, 70
	pd.idxScatter, pd.buttons = ghelper.AppendButton(ctx.Theme, "Scatter", x, y, w, h, pd.buttons)
	y += h + 12
	pd.idxPreview, pd.buttons = ghelper.AppendButton(ctx.Theme, "Preview", x, y, w, h, pd.buttons)
	y += h + 12
	pd.idxBack, pd.buttons = ghelper.AppendButton(ctx.Theme, "Back", x, y, w, h, pd.buttons)
}

func (pd *GUIPlayDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	// window resize discards progress: full board rebuild
	if pd.winW != ctx.Window.W || pd.winH != ctx.Window.H {
		ctx.Session.Resize(float64(ctx.Window.W), float64(ctx.Window.H))
		pd.solvedSeen = false
		pd.rebuildShadow(ctx)
		pd.makeLayout(ctx)
	}

	now := time.Now()
	dt := now.Sub(pd.prevTime).Seconds()
	pd.prevTime = now

	mx, my := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	justReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	// ambient pad starts with the first interaction, never before
	if justPressed {
		ctx.Audio.StartAmbient()
	}

	board := ctx.Session.Board()
	board.Update()

	if pd.toMenu {
		pd.toMenu = false
		ctx.Audio.Close() // the drone must not outlive the board
		return SceneMenu, nil
	}

	if pd.msg.Open {
		if justPressed {
			bounds := text.BoundString(ctx.AssetsWorker.Fonts().Normal, pd.msg.Text)
			pd.msg.CollapseMessageInRect(ctx.Window.W, ctx.Window.H, bounds.Dx(), bounds.Dy())
		}
		pd.msg.AnimateMessage()
		return SceneNotChanged, nil
	}

	// solved modal once the session reports it
	if ctx.Session.Solved() && !pd.solvedSeen {
		pd.solvedSeen = true
		pd.msg.ShowMessage(
			fmt.Sprintf("Solved! %d moves in %s",
				ctx.Session.Moves(),
				ctx.Session.Elapsed().Round(time.Second)),
			func() { pd.toMenu = true },
		)
		return SceneNotChanged, nil
	}

	overButton := false
	for i, b := range pd.buttons {
		clicked := b.HandleInput(mx, my, justPressed, justReleased)
		b.UpdateAnim(dt)
		if b.Contains(mx, my) {
			overButton = true
		}
		if !clicked {
			continue
		}
		switch i {
		case pd.idxScatter:
			pd.startPuzzle(ctx)
		case pd.idxPreview:
			ctx.Config.Preview = !ctx.Config.Preview
		case pd.idxBack:
			ctx.Audio.Close()
			return SceneMenu, nil
		}
	}

	// mouse drives the board unless the press started on a button
	if justPressed && !overButton {
		board.PointerDown(float64(mx), float64(my))
	}
	if mouseDown {
		board.PointerMove(float64(mx), float64(my))
	}
	if justReleased {
		board.PointerUp(float64(mx), float64(my))
	}

	pd.updateTouch(ctx, board)

	return SceneNotChanged, nil
}

// updateTouch maps the first active touch onto the same pointer calls the
// mouse uses.
func (pd *GUIPlayDrawer) updateTouch(ctx *gctx.GUIGameContext, board *puzzle.Board) {
	if !pd.touchActive {
		for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
			x, y := ebiten.TouchPosition(id)
			pd.touchActive = true
			pd.touchID = id
			pd.touchX, pd.touchY = x, y
			ctx.Audio.StartAmbient()
			board.PointerDown(float64(x), float64(y))
			break
		}
		return
	}
	if inpututil.IsTouchJustReleased(pd.touchID) {
		board.PointerUp(float64(pd.touchX), float64(pd.touchY))
		pd.touchActive = false
		return
	}
	x, y := ebiten.TouchPosition(pd.touchID)
	pd.touchX, pd.touchY = x, y
	board.PointerMove(float64(x), float64(y))
}

func (pd *GUIPlayDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	board := ctx.Session.Board()
	layout, ok := board.Layout()
	src := ctx.AssetsWorker.Source()
	if !ok || src == nil {
		text.Draw(screen, "No board yet", ctx.AssetsWorker.Fonts().Normal, pd.winW/2-40, pd.winH/2, ctx.Theme.MenuText)
		return
	}

	pd.drawBoardArea(ctx, screen, layout, src)
	pd.drawPieces(ctx, screen, board, layout, src)
	pd.drawEffects(ctx, screen, board)
	pd.drawHUD(ctx, screen)

	for _, b := range pd.buttons {
		b.DrawAnimated(screen, ctx.AssetsWorker.Fonts().Normal, ctx.Theme)
	}

	if pd.msg.Open || pd.msg.Animating {
		DrawModal(ctx, pd.msg.Scale, pd.msg.Text, screen)
	}

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}

func (pd *GUIPlayDrawer) drawBoardArea(ctx *gctx.GUIGameContext, screen *ebiten.Image, l puzzle.Layout, src *ebiten.Image) {
	// board backdrop
	vector.DrawFilledRect(screen,
		float32(l.BoardX), float32(l.BoardY),
		float32(l.BoardW), float32(l.BoardH),
		ctx.Theme.BoardBg, false)

	// faint full-picture hint
	if ctx.Config.Preview {
		b := src.Bounds()
		pop := &ebiten.DrawImageOptions{}
		pop.GeoM.Scale(l.BoardW/float64(b.Dx()), l.BoardH/float64(b.Dy()))
		pop.GeoM.Translate(l.BoardX, l.BoardY)
		pop.ColorScale.ScaleAlpha(0.18)
		pop.Filter = ebiten.FilterLinear
		screen.DrawImage(src, pop)
	}

	// grid lines at piece boundaries
	for i := 0; i <= l.Grid; i++ {
		x := float32(l.BoardX + float64(i)*l.PieceW)
		y := float32(l.BoardY + float64(i)*l.PieceH)
		vector.StrokeLine(screen, x, float32(l.BoardY), x, float32(l.BoardY+l.BoardH), 1, ctx.Theme.GridLine, true)
		vector.StrokeLine(screen, float32(l.BoardX), y, float32(l.BoardX+l.BoardW), y, 1, ctx.Theme.GridLine, true)
	}
}

func (pd *GUIPlayDrawer) drawPieces(ctx *gctx.GUIGameContext, screen *ebiten.Image, board *puzzle.Board, l puzzle.Layout, src *ebiten.Image) {
	dragID := board.DraggingID()
	for _, idx := range board.DrawOrder() {
		p := board.PieceByIndex(idx)
		slice := src.SubImage(l.SourceRect(p.Row, p.Col)).(*ebiten.Image)
		sb := slice.Bounds()
		sx := l.PieceW / float64(sb.Dx())
		sy := l.PieceH / float64(sb.Dy())

		dragged := p.ID == dragID
		if dragged && pd.dragShadow != nil {
			shOp := &ebiten.DrawImageOptions{}
			sw := pd.dragShadow.Bounds()
			shOp.GeoM.Translate(p.X-float64(sw.Dx()-int(l.PieceW))/2, p.Y-float64(sw.Dy()-int(l.PieceH))/2+5)
			screen.DrawImage(pd.dragShadow, shOp)
		}

		op := &ebiten.DrawImageOptions{}
		if dragged {
			// slight lift while dragging
			op.GeoM.Translate(-float64(sb.Dx())/2, -float64(sb.Dy())/2)
			op.GeoM.Scale(sx*1.05, sy*1.05)
			op.GeoM.Translate(p.X+l.PieceW/2, p.Y+l.PieceH/2)
		} else {
			op.GeoM.Scale(sx, sy)
			op.GeoM.Translate(p.X, p.Y)
		}
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(slice, op)

		// locked pieces render borderless to fuse with the picture
		if !p.Locked {
			if dragged {
				ghelper.EbitenutilDrawRectStroke(screen, p.X, p.Y, l.PieceW, l.PieceH, 3, ctx.Theme.Accent)
			} else {
				ghelper.EbitenutilDrawRectStroke(screen, p.X, p.Y, l.PieceW, l.PieceH, 1, ctx.Theme.PieceBorder)
			}
		}
	}
}

func (pd *GUIPlayDrawer) drawEffects(ctx *gctx.GUIGameContext, screen *ebiten.Image, board *puzzle.Board) {
	now := time.Now()
	accent := ctx.Theme.Accent
	for _, e := range board.Effects() {
		prog := e.Progress(now)

		// expanding ring fades out over the whole window
		ringAlpha := 1 - prog
		ringCol := color.RGBA{accent.R, accent.G, accent.B, uint8(ringAlpha * 200)}
		vector.StrokeCircle(screen, float32(e.X), float32(e.Y), float32(10+prog*55), 3, ringCol, true)

		// filled flash only in the first half
		if prog < 0.5 {
			discAlpha := 1 - prog*2
			discCol := color.RGBA{0xff, 0xff, 0xff, uint8(discAlpha * 90)}
			vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), float32(8+prog*24), discCol, true)
		}

		for _, pt := range e.Particles {
			if pt.Life <= 0 {
				continue
			}
			c := pt.Color
			c.A = uint8(pt.Life * 255)
			vector.DrawFilledCircle(screen, float32(pt.X), float32(pt.Y), float32(pt.Radius), c, true)
		}
	}
}

func (pd *GUIPlayDrawer) drawHUD(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	board := ctx.Session.Board()
	hud := fmt.Sprintf("Moves %d   Placed %d/%d   %s",
		ctx.Session.Moves(),
		board.LockedCount(), board.Len(),
		ctx.Session.Elapsed().Round(time.Second))
	text.Draw(screen, hud, ctx.AssetsWorker.Fonts().Pixel, 20, 34, ctx.Theme.MenuText)
}
