package gdraw

import (
	"fmt"
	"math"
	"time"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"jigsaw/ui/gui/gbase"
	"jigsaw/ui/gui/gctx"
	"jigsaw/ui/gui/ghelper"
	"jigsaw/ui/gui/ghelper/gdialog"
	"jigsaw/ui/gui/ghelper/gimages"
)

type GUIMenuDrawer struct {
	buttons []*ghelper.Button

	idxPlay     int
	idxSettings int
	idxExit     int

	// picture + difficulty selectors bottom-left
	imgBoxX, imgBoxY, imgBoxS    int
	gridBoxX, gridBoxY, gridBoxS int

	msg ghelper.MessageBox

	// floating tile decoration above the play button
	tileImg      *ebiten.Image
	tileShadow   *ebiten.Image
	tileElapsed  float64
	tileBaseOffY float64

	prevTime time.Time
	winW     int
	winH     int
}

func NewGUIMenuDrawer(ctx *gctx.GUIGameContext) *GUIMenuDrawer {
	md := &GUIMenuDrawer{prevTime: time.Now()}
	md.makeLayout(ctx)
	md.initTile()
	return md
}

func (md *GUIMenuDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	if md.winW != ctx.Window.W || md.winH != ctx.Window.H {
		md.makeLayout(ctx)
	}

	mx, my := ebiten.CursorPosition()
	justClicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	justReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	now := time.Now()
	dt := now.Sub(md.prevTime).Seconds()
	md.prevTime = now
	md.tileElapsed += dt

	if md.msg.Open {
		if justClicked {
			bounds := text.BoundString(ctx.AssetsWorker.Fonts().Normal, md.msg.Text)
			md.msg.CollapseMessageInRect(ctx.Window.W, ctx.Window.H, bounds.Dx(), bounds.Dy())
		}
		md.msg.AnimateMessage()
		return SceneNotChanged, nil
	}

	for i, b := range md.buttons {
		clicked := b.HandleInput(mx, my, justClicked, justReleased)
		b.UpdateAnim(dt)
		if !clicked {
			continue
		}
		switch i {
		case md.idxPlay:
			if err := md.ensureSource(ctx); err != nil {
				md.msg.ShowMessage("Could not load the picture", nil)
				return SceneNotChanged, nil
			}
			return ScenePlay, nil
		case md.idxSettings:
			return SceneSettings, nil
		case md.idxExit:
			return SceneNotChanged, gbase.ErrExit
		}
	}

	if justClicked {
		if ghelper.PointInRect(mx, my, md.imgBoxX, md.imgBoxY, md.imgBoxS, md.imgBoxS) {
			md.pickImage(ctx)
			return SceneNotChanged, nil
		}
		if ghelper.PointInRect(mx, my, md.gridBoxX, md.gridBoxY, md.gridBoxS, md.gridBoxS) {
			ctx.Config.Grid = nextGrid(ctx.Config.Grid)
			return SceneNotChanged, nil
		}
	}

	return SceneNotChanged, nil
}

func nextGrid(n int) int {
	switch n {
	case 3:
		return 4
	case 4:
		return 6
	case 6:
		return 8
	default:
		return 3
	}
}

// ensureSource makes sure a puzzle picture exists: the configured file if
// any, a generated one otherwise.
func (md *GUIMenuDrawer) ensureSource(ctx *gctx.GUIGameContext) error {
	if ctx.AssetsWorker.Source() != nil {
		return nil
	}
	if ctx.Config.ImagePath != "" {
		img, err := gimages.LoadImage(ctx.Config.ImagePath)
		if err == nil {
			ctx.AssetsWorker.SetSource(img)
			return nil
		}
		ctx.Logx.Errorf("load %s: %v", ctx.Config.ImagePath, err)
		ctx.Config.ImagePath = ""
	}
	ctx.Logx.Info("no picture configured, generating one")
	ctx.AssetsWorker.SetSource(gimages.GeneratePlaceholder(1024, 768, time.Now().UnixNano()))
	return nil
}

func (md *GUIMenuDrawer) pickImage(ctx *gctx.GUIGameContext) {
	res, err := gdialog.OpenImage("Choose a puzzle picture")
	if err != nil {
		// cancel included; nothing to do
		ctx.Logx.Debugf("image dialog: %v", err)
		return
	}
	img, err := gimages.DecodeImage(res.Data)
	if err != nil {
		ctx.Logx.Errorf("decode %s: %v", res.Name, err)
		md.msg.ShowMessage("That file is not a usable picture", nil)
		return
	}
	ctx.Config.ImagePath = res.Path
	ctx.AssetsWorker.SetSource(img)
	ctx.Logx.Infof("picture set: %s", res.Name)
}

func (md *GUIMenuDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	for _, b := range md.buttons {
		b.DrawAnimated(screen, ctx.AssetsWorker.Fonts().Pixel, ctx.Theme)
	}
	md.drawBoxes(ctx, screen)
	md.drawTile(screen)

	if md.msg.Open || md.msg.Animating {
		DrawModal(ctx, md.msg.Scale, md.msg.Text, screen)
	}

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}

func (md *GUIMenuDrawer) makeLayout(ctx *gctx.GUIGameContext) {
	md.winW = ctx.Window.W
	md.winH = ctx.Window.H

	btnW, btnH := 320, 64
	gap := 18
	n := 3
	totalH := n*btnH + (n-1)*gap
	startY := (md.winH - totalH) / 2
	cx := md.winW / 2

	md.buttons = []*ghelper.Button{}
	x := cx - btnW/2
	md.idxPlay, md.buttons = ghelper.AppendButton(ctx.Theme, "Play", x, startY, btnW, btnH, md.buttons)
	md.idxSettings, md.buttons = ghelper.AppendButton(ctx.Theme, "Settings", x, startY+btnH+gap, btnW, btnH, md.buttons)
	md.idxExit, md.buttons = ghelper.AppendButton(ctx.Theme, "Exit", x, startY+2*(btnH+gap), btnW, btnH, md.buttons)

	md.imgBoxS = 56
	md.imgBoxX = 20
	md.imgBoxY = md.winH - md.imgBoxS - 20

	md.gridBoxS = md.imgBoxS
	md.gridBoxX = md.imgBoxX + 70
	md.gridBoxY = md.winH - md.gridBoxS - 20
}

func (md *GUIMenuDrawer) drawBoxes(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	imgBox := ghelper.RenderRoundedRect(md.imgBoxS, md.imgBoxS, 8, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 2)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(md.imgBoxX), float64(md.imgBoxY))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(imgBox, op)
	text.Draw(screen, "IMG", ctx.AssetsWorker.Fonts().Normal, md.imgBoxX+14, md.imgBoxY+md.imgBoxS/2+4, ctx.Theme.ButtonText)

	gridBox := ghelper.RenderRoundedRect(md.gridBoxS, md.gridBoxS, 8, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 2)
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(md.gridBoxX), float64(md.gridBoxY))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(gridBox, op)
	label := fmt.Sprintf("%dx%d", ctx.Config.Grid, ctx.Config.Grid)
	text.Draw(screen, label, ctx.AssetsWorker.Fonts().Normal, md.gridBoxX+14, md.gridBoxY+md.gridBoxS/2+4, ctx.Theme.ButtonText)

	text.Draw(screen, "jigsaw v1.0", ctx.AssetsWorker.Fonts().Normal, md.winW-120, md.winH-24, ctx.Theme.MenuText)
}

func (md *GUIMenuDrawer) initTile() {
	// a little puzzle tile with a notch, rendered once
	const s = 48
	dc := gg.NewContext(s, s)
	dc.SetRGBA255(0xe0, 0x7a, 0x2f, 0xff)
	dc.DrawRoundedRectangle(4, 4, s-8, s-8, 6)
	dc.Fill()
	dc.SetRGBA255(0xff, 0xff, 0xff, 0x50)
	dc.DrawCircle(s/2, 6, 7)
	dc.Fill()
	md.tileImg = ebiten.NewImageFromImage(dc.Image())
	md.tileBaseOffY = -90
	md.tileShadow = nil
	md.tileElapsed = 0
}

func (md *GUIMenuDrawer) drawTile(screen *ebiten.Image) {
	play := md.buttons[md.idxPlay]
	centerX := float64(play.X + play.W/2)
	topY := float64(play.Y)

	freq := 1.0
	amp := 9.0
	rotFreq := 0.8
	rotAmpDeg := 7.0

	dy := math.Sin(2*math.Pi*freq*md.tileElapsed) * amp
	rot := math.Sin(2*math.Pi*rotFreq*md.tileElapsed) * (rotAmpDeg * math.Pi / 180.0)

	w := md.tileImg.Bounds().Dx()
	h := md.tileImg.Bounds().Dy()
	finalY := topY - float64(h)/2 + md.tileBaseOffY + dy

	if md.tileShadow == nil {
		sw := int(float64(w) * 1.6)
		sh := int(float64(h) * 0.4)
		dc := gg.NewContext(sw, sh)
		for i := 0; i < 8; i++ {
			alpha := 0.18 * (1.0 - float64(i)/8.0)
			dc.SetRGBA(0, 0, 0, alpha)
			pad := float64(i)
			dc.DrawEllipse(float64(sw)/2, float64(sh)/2+pad*0.2, float64(sw)/2-pad, float64(sh)/2-pad*0.6)
			dc.Fill()
		}
		md.tileShadow = ebiten.NewImageFromImage(dc.Image())
	}

	// shadow scale follows tile height
	heightFactor := (dy + amp) / (2 * amp)
	shadowScale := 0.7 + (1.0-heightFactor)*0.25
	sW := float64(md.tileShadow.Bounds().Dx()) * shadowScale
	sH := float64(md.tileShadow.Bounds().Dy()) * shadowScale
	sop := &ebiten.DrawImageOptions{}
	sop.GeoM.Scale(sW/float64(md.tileShadow.Bounds().Dx()), sH/float64(md.tileShadow.Bounds().Dy()))
	sop.GeoM.Translate(centerX-sW/2, topY-30)
	sop.Filter = ebiten.FilterLinear
	screen.DrawImage(md.tileShadow, sop)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Rotate(rot)
	op.GeoM.Translate(centerX, finalY)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(md.tileImg, op)
}
