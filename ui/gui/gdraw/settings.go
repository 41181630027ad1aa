package gdraw

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"jigsaw/src"
	"jigsaw/ui/gui/gbase"
	"jigsaw/ui/gui/gctx"
	"jigsaw/ui/gui/ghelper"
)

type GUISettingsDrawer struct {
	buttons []*ghelper.Button

	idxTheme int
	idxMute  int
	idxGrid  int
	idxSave  int
	idxBack  int

	msg ghelper.MessageBox

	prevTime time.Time
	winW     int
	winH     int
}

func NewGUISettingsDrawer(ctx *gctx.GUIGameContext) *GUISettingsDrawer {
	sd := &GUISettingsDrawer{prevTime: time.Now()}
	sd.makeLayout(ctx)
	return sd
}

func (sd *GUISettingsDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	if sd.winW != ctx.Window.W || sd.winH != ctx.Window.H {
		sd.makeLayout(ctx)
	}

	mx, my := ebiten.CursorPosition()
	justClicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	justReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	now := time.Now()
	dt := now.Sub(sd.prevTime).Seconds()
	sd.prevTime = now

	if sd.msg.Open {
		if justClicked {
			bounds := text.BoundString(ctx.AssetsWorker.Fonts().Normal, sd.msg.Text)
			sd.msg.CollapseMessageInRect(ctx.Window.W, ctx.Window.H, bounds.Dx(), bounds.Dy())
		}
		sd.msg.AnimateMessage()
		return SceneNotChanged, nil
	}

	for i, b := range sd.buttons {
		clicked := b.HandleInput(mx, my, justClicked, justReleased)
		b.UpdateAnim(dt)
		if !clicked {
			continue
		}
		switch i {
		case sd.idxTheme:
			if ctx.Config.Theme == gbase.ThemeLight {
				ctx.Config.Theme = gbase.ThemeDark
			} else {
				ctx.Config.Theme = gbase.ThemeLight
			}
			ctx.Theme = gbase.PaletteFromString(ctx.Config.Theme)
			sd.makeLayout(ctx)
		case sd.idxMute:
			ctx.Config.Mute = !ctx.Config.Mute
			ctx.Audio.SetMuted(ctx.Config.Mute)
			sd.refreshLabels(ctx)
		case sd.idxGrid:
			ctx.Config.Grid = nextGrid(ctx.Config.Grid)
			sd.refreshLabels(ctx)
		case sd.idxSave:
			if err := ctx.Config.Save(); err != nil {
				ctx.Logx.Errorf("save config: %v", err)
				sd.msg.ShowMessage("Could not save settings", nil)
			} else {
				ctx.Logx.Info("settings saved")
				sd.msg.ShowMessage("Settings saved", nil)
			}
		case sd.idxBack:
			return SceneMenu, nil
		}
	}

	return SceneNotChanged, nil
}

func (sd *GUISettingsDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	text.Draw(screen, "Settings", ctx.AssetsWorker.Fonts().Pixel, sd.winW/2-80, 90, ctx.Theme.MenuText)

	for _, b := range sd.buttons {
		b.DrawAnimated(screen, ctx.AssetsWorker.Fonts().Normal, ctx.Theme)
	}

	if sd.msg.Open || sd.msg.Animating {
		DrawModal(ctx, sd.msg.Scale, sd.msg.Text, screen)
	}

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}

func (sd *GUISettingsDrawer) makeLayout(ctx *gctx.GUIGameContext) {
	sd.winW = ctx.Window.W
	sd.winH = ctx.Window.H

	btnW, btnH := 360, 56
	gap := 16
	n := 5
	totalH := n*btnH + (n-1)*gap
	y := (sd.winH-totalH)/2 + 30
	x := sd.winW/2 - btnW/2

	sd.buttons = []*ghelper.Button{}
	sd.idxTheme, sd.buttons = ghelper.AppendButton(ctx.Theme, themeLabel(ctx), x, y, btnW, btnH, sd.buttons)
	y += btnH + gap
	sd.idxMute, sd.buttons = ghelper.AppendButton(ctx.Theme, muteLabel(ctx), x, y, btnW, btnH, sd.buttons)
	y += btnH + gap
	sd.idxGrid, sd.buttons = ghelper.AppendButton(ctx.Theme, gridLabel(ctx), x, y, btnW, btnH, sd.buttons)
	y += btnH + gap
	sd.idxSave, sd.buttons = ghelper.AppendButton(ctx.Theme, "Save", x, y, btnW, btnH, sd.buttons)
	y += btnH + gap
	sd.idxBack, sd.buttons = ghelper.AppendButton(ctx.Theme, "Back", x, y, btnW, btnH, sd.buttons)
}

func (sd *GUISettingsDrawer) refreshLabels(ctx *gctx.GUIGameContext) {
	sd.buttons[sd.idxTheme].Label = themeLabel(ctx)
	sd.buttons[sd.idxMute].Label = muteLabel(ctx)
	sd.buttons[sd.idxGrid].Label = gridLabel(ctx)
}

func themeLabel(ctx *gctx.GUIGameContext) string {
	return "Theme: " + ctx.Config.Theme
}

func muteLabel(ctx *gctx.GUIGameContext) string {
	if ctx.Config.Mute {
		return "Sound: off"
	}
	return "Sound: on"
}

func gridLabel(ctx *gctx.GUIGameContext) string {
	if !src.ValidGrid(ctx.Config.Grid) {
		ctx.Config.Grid = src.GridSizes[0]
	}
	return fmt.Sprintf("Pieces: %dx%d", ctx.Config.Grid, ctx.Config.Grid)
}
