package gui

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"jigsaw/src"
	"jigsaw/src/logx"
	"jigsaw/ui/gui/gaudio"
	"jigsaw/ui/gui/gbase"
	"jigsaw/ui/gui/gbase/gconf"
	"jigsaw/ui/gui/gctx"
	"jigsaw/ui/gui/gdraw"
	"jigsaw/ui/gui/ghelper"
)

// GUIProcessing is the ebiten.Game: it owns the shared context and swaps
// scenes as they ask for transitions.
type GUIProcessing struct {
	current gdraw.Scene
	ctx     *gctx.GUIGameContext
}

func NewGUI(session *src.GameSession, conf *gconf.Config, l logx.Logger) (*GUIProcessing, error) {
	assets, err := ghelper.NewGUIAssetsWorker("assets")
	if err != nil {
		return nil, err
	}
	audio := gaudio.NewGUIAudioWorker(conf.Mute)

	ctx := gctx.NewGUIGameContext(session, assets, audio, conf, l)
	return &GUIProcessing{
		current: gdraw.NewGUIMenuDrawer(ctx),
		ctx:     ctx,
	}, nil
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowSize(gp.ctx.Window.W, gp.ctx.Window.H)
	ebiten.SetWindowTitle("Jigsaw")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err := ebiten.RunGame(gp)
	gp.ctx.Audio.Close()
	if errors.Is(err, gbase.ErrExit) {
		return nil
	}
	return err
}

func (gp *GUIProcessing) Update() error {
	next, err := gp.current.Update(gp.ctx)
	if err != nil {
		return err
	}
	if next != gdraw.SceneNotChanged {
		gp.ctx.Logx.Debugf("scene switch: %d", next)
		gp.current = next.ToScene(gp.current, gp.ctx)
	}
	return nil
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.current.Draw(gp.ctx, screen)
}

// Layout tracks the real window size so scenes can rebuild on resize.
func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		gp.ctx.Window.W = outsideWidth
		gp.ctx.Window.H = outsideHeight
	}
	return gp.ctx.Window.W, gp.ctx.Window.H
}
