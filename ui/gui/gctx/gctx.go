package gctx

import (
	"jigsaw/src"
	"jigsaw/src/logx"
	"jigsaw/ui/gui/gaudio"
	"jigsaw/ui/gui/gbase"
	"jigsaw/ui/gui/gbase/gconf"
	"jigsaw/ui/gui/ghelper"
)

// ---- GUI Context ----

// GUIGameContext travels through every scene. Window carries the live
// logical size so scenes can react to a resize.
type GUIGameContext struct {
	Session      *src.GameSession
	AssetsWorker *ghelper.GUIAssetsWorker
	Audio        *gaudio.GUIAudioWorker
	Config       *gconf.Config
	Theme        gbase.Palette
	Logx         logx.Logger

	Window struct{ W, H int }
}

func NewGUIGameContext(s *src.GameSession, a *ghelper.GUIAssetsWorker, au *gaudio.GUIAudioWorker, c *gconf.Config, l logx.Logger) *GUIGameContext {
	ctx := &GUIGameContext{
		Session:      s,
		AssetsWorker: a,
		Audio:        au,
		Config:       c,
		Theme:        gbase.PaletteFromString(c.Theme),
		Logx:         l,
	}
	ctx.Window.W = c.WindowW
	ctx.Window.H = c.WindowH
	return ctx
}
