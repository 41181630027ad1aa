package ghelper

import (
	"github.com/hajimehoshi/ebiten/v2"

	"jigsaw/ui/gui/ghelper/gfont"
)

// GUIAssetsWorker holds everything the scenes draw with: font faces and
// the current puzzle source picture.
type GUIAssetsWorker struct {
	fonts  *gfont.Fonts
	source *ebiten.Image
}

func NewGUIAssetsWorker(rootDirAssets string) (*GUIAssetsWorker, error) {
	fonts, err := gfont.LoadFonts(rootDirAssets + "/fonts")
	if err != nil {
		return nil, err
	}
	return &GUIAssetsWorker{fonts: fonts}, nil
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}

// SetSource swaps the puzzle picture; a new picture means a new puzzle.
func (aw *GUIAssetsWorker) SetSource(img *ebiten.Image) {
	aw.source = img
}

func (aw *GUIAssetsWorker) Source() *ebiten.Image {
	return aw.source
}
