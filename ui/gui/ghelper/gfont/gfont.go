package gfont

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Pixel    font.Face
	PixelLow font.Face
	Normal   font.Face
	Bold     font.Face
}

// LoadFonts reads the TTFs from workdir. When the asset directory is
// missing the game still runs: every face falls back to the builtin
// bitmap font.
func LoadFonts(workdir string) (*Fonts, error) {
	fallback := &Fonts{
		Pixel:    basicfont.Face7x13,
		PixelLow: basicfont.Face7x13,
		Normal:   basicfont.Face7x13,
		Bold:     basicfont.Face7x13,
	}

	ps2p, err := os.ReadFile(workdir + "/PressStart2P-Regular.ttf")
	if err != nil {
		return fallback, nil
	}
	f, err := opentype.Parse(ps2p)
	if err != nil {
		return nil, err
	}

	fonts := &Fonts{}
	fonts.Pixel, err = opentype.NewFace(f, &opentype.FaceOptions{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	fonts.PixelLow, err = opentype.NewFace(f, &opentype.FaceOptions{
		Size:    10,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	fonts.Bold, err = opentype.NewFace(f, &opentype.FaceOptions{
		Size:    16,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}

	nsd, err := os.ReadFile(workdir + "/NotoSansDisplay-Regular.ttf")
	if err != nil {
		fonts.Normal = basicfont.Face7x13
		return fonts, nil
	}
	f, err = opentype.Parse(nsd)
	if err != nil {
		return nil, err
	}
	fonts.Normal, err = opentype.NewFace(f, &opentype.FaceOptions{
		Size:    13,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}

	return fonts, nil
}
