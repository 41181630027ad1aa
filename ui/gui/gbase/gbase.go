package gbase

import (
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	WindowW int = 1000
	WindowH int = 700
)

// ---- Styles (palettes) ----

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type Palette struct {
	Bg           color.RGBA
	BoardBg      color.RGBA
	GridLine     color.RGBA
	PieceBorder  color.RGBA
	ButtonFill   color.RGBA
	ButtonStroke color.RGBA
	ButtonText   color.RGBA
	MenuText     color.RGBA
	Accent       color.RGBA
	ModalBg      color.RGBA
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return ThemeLight
	case DarkPalette:
		return ThemeDark
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case ThemeLight:
		return LightPalette
	case ThemeDark:
		return DarkPalette
	default:
	}
	return LightPalette
}

var LightPalette = Palette{
	Bg:           color.RGBA{0xf2, 0xf0, 0xea, 0xff},
	BoardBg:      color.RGBA{0xe4, 0xe1, 0xd8, 0xff},
	GridLine:     color.RGBA{0x00, 0x00, 0x00, 0x22},
	PieceBorder:  color.RGBA{0x55, 0x55, 0x55, 0x66},
	ButtonFill:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	ButtonStroke: color.RGBA{0x88, 0x88, 0x88, 0xff},
	ButtonText:   color.RGBA{0x22, 0x22, 0x22, 0xff},
	MenuText:     color.RGBA{0x22, 0x22, 0x22, 0xff},
	Accent:       color.RGBA{0xe0, 0x7a, 0x2f, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x88},
}

var DarkPalette = Palette{
	Bg:           color.RGBA{0x14, 0x12, 0x10, 0xff},
	BoardBg:      color.RGBA{0x22, 0x20, 0x1c, 0xff},
	GridLine:     color.RGBA{0xff, 0xff, 0xff, 0x1e},
	PieceBorder:  color.RGBA{0xcc, 0xcc, 0xcc, 0x55},
	ButtonFill:   color.RGBA{0x24, 0x22, 0x1e, 0xff},
	ButtonStroke: color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	ButtonText:   color.RGBA{0xee, 0xee, 0xee, 0xff},
	MenuText:     color.RGBA{0xee, 0xee, 0xee, 0xff},
	Accent:       color.RGBA{0xf0, 0x93, 0x4a, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x99},
}
