package gimages

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"math/rand"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// LoadImage reads the puzzle source picture from disk.
func LoadImage(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// DecodeImage turns raw bytes (from the file dialog) into a drawable image.
func DecodeImage(data []byte) (*ebiten.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// GeneratePlaceholder paints a colorful abstract picture so the game is
// playable before the player picks a file: vertical gradient plus a set of
// translucent blobs, deterministic for a given seed.
func GeneratePlaceholder(w, h int, seed int64) *ebiten.Image {
	rng := rand.New(rand.NewSource(seed))
	dc := gg.NewContext(w, h)

	top := [3]float64{0.12 + rng.Float64()*0.3, 0.2 + rng.Float64()*0.4, 0.45 + rng.Float64()*0.4}
	bottom := [3]float64{0.85, 0.55 + rng.Float64()*0.3, 0.25 + rng.Float64()*0.3}
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h)
		dc.SetRGB(
			top[0]*(1-t)+bottom[0]*t,
			top[1]*(1-t)+bottom[1]*t,
			top[2]*(1-t)+bottom[2]*t,
		)
		dc.DrawLine(0, float64(y), float64(w), float64(y))
		dc.SetLineWidth(1)
		dc.Stroke()
	}

	for i := 0; i < 18; i++ {
		cx := rng.Float64() * float64(w)
		cy := rng.Float64() * float64(h)
		r := (0.04 + rng.Float64()*0.12) * math.Min(float64(w), float64(h))
		dc.SetRGBA(rng.Float64(), rng.Float64(), rng.Float64(), 0.25+rng.Float64()*0.35)
		dc.DrawCircle(cx, cy, r)
		dc.Fill()
	}

	return ebiten.NewImageFromImage(dc.Image())
}
