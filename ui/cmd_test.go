package ui

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, dir string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 0x40, 0xff})
		}
	}
	path := filepath.Join(dir, "src.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestSlicePiecesWritesFullGrid(t *testing.T) {
	dir := t.TempDir()
	// 97x61 does not divide evenly by 3, the last row/column absorbs it
	path := writeTestPNG(t, dir, 97, 61)
	out := filepath.Join(dir, "pieces")

	require.NoError(t, slicePieces(path, 3, out))

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 9)

	// every piece decodes and the widths of a row sum to the source width
	totalW := 0
	for col := 0; col < 3; col++ {
		f, err := os.Open(filepath.Join(out, "src_r0c"+string(rune('0'+col))+".png"))
		require.NoError(t, err)
		cfg, err := png.DecodeConfig(f)
		f.Close()
		require.NoError(t, err)
		totalW += cfg.Width
	}
	assert.Equal(t, 97, totalW)
}

func TestSlicePiecesRejectsBadGrid(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, 32, 32)
	assert.Error(t, slicePieces(path, 5, filepath.Join(dir, "out")))
}

func TestSlicePiecesMissingFile(t *testing.T) {
	assert.Error(t, slicePieces(filepath.Join(t.TempDir(), "nope.png"), 3, t.TempDir()))
}

func TestLayoutGlyph(t *testing.T) {
	// 12x6 board, 3x3 grid: borders and inner lines only
	assert.Equal(t, byte('+'), layoutGlyph(0, 0, 12, 6, 3))
	assert.Equal(t, byte('+'), layoutGlyph(12, 6, 12, 6, 3))
	assert.Equal(t, byte('|'), layoutGlyph(4, 1, 12, 6, 3))
	assert.Equal(t, byte('-'), layoutGlyph(1, 2, 12, 6, 3))
	assert.Equal(t, byte(' '), layoutGlyph(1, 1, 12, 6, 3))
	assert.Equal(t, byte(' '), layoutGlyph(-1, 0, 12, 6, 3))
	assert.Equal(t, byte(' '), layoutGlyph(13, 0, 12, 6, 3))
}
