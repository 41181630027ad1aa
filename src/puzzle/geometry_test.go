package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitLayoutWidthBound(t *testing.T) {
	// wide image in a square container: width binds
	l, ok := FitLayout(2000, 1000, 800, 800, 4)
	assert.True(t, ok)
	assert.InDelta(t, 800*FillRatio, l.BoardW, 1e-9)
	assert.InDelta(t, l.BoardW/2, l.BoardH, 1e-9)
	// centered
	assert.InDelta(t, (800-l.BoardW)/2, l.BoardX, 1e-9)
	assert.InDelta(t, (800-l.BoardH)/2, l.BoardY, 1e-9)
	assert.InDelta(t, l.BoardW/4, l.PieceW, 1e-9)
	assert.InDelta(t, l.BoardH/4, l.PieceH, 1e-9)
}

func TestFitLayoutHeightBound(t *testing.T) {
	// tall image in a wide container: height binds
	l, ok := FitLayout(1000, 2000, 1600, 800, 3)
	assert.True(t, ok)
	assert.InDelta(t, 800*FillRatio, l.BoardH, 1e-9)
	assert.InDelta(t, l.BoardH/2, l.BoardW, 1e-9)
	assert.LessOrEqual(t, l.BoardW, 1600*FillRatio+1e-9)
}

func TestFitLayoutPreservesAspect(t *testing.T) {
	l, ok := FitLayout(1920, 1080, 1000, 700, 6)
	assert.True(t, ok)
	assert.InDelta(t, 1920.0/1080.0, l.BoardW/l.BoardH, 1e-9)
}

func TestFitLayoutDegenerate(t *testing.T) {
	for _, dims := range [][4]float64{
		{0, 100, 800, 600},
		{100, 0, 800, 600},
		{100, 100, 0, 600},
		{100, 100, 800, 0},
	} {
		_, ok := FitLayout(dims[0], dims[1], dims[2], dims[3], 4)
		assert.False(t, ok, "dims %v", dims)
	}
}

func TestTargetPositions(t *testing.T) {
	l, ok := FitLayout(1000, 1000, 900, 900, 3)
	assert.True(t, ok)
	x0, y0 := l.TargetPos(0, 0)
	assert.InDelta(t, l.BoardX, x0, 1e-9)
	assert.InDelta(t, l.BoardY, y0, 1e-9)
	x, y := l.TargetPos(2, 1)
	assert.InDelta(t, l.BoardX+1*l.PieceW, x, 1e-9)
	assert.InDelta(t, l.BoardY+2*l.PieceH, y, 1e-9)
}

func TestSourceRectsTileTheImage(t *testing.T) {
	// slices must share edges exactly and cover the whole image, including
	// dimensions that do not divide evenly
	for _, grid := range []int{3, 4, 6, 8} {
		l, ok := FitLayout(997, 641, 800, 600, grid)
		assert.True(t, ok)
		for row := 0; row < grid; row++ {
			for col := 0; col < grid; col++ {
				r := l.SourceRect(row, col)
				assert.False(t, r.Empty(), "empty slice at %d,%d grid %d", row, col, grid)
				if col > 0 {
					left := l.SourceRect(row, col-1)
					assert.Equal(t, left.Max.X, r.Min.X)
				}
				if row > 0 {
					up := l.SourceRect(row-1, col)
					assert.Equal(t, up.Max.Y, r.Min.Y)
				}
			}
		}
		assert.Equal(t, 0, l.SourceRect(0, 0).Min.X)
		assert.Equal(t, 0, l.SourceRect(0, 0).Min.Y)
		assert.Equal(t, 997, l.SourceRect(grid-1, grid-1).Max.X)
		assert.Equal(t, 641, l.SourceRect(grid-1, grid-1).Max.Y)
	}
}
