package puzzle

import (
	"image"
	"math"
)

// FillRatio bounds the assembled picture to 85% of the container in either
// dimension so scattered pieces have room around the board.
const FillRatio = 0.85

// Layout describes where the assembled picture sits inside the canvas and
// how big each piece is. All values are canvas pixels except the source
// rectangles, which are image pixels.
type Layout struct {
	BoardX, BoardY float64
	BoardW, BoardH float64
	PieceW, PieceH float64
	Grid           int

	imgW, imgH float64
}

// FitLayout centers an aspect-preserving board inside contW x contH.
// The container aspect ratio decides which dimension is the binding
// constraint. ok is false for a degenerate image or container: no board
// yet, retry on the next resize.
func FitLayout(imgW, imgH, contW, contH float64, grid int) (Layout, bool) {
	if imgW <= 0 || imgH <= 0 || contW <= 0 || contH <= 0 || grid <= 0 {
		return Layout{}, false
	}

	maxW := contW * FillRatio
	maxH := contH * FillRatio
	aspect := imgW / imgH

	var bw, bh float64
	if maxW/maxH > aspect {
		// container is wider than the image: height binds
		bh = maxH
		bw = bh * aspect
	} else {
		bw = maxW
		bh = bw / aspect
	}

	return Layout{
		BoardX: (contW - bw) / 2,
		BoardY: (contH - bh) / 2,
		BoardW: bw,
		BoardH: bh,
		PieceW: bw / float64(grid),
		PieceH: bh / float64(grid),
		Grid:   grid,
		imgW:   imgW,
		imgH:   imgH,
	}, true
}

// TargetPos is the correct top-left canvas position for the (row, col) cell.
func (l Layout) TargetPos(row, col int) (float64, float64) {
	return l.BoardX + float64(col)*l.PieceW, l.BoardY + float64(row)*l.PieceH
}

// SourceRect is the slice of the source image belonging to (row, col).
// Boundaries are rounded per cell edge so adjacent slices share edges
// exactly and the last row/column absorbs any remainder.
func (l Layout) SourceRect(row, col int) image.Rectangle {
	x0 := int(math.Round(float64(col) * l.imgW / float64(l.Grid)))
	y0 := int(math.Round(float64(row) * l.imgH / float64(l.Grid)))
	x1 := int(math.Round(float64(col+1) * l.imgW / float64(l.Grid)))
	y1 := int(math.Round(float64(row+1) * l.imgH / float64(l.Grid)))
	return image.Rect(x0, y0, x1, y1)
}
