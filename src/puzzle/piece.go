package puzzle

// Piece is one rectangular cell of the source image, draggable until
// locked. Row/Col/ID never change; X/Y move during a drag and jump to the
// target on lock. Locked is set once and never cleared for the life of the
// board instance.
type Piece struct {
	ID       int
	Row, Col int

	X, Y             float64 // current top-left, canvas space
	TargetX, TargetY float64

	Locked bool
	Z      int
}

// Contains reports whether the canvas point (px, py) falls inside the
// piece rectangle of size w x h.
func (p *Piece) Contains(px, py, w, h float64) bool {
	return px >= p.X && px < p.X+w && py >= p.Y && py < p.Y+h
}
