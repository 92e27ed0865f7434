// Package entity provides the paddles and the ball.
package entity

// PaddleWidth is the number of cells a paddle covers.
const PaddleWidth = 15

// Direction is a horizontal paddle move. Its value is the signed column step.
type Direction int

const (
	// Left moves a paddle two columns toward column zero.
	Left Direction = -2
	// Right moves a paddle two columns toward the right wall.
	Right Direction = 2
)

// Step returns the signed number of columns the move covers.
func (d Direction) Step() int {
	return int(d)
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Paddle is a horizontal bar PaddleWidth cells wide on a fixed row.
type Paddle struct {
	X, Y int // X is the left edge column, Y the row
}

// NewPaddle creates a paddle with its left edge at x on row y.
func NewPaddle(x, y int) *Paddle {
	return &Paddle{X: x, Y: y}
}

// Right returns the column just past the paddle's right edge.
func (p *Paddle) Right() int {
	return p.X + PaddleWidth
}

// CanMove reports whether moving in dir keeps the paddle inside [0, cols).
func (p *Paddle) CanMove(dir Direction, cols int) bool {
	x := p.X + dir.Step()
	return x >= 0 && x+PaddleWidth <= cols
}

// Move shifts the paddle by dir without any bounds check.
func (p *Paddle) Move(dir Direction) {
	p.X += dir.Step()
}

// Covers reports whether a ball in column x is over the paddle.
// The range starts one column left of the paddle because the ball is two cells wide.
func (p *Paddle) Covers(x int) bool {
	return x >= p.X-1 && x < p.X+PaddleWidth
}
