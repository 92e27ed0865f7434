package entity

// BallDirection is the ball's vertical travel. Its value is the signed row step.
type BallDirection int

const (
	// Up moves the ball one row toward the top paddle.
	Up BallDirection = -1
	// Down moves the ball one row toward the bottom paddle.
	Down BallDirection = 1
)

// Step returns the signed number of rows travelled per tick.
func (d BallDirection) Step() int {
	return int(d)
}

// Reverse returns the opposite direction.
func (d BallDirection) Reverse() BallDirection {
	if d == Up {
		return Down
	}
	return Up
}

// String returns a human-readable direction name.
func (d BallDirection) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Ball is the two-cell wide ball.
type Ball struct {
	X, Y  int
	Angle int // horizontal step applied on odd rows
	Dir   BallDirection
}

// NewBall creates a ball at the given position.
func NewBall(x, y, angle int, dir BallDirection) *Ball {
	return &Ball{X: x, Y: y, Angle: angle, Dir: dir}
}

// Advance moves the ball one row in its direction.
//
// The angle flips sign when the pre-step column plus angle would reach a side wall
// (>= cols or <= 1). Horizontal motion happens only when the new row is odd.
func (b *Ball) Advance(cols int) {
	b.Y += b.Dir.Step()
	if b.X+b.Angle >= cols || b.X+b.Angle <= 1 {
		b.Angle = -b.Angle
	}
	b.X += (b.Y % 2) * b.Angle
}

// ContactAngle returns the angle the ball takes after hitting p.
//
// The paddle is split into six zones around its center; farther from the center means
// a steeper bounce. Integer division truncates toward zero, so the zones are not
// mirror images of each other.
func (b *Ball) ContactAngle(p *Paddle) int {
	half := (PaddleWidth - 1) / 2
	part := half / 3
	relativeX := b.X - p.X - half
	return relativeX/part + 1
}
