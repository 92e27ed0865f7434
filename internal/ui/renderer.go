package ui

import (
	"io"

	"github.com/samdwyer/termpong/internal/entity"
)

// ballGlyph is the two-cell ball, blue, followed by an attribute reset.
const ballGlyph = sgrBlue + block + block + sgrReset

// Renderer draws entities with minimal cursor-addressed updates.
// Every method issues exactly one Write.
type Renderer struct {
	w   io.Writer
	buf []byte
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w, buf: make([]byte, 0, 64)}
}

// DrawPaddle draws the whole paddle bar.
func (r *Renderer) DrawPaddle(p *entity.Paddle) {
	buf := appendCursorPos(r.buf[:0], p.Y, p.X)
	for i := 0; i < entity.PaddleWidth; i++ {
		buf = append(buf, block...)
	}
	r.flush(buf)
}

// MovePaddle draws two cells at the leading edge, blanks two at the trailing edge
// and then moves the paddle.
func (r *Renderer) MovePaddle(p *entity.Paddle, dir entity.Direction) {
	drawPos := p.X - 2
	erasePos := p.X + entity.PaddleWidth - 2
	if dir == entity.Right {
		drawPos = p.X + entity.PaddleWidth
		erasePos = p.X
	}

	buf := appendCursorPos(r.buf[:0], p.Y, drawPos)
	buf = append(buf, sgrReset+block+block...)
	buf = appendCursorPos(buf, p.Y, erasePos)
	buf = append(buf, "  "...)
	r.flush(buf)

	p.Move(dir)
}

// DrawBall draws the ball at its current position.
func (r *Renderer) DrawBall(b *entity.Ball) {
	buf := appendCursorPos(r.buf[:0], b.Y, b.X)
	buf = append(buf, ballGlyph...)
	r.flush(buf)
}

// MoveBall erases the ball, advances it one tick and draws it again.
func (r *Renderer) MoveBall(b *entity.Ball, cols int) {
	buf := appendCursorPos(r.buf[:0], b.Y, b.X)
	buf = append(buf, "  "...)

	b.Advance(cols)

	buf = appendCursorPos(buf, b.Y, b.X)
	buf = append(buf, ballGlyph...)
	r.flush(buf)
}

// GameOver prints the game over message near the top left corner.
func (r *Renderer) GameOver() {
	buf := append(r.buf[:0], sgrReset...)
	buf = appendCursorPos(buf, 3, 3)
	buf = append(buf, "Game Over!"...)
	r.flush(buf)
}

// Beep rings the terminal bell.
func (r *Renderer) Beep() {
	r.flush(append(r.buf[:0], bell...))
}

// flush writes buf in a single call and keeps its storage for the next frame.
// Write errors are ignored; the next draw overwrites the same cells anyway.
func (r *Renderer) flush(buf []byte) {
	r.w.Write(buf)
	r.buf = buf[:0]
}
