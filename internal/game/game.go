package game

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/termpong/internal/entity"
	"github.com/samdwyer/termpong/internal/telemetry"
	"github.com/samdwyer/termpong/internal/ui"
)

const (
	// topPaddleRow is the row of the top paddle.
	topPaddleRow = 3
	// paddleStartOffset is how far left of the center column paddles start.
	paddleStartOffset = 10
	// ballStartAngle is the horizontal step the ball starts with.
	ballStartAngle = 2
)

// Console is an acquired terminal. Close releases it and is called exactly once
// when Run returns.
type Console interface {
	io.Writer
	// PollByte returns the next input byte without blocking.
	PollByte() (byte, bool)
	// Size returns the dimensions fixed at acquisition.
	Size() (rows, cols int)
	Close() error
}

// Game holds the entire game state.
type Game struct {
	console  Console
	renderer *ui.Renderer
	cfg      Config
	tracer   trace.Tracer
	sleep    func(time.Duration)

	rows, cols int
	top        *entity.Paddle
	bottom     *entity.Paddle
	ball       *entity.Ball

	state    State
	running  bool
	frame    int
	ticks    int
	contacts int
}

// New creates a game on an acquired console, with entities placed for its size.
func New(console Console, cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	rows, cols := console.Size()
	return &Game{
		console:  console,
		renderer: ui.NewRenderer(console),
		cfg:      cfg,
		tracer:   telemetry.Tracer("game"),
		sleep:    time.Sleep,
		rows:     rows,
		cols:     cols,
		top:      entity.NewPaddle(cols/2-paddleStartOffset, topPaddleRow),
		bottom:   entity.NewPaddle(cols/2-paddleStartOffset, rows-2),
		ball:     entity.NewBall(cols/2-1, rows/2, ballStartAngle, entity.Down),
		state:    StatePlaying,
		running:  true,
	}, nil
}

// State returns the current play state.
func (g *Game) State() State {
	return g.state
}

// Run executes the main game loop until the quit key is pressed, then releases
// the console.
func (g *Game) Run(ctx context.Context) (err error) {
	defer func() {
		if cerr := g.console.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to restore terminal: %w", cerr)
		}
	}()

	ctx, span := g.tracer.Start(ctx, "game.session")
	defer span.End()

	g.start(ctx)

	for {
		g.step(ctx)
		if !g.running {
			break
		}
		g.sleep(g.cfg.FrameWait)
	}

	span.SetAttributes(
		attribute.Int("ticks", g.ticks),
		attribute.Int("contacts", g.contacts),
		attribute.String("state", g.state.String()),
	)
	return nil
}

// start draws the initial frame.
func (g *Game) start(ctx context.Context) {
	_, span := g.tracer.Start(ctx, "game.init")
	span.SetAttributes(
		attribute.Int("terminal.rows", g.rows),
		attribute.Int("terminal.cols", g.cols),
		attribute.Int("ball.x", g.ball.X),
		attribute.Int("ball.y", g.ball.Y),
	)
	defer span.End()

	g.renderer.DrawPaddle(g.top)
	g.renderer.DrawPaddle(g.bottom)
	g.renderer.DrawBall(g.ball)
}

// step runs one loop frame: maybe a ball tick, then one input poll.
func (g *Game) step(ctx context.Context) {
	g.frame++
	if g.frame >= g.cfg.TickDivider && g.state == StatePlaying {
		g.tick(ctx)
		g.frame = 0
	}

	g.handleInput()
}

// tick advances the ball and applies paddle contact and out of bounds rules.
func (g *Game) tick(ctx context.Context) {
	g.renderer.MoveBall(g.ball, g.cols)
	g.ticks++

	if p, name := g.contactPaddle(); p != nil {
		g.ball.Dir = g.ball.Dir.Reverse()
		g.renderer.Beep()
		g.ball.Angle = g.ball.ContactAngle(p)
		g.contacts++

		_, span := g.tracer.Start(ctx, "ball.contact")
		span.SetAttributes(
			attribute.String("paddle", name),
			attribute.Int("ball.x", g.ball.X),
			attribute.Int("paddle.x", p.X),
			attribute.Int("angle", g.ball.Angle),
		)
		span.End()
	}

	if g.ball.Y >= g.rows || g.ball.Y <= 0 {
		g.state = StateOver
		g.renderer.GameOver()

		_, span := g.tracer.Start(ctx, "game.over")
		span.SetAttributes(
			attribute.Int("ball.y", g.ball.Y),
			attribute.Int("ticks", g.ticks),
			attribute.Int("contacts", g.contacts),
		)
		span.End()
	}
}

// contactPaddle returns the paddle the ball just reached while moving toward it.
func (g *Game) contactPaddle() (*entity.Paddle, string) {
	b := g.ball
	switch {
	case b.Dir == entity.Up && b.Y == g.top.Y+1 && g.top.Covers(b.X):
		return g.top, "top"
	case b.Dir == entity.Down && b.Y == g.bottom.Y-1 && g.bottom.Covers(b.X):
		return g.bottom, "bottom"
	}
	return nil, ""
}

// tryMove moves a paddle if it stays on screen.
func (g *Game) tryMove(p *entity.Paddle, dir entity.Direction) {
	if p.CanMove(dir, g.cols) {
		g.renderer.MovePaddle(p, dir)
	}
}
