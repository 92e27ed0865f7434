package game

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// DefaultTickDivider is the number of frames per ball step.
	DefaultTickDivider = 10
	// DefaultFrameWait is the sleep after every frame.
	DefaultFrameWait = 5 * time.Millisecond
)

// Config holds game configuration options.
type Config struct {
	// TickDivider is how many loop frames pass between two ball steps.
	TickDivider int
	// FrameWait is the fixed sleep at the end of every frame. It sets the input
	// polling rate; ball speed is FrameWait * TickDivider per row.
	FrameWait time.Duration
}

// DefaultConfig returns the standard cadence: one ball step every 50ms.
func DefaultConfig() Config {
	return Config{
		TickDivider: DefaultTickDivider,
		FrameWait:   DefaultFrameWait,
	}
}

// ConfigFromEnv returns DefaultConfig overridden by PONG_TICK_DIVIDER and
// PONG_FRAME_WAIT when they are set.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("PONG_TICK_DIVIDER"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid PONG_TICK_DIVIDER %q: %w", v, err)
		}
		cfg.TickDivider = n
	}

	if v := os.Getenv("PONG_FRAME_WAIT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid PONG_FRAME_WAIT %q: %w", v, err)
		}
		cfg.FrameWait = d
	}

	return cfg, cfg.Validate()
}

// Validate checks that the cadence values are usable.
func (c Config) Validate() error {
	if c.TickDivider < 1 {
		return fmt.Errorf("tick divider must be at least 1, got %d", c.TickDivider)
	}
	if c.FrameWait < 0 {
		return fmt.Errorf("frame wait must not be negative, got %v", c.FrameWait)
	}
	return nil
}
