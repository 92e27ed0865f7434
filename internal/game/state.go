// Package game provides the main game loop and input dispatch.
package game

// State is the play state of a session. Quitting is tracked separately, so a
// finished game keeps polling for the quit key.
type State int

const (
	// StatePlaying moves the ball and accepts paddle input.
	StatePlaying State = iota
	// StateOver freezes the ball and ignores everything but quit.
	StateOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}
