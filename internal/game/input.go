package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/termpong/internal/entity"
)

const escByte = 0x1b

// keyEvent is a decoded keypress.
type keyEvent struct {
	key tcell.Key
	ch  rune
}

// handleInput polls at most one key and dispatches it.
func (g *Game) handleInput() {
	c, ok := g.console.PollByte()
	if !ok {
		return
	}

	if c == 'q' || c == 'Q' {
		g.running = false
		return
	}

	if g.state != StatePlaying {
		return
	}

	g.handleKeyEvent(g.decodeKey(c))
}

// decodeKey turns c, and for an escape the two bytes after it, into a key.
// A sequence cut short by missing bytes decodes as a bare escape.
func (g *Game) decodeKey(c byte) keyEvent {
	if c != escByte {
		return keyEvent{key: tcell.KeyRune, ch: rune(c)}
	}

	first, ok := g.console.PollByte()
	if !ok {
		return keyEvent{key: tcell.KeyEscape}
	}
	second, ok := g.console.PollByte()
	if !ok {
		return keyEvent{key: tcell.KeyEscape}
	}

	if first == '[' {
		switch second {
		case 'D':
			return keyEvent{key: tcell.KeyLeft}
		case 'C':
			return keyEvent{key: tcell.KeyRight}
		}
	}
	return keyEvent{key: tcell.KeyEscape}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ev keyEvent) {
	switch ev.key {
	case tcell.KeyLeft:
		g.tryMove(g.bottom, entity.Left)
	case tcell.KeyRight:
		g.tryMove(g.bottom, entity.Right)

	case tcell.KeyRune:
		switch ev.ch {
		case 'a', 'A':
			g.tryMove(g.top, entity.Left)
		case 'd', 'D':
			g.tryMove(g.top, entity.Right)
		}
	}
}
