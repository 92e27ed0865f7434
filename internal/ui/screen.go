//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package ui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// modeSwitcher reads and installs terminal attributes.
type modeSwitcher interface {
	Get() (*unix.Termios, error)
	Set(*unix.Termios) error
}

// fdModes switches modes on a terminal file descriptor.
type fdModes struct {
	fd int
}

// Get returns the current attributes of the terminal.
func (m fdModes) Get() (*unix.Termios, error) {
	return unix.IoctlGetTermios(m.fd, ioctlGetTermios)
}

// Set installs attributes after pending output drains, discarding unread input.
func (m fdModes) Set(t *unix.Termios) error {
	return unix.IoctlSetTermios(m.fd, ioctlSetTermiosFlush, t)
}

// Screen owns the terminal for the duration of a game.
//
// Open acquires the alternate screen, raw input mode and a hidden cursor in that
// order; Close releases them in reverse. Until Close, the original attributes are
// held by the Screen and nowhere else.
type Screen struct {
	in    io.Reader
	out   io.Writer
	modes modeSwitcher

	rows, cols int
	orig       *unix.Termios
	open       bool
	rb         [1]byte
}

// Open takes over the terminal attached to in and out.
func Open(in, out *os.File) (*Screen, error) {
	inFd := int(in.Fd())
	if !term.IsTerminal(inFd) {
		return nil, fmt.Errorf("stdin is not a terminal")
	}

	cols, rows, err := term.GetSize(int(out.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read terminal size: %w", err)
	}

	s := newScreen(in, out, fdModes{fd: inFd}, rows, cols)
	if err := s.acquire(); err != nil {
		return nil, err
	}
	return s, nil
}

// newScreen creates an unacquired screen.
func newScreen(in io.Reader, out io.Writer, modes modeSwitcher, rows, cols int) *Screen {
	return &Screen{in: in, out: out, modes: modes, rows: rows, cols: cols}
}

// acquire enters the alternate screen, raw mode and hides the cursor.
// A failure rolls back anything already switched.
func (s *Screen) acquire() error {
	io.WriteString(s.out, altScreenEnter)

	orig, err := s.modes.Get()
	if err != nil {
		io.WriteString(s.out, altScreenExit)
		return fmt.Errorf("failed to read terminal attributes: %w", err)
	}

	raw := makeRaw(*orig)
	if err := s.modes.Set(&raw); err != nil {
		io.WriteString(s.out, altScreenExit)
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}

	s.orig = orig
	s.open = true
	io.WriteString(s.out, cursorHide)
	return nil
}

// Close shows the cursor, restores the original attributes and leaves the
// alternate screen. Calling it more than once is a no-op.
func (s *Screen) Close() error {
	if !s.open {
		return nil
	}
	s.open = false

	var errs []error
	if _, err := io.WriteString(s.out, cursorShow); err != nil {
		errs = append(errs, err)
	}
	if err := s.modes.Set(s.orig); err != nil {
		errs = append(errs, fmt.Errorf("failed to restore terminal attributes: %w", err))
	}
	if _, err := io.WriteString(s.out, altScreenExit); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Size returns the terminal dimensions captured when the screen was opened.
func (s *Screen) Size() (rows, cols int) {
	return s.rows, s.cols
}

// Write sends raw output to the terminal.
func (s *Screen) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// PollByte returns the next input byte, or false when none is ready.
// It never blocks once raw mode is active.
func (s *Screen) PollByte() (byte, bool) {
	n, err := s.in.Read(s.rb[:])
	if n != 1 || err != nil {
		return 0, false
	}
	return s.rb[0], true
}

// makeRaw returns t with echo, canonical mode, signal keys, CR translation, flow
// control and output processing turned off, and reads set to return immediately.
func makeRaw(t unix.Termios) unix.Termios {
	t.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG
	t.Iflag &^= unix.IXON | unix.ICRNL
	t.Oflag &^= unix.OPOST
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = 0
	return t
}
