//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package ui

import (
	"bytes"
	"errors"
	"testing"

	"golang.org/x/sys/unix"
)

// fakeModes records every attribute set installed on it.
type fakeModes struct {
	current *unix.Termios
	history []unix.Termios
	getErr  error
	setErr  error
}

func (m *fakeModes) Get() (*unix.Termios, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	t := *m.current
	return &t, nil
}

func (m *fakeModes) Set(t *unix.Termios) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.history = append(m.history, *t)
	c := *t
	m.current = &c
	return nil
}

func cookedTermios() *unix.Termios {
	t := &unix.Termios{}
	t.Lflag = unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Iflag = unix.IXON | unix.ICRNL | unix.BRKINT
	t.Oflag = unix.OPOST
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
	return t
}

func TestMakeRaw(t *testing.T) {
	raw := makeRaw(*cookedTermios())

	if raw.Lflag&(unix.ECHO|unix.ICANON|unix.ISIG) != 0 {
		t.Errorf("Lflag = %#x, echo/canonical/signal bits still set", raw.Lflag)
	}
	if raw.Lflag&unix.IEXTEN == 0 {
		t.Error("Lflag IEXTEN should be left untouched")
	}
	if raw.Iflag&(unix.IXON|unix.ICRNL) != 0 {
		t.Errorf("Iflag = %#x, flow control/CR translation bits still set", raw.Iflag)
	}
	if raw.Iflag&unix.BRKINT == 0 {
		t.Error("Iflag BRKINT should be left untouched")
	}
	if raw.Oflag&unix.OPOST != 0 {
		t.Errorf("Oflag = %#x, OPOST still set", raw.Oflag)
	}
	if raw.Cc[unix.VMIN] != 0 || raw.Cc[unix.VTIME] != 0 {
		t.Errorf("VMIN/VTIME = %d/%d, want 0/0", raw.Cc[unix.VMIN], raw.Cc[unix.VTIME])
	}
}

func TestScreenLifecycle(t *testing.T) {
	orig := cookedTermios()
	modes := &fakeModes{current: orig}
	var out bytes.Buffer

	s := newScreen(bytes.NewReader(nil), &out, modes, 24, 80)
	if err := s.acquire(); err != nil {
		t.Fatalf("acquire() error = %v", err)
	}

	if got, want := out.String(), altScreenEnter+cursorHide; got != want {
		t.Errorf("acquire() wrote %q, want %q", got, want)
	}
	if modes.current.Lflag&unix.ICANON != 0 {
		t.Error("acquire() did not switch to raw mode")
	}

	out.Reset()
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if got, want := out.String(), cursorShow+altScreenExit; got != want {
		t.Errorf("Close() wrote %q, want %q", got, want)
	}
	if *modes.current != *orig {
		t.Errorf("Close() restored %+v, want %+v", *modes.current, *orig)
	}

	// Second close does nothing.
	out.Reset()
	sets := len(modes.history)
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if out.Len() != 0 || len(modes.history) != sets {
		t.Error("second Close() should not touch the terminal")
	}
}

func TestScreenAcquireRollback(t *testing.T) {
	modes := &fakeModes{current: cookedTermios(), setErr: errors.New("boom")}
	var out bytes.Buffer

	s := newScreen(bytes.NewReader(nil), &out, modes, 24, 80)
	if err := s.acquire(); err == nil {
		t.Fatal("acquire() error = nil, want failure")
	}

	if got, want := out.String(), altScreenEnter+altScreenExit; got != want {
		t.Errorf("failed acquire() wrote %q, want %q", got, want)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() on failed screen error = %v", err)
	}
}

func TestScreenPollByte(t *testing.T) {
	s := newScreen(bytes.NewReader([]byte("q")), &bytes.Buffer{}, &fakeModes{current: cookedTermios()}, 24, 80)

	b, ok := s.PollByte()
	if !ok || b != 'q' {
		t.Errorf("PollByte() = (%q, %v), want ('q', true)", b, ok)
	}

	if _, ok := s.PollByte(); ok {
		t.Error("PollByte() on empty input should report no byte")
	}

	rows, cols := s.Size()
	if rows != 24 || cols != 80 {
		t.Errorf("Size() = (%d, %d), want (24, 80)", rows, cols)
	}
}
