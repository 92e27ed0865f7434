// Package ui provides the terminal session and the differential renderer.
package ui

import "strconv"

// Escape sequences written by the screen and the renderer.
const (
	esc = "\x1b["

	altScreenEnter = esc + "?1049h"
	altScreenExit  = esc + "?1049l"
	cursorShow     = esc + "?25h"
	cursorHide     = esc + "?25l"

	sgrReset = esc + "0m"
	sgrBlue  = esc + "34m"

	bell  = "\a"
	block = "█"
)

// appendCursorPos appends a CUP sequence for row and col.
func appendCursorPos(buf []byte, row, col int) []byte {
	buf = append(buf, esc...)
	buf = strconv.AppendInt(buf, int64(row), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(col), 10)
	return append(buf, 'H')
}
