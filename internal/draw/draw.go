// Package draw renders the game to an ANSI terminal using half-block
// characters, two pixels per cell.
package draw

import (
	"fmt"
	"io"
	"strconv"

	"github.com/tomz197/skyraid/internal/object"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
	Heart          = '♥'
)

// ColorReset restores the default terminal colors.
const ColorReset = "\033[0m"

// Fg returns the 24-bit foreground escape sequence for c.
func Fg(c object.Color) string {
	return colorSeq(38, c)
}

// Bg returns the 24-bit background escape sequence for c.
func Bg(c object.Color) string {
	return colorSeq(48, c)
}

func colorSeq(layer int, c object.Color) string {
	r, g, b := c.RGB()
	buf := make([]byte, 0, 20)
	buf = append(buf, "\033["...)
	buf = strconv.AppendInt(buf, int64(layer), 10)
	buf = append(buf, ";2;"...)
	buf = strconv.AppendInt(buf, int64(r), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(g), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(b), 10)
	buf = append(buf, 'm')
	return string(buf)
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// MoveCursor moves cursor to a specific position (1-based).
func MoveCursor(w io.Writer, x, y int) {
	fmt.Fprintf(w, "\033[%d;%dH", y, x)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
