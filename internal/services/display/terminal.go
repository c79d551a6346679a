// https://www.lihaoyi.com/post/BuildyourownCommandLinewithANSIescapecodes.html#colors
package display

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	xterm "golang.org/x/term"
)

const (
	Bell = "\a"

	ClearScreen = "\u001b[2J" // clears entire screen
	ClearEnd    = "\u001b[0K" // clears from cursor to end of line

	SetPosition = "\u001b[%d;%dH" // moves cursor to row n column m

	// Show / Hide cursor
	Show = "\u001b[?25h"
	Hide = "\u001b[?25l"
)

var rex = regexp.MustCompile("\u001b\\[[0-9;?]*[a-zA-Z]")

// Terminal buffers one frame of output and flushes it in a single write.
type Terminal struct {
	out   io.Writer
	fd    int
	isTTY bool
	cols  int
	rows  int
	frame strings.Builder
}

// New creates a terminal writing to out. When fd is a terminal its size is
// read from it, otherwise width and height are used.
func New(out io.Writer, fd int, width int, height int) *Terminal {
	t := &Terminal{
		out:   out,
		fd:    fd,
		isTTY: fd >= 0 && xterm.IsTerminal(fd),
		cols:  width,
		rows:  height,
	}
	t.Resize()
	return t
}

// Resize re-reads the terminal size. Sizes that cannot be read are kept.
func (t *Terminal) Resize() {
	if !t.isTTY {
		return
	}
	if w, h, err := xterm.GetSize(t.fd); err == nil && w > 0 && h > 0 {
		t.cols = w
		t.rows = h
	}
}

func (t *Terminal) IsTTY() bool {
	return t.isTTY
}

func (t *Terminal) Rows() int {
	return t.rows
}

func (t *Terminal) Cols() int {
	return t.cols
}

func (t *Terminal) Cls() {
	t.frame.WriteString(ClearScreen)
	fmt.Fprintf(&t.frame, SetPosition, 1, 1)
}

func (t *Terminal) At(col int, row int) bool {
	if col < 1 || col > t.cols || row < 1 || row > t.rows {
		return false
	}
	fmt.Fprintf(&t.frame, SetPosition, row, col)
	return true
}

// PrintAt writes text starting at col, row, cut to the screen width.
func (t *Terminal) PrintAt(col int, row int, text string) bool {
	if !t.At(col, row) {
		return false
	}
	t.frame.WriteString(Fit(text, t.cols-col+1))
	t.frame.WriteString(ClearEnd)
	return true
}

func (t *Terminal) PrintAtf(col int, row int, format string, a ...interface{}) bool {
	return t.PrintAt(col, row, fmt.Sprintf(format, a...))
}

func (t *Terminal) HideCursor() {
	t.frame.WriteString(Hide)
}

func (t *Terminal) ShowCursor() {
	t.frame.WriteString(Show)
}

func (t *Terminal) Bell() {
	t.frame.WriteString(Bell)
}

// Flush writes the buffered frame.
func (t *Terminal) Flush() error {
	defer t.frame.Reset()
	_, err := io.WriteString(t.out, t.frame.String())
	return err
}

func StripFormatting(text string) string {
	return rex.ReplaceAllString(text, "")
}

// Width returns the number of columns text occupies once escape sequences
// are removed.
func Width(text string) int {
	return runewidth.StringWidth(StripFormatting(text))
}

// Fit cuts text to at most cols display columns. Escape sequences are kept
// and a cut line is terminated with a reset.
func Fit(text string, cols int) string {
	if cols <= 0 {
		return ""
	}
	if Width(text) <= cols {
		return text
	}
	var b strings.Builder
	used := 0
	for i := 0; i < len(text); {
		if loc := rex.FindStringIndex(text[i:]); loc != nil && loc[0] == 0 {
			b.WriteString(text[i : i+loc[1]])
			i += loc[1]
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		w := runewidth.RuneWidth(r)
		if used+w > cols {
			break
		}
		b.WriteString(text[i : i+size])
		used += w
		i += size
	}
	b.WriteString("\u001b[0m")
	return b.String()
}
