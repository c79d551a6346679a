package common

// Key codes for keys without an ASCII representation. The cursor keys use
// Javascript key codes.
const (
	CursorUp    = 38
	CursorDown  = 40
	CursorLeft  = 37
	CursorRight = 39
)

// ASCII control characters the console reacts to.
const (
	CtrlC     = 3
	CtrlD     = 4
	Enter     = 13
	LineFeed  = 10
	Escape    = 27
	Backspace = 127
	CtrlH     = 8
)

// Input is one decoded key press. Exactly one of Rune, Ascii or KeyCode is
// meaningful: KeyCode for cursor keys, Ascii for control characters, Rune
// for printable text.
type Input struct {
	Ascii   int
	KeyCode int
	Rune    rune
}

func (i Input) Printable() bool {
	return i.Rune != 0
}
