package driver

import (
	"unicode/utf8"

	"github.com/pkg/term"

	"github.td.teradata.com/sandbox/elite-console/internal/services/common"
)

// Keyboard yields decoded key presses. ReadKeys blocks until at least one
// key is available.
type Keyboard interface {
	ReadKeys() ([]common.Input, error)
	Close() error
}

type ttyKeyboard struct {
	t *term.Term
}

// OpenKeyboard puts the controlling terminal into raw mode. Close restores it.
func OpenKeyboard() (Keyboard, error) {
	t, err := term.Open("/dev/tty", term.RawMode)
	if err != nil {
		return nil, err
	}
	return &ttyKeyboard{t: t}, nil
}

func (k *ttyKeyboard) ReadKeys() ([]common.Input, error) {
	bs := make([]byte, 64)
	n, err := k.t.Read(bs)
	if err != nil {
		return nil, err
	}
	return Decode(bs[:n]), nil
}

func (k *ttyKeyboard) Close() error {
	if err := k.t.Restore(); err != nil {
		_ = k.t.Close()
		return err
	}
	return k.t.Close()
}

// Decode splits raw terminal bytes into key presses. Cursor keys arrive as
// ESC [ A..D, or ESC O A..D in application cursor mode; other escape
// sequences are dropped. ESC is a key press of its own only when it ends
// the read, otherwise it prefixes an Alt chord which is dropped too.
func Decode(bs []byte) []common.Input {
	var keys []common.Input
	for i := 0; i < len(bs); {
		b := bs[i]
		switch {
		case b == common.Escape && i+1 == len(bs):
			keys = append(keys, common.Input{Ascii: common.Escape})
			i++
		case b == common.Escape && bs[i+1] == '[':
			j := i + 2
			for j < len(bs) && (bs[j] < 0x40 || bs[j] > 0x7e) {
				j++
			}
			if j < len(bs) {
				if code, ok := cursorKeys[bs[j]]; ok && j == i+2 {
					keys = append(keys, common.Input{KeyCode: code})
				}
				j++
			}
			i = j
		case b == common.Escape && bs[i+1] == 'O' && i+2 < len(bs):
			if code, ok := cursorKeys[bs[i+2]]; ok {
				keys = append(keys, common.Input{KeyCode: code})
			}
			i += 3
		case b == common.Escape:
			_, size := utf8.DecodeRune(bs[i+1:])
			i += 1 + size
		case b < 0x20 || b == 0x7f:
			keys = append(keys, common.Input{Ascii: int(b)})
			i++
		default:
			r, size := utf8.DecodeRune(bs[i:])
			if r != utf8.RuneError {
				keys = append(keys, common.Input{Rune: r})
			}
			i += size
		}
	}
	return keys
}

var cursorKeys = map[byte]int{
	'A': common.CursorUp,
	'B': common.CursorDown,
	'C': common.CursorRight,
	'D': common.CursorLeft,
}
