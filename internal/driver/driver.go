package driver

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.td.teradata.com/sandbox/elite-console/internal/log"
	"github.td.teradata.com/sandbox/elite-console/internal/services/common"
	"github.td.teradata.com/sandbox/elite-console/internal/services/console"
	"github.td.teradata.com/sandbox/elite-console/internal/services/display"
	"github.td.teradata.com/sandbox/elite-console/internal/services/logging"
)

const noticeTTL = 3 * time.Second

// Driver runs a console session on a terminal until the session closes.
type Driver struct {
	session *console.Session
	term    *display.Terminal
	keys    Keyboard
	chrome  display.Chrome
	notices *logging.Log
	redraw  chan struct{}
	last    console.State
}

func New(session *console.Session, t *display.Terminal, keys Keyboard, chrome display.Chrome) *Driver {
	d := &Driver{
		session: session,
		term:    t,
		keys:    keys,
		chrome:  chrome,
		redraw:  make(chan struct{}, 1),
	}
	d.notices = logging.New(noticeTTL, d.requestRedraw)
	return d
}

// Run opens the session and processes keys and session changes until the
// session is closed or ctx is done.
func (d *Driver) Run(ctx context.Context) error {
	defer d.notices.Close()

	inputs := make(chan []common.Input)
	errs := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			keys, err := d.keys.ReadKeys()
			if err != nil {
				errs <- err
				return
			}
			select {
			case inputs <- keys:
			case <-done:
				return
			}
		}
	}()

	d.session.Open()
	d.last = console.Booting
	for {
		v := d.session.View()
		d.track(v)
		if err := d.draw(v); err != nil {
			d.notices.Errorf("Failed to draw console: %v", err)
			d.session.Close()
			return fmt.Errorf("draw console: %w", err)
		}
		if v.State == console.Closed {
			log.Infof("console closed")
			return nil
		}

		select {
		case <-ctx.Done():
			d.session.Close()
			return ctx.Err()
		case <-d.session.Changes():
		case <-d.redraw:
		case keys := <-inputs:
			for _, k := range keys {
				d.Process(k)
			}
		case err := <-errs:
			d.notices.Errorf("Keyboard failure: %v", err)
			d.session.Close()
			return fmt.Errorf("read keyboard: %w", err)
		}
	}
}

func (d *Driver) track(v console.View) {
	if d.last == console.Booting && v.State == console.Ready {
		d.notices.Infof("Boot sequence complete")
	}
	d.last = v.State
}

func (d *Driver) draw(v console.View) error {
	d.term.Resize()
	return display.Draw(d.term, v, d.chrome, d.notices.Active())
}

// Process maps one key press onto the session.
func (d *Driver) Process(k common.Input) {
	if k.KeyCode == 0 && (k.Ascii == common.Escape || k.Ascii == common.CtrlC || k.Ascii == common.CtrlD) {
		d.session.Close()
		return
	}
	if !d.session.InputEnabled() {
		return
	}

	switch {
	case k.KeyCode != 0:
		switch k.KeyCode {
		case common.CursorUp:
			if !d.session.NavigateHistory(console.Older) {
				d.term.Bell()
			}
		case common.CursorDown:
			d.session.NavigateHistory(console.Newer)
		default:
			d.notices.Warnf("Unmapped key code: [%v]", k.KeyCode)
		}
	case k.Printable():
		d.session.UpdatePendingInput(d.session.View().Pending + string(k.Rune))
	default:
		switch k.Ascii {
		case common.Enter, common.LineFeed:
			d.session.SubmitLine(d.session.View().Pending)
		case common.Backspace, common.CtrlH:
			pending := d.session.View().Pending
			if _, size := utf8.DecodeLastRuneInString(pending); size > 0 {
				d.session.UpdatePendingInput(pending[:len(pending)-size])
			}
		default:
			d.notices.Warnf("Unmapped ascii code: [%d]", k.Ascii)
		}
	}
}

func (d *Driver) requestRedraw() {
	select {
	case d.redraw <- struct{}{}:
	default:
	}
}

// Notices exposes the notice log.
func (d *Driver) Notices() *logging.Log {
	return d.notices
}
