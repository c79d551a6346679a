package logging

import (
	"fmt"
	"sync"
	"time"

	"github.td.teradata.com/sandbox/elite-console/internal/log"
	"github.td.teradata.com/sandbox/elite-console/internal/services/common"
)

const maxHistory = 1000

// Log shows short-lived notices below the console and keeps a bounded
// history of every notice shown.
type Log struct {
	sync    sync.Mutex
	ttl     time.Duration
	active  []*notice
	history []string
	redraw  func()
	closed  bool
}

type notice struct {
	message string
	timer   *time.Timer
}

func New(ttl time.Duration, redraw func()) *Log {
	return &Log{ttl: ttl, redraw: redraw}
}

// Notify shows text in colour until the notice expires. Newest first.
func (l *Log) Notify(text string, colour string) {
	str := fmt.Sprintf("%s%s%s", colour, text, common.Reset)

	l.sync.Lock()
	if l.closed {
		l.sync.Unlock()
		return
	}
	l.history = append(l.history, str)
	if len(l.history) > maxHistory {
		l.history = l.history[1:]
	}
	n := &notice{message: str}
	n.timer = time.AfterFunc(l.ttl, func() { l.expire(n) })
	l.active = append([]*notice{n}, l.active...)
	l.sync.Unlock()
	l.redraw()
}

func (l *Log) expire(n *notice) {
	l.sync.Lock()
	found := false
	for i, a := range l.active {
		if a == n {
			l.active = append(l.active[:i], l.active[i+1:]...)
			found = true
			break
		}
	}
	closed := l.closed
	l.sync.Unlock()
	if found && !closed {
		l.redraw()
	}
}

func (l *Log) Infof(text string, a ...interface{}) {
	log.Infof(text, a...)
	l.Notify(fmt.Sprintf(text, a...), common.BrightWhite)
}

func (l *Log) Warnf(text string, a ...interface{}) {
	log.Warnf(text, a...)
	l.Notify(fmt.Sprintf(text, a...), common.BrightYellow)
}

func (l *Log) Errorf(text string, a ...interface{}) {
	log.Errorf(text, a...)
	l.Notify(fmt.Sprintf(text, a...), common.BrightRed)
}

// Active returns the notices currently shown, newest first.
func (l *Log) Active() []string {
	l.sync.Lock()
	defer l.sync.Unlock()
	tmp := make([]string, 0, len(l.active))
	for _, n := range l.active {
		tmp = append(tmp, n.message)
	}
	return tmp
}

func (l *Log) History() []string {
	l.sync.Lock()
	defer l.sync.Unlock()
	return append([]string(nil), l.history...)
}

// Close stops all pending expiries. Later notices are dropped.
func (l *Log) Close() {
	l.sync.Lock()
	defer l.sync.Unlock()
	l.closed = true
	for _, n := range l.active {
		n.timer.Stop()
	}
	l.active = nil
}
