package console

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.td.teradata.com/sandbox/elite-console/internal/log"
	"github.td.teradata.com/sandbox/elite-console/internal/services/boot"
	"github.td.teradata.com/sandbox/elite-console/internal/services/history"
	"github.td.teradata.com/sandbox/elite-console/internal/services/interpreter"
	"github.td.teradata.com/sandbox/elite-console/internal/services/timer"
)

const defTickInterval = time.Second

type State int

const (
	Closed State = iota
	Booting
	Ready
)

func (s State) String() string {
	switch s {
	case Closed:
		return "CLOSED"
	case Booting:
		return "BOOTING"
	case Ready:
		return "READY"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type Direction int

const (
	Older Direction = iota
	Newer
)

// Entry is one submitted command and its response.
type Entry struct {
	Input   string
	Output  string
	Success bool
}

type Options struct {
	Script       boot.Script
	Vocabulary   *interpreter.Vocabulary
	Scheduler    timer.Scheduler
	TickInterval time.Duration
}

// Session is the console state machine. All methods are safe to call from
// any goroutine; invalid-state calls are ignored.
type Session struct {
	sync       sync.Mutex
	id         string
	state      State
	script     boot.Script
	vocabulary *interpreter.Vocabulary
	scheduler  timer.Scheduler
	period     time.Duration
	player     *boot.Player
	revealed   int
	transcript []Entry
	history    *history.Navigator
	pending    string
	changes    chan struct{}
}

func New(opts Options) *Session {
	s := &Session{
		script:     opts.Script,
		vocabulary: opts.Vocabulary,
		scheduler:  opts.Scheduler,
		period:     opts.TickInterval,
		history:    history.New(),
		changes:    make(chan struct{}, 1),
	}
	if s.script == nil {
		s.script = boot.English
	}
	if s.vocabulary == nil {
		s.vocabulary = interpreter.English
	}
	if s.scheduler == nil {
		s.scheduler = timer.Ticker{}
	}
	if s.period <= 0 {
		s.period = defTickInterval
	}
	return s
}

// Changes delivers a coalesced signal after every state change.
func (s *Session) Changes() <-chan struct{} {
	return s.changes
}

// Open resets all runtime state and starts the boot sequence. Opening an
// open session does nothing.
func (s *Session) Open() {
	s.sync.Lock()
	if s.state != Closed {
		s.sync.Unlock()
		return
	}
	s.id = uuid.NewString()
	s.revealed = 0
	s.transcript = nil
	s.history.Reset()
	s.pending = ""

	if len(s.script) == 0 {
		s.state = Ready
		log.Debugf("session %s opened with empty boot script", s.id)
	} else {
		s.state = Booting
		o := &bootObserver{session: s}
		s.player = boot.NewPlayer(s.script, s.period, o)
		o.player = s.player
		s.player.Start(s.scheduler)
		log.Debugf("session %s opened, booting %d line(s) every %v", s.id, len(s.script), s.period)
	}
	s.sync.Unlock()
	s.notify()
}

// Close stops the boot sequence. The final transcript stays readable until
// the next Open.
func (s *Session) Close() {
	s.sync.Lock()
	changed := s.closeLocked("host")
	s.sync.Unlock()
	if changed {
		s.notify()
	}
}

func (s *Session) closeLocked(reason string) bool {
	if s.state == Closed {
		return false
	}
	if s.player != nil {
		s.player.Stop()
		s.player = nil
	}
	log.Debugf("session %s closed by %s in state %v", s.id, reason, s.state)
	s.state = Closed
	return true
}

// SubmitLine runs one line through history and the interpreter. It only
// acts in the Ready state and ignores blank input.
func (s *Session) SubmitLine(text string) {
	s.sync.Lock()
	if s.state != Ready || strings.TrimSpace(text) == "" {
		s.sync.Unlock()
		return
	}
	s.history.Append(text)
	r := s.vocabulary.Resolve(text)
	s.pending = ""
	log.Debugf("session %s: %q -> recognized=%v signal=%v", s.id, text, r.Recognized, r.Signal)

	switch r.Signal {
	case interpreter.Clear:
		s.transcript = nil
		s.history.Reset()
	case interpreter.Exit:
		s.transcript = append(s.transcript, Entry{Input: text, Output: r.Output, Success: r.Recognized})
		s.closeLocked("exit")
	default:
		s.transcript = append(s.transcript, Entry{Input: text, Output: r.Output, Success: r.Recognized})
	}
	s.sync.Unlock()
	s.notify()
}

// NavigateHistory replaces the pending input with a recalled line. It
// reports false when there was nothing further to recall.
func (s *Session) NavigateHistory(dir Direction) bool {
	s.sync.Lock()
	if s.state != Ready {
		s.sync.Unlock()
		return false
	}
	var text string
	var ok bool
	if dir == Older {
		text, ok = s.history.RecallOlder()
	} else {
		text, ok = s.history.RecallNewer()
	}
	if ok {
		s.pending = text
	}
	s.sync.Unlock()
	if ok {
		s.notify()
	}
	return ok
}

// UpdatePendingInput tracks the line being composed.
func (s *Session) UpdatePendingInput(text string) {
	s.sync.Lock()
	if s.state == Closed {
		s.sync.Unlock()
		return
	}
	s.pending = text
	s.sync.Unlock()
	s.notify()
}

func (s *Session) State() State {
	s.sync.Lock()
	defer s.sync.Unlock()
	return s.state
}

func (s *Session) InputEnabled() bool {
	return s.State() == Ready
}

func (s *Session) notify() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}

type bootObserver struct {
	session *Session
	player  *boot.Player
}

func (o *bootObserver) LineRevealed(index int, _ boot.Line) {
	s := o.session
	s.sync.Lock()
	if s.player != o.player || s.state != Booting {
		s.sync.Unlock()
		return
	}
	s.revealed = index + 1
	s.sync.Unlock()
	s.notify()
}

func (o *bootObserver) Complete() {
	s := o.session
	s.sync.Lock()
	if s.player != o.player || s.state != Booting {
		s.sync.Unlock()
		return
	}
	s.state = Ready
	log.Debugf("session %s boot complete", s.id)
	s.sync.Unlock()
	s.notify()
}
