package boot

import (
	"sync"
	"time"

	"github.td.teradata.com/sandbox/elite-console/internal/services/timer"
)

// Observer is told about playback progress. Calls arrive on the scheduler's
// goroutine, one at a time, and never while the player holds its lock.
type Observer interface {
	LineRevealed(index int, line Line)
	Complete()
}

// Player reveals a script one line per tick.
type Player struct {
	sync       sync.Mutex
	script     Script
	period     time.Duration
	observer   Observer
	handle     timer.Handle
	generation int
	revealed   int
	finished   bool
	cancelled  bool
}

func NewPlayer(script Script, period time.Duration, observer Observer) *Player {
	return &Player{
		script:   script,
		period:   period,
		observer: observer,
	}
}

// Start plays the script from its first line, abandoning any playback that
// is already under way. An empty script completes immediately. The
// scheduler must not invoke the callback from within Every.
func (p *Player) Start(s timer.Scheduler) {
	p.sync.Lock()
	if p.handle != nil {
		p.handle.Stop()
		p.handle = nil
	}
	p.generation++
	p.revealed = 0
	p.cancelled = false
	p.finished = len(p.script) == 0
	if p.finished {
		p.sync.Unlock()
		p.observer.Complete()
		return
	}
	gen := p.generation
	p.handle = s.Every(p.period, func() bool { return p.tick(gen) })
	p.sync.Unlock()
}

// Stop cancels playback. Ticks already in flight become no-ops.
func (p *Player) Stop() {
	p.sync.Lock()
	p.cancelled = true
	h := p.handle
	p.handle = nil
	p.sync.Unlock()
	if h != nil {
		h.Stop()
	}
}

func (p *Player) tick(gen int) bool {
	p.sync.Lock()
	if p.cancelled || p.finished || gen != p.generation {
		p.sync.Unlock()
		return false
	}
	index := p.revealed
	line := p.script[index]
	p.revealed++
	done := p.revealed == len(p.script)
	if done {
		p.finished = true
		p.handle = nil
	}
	p.sync.Unlock()

	p.observer.LineRevealed(index, line)
	if done {
		p.observer.Complete()
	}
	return !done
}

func (p *Player) Revealed() int {
	p.sync.Lock()
	defer p.sync.Unlock()
	return p.revealed
}

func (p *Player) Finished() bool {
	p.sync.Lock()
	defer p.sync.Unlock()
	return p.finished
}
