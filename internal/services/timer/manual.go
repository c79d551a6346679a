package timer

import (
	"sync"
	"time"
)

// Manual is a Scheduler that only fires when told to. Callbacks run on the
// goroutine that calls Tick or Advance.
type Manual struct {
	sync    sync.Mutex
	handles []*manualHandle
}

type manualHandle struct {
	owner   *Manual
	period  time.Duration
	elapsed time.Duration
	fn      func() bool
	stopped bool
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Every(period time.Duration, fn func() bool) Handle {
	h := &manualHandle{owner: m, period: period, fn: fn}
	m.sync.Lock()
	m.handles = append(m.handles, h)
	m.sync.Unlock()
	return h
}

// Tick fires every active callback once.
func (m *Manual) Tick() {
	for _, h := range m.active() {
		h.fire()
	}
}

// Advance moves the clock forward by d, firing each active callback once
// for every full period that elapses.
func (m *Manual) Advance(d time.Duration) {
	for _, h := range m.active() {
		m.sync.Lock()
		h.elapsed += d
		m.sync.Unlock()
		for {
			m.sync.Lock()
			due := !h.stopped && h.period > 0 && h.elapsed >= h.period
			if due {
				h.elapsed -= h.period
			}
			m.sync.Unlock()
			if !due || !h.fire() {
				break
			}
		}
	}
}

// Pending returns the number of callbacks that are still scheduled.
func (m *Manual) Pending() int {
	return len(m.active())
}

func (m *Manual) active() []*manualHandle {
	m.sync.Lock()
	defer m.sync.Unlock()
	var live []*manualHandle
	for _, h := range m.handles {
		if !h.stopped {
			live = append(live, h)
		}
	}
	m.handles = live
	return append([]*manualHandle(nil), live...)
}

// fire runs the callback unless stopped and reports whether it stays
// scheduled.
func (h *manualHandle) fire() bool {
	h.owner.sync.Lock()
	stopped := h.stopped
	h.owner.sync.Unlock()
	if stopped {
		return false
	}
	if !h.fn() {
		h.Stop()
		return false
	}
	h.owner.sync.Lock()
	defer h.owner.sync.Unlock()
	return !h.stopped
}

func (h *manualHandle) Stop() {
	h.owner.sync.Lock()
	h.stopped = true
	h.owner.sync.Unlock()
}
