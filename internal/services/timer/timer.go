package timer

import (
	"sync"
	"time"
)

// Handle cancels a scheduled callback. Stop is idempotent and never blocks;
// once it returns, no new invocation of the callback is started.
type Handle interface {
	Stop()
}

// Scheduler runs fn once per period until fn returns false or the returned
// handle is stopped.
type Scheduler interface {
	Every(period time.Duration, fn func() bool) Handle
}

// Ticker is a Scheduler backed by time.Ticker, one goroutine per callback.
type Ticker struct{}

func (Ticker) Every(period time.Duration, fn func() bool) Handle {
	h := &tickerHandle{done: make(chan struct{})}
	t := time.NewTicker(period)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-h.done:
				return
			case <-t.C:
				// stop wins over a tick that raced with it
				select {
				case <-h.done:
					return
				default:
				}
				if !fn() {
					return
				}
			}
		}
	}()
	return h
}

type tickerHandle struct {
	once sync.Once
	done chan struct{}
}

func (h *tickerHandle) Stop() {
	h.once.Do(func() { close(h.done) })
}
