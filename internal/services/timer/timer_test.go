package timer

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestTickerStopsOnFalse(t *testing.T) {
	defer goleak.VerifyNone(t)

	var calls int32
	done := make(chan struct{})
	Ticker{}.Every(time.Millisecond, func() bool {
		if atomic.AddInt32(&calls, 1) == 3 {
			close(done)
			return false
		}
		return true
	})

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("ticker never reached three calls")
	}
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestTickerStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	var calls int32
	h := Ticker{}.Every(time.Millisecond, func() bool {
		atomic.AddInt32(&calls, 1)
		return true
	})
	time.Sleep(5 * time.Millisecond)
	h.Stop()
	h.Stop()

	time.Sleep(5 * time.Millisecond)
	stopped := atomic.LoadInt32(&calls)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, atomic.LoadInt32(&calls))
}

func TestManualTick(t *testing.T) {
	m := NewManual()
	calls := 0
	m.Every(time.Second, func() bool {
		calls++
		return calls < 2
	})
	assert.Equal(t, 1, m.Pending())

	m.Tick()
	assert.Equal(t, 1, calls)
	m.Tick()
	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, m.Pending())

	m.Tick()
	assert.Equal(t, 2, calls)
}

func TestManualAdvance(t *testing.T) {
	m := NewManual()
	calls := 0
	m.Every(time.Second, func() bool {
		calls++
		return true
	})

	m.Advance(500 * time.Millisecond)
	assert.Equal(t, 0, calls)
	m.Advance(500 * time.Millisecond)
	assert.Equal(t, 1, calls)
	m.Advance(3 * time.Second)
	assert.Equal(t, 4, calls)
}

func TestManualStop(t *testing.T) {
	m := NewManual()
	calls := 0
	h := m.Every(time.Second, func() bool {
		calls++
		return true
	})
	m.Tick()
	h.Stop()
	m.Advance(10 * time.Second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, m.Pending())
}

func TestManualStopFromCallback(t *testing.T) {
	m := NewManual()
	calls := 0
	var h Handle
	h = m.Every(time.Second, func() bool {
		calls++
		h.Stop()
		return true
	})
	m.Advance(5 * time.Second)
	assert.Equal(t, 1, calls)
}
