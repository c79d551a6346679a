package logging

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.td.teradata.com/sandbox/elite-console/internal/services/common"
)

func TestNotifyExpires(t *testing.T) {
	var redraws int32
	l := New(20*time.Millisecond, func() { atomic.AddInt32(&redraws, 1) })
	defer l.Close()

	l.Notify("first", common.White)
	l.Notify("second", common.White)
	active := l.Active()
	require.Len(t, active, 2)
	assert.Contains(t, active[0], "second")

	require.Eventually(t, func() bool { return len(l.Active()) == 0 }, 5*time.Second, time.Millisecond)
	assert.GreaterOrEqual(t, atomic.LoadInt32(&redraws), int32(4))
	assert.Len(t, l.History(), 2)
}

func TestCloseDropsNotices(t *testing.T) {
	l := New(time.Hour, func() {})
	l.Notify("pending", common.White)
	l.Close()
	assert.Empty(t, l.Active())

	l.Notify("late", common.White)
	assert.Empty(t, l.Active())
	assert.Len(t, l.History(), 1)
}

func TestHistoryIsBounded(t *testing.T) {
	l := New(time.Hour, func() {})
	defer l.Close()
	for i := 0; i < maxHistory+5; i++ {
		l.Notify("n", common.White)
	}
	assert.Len(t, l.History(), maxHistory)
}
