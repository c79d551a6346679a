package console

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.td.teradata.com/sandbox/elite-console/internal/services/boot"
	"github.td.teradata.com/sandbox/elite-console/internal/services/interpreter"
	"github.td.teradata.com/sandbox/elite-console/internal/services/timer"
)

func script(n int) boot.Script {
	s := make(boot.Script, n)
	for i := range s {
		s[i] = boot.Line{Prompt: "> step", Output: "ok", Success: true}
	}
	return s
}

func newSession(n int) (*Session, *timer.Manual) {
	m := timer.NewManual()
	s := New(Options{
		Script:       script(n),
		Vocabulary:   interpreter.English,
		Scheduler:    m,
		TickInterval: time.Second,
	})
	return s, m
}

func ready(t *testing.T, n int) (*Session, *timer.Manual) {
	t.Helper()
	s, m := newSession(n)
	s.Open()
	for i := 0; i < n; i++ {
		m.Tick()
	}
	require.Equal(t, Ready, s.State())
	return s, m
}

func TestBootRevealsEveryLine(t *testing.T) {
	for _, n := range []int{1, 3, 10} {
		s, m := newSession(n)
		assert.Equal(t, Closed, s.State())

		s.Open()
		assert.Equal(t, Booting, s.State())
		assert.False(t, s.InputEnabled())

		for i := 0; i < n; i++ {
			assert.Equal(t, i, s.View().Revealed())
			m.Tick()
		}
		v := s.View()
		assert.Equal(t, n, v.Revealed())
		assert.Equal(t, Ready, v.State)
		assert.True(t, v.InputEnabled)

		m.Tick()
		assert.Equal(t, n, s.View().Revealed())
		assert.Equal(t, Ready, s.State())
	}
}

func TestEmptyScriptIsReadyOnOpen(t *testing.T) {
	s := New(Options{Script: boot.Script{}, Scheduler: timer.NewManual()})
	s.Open()
	assert.Equal(t, Ready, s.State())
}

func TestSubmitIgnoredUnlessReady(t *testing.T) {
	s, m := newSession(3)
	s.SubmitLine("help")
	assert.Empty(t, s.View().Transcript)

	s.Open()
	m.Tick()
	s.SubmitLine("help")
	s.NavigateHistory(Older)
	assert.Empty(t, s.View().Transcript)
	assert.Equal(t, Booting, s.State())
}

func TestSubmitBlankIsNoop(t *testing.T) {
	s, _ := ready(t, 1)
	s.UpdatePendingInput("   ")
	s.SubmitLine("   ")
	s.SubmitLine("")
	v := s.View()
	assert.Empty(t, v.Transcript)
	assert.Equal(t, "   ", v.Pending)

	s.NavigateHistory(Older)
	assert.Equal(t, "   ", s.View().Pending)
}

func TestSubmitRecognizedAndUnknown(t *testing.T) {
	s, _ := ready(t, 2)
	s.UpdatePendingInput("ping")
	s.SubmitLine("ping")
	s.SubmitLine("frobnicate")

	v := s.View()
	require.Len(t, v.Transcript, 2)
	assert.Equal(t, Entry{Input: "ping", Output: interpreter.English.Resolve("ping").Output, Success: true}, v.Transcript[0])
	assert.Equal(t, Entry{Input: "frobnicate", Output: "Command not found: frobnicate", Success: false}, v.Transcript[1])
	assert.Empty(t, v.Pending)
}

func TestClearAppendsNothing(t *testing.T) {
	s, _ := ready(t, 1)
	s.SubmitLine("help")
	s.SubmitLine("scan")
	s.SubmitLine("CLEAR")
	assert.Empty(t, s.View().Transcript)
	assert.Equal(t, Ready, s.State())

	// recall only covers what is on screen
	assert.False(t, s.NavigateHistory(Older))
	assert.Equal(t, "", s.View().Pending)

	s.SubmitLine("ping")
	assert.True(t, s.NavigateHistory(Older))
	assert.Equal(t, "ping", s.View().Pending)
	assert.False(t, s.NavigateHistory(Older))
	assert.Equal(t, "ping", s.View().Pending)
}

func TestHistoryNavigation(t *testing.T) {
	s, _ := ready(t, 1)
	for _, in := range []string{"a", "b", "c"} {
		s.SubmitLine(in)
	}

	for _, want := range []string{"c", "b", "a"} {
		assert.True(t, s.NavigateHistory(Older))
		assert.Equal(t, want, s.View().Pending)
	}
	assert.False(t, s.NavigateHistory(Older))
	assert.Equal(t, "a", s.View().Pending)
	s.NavigateHistory(Newer)
	assert.Equal(t, "b", s.View().Pending)
	s.NavigateHistory(Newer)
	s.NavigateHistory(Newer)
	assert.Equal(t, "", s.View().Pending)
}

func TestCloseMidBootCancelsTimer(t *testing.T) {
	s, m := newSession(5)
	s.Open()
	m.Tick()
	m.Tick()
	require.Equal(t, 2, s.View().Revealed())

	s.Close()
	assert.Equal(t, Closed, s.State())
	assert.Equal(t, 0, m.Pending())

	m.Advance(time.Minute)
	assert.Equal(t, 2, s.View().Revealed())
	assert.Equal(t, Closed, s.State())
}

func TestReopenResets(t *testing.T) {
	s, m := ready(t, 2)
	s.SubmitLine("help")
	firstID := s.View().ID
	s.Close()

	s.Open()
	v := s.View()
	assert.Equal(t, Booting, v.State)
	assert.Equal(t, 0, v.Revealed())
	assert.Empty(t, v.Transcript)
	assert.NotEqual(t, firstID, v.ID)

	s.NavigateHistory(Older)
	m.Tick()
	m.Tick()
	s.NavigateHistory(Older)
	assert.Equal(t, "", s.View().Pending)
}

func TestOpenTwiceKeepsState(t *testing.T) {
	s, m := newSession(3)
	s.Open()
	m.Tick()
	s.Open()
	assert.Equal(t, 1, s.View().Revealed())
	assert.Equal(t, 1, m.Pending())
}

func TestStaleTickAfterReopen(t *testing.T) {
	s, m := newSession(3)
	s.Open()
	m.Tick()
	s.Close()
	s.Open()
	m.Tick()
	assert.Equal(t, 1, s.View().Revealed())
}

func TestEndToEnd(t *testing.T) {
	s, _ := ready(t, 10)

	s.SubmitLine("status")
	v := s.View()
	require.Len(t, v.Transcript, 1)
	assert.Equal(t, "System status: ACTIVE\nAccess level: ROOT\nProtection: BREACHED", v.Transcript[0].Output)
	assert.True(t, v.Transcript[0].Success)

	s.SubmitLine("clear")
	assert.Empty(t, s.View().Transcript)

	s.SubmitLine("exit")
	v = s.View()
	require.Len(t, v.Transcript, 1)
	assert.Equal(t, "exit", v.Transcript[0].Input)
	assert.Equal(t, Closed, v.State)
	assert.False(t, v.InputEnabled)

	s.SubmitLine("help")
	assert.Len(t, s.View().Transcript, 1)
}

func TestChangesSignal(t *testing.T) {
	s, m := newSession(2)
	s.Open()
	select {
	case <-s.Changes():
	default:
		t.Fatal("expected a change after open")
	}

	m.Tick()
	m.Tick()
	select {
	case <-s.Changes():
	default:
		t.Fatal("expected a change after boot ticks")
	}
	select {
	case <-s.Changes():
		t.Fatal("changes should coalesce")
	default:
	}
}

func TestViewIsACopy(t *testing.T) {
	s, _ := ready(t, 1)
	s.SubmitLine("help")
	v := s.View()
	v.Transcript[0].Output = "changed"
	assert.NotEqual(t, "changed", s.View().Transcript[0].Output)
}

func TestRealTickerCloseMidBoot(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := New(Options{Script: script(50), TickInterval: 5 * time.Millisecond})
	s.Open()
	require.Eventually(t, func() bool { return s.View().Revealed() >= 2 }, 5*time.Second, time.Millisecond)

	s.Close()
	revealed := s.View().Revealed()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, revealed, s.View().Revealed())
	assert.Equal(t, Closed, s.State())
}

func TestRealTickerBootsToReady(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := New(Options{Script: script(3), TickInterval: time.Millisecond})
	s.Open()
	require.Eventually(t, s.InputEnabled, 5*time.Second, time.Millisecond)
	assert.Equal(t, 3, s.View().Revealed())
	s.Close()
}
