package console

import "github.td.teradata.com/sandbox/elite-console/internal/services/boot"

// View is a point-in-time copy of everything a host needs to draw.
type View struct {
	ID           string
	State        State
	BootLines    []boot.Line
	TotalBoot    int
	Transcript   []Entry
	Pending      string
	InputEnabled bool
}

// Revealed returns the number of boot lines currently visible.
func (v View) Revealed() int {
	return len(v.BootLines)
}

func (s *Session) View() View {
	s.sync.Lock()
	defer s.sync.Unlock()
	return View{
		ID:           s.id,
		State:        s.state,
		BootLines:    s.script[:s.revealed:s.revealed],
		TotalBoot:    len(s.script),
		Transcript:   append([]Entry(nil), s.transcript...),
		Pending:      s.pending,
		InputEnabled: s.state == Ready,
	}
}
