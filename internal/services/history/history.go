package history

// Navigator recalls previously submitted input lines, most recent first.
// Cursor -1 means no recall is in progress.
type Navigator struct {
	entries []string
	cursor  int
}

func New() *Navigator {
	return &Navigator{cursor: -1}
}

// Append records a submitted line and ends any recall in progress.
func (n *Navigator) Append(text string) {
	n.entries = append(n.entries, text)
	n.cursor = -1
}

// RecallOlder steps one entry back in time. It reports false, leaving the
// cursor where it is, when already at the oldest entry.
func (n *Navigator) RecallOlder() (string, bool) {
	if n.cursor >= len(n.entries)-1 {
		return "", false
	}
	n.cursor++
	return n.at(n.cursor), true
}

// RecallNewer steps one entry forward in time. Stepping past the newest
// entry ends the recall and yields the empty string.
func (n *Navigator) RecallNewer() (string, bool) {
	if n.cursor > 0 {
		n.cursor--
		return n.at(n.cursor), true
	}
	n.cursor = -1
	return "", true
}

func (n *Navigator) Cursor() int {
	return n.cursor
}

func (n *Navigator) Len() int {
	return len(n.entries)
}

// Reset drops all entries.
func (n *Navigator) Reset() {
	n.entries = nil
	n.cursor = -1
}

func (n *Navigator) at(cursor int) string {
	return n.entries[len(n.entries)-1-cursor]
}
