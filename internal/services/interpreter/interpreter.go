package interpreter

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Signal is a control instruction carried alongside a resolved command.
type Signal int

const (
	None Signal = iota
	Clear
	Exit
)

func (s Signal) String() string {
	switch s {
	case None:
		return "NONE"
	case Clear:
		return "CLEAR"
	case Exit:
		return "EXIT"
	default:
		return fmt.Sprintf("Signal(%d)", int(s))
	}
}

// Result is the outcome of resolving one line of input.
type Result struct {
	Output     string
	Recognized bool
	Signal     Signal
}

type command struct {
	output string
	signal Signal
}

// Vocabulary is a fixed table of recognized commands. A Vocabulary is never
// mutated after construction and may be shared between sessions.
type Vocabulary struct {
	locale   string
	notFound string
	commands map[string]command
}

// Resolve maps raw input to a result. Matching is exact after trimming and
// case folding. Unknown input yields an unrecognized result echoing the
// trimmed input; Resolve never fails.
func (v *Vocabulary) Resolve(raw string) Result {
	key := Normalize(raw)
	if c, ok := v.commands[key]; ok {
		return Result{Output: c.output, Recognized: true, Signal: c.signal}
	}
	return Result{
		Output:     v.notFound + strings.TrimSpace(raw),
		Recognized: false,
		Signal:     None,
	}
}

// Names returns the recognized command names in sorted order.
func (v *Vocabulary) Names() []string {
	names := make([]string, 0, len(v.commands))
	for name := range v.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Locale returns the locale tag the vocabulary was built for.
func (v *Vocabulary) Locale() string {
	return v.locale
}

// Normalize trims surrounding whitespace and case folds the input.
func Normalize(raw string) string {
	return cases.Fold().String(strings.TrimSpace(raw))
}
