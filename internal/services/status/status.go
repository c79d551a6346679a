package status

import (
	"fmt"
	"strings"

	"github.td.teradata.com/sandbox/elite-console/internal/services/common"
)

const (
	on      = common.BrightGreen
	off     = common.BrightRed
	label   = common.Green
	spacing = "   "
)

// Indicator is one lamp in the status bar.
type Indicator struct {
	label  string
	active bool
}

func NewIndicator(label string, active bool) *Indicator {
	return &Indicator{label: label, active: active}
}

func (i *Indicator) Set(active bool) {
	i.active = active
}

func (i *Indicator) Active() bool {
	return i.active
}

func (i *Indicator) Block() string {
	colour := off
	if i.active {
		colour = on
	}
	return fmt.Sprintf("%s● %s%s%s", colour, label, i.label, common.Reset)
}

// Bar renders indicators left to right.
type Bar struct {
	indicators []*Indicator
}

// NewBar builds a bar whose first indicator tracks system readiness and
// whose others are always lit.
func NewBar(labels []string) *Bar {
	b := &Bar{}
	for n, l := range labels {
		b.indicators = append(b.indicators, NewIndicator(l, n != 0))
	}
	return b
}

// SetSystem updates the readiness indicator.
func (b *Bar) SetSystem(ready bool) {
	if len(b.indicators) > 0 {
		b.indicators[0].Set(ready)
	}
}

func (b *Bar) Indicators() []*Indicator {
	return b.indicators
}

func (b *Bar) Block() string {
	blocks := make([]string, 0, len(b.indicators))
	for _, i := range b.indicators {
		blocks = append(blocks, i.Block())
	}
	return strings.Join(blocks, spacing)
}
