package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.td.teradata.com/sandbox/elite-console/internal/services/boot"
	"github.td.teradata.com/sandbox/elite-console/internal/services/common"
	"github.td.teradata.com/sandbox/elite-console/internal/services/console"
)

var chrome = ChromeFor("en", "ELITE CONSOLE v1.0", ">")

func plain(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = StripFormatting(l)
	}
	return out
}

func TestContentLines(t *testing.T) {
	v := console.View{
		BootLines: boot.English[:1],
		Transcript: []console.Entry{
			{Input: "ping", Output: "PING localhost\nok", Success: true},
			{Input: "nope", Output: "Command not found: nope", Success: false},
		},
	}
	assert.Equal(t, []string{
		"▌ > Initializing system...",
		"      System initialized successfully",
		"▌ > ping",
		"      PING localhost",
		"      ok",
		"▌ > nope",
		"      Command not found: nope",
	}, plain(ContentLines(v, chrome)))

	lines := ContentLines(v, chrome)
	assert.True(t, strings.HasPrefix(lines[2], successMark))
	assert.True(t, strings.HasPrefix(lines[5], failureMark))
}

func TestStripFormatting(t *testing.T) {
	assert.Equal(t, "abc", StripFormatting(common.Red+"a"+common.Reset+"\u001b[?25lb\u001b[3;4Hc"))
}

func TestFit(t *testing.T) {
	assert.Equal(t, "hello", Fit("hello", 10))
	assert.Equal(t, "hel"+common.Reset, Fit("hello", 3))
	assert.Equal(t, "", Fit("hello", 0))

	colored := common.Green + "██████" + common.Reset
	got := Fit(colored, 4)
	assert.Equal(t, 4, Width(got))
	assert.True(t, strings.HasPrefix(got, common.Green))

	assert.Equal(t, 4, Width(Fit("Статус системы", 4)))
}

func TestInputLine(t *testing.T) {
	assert.Equal(t, "> ...", StripFormatting(InputLine(console.View{}, chrome)))
	assert.Equal(t, "> Type a command...", StripFormatting(InputLine(console.View{InputEnabled: true}, chrome)))
	assert.Equal(t, "> sca", StripFormatting(InputLine(console.View{InputEnabled: true, Pending: "sca"}, chrome)))
}

func TestChromeForRussian(t *testing.T) {
	c := ChromeFor("ru", "T", ">")
	assert.Equal(t, "Введите команду...", c.Placeholder)
	assert.Contains(t, StripFormatting(StatusBar(c, true)), "● СИСТЕМА")
	assert.True(t, strings.HasPrefix(StatusBar(c, false), common.BrightRed))
	assert.True(t, strings.HasPrefix(StatusBar(c, true), common.BrightGreen))
}

func TestDrawKeepsTail(t *testing.T) {
	var buf bytes.Buffer
	term := New(&buf, -1, 40, 8)
	require.False(t, term.IsTTY())

	v := console.View{BootLines: boot.English, InputEnabled: true, Pending: "help"}
	require.NoError(t, Draw(term, v, chrome, []string{"note"}))

	out := buf.String()
	assert.Contains(t, out, "ELITE CONSOLE v1.0")
	assert.Contains(t, out, "Profiles loaded: 1337")
	assert.NotContains(t, out, "Initializing system")
	assert.Contains(t, out, "note")
	assert.Contains(t, out, Show)

	buf.Reset()
	require.NoError(t, Draw(term, console.View{}, chrome, nil))
	assert.NotContains(t, buf.String(), Show)
}

func TestWriteTranscript(t *testing.T) {
	var buf bytes.Buffer
	v := console.View{Transcript: []console.Entry{{Input: "exit", Output: "Connection closed", Success: true}}}
	require.NoError(t, WriteTranscript(&buf, v, chrome))
	assert.Equal(t, "▌ > exit\n      Connection closed\n", buf.String())
}
