package display

import (
	"fmt"
	"io"
	"strings"

	"github.td.teradata.com/sandbox/elite-console/internal/services/common"
	"github.td.teradata.com/sandbox/elite-console/internal/services/console"
	"github.td.teradata.com/sandbox/elite-console/internal/services/status"
)

const (
	successMark = common.Green + "▌" + common.Reset
	failureMark = common.Red + "▌" + common.Reset
	outputShift = "    "
)

// Chrome is the fixed decoration around the console content.
type Chrome struct {
	Title       string
	Prompt      string
	Placeholder string
	Status      []string
}

// ChromeFor returns the decoration texts for a locale.
func ChromeFor(locale string, title string, prompt string) Chrome {
	c := Chrome{
		Title:       title,
		Prompt:      prompt,
		Placeholder: "Type a command...",
		Status:      []string{"SYSTEM", "NETWORK", "SECURITY", "ACCESS: ROOT"},
	}
	if strings.HasPrefix(strings.ToLower(locale), "ru") {
		c.Placeholder = "Введите команду..."
		c.Status = []string{"СИСТЕМА", "СЕТЬ", "БЕЗОПАСНОСТЬ", "ДОСТУП: ROOT"}
	}
	return c
}

// ContentLines renders the boot lines and transcript of v, one screen row
// per element.
func ContentLines(v console.View, chrome Chrome) []string {
	var lines []string
	for _, l := range v.BootLines {
		lines = append(lines, fmt.Sprintf("%s %s%s%s", mark(l.Success), common.BrightWhite, l.Prompt, common.Reset))
		lines = append(lines, fmt.Sprintf("  %s%s%s%s", outputShift, common.BrightGreen, l.Output, common.Reset))
	}
	for _, e := range v.Transcript {
		lines = append(lines, fmt.Sprintf("%s %s%s %s%s%s", mark(e.Success), common.Green, chrome.Prompt, common.BrightWhite, e.Input, common.Reset))
		if e.Output == "" {
			continue
		}
		for _, out := range strings.Split(e.Output, "\n") {
			lines = append(lines, fmt.Sprintf("  %s%s%s%s", outputShift, common.BrightGreen, out, common.Reset))
		}
	}
	return lines
}

func mark(success bool) string {
	if success {
		return successMark
	}
	return failureMark
}

// Draw renders a full frame: header, content scrolled to its tail, input
// line, status bar and notices.
func Draw(t *Terminal, v console.View, chrome Chrome, notices []string) error {
	t.Cls()
	t.HideCursor()

	t.PrintAtf(1, 1, "%s%s[ %s ]%s", common.Bold, common.BrightGreen, chrome.Title, common.Reset)
	t.PrintAt(1, 2, common.Green+strings.Repeat("─", t.Cols())+common.Reset)

	// rows: header 2, input 1, status 1, notices
	bottom := t.Rows() - len(notices) - 2
	lines := ContentLines(v, chrome)
	space := bottom - 2
	if space < 0 {
		space = 0
	}
	if len(lines) > space {
		lines = lines[len(lines)-space:]
	}
	for i, line := range lines {
		t.PrintAt(1, 3+i, line)
	}

	t.PrintAt(1, bottom+1, InputLine(v, chrome))
	t.PrintAt(1, bottom+2, StatusBar(chrome, v.InputEnabled))
	for i, n := range notices {
		t.PrintAt(1, bottom+3+i, n)
	}

	if v.InputEnabled {
		col := Width(chrome.Prompt) + 2 + Width(v.Pending)
		if col <= t.Cols() {
			t.At(col, bottom+1)
			t.ShowCursor()
		}
	}
	return t.Flush()
}

func InputLine(v console.View, chrome Chrome) string {
	prompt := common.Green + chrome.Prompt + common.Reset + " "
	switch {
	case !v.InputEnabled:
		return prompt + common.Grey + "..." + common.Reset
	case v.Pending == "":
		return prompt + common.Grey + chrome.Placeholder + common.Reset
	default:
		return prompt + common.BrightWhite + v.Pending + common.Reset
	}
}

// StatusBar lights the system indicator once input is enabled.
func StatusBar(chrome Chrome, ready bool) string {
	b := status.NewBar(chrome.Status)
	b.SetSystem(ready)
	return b.Block()
}

// WriteTranscript prints the content of v as plain text.
func WriteTranscript(w io.Writer, v console.View, chrome Chrome) error {
	for _, line := range ContentLines(v, chrome) {
		if _, err := fmt.Fprintln(w, strings.TrimRight(StripFormatting(line), " ")); err != nil {
			return err
		}
	}
	return nil
}
