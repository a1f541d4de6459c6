package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestPauseWaitsForOneKey(t *testing.T) {
	c := newTestConsole(t, "\nafter\n")
	c.Pause()
	if !strings.Contains(c.out.String(), DefaultPauseMessage) {
		t.Fatalf("pause message missing: %q", c.out.String())
	}
	line, err := c.Stream().ReadLine()
	if err != nil || line != "after" {
		t.Fatalf("pause consumed too much, next line = %q, %v", line, err)
	}
	if c.logs.Len() != 0 {
		t.Fatalf("unexpected fault report: %q", c.logs.String())
	}
}

func TestPauseDiscardsLeftoverTokenLine(t *testing.T) {
	c := newTestConsole(t, "5 extra\n\nnext\n")
	if _, err := ForInteger(c.Console).Fetch(); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	c.Pause()
	line, err := c.Stream().ReadLine()
	if err != nil || line != "next" {
		t.Fatalf("next line = %q, %v; want next", line, err)
	}
}

func TestPauseReportsFaultOnClosedInput(t *testing.T) {
	c := newTestConsole(t, "", WithPauseMessage("Hit enter"))
	c.Pause()
	if !strings.Contains(c.out.String(), "Hit enter") {
		t.Fatalf("custom pause message missing: %q", c.out.String())
	}
	if !strings.Contains(c.logs.String(), "stream fault: pause: EOF") {
		t.Fatalf("expected pause fault in log, got %q", c.logs.String())
	}
}

func TestStreamFaultUnwraps(t *testing.T) {
	cause := errors.New("closed")
	err := error(&StreamFault{Op: "flush", Err: cause})
	if !errors.Is(err, cause) {
		t.Fatalf("expected fault to unwrap to cause")
	}
	if err.Error() != "stream fault: flush: closed" {
		t.Fatalf("fault text = %q", err.Error())
	}
}

func TestMessageAndPromptAreWrittenVerbatim(t *testing.T) {
	c := newTestConsole(t, "ok\n")
	s := New[string](c.Console, c.Stream().ReadLine).
		SetMessage("Pick:\n\t1) short\nlonger option text").
		SetPrompt("\t?> ")
	if _, err := s.Fetch(); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	want := "Pick:\n\t1) short\nlonger option text\n\t?> "
	if got := c.out.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestStyledOutputKeepsLayout(t *testing.T) {
	out := &bytes.Buffer{}
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(termenv.ANSI256)
	c := NewConsole(strings.NewReader(""), out, WithStyles(DefaultStyles(r)))
	c.plain = false
	c.showMessage("Pick:\n\t1) short\n\nlonger option text")
	got := out.String()
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected styled output, got %q", got)
	}
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4: %q", len(lines), got)
	}
	if !strings.Contains(lines[1], "\t1) short") {
		t.Fatalf("tab not kept: %q", lines[1])
	}
	if lines[2] != "" {
		t.Fatalf("blank line styled: %q", lines[2])
	}
	for _, line := range lines {
		if strings.Contains(line, " \x1b[0m") || strings.HasSuffix(line, " ") {
			t.Fatalf("line padded: %q", line)
		}
	}
}
