// internal/tui/line_input.go
//
// A one-line editor built on bubbletea. It replaces the plain buffered line
// reader when the user is on a real terminal, giving cursor movement and
// editing keys while keeping the prompt loop unchanged:
//
// Key press -> Update -> textinput model -> View -> Enter quits the program

package tui

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user leaves the editor with Ctrl+C or Esc.
var ErrCancelled = errors.New("tui: input cancelled")

var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF"))

// LineInput is the bubbletea model for a single line of input.
type LineInput struct {
	input     textinput.Model
	submitted bool
	cancelled bool
}

// NewLineInput creates a focused editor showing prompt before the cursor.
func NewLineInput(prompt string) LineInput {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.PromptStyle = promptStyle
	ti.Focus()
	return LineInput{input: ti}
}

// Init starts the cursor blinking.
func (m LineInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles submit/cancel keys and forwards everything else to the
// text input.
func (m LineInput) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the editor. Once finished it leaves the typed line behind so
// the terminal scrollback matches what was submitted.
func (m LineInput) View() string {
	if m.submitted || m.cancelled {
		return m.input.Value() + "\n"
	}
	return m.input.View()
}

// Value returns the current text.
func (m LineInput) Value() string {
	return m.input.Value()
}

// Submitted reports whether Enter was pressed.
func (m LineInput) Submitted() bool {
	return m.submitted
}

// Cancelled reports whether the user aborted.
func (m LineInput) Cancelled() bool {
	return m.cancelled
}

// ReadLine runs one editor program on in/out and returns the submitted line.
func ReadLine(in io.Reader, out io.Writer, prompt string) (string, error) {
	p := tea.NewProgram(NewLineInput(prompt), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("tui: run line input: %w", err)
	}
	return result(final)
}

// Reader adapts ReadLine for prompt.WithLineReader. The session prints its
// own prompt, so the editor shows none.
func Reader(in io.Reader, out io.Writer) func() (string, error) {
	return func() (string, error) {
		return ReadLine(in, out, "")
	}
}

func result(final tea.Model) (string, error) {
	m, ok := final.(LineInput)
	if !ok {
		return "", fmt.Errorf("tui: unexpected model %T", final)
	}
	if m.cancelled || !m.submitted {
		return "", ErrCancelled
	}
	return m.Value(), nil
}
