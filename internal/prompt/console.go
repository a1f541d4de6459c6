package prompt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/kingrea/termprompt/internal/logging"
)

// DefaultPauseMessage is shown by Pause unless overridden.
const DefaultPauseMessage = "Press [Enter] to continue..."

// Reporter receives stream faults. *logging.Logger satisfies it.
type Reporter interface {
	Printf(format string, args ...any)
}

// Styles decorates console output. Output that is not a terminal is written
// unstyled.
type Styles struct {
	Message lipgloss.Style
	Prompt  lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles returns the standard palette bound to r.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Message: r.NewStyle().Bold(true).TabWidth(lipgloss.NoTabConversion),
		Prompt:  r.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).TabWidth(lipgloss.NoTabConversion),
		Error:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).TabWidth(lipgloss.NoTabConversion),
	}
}

// Console owns the shared input stream and the output every session on it
// writes to.
type Console struct {
	in           *Stream
	out          io.Writer
	log          Reporter
	styles       Styles
	plain        bool
	pauseMessage string
	readLine     func() (string, error)
}

// Option customizes Console construction.
type Option func(*Console)

// WithLogger sets where stream faults are reported. Defaults to stderr.
func WithLogger(r Reporter) Option {
	return func(c *Console) {
		if r != nil {
			c.log = r
		}
	}
}

// WithStyles replaces the output styles.
func WithStyles(s Styles) Option {
	return func(c *Console) {
		c.styles = s
	}
}

// WithPauseMessage overrides the text Pause displays.
func WithPauseMessage(msg string) Option {
	return func(c *Console) {
		if msg != "" {
			c.pauseMessage = msg
		}
	}
}

// WithLineReader replaces the raw line reader used by ForLine, for example
// with a terminal line editor. Token reads and Pause still use the stream.
func WithLineReader(read func() (string, error)) Option {
	return func(c *Console) {
		if read != nil {
			c.readLine = read
		}
	}
}

// NewConsole builds a Console reading from in and writing to out.
func NewConsole(in io.Reader, out io.Writer, opts ...Option) *Console {
	r := lipgloss.NewRenderer(out)
	c := &Console{
		in:           NewStream(in),
		out:          out,
		log:          logging.NewWriter(os.Stderr),
		styles:       DefaultStyles(r),
		plain:        r.ColorProfile() == termenv.Ascii,
		pauseMessage: DefaultPauseMessage,
	}
	c.readLine = c.in.ReadLine
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Stream exposes the shared input stream.
func (c *Console) Stream() *Stream {
	return c.in
}

// Pause waits for a single key press. Stream faults are reported and never
// stop the caller.
func (c *Console) Pause() {
	c.flush()
	c.showMessage(c.pauseMessage)
	if _, err := c.in.ReadRune(); err != nil {
		c.report(&StreamFault{Op: "pause", Err: err})
	}
}

func (c *Console) flush() {
	if err := c.in.Flush(); err != nil {
		c.report(&StreamFault{Op: "flush", Err: err})
	}
}

func (c *Console) report(fault *StreamFault) {
	if c.log == nil {
		return
	}
	c.log.Printf("%v", fault)
}

func (c *Console) showMessage(msg string) {
	fmt.Fprintln(c.out, c.render(c.styles.Message, msg))
}

func (c *Console) showPrompt(p string) {
	fmt.Fprint(c.out, c.render(c.styles.Prompt, p))
}

func (c *Console) showError(msg string) {
	fmt.Fprintln(c.out, c.render(c.styles.Error, msg))
}

// render styles text one line at a time so lipgloss never pads lines to a
// common width.
func (c *Console) render(style lipgloss.Style, text string) string {
	if c.plain {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
