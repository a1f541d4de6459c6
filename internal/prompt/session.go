package prompt

import "fmt"

const (
	// DefaultPrompt is printed before every read unless SetPrompt overrides it.
	DefaultPrompt = "> "
	// DefaultErrorMessage follows each rejected answer.
	DefaultErrorMessage = "Invalid input, please try again!"
)

// State is a step of the fetch loop.
type State int

const (
	StatePrompting State = iota
	StateReading
	StateValidating
	StateDone
)

func (s State) String() string {
	switch s {
	case StatePrompting:
		return "prompting"
	case StateReading:
		return "reading"
	case StateValidating:
		return "validating"
	case StateDone:
		return "done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Observer is notified on every state transition of Fetch.
type Observer func(State)

// Source obtains one raw value from the input.
type Source[T any] func() (T, error)

// Session holds the settings for one question. Configure it with the setters
// before calling Fetch.
type Session[T any] struct {
	console      *Console
	source       Source[T]
	message      string
	hasMessage   bool
	prompt       string
	errorMessage string
	observer     Observer
}

// New creates a session that reads raw values from source and writes to c.
func New[T any](c *Console, source Source[T]) *Session[T] {
	return &Session[T]{
		console:      c,
		source:       source,
		prompt:       DefaultPrompt,
		errorMessage: DefaultErrorMessage,
	}
}

// SetMessage sets the line shown before every prompt.
func (s *Session[T]) SetMessage(message string) *Session[T] {
	s.message = message
	s.hasMessage = true
	return s
}

// SetPrompt sets the text shown right before reading.
func (s *Session[T]) SetPrompt(prompt string) *Session[T] {
	s.prompt = prompt
	return s
}

// SetErrorMessage sets the line shown after a rejected answer.
func (s *Session[T]) SetErrorMessage(message string) *Session[T] {
	s.errorMessage = message
	return s
}

// Observe registers fn for state transitions.
func (s *Session[T]) Observe(fn Observer) *Session[T] {
	s.observer = fn
	return s
}

// Message returns the configured message and whether one is set.
func (s *Session[T]) Message() (string, bool) {
	return s.message, s.hasMessage
}

// Prompt returns the configured prompt.
func (s *Session[T]) Prompt() string {
	return s.prompt
}

// ErrorMessage returns the configured error message.
func (s *Session[T]) ErrorMessage() string {
	return s.errorMessage
}

// Fetch returns the first raw value the source yields without a validation
// failure.
func (s *Session[T]) Fetch() (T, error) {
	return Fetch(s, Identity[T]())
}

// Fetch asks until transform accepts a raw value and returns the result.
// Validation failures never escape; read errors and non-validation transform
// errors end the loop.
func Fetch[T, R any](s *Session[T], transform Transform[T, R]) (R, error) {
	var zero R
	c := s.console
	for {
		s.enter(StatePrompting)
		if s.hasMessage {
			c.showMessage(s.message)
		}
		c.showPrompt(s.prompt)

		s.enter(StateReading)
		raw, err := s.source()
		if err != nil && !IsValidation(err) {
			return zero, fmt.Errorf("prompt: read input: %w", err)
		}
		s.enter(StateValidating)
		if err == nil {
			var value R
			value, err = transform(raw)
			if err == nil {
				s.enter(StateDone)
				return value, nil
			}
			if !IsValidation(err) {
				return zero, fmt.Errorf("prompt: transform input: %w", err)
			}
		}

		c.flush()
		c.showError(s.errorMessage)
	}
}

func (s *Session[T]) enter(state State) {
	if s.observer != nil {
		s.observer(state)
	}
}
