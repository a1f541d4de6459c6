package prompt

import (
	"errors"
	"fmt"
)

// ErrInvalidInput matches every ValidationError via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError reports raw input that failed a domain check. Fetch recovers
// from it by asking again; it never reaches the caller of Fetch.
type ValidationError struct {
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid input %q", e.Input)
	}
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Invalid builds a ValidationError for input.
func Invalid(input any, format string, args ...any) *ValidationError {
	return &ValidationError{Input: fmt.Sprint(input), Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err takes the retry path.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// StreamFault is a best-effort I/O failure during a flush or a pause. It is
// reported through the console's logger and never returned.
type StreamFault struct {
	Op  string
	Err error
}

func (e *StreamFault) Error() string {
	return fmt.Sprintf("stream fault: %s: %v", e.Op, e.Err)
}

func (e *StreamFault) Unwrap() error {
	return e.Err
}
