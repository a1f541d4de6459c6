package prompt

import (
	"strconv"
	"strings"
)

const (
	// IntegerPrompt is the prompt of ForInteger sessions.
	IntegerPrompt = "(Enter an integer): "
	// ChoicePrompt is the prompt of BinaryChoice.
	ChoicePrompt = "( [y]es / [n]o ): "
	// ChoiceErrorMessage follows an answer that is neither yes nor no.
	ChoiceErrorMessage = "Please enter 'y' for yes or 'n' for no!"
)

// ForInteger reads one whitespace-delimited integer token per attempt.
func ForInteger(c *Console) *Session[int] {
	return New[int](c, func() (int, error) {
		token, err := c.in.ReadToken()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(token)
		if err != nil {
			return 0, Invalid(token, "not an integer")
		}
		return n, nil
	}).SetPrompt(IntegerPrompt)
}

// ForLine reads one non-blank line per attempt.
func ForLine(c *Console) *Session[string] {
	return New(c, NonBlank(c.readLine))
}

// NonBlank wraps read so that empty and all-whitespace lines are skipped
// silently. Skipped lines never count as failed attempts.
func NonBlank(read func() (string, error)) Source[string] {
	return func() (string, error) {
		for {
			line, err := read()
			if err != nil {
				return "", err
			}
			if strings.TrimSpace(line) != "" {
				return line, nil
			}
		}
	}
}

// BinaryChoice asks a yes/no question. An empty message shows only the prompt.
func BinaryChoice(c *Console, message string) (bool, error) {
	s := ForLine(c).
		SetPrompt(ChoicePrompt).
		SetErrorMessage(ChoiceErrorMessage)
	if message != "" {
		s.SetMessage(message)
	}
	return Fetch[string, bool](s, YesNo)
}
