package prompt

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"unicode"
)

// Stream is the buffered input shared by every session on a Console. It is
// not safe for concurrent use.
type Stream struct {
	r *bufio.Reader
	// midLine is set when a token or rune read left the rest of a line unread.
	midLine bool
}

// NewStream wraps r in a buffered reader.
func NewStream(r io.Reader) *Stream {
	return &Stream{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its "\n". A final line without a
// terminator is returned as is; io.EOF is returned only when nothing was read.
func (s *Stream) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	s.midLine = false
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}

// ReadToken skips whitespace, newlines included, and returns the following
// run of non-space characters. The delimiter after the token stays unread.
func (s *Stream) ReadToken() (string, error) {
	for {
		r, _, err := s.r.ReadRune()
		if err != nil {
			return "", err
		}
		if !unicode.IsSpace(r) {
			_ = s.r.UnreadRune()
			break
		}
	}
	var b strings.Builder
	for {
		r, _, err := s.r.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", err
		}
		if unicode.IsSpace(r) {
			_ = s.r.UnreadRune()
			break
		}
		b.WriteRune(r)
	}
	s.midLine = true
	return b.String(), nil
}

// ReadRune reads a single rune.
func (s *Stream) ReadRune() (rune, error) {
	r, _, err := s.r.ReadRune()
	if err != nil {
		return 0, err
	}
	s.midLine = r != '\n'
	return r, nil
}

// Flush discards buffered input up to and including the next line boundary
// when a previous read stopped in the middle of a line. It never blocks: if
// the buffer holds no newline, everything buffered is dropped.
func (s *Stream) Flush() error {
	if !s.midLine {
		return nil
	}
	s.midLine = false
	n := s.r.Buffered()
	if n == 0 {
		return nil
	}
	buf, err := s.r.Peek(n)
	if err != nil {
		return err
	}
	if i := bytes.IndexByte(buf, '\n'); i >= 0 {
		n = i + 1
	}
	_, err = s.r.Discard(n)
	return err
}
