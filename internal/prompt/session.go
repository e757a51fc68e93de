// Package prompt is the line-oriented question/answer channel between the
// program and the person entering data.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrClosed is returned by Ask once the session has been closed.
var ErrClosed = errors.New("prompt session closed")

// Session asks one question at a time on out and reads the answer from in.
type Session struct {
	in     *bufio.Reader
	out    io.Writer
	closer io.Closer
	closed bool
}

// NewSession wraps in and out. If in is an io.Closer it is closed by Close.
func NewSession(in io.Reader, out io.Writer) *Session {
	s := &Session{
		in:  bufio.NewReader(in),
		out: out,
	}
	if c, ok := in.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// Ask writes question and blocks until a full line is read. The line is
// returned without its line ending. At end of input a final unterminated
// line is still returned; after that Ask returns io.EOF.
func (s *Session) Ask(question string) (string, error) {
	if s.closed {
		return "", ErrClosed
	}
	if _, err := io.WriteString(s.out, question); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Say writes one line of output.
func (s *Session) Say(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

// Close releases the input. Calling it more than once is harmless.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
