package linesource

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/ssic/internal/core/ports"
)

// StreamSource reads newline-terminated lines from a non-terminal input such
// as a pipe or a file. Lines have no length limit.
type StreamSource struct {
	reader *bufio.Reader
	prompt io.Writer
	eof    bool
}

// NewStreamSource creates a StreamSource over r. If promptOut is non-nil the
// prompt is written to it before each read.
func NewStreamSource(r io.Reader, promptOut io.Writer) ports.LineSource {
	return &StreamSource{
		reader: bufio.NewReader(r),
		prompt: promptOut,
	}
}

// ReadLine implements the ports.LineSource interface.
// A last line without a trailing newline is returned first; io.EOF follows
// on the next call.
func (s *StreamSource) ReadLine(prompt string) (string, error) {
	if s.eof {
		return "", io.EOF
	}
	if s.prompt != nil && prompt != "" {
		fmt.Fprint(s.prompt, prompt)
	}

	line, err := s.reader.ReadString('\n')
	if err == io.EOF {
		s.eof = true
		if line == "" {
			return "", io.EOF
		}
		return strings.TrimSuffix(line, "\r"), nil
	}
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Close implements the ports.LineSource interface. The underlying reader is
// owned by the caller.
func (s *StreamSource) Close() error {
	return nil
}
