package testutil

import (
	"io"

	"github.com/AntonioJCosta/ssic/internal/core/ports"
)

// LineResult is one scripted answer of a MockLineSource.
type LineResult struct {
	Line string
	Err  error
}

/*
MockLineSource replays Results in order and then reports io.EOF.
Prompts records the prompt passed to every ReadLine call.
*/
type MockLineSource struct {
	Results []LineResult
	Prompts []string
	Closed  bool
}

// Lines builds a MockLineSource that returns each line successfully.
func Lines(lines ...string) *MockLineSource {
	m := &MockLineSource{}
	for _, l := range lines {
		m.Results = append(m.Results, LineResult{Line: l})
	}
	return m
}

// ReadLine returns the next scripted result.
func (m *MockLineSource) ReadLine(prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if len(m.Results) == 0 {
		return "", io.EOF
	}
	next := m.Results[0]
	m.Results = m.Results[1:]
	return next.Line, next.Err
}

// Close marks the source closed.
func (m *MockLineSource) Close() error {
	m.Closed = true
	return nil
}

var _ ports.LineSource = (*MockLineSource)(nil)
