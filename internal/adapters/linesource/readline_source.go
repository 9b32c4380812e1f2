package linesource

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"github.com/AntonioJCosta/ssic/internal/core/ports"
)

// ReadlineSource reads lines from a terminal with line editing.
// History is disabled.
type ReadlineSource struct {
	rl *readline.Instance
}

// NewReadlineSource creates a line editor over the given terminal streams.
func NewReadlineSource(stdin io.ReadCloser, stdout, stderr io.Writer) (ports.LineSource, error) {
	cfg := &readline.Config{
		Stdin:                  stdin,
		Stdout:                 stdout,
		Stderr:                 stderr,
		HistoryLimit:           -1,
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
	}
	if err := cfg.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize line editor: %w", err)
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create line editor: %w", err)
	}
	return &ReadlineSource{rl: rl}, nil
}

// ReadLine implements the ports.LineSource interface.
func (s *ReadlineSource) ReadLine(prompt string) (string, error) {
	s.rl.SetPrompt(prompt)
	line, err := s.rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return "", ports.ErrInterrupted
	case err != nil:
		return "", err
	}
	return line, nil
}

// Close restores the terminal state.
func (s *ReadlineSource) Close() error {
	return s.rl.Close()
}
