package dispatch

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/AntonioJCosta/ssic/internal/core/domain/command"
	"github.com/AntonioJCosta/ssic/internal/core/ports"
)

// ErrFatal wraps failures that end the shell with a non-zero status.
var ErrFatal = errors.New("fatal shell error")

type state int

const (
	stateReading state = iota
	stateDispatching
	stateStopped
)

// Deps groups the collaborators of the dispatch loop.
type Deps struct {
	Lines     ports.LineSource
	Prompt    ports.PromptRenderer
	Tokenizer ports.Tokenizer
	Builtins  ports.BuiltinRegistry
	Launcher  ports.ProcessLauncher
	ErrOut    io.Writer
	Logger    *zap.Logger
}

type service struct {
	Deps
}

// NewService creates the dispatch loop.
// It panics if any collaborator other than Logger is nil.
func NewService(deps Deps) ports.Dispatcher {
	switch {
	case deps.Lines == nil:
		panic("lineSource cannot be nil")
	case deps.Prompt == nil:
		panic("promptRenderer cannot be nil")
	case deps.Tokenizer == nil:
		panic("tokenizer cannot be nil")
	case deps.Builtins == nil:
		panic("builtinRegistry cannot be nil")
	case deps.Launcher == nil:
		panic("processLauncher cannot be nil")
	case deps.ErrOut == nil:
		panic("error output cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &service{Deps: deps}
}

/*
Run reads and dispatches lines until exit or end of input, in which case it
returns nil. A line source failure other than end of input or an interrupt
is reported and returned wrapped in ErrFatal.
*/
func (s *service) Run() error {
	st := stateReading
	var line string

	for st != stateStopped {
		switch st {
		case stateReading:
			var err error
			line, err = s.Lines.ReadLine(s.Prompt.Prompt())
			switch {
			case errors.Is(err, io.EOF):
				s.Logger.Debug("end of input")
				st = stateStopped
			case errors.Is(err, ports.ErrInterrupted):
				// Partial line discarded; prompt again.
			case err != nil:
				fmt.Fprintf(s.ErrOut, "ssic: %v\n", err)
				return fmt.Errorf("%w: reading input: %w", ErrFatal, err)
			default:
				st = stateDispatching
			}

		case stateDispatching:
			if s.dispatch(s.Tokenizer.Tokenize(line)) == command.Stop {
				st = stateStopped
			} else {
				st = stateReading
			}
		}
	}
	return nil
}

// dispatch returns exactly one signal for every vector, including empty ones.
func (s *service) dispatch(argv command.ArgumentVector) command.Signal {
	if argv.IsEmpty() {
		return command.Continue
	}
	if b, ok := s.Builtins.Lookup(argv.Name()); ok {
		s.Logger.Debug("dispatch builtin", zap.String("command", argv.Name()), zap.Int("args", len(argv.Args())))
		return b.Run(argv)
	}
	s.Logger.Debug("dispatch external", zap.String("command", argv.Name()), zap.Int("args", len(argv.Args())))
	return s.Launcher.Launch(argv)
}
