package launcher

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/AntonioJCosta/ssic/internal/core/domain/command"
	"github.com/AntonioJCosta/ssic/internal/core/ports"
)

const shellName = "ssic"

type service struct {
	fs     ports.FileSystem
	procs  ports.ProcessController
	errOut io.Writer
	logger *zap.Logger
}

// NewService creates a new process launcher.
// It panics if fs or procs is nil. A nil logger disables diagnostics.
func NewService(fs ports.FileSystem, procs ports.ProcessController, errOut io.Writer, logger *zap.Logger) ports.ProcessLauncher {
	if fs == nil {
		panic("fileSystem cannot be nil")
	}
	if procs == nil {
		panic("processController cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{fs: fs, procs: procs, errOut: errOut, logger: logger}
}

/*
Launch runs argv as an external program and blocks until it terminates.

Resolution, spawn and wait failures are reported once to the error channel.
The result is always command.Continue; the child's exit status is only
logged.
*/
func (s *service) Launch(argv command.ArgumentVector) command.Signal {
	if argv.IsEmpty() {
		return command.Continue
	}
	name := argv.Name()

	path, err := s.fs.ResolveExecutable(name)
	if err != nil {
		s.report(name, "resolve", err)
		return command.Continue
	}

	child, err := s.procs.Spawn(path, argv)
	if err != nil {
		s.report(name, "spawn", err)
		return command.Continue
	}

	status, err := s.procs.Wait(child)
	if err != nil {
		s.report(name, "wait", err)
		return command.Continue
	}

	s.logger.Debug("child terminated",
		zap.String("command", name),
		zap.String("path", path),
		zap.Int("pid", child.Pid()),
		zap.Stringer("status", status))
	return command.Continue
}

func (s *service) report(name, stage string, err error) {
	fmt.Fprintf(s.errOut, "%s: %s: %v\n", shellName, name, err)
	s.logger.Debug("launch failed",
		zap.String("command", name),
		zap.String("stage", stage),
		zap.Error(err))
}
