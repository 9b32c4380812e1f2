package testutil

import (
	"github.com/AntonioJCosta/ssic/internal/core/domain/command"
	"github.com/AntonioJCosta/ssic/internal/core/ports"
)

// MockProcessLauncher is a mock implementation of ports.ProcessLauncher.
// Calls records every vector passed to Launch.
type MockProcessLauncher struct {
	LaunchFunc func(argv command.ArgumentVector) command.Signal
	Calls      []command.ArgumentVector
}

// Launch records the call and delegates to LaunchFunc, defaulting to Continue.
func (m *MockProcessLauncher) Launch(argv command.ArgumentVector) command.Signal {
	m.Calls = append(m.Calls, argv)
	if m.LaunchFunc != nil {
		return m.LaunchFunc(argv)
	}
	return command.Continue
}

var _ ports.ProcessLauncher = (*MockProcessLauncher)(nil)
