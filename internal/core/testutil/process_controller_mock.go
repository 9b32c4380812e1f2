package testutil

import (
	"errors"

	"github.com/AntonioJCosta/ssic/internal/core/domain/command"
	"github.com/AntonioJCosta/ssic/internal/core/ports"
)

// MockChildProcess is a ports.ChildProcess with a fixed pid.
type MockChildProcess struct {
	PID int
}

// Pid returns the fixed pid.
func (c *MockChildProcess) Pid() int {
	return c.PID
}

// MockProcessController is a mock implementation of ports.ProcessController.
type MockProcessController struct {
	SpawnFunc func(path string, argv []string) (ports.ChildProcess, error)
	WaitFunc  func(child ports.ChildProcess) (command.ExitStatus, error)
}

// Spawn calls the mock SpawnFunc.
func (m *MockProcessController) Spawn(path string, argv []string) (ports.ChildProcess, error) {
	if m.SpawnFunc != nil {
		return m.SpawnFunc(path, argv)
	}
	return nil, errors.New("MockProcessController.SpawnFunc not implemented")
}

// Wait calls the mock WaitFunc.
func (m *MockProcessController) Wait(child ports.ChildProcess) (command.ExitStatus, error) {
	if m.WaitFunc != nil {
		return m.WaitFunc(child)
	}
	return command.ExitStatus{}, errors.New("MockProcessController.WaitFunc not implemented")
}

var _ ports.ProcessController = (*MockProcessController)(nil)
var _ ports.ChildProcess = (*MockChildProcess)(nil)
