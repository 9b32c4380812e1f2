package testutil

import (
	"errors"

	"github.com/AntonioJCosta/ssic/internal/core/ports"
)

// MockFileSystem is a mock implementation of ports.FileSystem.
type MockFileSystem struct {
	ChangeDirFunc         func(path string) error
	ResolveExecutableFunc func(name string) (string, error)
	WorkingDirFunc        func() (string, error)
}

// ChangeDir calls the mock ChangeDirFunc.
func (m *MockFileSystem) ChangeDir(path string) error {
	if m.ChangeDirFunc != nil {
		return m.ChangeDirFunc(path)
	}
	return errors.New("MockFileSystem.ChangeDirFunc not implemented")
}

// ResolveExecutable calls the mock ResolveExecutableFunc.
func (m *MockFileSystem) ResolveExecutable(name string) (string, error) {
	if m.ResolveExecutableFunc != nil {
		return m.ResolveExecutableFunc(name)
	}
	return "", errors.New("MockFileSystem.ResolveExecutableFunc not implemented")
}

// WorkingDir calls the mock WorkingDirFunc.
func (m *MockFileSystem) WorkingDir() (string, error) {
	if m.WorkingDirFunc != nil {
		return m.WorkingDirFunc()
	}
	return "", errors.New("MockFileSystem.WorkingDirFunc not implemented")
}

var _ ports.FileSystem = (*MockFileSystem)(nil)
