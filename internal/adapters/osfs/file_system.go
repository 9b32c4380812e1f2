package osfs

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/AntonioJCosta/ssic/internal/core/ports"
)

// OSFileSystem implements the FileSystem port over the process's own working
// directory and the PATH environment variable.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OSFileSystem.
func NewOSFileSystem() ports.FileSystem {
	return &OSFileSystem{}
}

// ChangeDir implements the ports.FileSystem interface.
func (f *OSFileSystem) ChangeDir(path string) error {
	// os.Chdir already reports the path in its *PathError.
	return os.Chdir(path)
}

// ResolveExecutable implements the ports.FileSystem interface.
// Relative names are resolved against the current working directory, so a
// preceding cd affects the result. A bare name found through a relative PATH
// entry such as "." or an empty element is accepted, like execvp does.
func (f *OSFileSystem) ResolveExecutable(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty program name")
	}
	path, err := exec.LookPath(name)
	if errors.Is(err, exec.ErrDot) {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return path, nil
}

// WorkingDir implements the ports.FileSystem interface.
func (f *OSFileSystem) WorkingDir() (string, error) {
	return os.Getwd()
}
