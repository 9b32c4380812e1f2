//go:build unix

package oscommand

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/AntonioJCosta/ssic/internal/core/domain/command"
	"github.com/AntonioJCosta/ssic/internal/core/ports"
)

// ErrForeignHandle is returned by Wait for handles not created by this controller.
var ErrForeignHandle = errors.New("child process handle was not created by this controller")

// childProcess wraps the os.Process started for one launch.
type childProcess struct {
	proc *os.Process
}

func (c *childProcess) Pid() int {
	return c.proc.Pid
}

// waitFunc is the wait4 primitive; replaced in tests.
type waitFunc func(pid int, status *unix.WaitStatus, options int, rusage *unix.Rusage) (int, error)

// OSProcessController implements the ProcessController port with
// os.StartProcess and wait4(2).
type OSProcessController struct {
	stdin  *os.File
	stdout *os.File
	stderr *os.File
	wait4  waitFunc
}

// NewOSProcessController creates a controller whose children inherit the
// given standard streams.
func NewOSProcessController(stdin, stdout, stderr *os.File) ports.ProcessController {
	return &OSProcessController{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		wait4:  unix.Wait4,
	}
}

// Spawn implements the ports.ProcessController interface.
// The child runs path with argv as its full argument list and inherits the
// shell's working directory and environment. If the program image cannot be
// loaded the error is returned here; no child is left running.
func (c *OSProcessController) Spawn(path string, argv []string) (ports.ChildProcess, error) {
	attr := &os.ProcAttr{
		Files: []*os.File{c.stdin, c.stdout, c.stderr},
	}
	proc, err := os.StartProcess(path, argv, attr)
	if err != nil {
		return nil, fmt.Errorf("starting %s: %w", path, err)
	}
	return &childProcess{proc: proc}, nil
}

// Wait implements the ports.ProcessController interface.
// It loops on wait4 with WUNTRACED, skipping stopped states, until the child
// has exited or was killed by a signal.
func (c *OSProcessController) Wait(child ports.ChildProcess) (command.ExitStatus, error) {
	cp, ok := child.(*childProcess)
	if !ok {
		return command.ExitStatus{}, ErrForeignHandle
	}
	defer cp.proc.Release()

	return waitTerminal(c.wait4, cp.proc.Pid)
}

func waitTerminal(wait4 waitFunc, pid int) (command.ExitStatus, error) {
	for {
		var ws unix.WaitStatus
		_, err := wait4(pid, &ws, unix.WUNTRACED, nil)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return command.ExitStatus{}, fmt.Errorf("waiting for pid %d: %w", pid, err)
		}

		switch {
		case ws.Exited():
			return command.ExitStatus{Exited: true, Code: ws.ExitStatus()}, nil
		case ws.Signaled():
			return command.ExitStatus{Signaled: true, Code: -1, Signal: ws.Signal().String()}, nil
		}
		// Stopped or continued: not terminal, poll again.
	}
}
