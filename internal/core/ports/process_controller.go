package ports

import "github.com/AntonioJCosta/ssic/internal/core/domain/command"

// ChildProcess is an opaque handle to a spawned program.
type ChildProcess interface {
	Pid() int
}

/*
ProcessController creates child processes and waits for them.
Wait blocks until the child has exited or was killed by a signal; suspended
states are never reported. The handle must not be used after Wait returns.
*/
type ProcessController interface {
	Spawn(path string, argv []string) (ChildProcess, error)
	Wait(child ChildProcess) (command.ExitStatus, error)
}
