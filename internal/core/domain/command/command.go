/*
Package command defines the core domain values that flow through one
iteration of the shell: the parsed argument vector, the continue/stop signal
and the terminal status of a launched program.
*/
package command

import "fmt"

// ArgumentVector holds one parsed command line. The first element is the
// command name, the rest are its arguments.
type ArgumentVector []string

// IsEmpty reports whether the line contained no tokens.
func (v ArgumentVector) IsEmpty() bool {
	return len(v) == 0
}

// Name returns the command name, or "" for an empty vector.
func (v ArgumentVector) Name() string {
	if v.IsEmpty() {
		return ""
	}
	return v[0]
}

// Args returns the arguments following the command name.
func (v ArgumentVector) Args() []string {
	if len(v) < 2 {
		return nil
	}
	return v[1:]
}

// Signal tells the dispatch loop whether to keep reading input.
type Signal int

const (
	// Continue keeps the shell accepting input.
	Continue Signal = iota
	// Stop terminates the shell.
	Stop
)

func (s Signal) String() string {
	switch s {
	case Continue:
		return "continue"
	case Stop:
		return "stop"
	default:
		return fmt.Sprintf("Signal(%d)", int(s))
	}
}

/*
ExitStatus is the terminal state of a child process.
Exactly one of Exited or Signaled is true for a status returned by a
ProcessController.
*/
type ExitStatus struct {
	Exited   bool
	Code     int
	Signaled bool
	Signal   string
}

func (s ExitStatus) String() string {
	if s.Signaled {
		return fmt.Sprintf("terminated by signal %s", s.Signal)
	}
	return fmt.Sprintf("exit status %d", s.Code)
}
