package builtins

import (
	"io"

	"github.com/AntonioJCosta/ssic/internal/core/domain/command"
	"github.com/AntonioJCosta/ssic/internal/core/ports"
)

// builtin adapts a plain function to the ports.Builtin interface.
type builtin struct {
	name        string
	description string
	run         func(argv command.ArgumentVector) command.Signal
}

func (b *builtin) Name() string        { return b.name }
func (b *builtin) Description() string { return b.description }

func (b *builtin) Run(argv command.ArgumentVector) command.Signal {
	return b.run(argv)
}

type registry struct {
	entries []ports.Builtin
}

/*
NewRegistry builds the builtin table: cd, help and exit, in that order.
Messages go to out and errOut; cd changes directory through fs.
It panics if fs is nil.
*/
func NewRegistry(fs ports.FileSystem, out, errOut io.Writer) ports.BuiltinRegistry {
	if fs == nil {
		panic("fileSystem cannot be nil")
	}
	r := &registry{}
	r.entries = []ports.Builtin{
		&builtin{
			name:        "cd",
			description: "Change the working directory",
			run:         func(argv command.ArgumentVector) command.Signal { return changeDir(fs, errOut, argv) },
		},
		&builtin{
			name:        "help",
			description: "Show this message",
			run:         func(argv command.ArgumentVector) command.Signal { return printHelp(r, out) },
		},
		&builtin{
			name:        "exit",
			description: "Leave the shell",
			run:         func(argv command.ArgumentVector) command.Signal { return sayGoodbye(out) },
		},
	}
	return r
}

// Lookup implements the ports.BuiltinRegistry interface.
func (r *registry) Lookup(name string) (ports.Builtin, bool) {
	for _, b := range r.entries {
		if b.Name() == name {
			return b, true
		}
	}
	return nil, false
}

// Names implements the ports.BuiltinRegistry interface.
func (r *registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, b := range r.entries {
		names[i] = b.Name()
	}
	return names
}
