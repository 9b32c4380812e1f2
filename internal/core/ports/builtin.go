package ports

import "github.com/AntonioJCosta/ssic/internal/core/domain/command"

// Builtin is a command implemented inside the shell process.
type Builtin interface {
	Name() string
	Description() string
	Run(argv command.ArgumentVector) command.Signal
}

// BuiltinRegistry maps command names to builtins. It is immutable once built.
type BuiltinRegistry interface {
	// Lookup performs an exact, case-sensitive match on name.
	Lookup(name string) (Builtin, bool)
	// Names returns the registered names in registration order.
	Names() []string
}
