package ports

import "github.com/AntonioJCosta/ssic/internal/core/domain/command"

// ProcessLauncher runs a non-builtin command to completion.
type ProcessLauncher interface {
	Launch(argv command.ArgumentVector) command.Signal
}
