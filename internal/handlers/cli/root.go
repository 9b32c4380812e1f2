package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/ssic/internal/core/ports"
	"github.com/spf13/cobra"
)

// ShellFactory builds a ready-to-run shell and the resources to release once
// it stops.
type ShellFactory func() (ports.Dispatcher, io.Closer, error)

// NewRootCommand creates the ssic command. It takes no flags besides cobra's
// --help and --version, and no positional arguments.
func NewRootCommand(version string, newShell ShellFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "ssic",
		Short: "ssic is a small interactive shell.",
		Long: `ssic reads command lines, runs the builtins cd, help and exit in-process,
and launches every other command as a child process, waiting for it to finish.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(newShell)
		},
	}
}

func runShell(newShell ShellFactory) (err error) {
	if newShell == nil {
		return fmt.Errorf("shell factory not initialized")
	}
	shell, closer, err := newShell()
	if err != nil {
		return fmt.Errorf("could not start shell: %w", err)
	}
	if closer != nil {
		defer func() {
			if cerr := closer.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("could not shut down cleanly: %w", cerr)
			}
		}()
	}
	return shell.Run()
}
