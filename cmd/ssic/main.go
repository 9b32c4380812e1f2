package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/AntonioJCosta/ssic/internal/adapters/diaglog"
	"github.com/AntonioJCosta/ssic/internal/adapters/linesource"
	"github.com/AntonioJCosta/ssic/internal/adapters/oscommand"
	"github.com/AntonioJCosta/ssic/internal/adapters/osfs"
	"github.com/AntonioJCosta/ssic/internal/adapters/tokenizer"
	"github.com/AntonioJCosta/ssic/internal/core/domain/settings"
	"github.com/AntonioJCosta/ssic/internal/core/ports"
	"github.com/AntonioJCosta/ssic/internal/core/services/builtins"
	"github.com/AntonioJCosta/ssic/internal/core/services/dispatch"
	"github.com/AntonioJCosta/ssic/internal/core/services/launcher"
	"github.com/AntonioJCosta/ssic/internal/handlers/cli"
	"github.com/AntonioJCosta/ssic/internal/handlers/ui"
	"github.com/AntonioJCosta/ssic/internal/repositories/shellconfig"
)

// Version is set at build time
var Version = "dev"

func main() {
	rootCmd := cli.NewRootCommand(Version, newShell)

	if err := rootCmd.Execute(); err != nil {
		// Fatal loop errors were already reported by the shell itself.
		if !errors.Is(err, dispatch.ErrFatal) {
			fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("ssic: %v", err)))
		}
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// loadSettings reads the configuration under homeDir. Without a home
// directory the defaults apply.
func loadSettings(homeDir string) (settings.Settings, error) {
	if homeDir == "" {
		return settings.Default(), nil
	}
	provider, err := shellconfig.NewSettingsLoader(afero.NewOsFs(), homeDir)
	if err != nil {
		return settings.Settings{}, err
	}
	return provider.Load()
}

// closers releases every resource, reporting all failures.
type closers []func() error

func (c closers) Close() error {
	var err error
	for _, fn := range c {
		err = multierr.Append(err, fn())
	}
	return err
}

func newShell() (ports.Dispatcher, io.Closer, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not determine home directory: %v. Using default settings.\n", err)
		homeDir = ""
	}

	conf, err := loadSettings(homeDir)
	if err != nil {
		return nil, nil, err
	}

	interactive := isTerminal(os.Stdin)
	ui.ConfigureColor(conf.Color, isTerminal(os.Stdout))

	logger, err := diaglog.New(conf.LogFile)
	if err != nil {
		return nil, nil, err
	}
	release := closers{logger.Sync}

	var lines ports.LineSource
	if interactive {
		lines, err = linesource.NewReadlineSource(os.Stdin, os.Stdout, os.Stderr)
		if err != nil {
			return nil, nil, multierr.Append(err, release.Close())
		}
	} else {
		lines = linesource.NewStreamSource(os.Stdin, nil)
	}
	release = append(closers{lines.Close}, release...)

	shell := assemble(conf, homeDir, lines, logger, os.Stdin, os.Stdout, os.Stderr)
	logger.Debug("shell started")
	return shell, release, nil
}

// assemble wires the dispatch loop to the OS adapters. Children inherit
// stdin, stdout and stderr; builtins write to stdout and stderr. An empty
// homeDir disables "~" in the prompt.
func assemble(conf settings.Settings, homeDir string, lines ports.LineSource, logger *zap.Logger, stdin, stdout, stderr *os.File) ports.Dispatcher {
	fs := osfs.NewOSFileSystem()
	errOut := ui.NewColorWriter(stderr, ui.ErrorColor)
	procs := oscommand.NewOSProcessController(stdin, stdout, stderr)

	return dispatch.NewService(dispatch.Deps{
		Lines:     lines,
		Prompt:    ui.NewPromptRenderer(conf.Prompt, fs, homeDir),
		Tokenizer: tokenizer.NewWhitespaceTokenizer(),
		Builtins:  builtins.NewRegistry(fs, stdout, errOut),
		Launcher:  launcher.NewService(fs, procs, errOut, logger),
		ErrOut:    errOut,
		Logger:    logger,
	})
}
