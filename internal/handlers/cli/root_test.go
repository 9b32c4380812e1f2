package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/AntonioJCosta/ssic/internal/core/ports"
)

type dispatcherFunc func() error

func (f dispatcherFunc) Run() error { return f() }

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestNewRootCommand(t *testing.T) {
	runErr := errors.New("fatal")
	closeErr := errors.New("close failed")

	tests := []struct {
		name        string
		args        []string
		factoryErr  error
		runErr      error
		closeErr    error
		wantRun     bool
		wantClosed  bool
		wantErr     error
		wantErrText string
	}{
		{name: "runs the shell", wantRun: true, wantClosed: true},
		{name: "run error is returned", runErr: runErr, wantRun: true, wantClosed: true, wantErr: runErr},
		{name: "factory error", factoryErr: errors.New("bad config"), wantErrText: "could not start shell: bad config"},
		{name: "close error is reported", closeErr: closeErr, wantRun: true, wantClosed: true, wantErr: closeErr},
		{name: "positional arguments are rejected", args: []string{"script.sh"}, wantErrText: "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ran, closed := false, false
			factory := func() (ports.Dispatcher, io.Closer, error) {
				if tt.factoryErr != nil {
					return nil, nil, tt.factoryErr
				}
				d := dispatcherFunc(func() error { ran = true; return tt.runErr })
				c := closerFunc(func() error { closed = true; return tt.closeErr })
				return d, c, nil
			}

			cmd := NewRootCommand("test", factory)
			cmd.SetArgs(append([]string{}, tt.args...))
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			err := cmd.Execute()

			if ran != tt.wantRun {
				t.Errorf("shell ran = %v, want %v", ran, tt.wantRun)
			}
			if closed != tt.wantClosed {
				t.Errorf("resources closed = %v, want %v", closed, tt.wantClosed)
			}
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Execute() error = %v, want %v", err, tt.wantErr)
				}
			case tt.wantErrText != "":
				if err == nil || !strings.Contains(err.Error(), tt.wantErrText) {
					t.Errorf("Execute() error = %v, want it to contain %q", err, tt.wantErrText)
				}
			case err != nil:
				t.Errorf("Execute() unexpected error = %v", err)
			}
		})
	}
}

func TestNewRootCommand_Version(t *testing.T) {
	cmd := NewRootCommand("1.2.3", func() (ports.Dispatcher, io.Closer, error) {
		t.Error("shell started for --version")
		return nil, nil, errors.New("unexpected")
	})
	var out bytes.Buffer
	cmd.SetArgs([]string{"--version"})
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() unexpected error = %v", err)
	}
	if !strings.Contains(out.String(), "1.2.3") {
		t.Errorf("version output = %q, want it to contain %q", out.String(), "1.2.3")
	}
}
