package linesource

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func readAll(t *testing.T, src interface {
	ReadLine(string) (string, error)
}) ([]string, error) {
	t.Helper()
	var lines []string
	for i := 0; i < 100; i++ {
		line, err := src.ReadLine("> ")
		if err != nil {
			return lines, err
		}
		lines = append(lines, line)
	}
	t.Fatal("ReadLine never returned an error")
	return nil, nil
}

func TestStreamSource_ReadLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty input", input: "", want: nil},
		{name: "single line", input: "ls\n", want: []string{"ls"}},
		{name: "no trailing newline", input: "ls\nexit", want: []string{"ls", "exit"}},
		{name: "blank lines are kept", input: "\n\nhelp\n", want: []string{"", "", "help"}},
		{name: "crlf endings", input: "cd /tmp\r\nhelp\r\n", want: []string{"cd /tmp", "help"}},
		{name: "long line", input: strings.Repeat("a", 1<<17) + "\n", want: []string{strings.Repeat("a", 1<<17)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewStreamSource(strings.NewReader(tt.input), nil)
			got, err := readAll(t, src)
			if !errors.Is(err, io.EOF) {
				t.Fatalf("ReadLine() final error = %v, want io.EOF", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ReadLine() returned %d lines, want %d (%q)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}

			if _, err := src.ReadLine(""); !errors.Is(err, io.EOF) {
				t.Errorf("ReadLine() after EOF error = %v, want io.EOF", err)
			}
		})
	}
}

func TestStreamSource_Prompt(t *testing.T) {
	var out bytes.Buffer
	src := NewStreamSource(strings.NewReader("a\nb\n"), &out)

	for i := 0; i < 2; i++ {
		if _, err := src.ReadLine("$ "); err != nil {
			t.Fatalf("ReadLine() unexpected error = %v", err)
		}
	}
	if got := out.String(); got != "$ $ " {
		t.Errorf("prompt output = %q, want %q", got, "$ $ ")
	}
}

func TestStreamSource_ReadError(t *testing.T) {
	boom := errors.New("boom")
	src := NewStreamSource(iotest.ErrReader(boom), nil)

	_, err := src.ReadLine("")
	if !errors.Is(err, boom) {
		t.Errorf("ReadLine() error = %v, want it to wrap %v", err, boom)
	}
	if errors.Is(err, io.EOF) {
		t.Errorf("ReadLine() error = %v, must not be io.EOF", err)
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() unexpected error = %v", err)
	}
}
