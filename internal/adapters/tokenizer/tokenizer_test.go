package tokenizer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/ssic/internal/core/domain/command"
)

func TestNewWhitespaceTokenizer(t *testing.T) {
	tok := NewWhitespaceTokenizer()
	if tok == nil {
		t.Fatal("NewWhitespaceTokenizer() returned nil")
	}
	if _, ok := tok.(*WhitespaceTokenizer); !ok {
		t.Errorf("NewWhitespaceTokenizer() did not return a *WhitespaceTokenizer, got %T", tok)
	}
}

func TestWhitespaceTokenizer_Tokenize(t *testing.T) {
	tok := NewWhitespaceTokenizer()
	tests := []struct {
		name string
		line string
		want command.ArgumentVector
	}{
		{
			name: "empty line",
			line: "",
			want: command.ArgumentVector{},
		},
		{
			name: "whitespace only",
			line: " \t \r\n\a  ",
			want: command.ArgumentVector{},
		},
		{
			name: "single word",
			line: "ls",
			want: command.ArgumentVector{"ls"},
		},
		{
			name: "runs of spaces collapse",
			line: "echo  hello   world",
			want: command.ArgumentVector{"echo", "hello", "world"},
		},
		{
			name: "leading and trailing delimiters",
			line: "\t  ls -l  \n",
			want: command.ArgumentVector{"ls", "-l"},
		},
		{
			name: "mixed delimiters",
			line: "a\tb\rc\nd\ae",
			want: command.ArgumentVector{"a", "b", "c", "d", "e"},
		},
		{
			name: "quotes are not interpreted",
			line: `echo "a b"`,
			want: command.ArgumentVector{"echo", `"a`, `b"`},
		},
		{
			name: "backslashes are kept literally",
			line: `echo a\ b`,
			want: command.ArgumentVector{"echo", `a\`, "b"},
		},
		{
			name: "non-ascii text",
			line: "echo héllo wörld",
			want: command.ArgumentVector{"echo", "héllo", "wörld"},
		},
		{
			name: "invalid utf-8 bytes are kept",
			line: "ls caf\xe9.txt \xff\xfe",
			want: command.ArgumentVector{"ls", "caf\xe9.txt", "\xff\xfe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Tokenize(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
			for i, arg := range got {
				if arg == "" {
					t.Errorf("Tokenize(%q) produced an empty token at index %d", tt.line, i)
				}
				if !strings.Contains(tt.line, arg) {
					t.Errorf("Tokenize(%q) token %d = %q is not a substring of the line", tt.line, i, arg)
				}
			}
		})
	}
}

func TestWhitespaceTokenizer_TokenizeGrowsPastChunk(t *testing.T) {
	const n = chunkSize*3 + 7
	words := make([]string, n)
	for i := range words {
		words[i] = "w"
	}

	got := NewWhitespaceTokenizer().Tokenize(strings.Join(words, " "))
	if len(got) != n {
		t.Fatalf("Tokenize() returned %d tokens, want %d", len(got), n)
	}
}
