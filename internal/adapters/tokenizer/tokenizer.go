package tokenizer

import (
	"strings"

	"github.com/AntonioJCosta/ssic/internal/core/domain/command"
	"github.com/AntonioJCosta/ssic/internal/core/ports"
)

// Delimiters are the characters that separate tokens: space, tab, carriage
// return, newline and bell.
const Delimiters = " \t\r\n\a"

// chunkSize is the initial capacity of a token vector. Append grows it past
// that without an upper bound.
const chunkSize = 64

// WhitespaceTokenizer splits lines on runs of Delimiters.
// Quotes and escapes are not interpreted: `echo "a b"` yields
// ["echo", "\"a", "b\""].
type WhitespaceTokenizer struct{}

// NewWhitespaceTokenizer creates a new WhitespaceTokenizer.
func NewWhitespaceTokenizer() ports.Tokenizer {
	return &WhitespaceTokenizer{}
}

// Tokenize implements the ports.Tokenizer interface.
// The line is scanned byte by byte, so every token is a substring of line
// even when line is not valid UTF-8.
func (t *WhitespaceTokenizer) Tokenize(line string) command.ArgumentVector {
	args := make(command.ArgumentVector, 0, chunkSize)
	start := -1

	for i := 0; i < len(line); i++ {
		if strings.IndexByte(Delimiters, line[i]) >= 0 {
			if start >= 0 {
				args = append(args, line[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		args = append(args, line[start:])
	}
	return args
}
