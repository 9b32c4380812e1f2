package ports

import "github.com/AntonioJCosta/ssic/internal/core/domain/command"

// Tokenizer splits a raw input line into an argument vector.
type Tokenizer interface {
	Tokenize(line string) command.ArgumentVector
}
