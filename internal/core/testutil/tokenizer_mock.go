package testutil

import (
	"strings"

	"github.com/AntonioJCosta/ssic/internal/core/domain/command"
	"github.com/AntonioJCosta/ssic/internal/core/ports"
)

// FieldsTokenizer is a ports.Tokenizer splitting on Unicode white space.
type FieldsTokenizer struct{}

// Tokenize splits line with strings.Fields.
func (FieldsTokenizer) Tokenize(line string) command.ArgumentVector {
	return command.ArgumentVector(strings.Fields(line))
}

var _ ports.Tokenizer = FieldsTokenizer{}
