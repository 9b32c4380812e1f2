package testutil

import "github.com/AntonioJCosta/ssic/internal/core/ports"

// StaticPrompt is a ports.PromptRenderer returning a fixed string.
type StaticPrompt string

// Prompt returns the fixed prompt.
func (p StaticPrompt) Prompt() string {
	return string(p)
}

var _ ports.PromptRenderer = StaticPrompt("")
