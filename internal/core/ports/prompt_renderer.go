package ports

// PromptRenderer produces the prompt shown before each line is read.
type PromptRenderer interface {
	Prompt() string
}
