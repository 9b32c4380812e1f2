/*
Package settings defines the user preferences read at startup. They only
affect presentation and diagnostics; command dispatch ignores them.
*/
package settings

// DefaultPrompt shows the working directory. `\w` is replaced on every read.
const DefaultPrompt = `ssic:\w> `

// Settings is the content of the configuration file.
type Settings struct {
	Prompt  string `yaml:"prompt" validate:"required,max=128"`
	Color   string `yaml:"color" validate:"oneof=auto always never"`
	LogFile string `yaml:"log_file"`
}

// Default returns the settings used when no configuration file exists.
func Default() Settings {
	return Settings{
		Prompt: DefaultPrompt,
		Color:  "auto",
	}
}
