package ui

import (
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/ssic/internal/core/domain/settings"
	"github.com/AntonioJCosta/ssic/internal/core/ports"
)

// PromptRenderer renders a prompt template against the current directory.
type PromptRenderer struct {
	template string
	fs       ports.FileSystem
	home     string
}

// NewPromptRenderer creates a renderer for template, falling back to
// settings.DefaultPrompt when it is empty. Paths under home are shortened
// to "~".
func NewPromptRenderer(template string, fs ports.FileSystem, home string) ports.PromptRenderer {
	if template == "" {
		template = settings.DefaultPrompt
	}
	return &PromptRenderer{template: template, fs: fs, home: home}
}

// Prompt implements the ports.PromptRenderer interface.
func (p *PromptRenderer) Prompt() string {
	if !strings.Contains(p.template, `\w`) {
		return PromptColor(p.template)
	}

	wd, err := p.fs.WorkingDir()
	if err != nil {
		wd = "?"
	}
	wd = shortenHome(wd, p.home)

	parts := strings.Split(p.template, `\w`)
	for i := range parts {
		parts[i] = PromptColor(parts[i])
	}
	return strings.Join(parts, DirColor(wd))
}

func shortenHome(path, home string) string {
	if home == "" {
		return path
	}
	home = filepath.Clean(home)
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + strings.TrimPrefix(path, home)
	}
	return path
}
