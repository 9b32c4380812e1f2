package ports

import "github.com/AntonioJCosta/ssic/internal/core/domain/settings"

/*
SettingsProvider loads the shell's presentation settings. This is a driven
port implemented by a repository that understands the configuration format.
*/
type SettingsProvider interface {
	// Load returns the defaults when no configuration exists.
	Load() (settings.Settings, error)
}
