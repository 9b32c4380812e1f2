package shellconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/AntonioJCosta/ssic/internal/core/domain/settings"
	"github.com/AntonioJCosta/ssic/internal/core/ports"
)

const configDir = ".ssic"
const configFilename = "config.yaml"

// userFriendlyConfigPath constructs a path string for display to the user.
func userFriendlyConfigPath() string {
	return filepath.Join("~/", configDir, configFilename)
}

// SettingsLoader reads settings from $HOME/.ssic/config.yaml.
type SettingsLoader struct {
	fs   afero.Fs
	home string
	path string
}

// NewSettingsLoader creates a loader for the configuration under homeDir.
func NewSettingsLoader(fs afero.Fs, homeDir string) (ports.SettingsProvider, error) {
	if fs == nil {
		return nil, fmt.Errorf("filesystem cannot be nil")
	}
	if homeDir == "" {
		return nil, fmt.Errorf("home directory cannot be empty")
	}
	return &SettingsLoader{
		fs:   fs,
		home: homeDir,
		path: filepath.Join(homeDir, configDir, configFilename),
	}, nil
}

/*
Load implements the ports.SettingsProvider interface.
A missing or empty file yields settings.Default(). Keys present in the file
override the defaults; unknown keys are rejected. A log_file starting with
"~/" is resolved against the home directory.
*/
func (l *SettingsLoader) Load() (settings.Settings, error) {
	loaded := settings.Default()

	data, err := afero.ReadFile(l.fs, l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return loaded, nil
		}
		return settings.Settings{}, fmt.Errorf("failed to read settings file %s: %w", userFriendlyConfigPath(), err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return loaded, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&loaded); err != nil {
		// A file holding only comments has no document.
		if errors.Is(err, io.EOF) {
			return settings.Default(), nil
		}
		return settings.Settings{}, fmt.Errorf("failed to parse settings file %s: %w", userFriendlyConfigPath(), err)
	}

	if err := validate(loaded); err != nil {
		return settings.Settings{}, fmt.Errorf("invalid settings in %s: %w", userFriendlyConfigPath(), err)
	}
	loaded.LogFile = expandHome(loaded.LogFile, l.home)
	return loaded, nil
}

// expandHome replaces a leading "~/" with home. "~user" forms are left alone.
func expandHome(path, home string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	return filepath.Join(home, path[2:])
}

func validate(s settings.Settings) error {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	})
	return v.Struct(s)
}
