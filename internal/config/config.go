package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tkbuilder/internal/application"
	"tkbuilder/internal/domain"
)

const (
	DefaultDocumentPath = "tkinter_app.json"

	EnvConfig   = "TKBUILDER_CONFIG"
	EnvDocument = "TKBUILDER_FILE"
	EnvLibrary  = "TKBUILDER_LIBRARY"
)

// Config holds the settings shared by the tkbuilder binaries
type Config struct {
	// Properties of a new document
	Title    string `yaml:"title"`
	Geometry string `yaml:"geometry"`
	Version  string `yaml:"version"`

	// DocumentPath is the file the CLI and the TUI export to
	DocumentPath string `yaml:"document_path"`
	// LibraryPath is the snapshot database; empty selects the XDG default
	LibraryPath string `yaml:"library_path"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Title:        domain.DefaultTitle,
		Geometry:     domain.DefaultGeometry,
		Version:      domain.DefaultVersion,
		DocumentPath: DefaultDocumentPath,
	}
}

// Load reads the configuration file (if any) over the defaults, then
// applies environment overrides
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Default()

	path := getenv(EnvConfig)
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath(getenv)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
			// no config file is fine
		default:
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if env := getenv(EnvDocument); env != "" {
		cfg.DocumentPath = env
	}
	if env := getenv(EnvLibrary); env != "" {
		cfg.LibraryPath = env
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configured geometry
func (c Config) Validate() error {
	if err := application.ValidateGeometry(c.Geometry); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// NewDocument returns an empty document with the configured properties
func (c Config) NewDocument() domain.Document {
	return domain.NewDocument(c.Title, c.Geometry, c.Version)
}

func defaultConfigPath(getenv func(string) string) string {
	configHome := getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tkbuilder", "config.yaml")
}
