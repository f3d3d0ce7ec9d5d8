package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File is the parsed pyvet.yaml project configuration.
type File struct {
	// PythonVersion is the [major, minor] interpreter version the checker
	// should assume.
	PythonVersion []int `yaml:"python_version,omitempty"`

	// NoColor disables colored diagnostic rendering for the project.
	NoColor bool `yaml:"no_color,omitempty"`

	// Extensions adds extra file extensions treated as Python source.
	Extensions []string `yaml:"extensions,omitempty"`
}

// Load reads and parses a pyvet.yaml file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses pyvet.yaml content from bytes.
// The path argument is used only for error messages.
func Parse(data []byte, path string) (*File, error) {
	var cfg File
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Find searches for pyvet.yaml starting from dir and walking up to parent
// directories. Returns an empty path when no config exists.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, "pyvet.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		candidate = filepath.Join(dir, "pyvet.yml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (c *File) validate(path string) error {
	if c.PythonVersion != nil && len(c.PythonVersion) != 2 {
		return fmt.Errorf("%s: python_version must be [major, minor]", path)
	}
	return nil
}

// Apply installs the loaded settings into the package-level defaults.
func (c *File) Apply() {
	if len(c.PythonVersion) == 2 {
		PythonVersionMajor = c.PythonVersion[0]
		PythonVersionMinor = c.PythonVersion[1]
	}
	SourceFileExtensions = append(SourceFileExtensions, c.Extensions...)
}
