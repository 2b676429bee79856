package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default returns the built-in conventions: a TeacherTest checkout under
// ~/ImageProcessor, tracking the main branch of the upstream repository,
// with pip consuming requirements.txt and python running start.py.
func Default() Config {
	return Config{
		Paths: Paths{
			Parent:  "ImageProcessor",
			Project: "TeacherTest",
		},
		Remote: Remote{
			URL:    "https://github.com/HalatsynZakhar/TeacherTest.git",
			Name:   "origin",
			Branch: "main",
		},
		Installer: Installer{
			Command:  "pip",
			Args:     []string{"install", "-r"},
			Manifest: "requirements.txt",
		},
		Launcher: Launcher{
			Command: "python",
			Args:    []string{"start.py"},
		},
	}
}

// Load returns the effective configuration. An empty path yields the built-in
// defaults; otherwise the YAML file at path is layered over them, so a config
// file only needs to name the keys it changes.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	// Unmarshal into the default-initialized struct: keys absent from the file
	// keep their default values.
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ParentDir resolves the workspace directory to an absolute path. A relative
// Paths.Parent is anchored at the user's home directory.
func (c Config) ParentDir() (string, error) {
	if filepath.IsAbs(c.Paths.Parent) {
		return c.Paths.Parent, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, c.Paths.Parent), nil
}

// ProjectDir resolves the absolute path of the checkout subdirectory.
func (c Config) ProjectDir() (string, error) {
	parent, err := c.ParentDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(parent, c.Paths.Project), nil
}
