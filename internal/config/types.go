package config

// Paths describes the filesystem convention shared by the install and run
// procedures.
// - Parent: workspace directory holding the checkout; resolved relative to the
//   user's home directory unless absolute.
// - Project: name of the checkout subdirectory created inside Parent.
type Paths struct {
	Parent  string `yaml:"parent"`
	Project string `yaml:"project"`
}

// Remote identifies the upstream repository the checkout tracks.
// - URL: clone URL of the repository.
// - Name: remote name used for fetch and the reset target (normally "origin").
// - Branch: branch the run procedure synchronizes to.
type Remote struct {
	URL    string `yaml:"url"`
	Name   string `yaml:"name"`
	Branch string `yaml:"branch"`
}

// Installer describes how project dependencies are installed after cloning.
// The manifest path is relative to the checkout root and is appended as the
// final argument of the install command.
type Installer struct {
	Command  string   `yaml:"command"`
	Args     []string `yaml:"args"`
	Manifest string   `yaml:"manifest"`
}

// Launcher describes the project's own entry point, invoked as a subprocess
// with the checkout as working directory and the console inherited.
type Launcher struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// Config is the top-level structure consumed by both procedures. It carries
// the fixed path convention, the remote to track, and the two external
// commands (dependency install and entry point launch).
type Config struct {
	Paths     Paths     `yaml:"paths"`
	Remote    Remote    `yaml:"remote"`
	Installer Installer `yaml:"installer"`
	Launcher  Launcher  `yaml:"launcher"`
}
