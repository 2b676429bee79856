package bootstrap

import (
	"errors"
	"path/filepath"

	"teachertest-bootstrap/internal/config"
	"teachertest-bootstrap/internal/runner"
)

// Precondition errors. These mark the two user-recoverable aborts: the
// filesystem is in the state the other procedure expects, so nothing is
// mutated and the user is told which action to take instead.
var (
	// ErrCheckoutExists is returned by Install when the project directory is
	// already present. Install never updates or overwrites an existing
	// checkout.
	ErrCheckoutExists = errors.New("checkout already exists")

	// ErrCheckoutMissing is returned by Refresh when the project directory is
	// absent. Refresh never creates a checkout; that is Install's job.
	ErrCheckoutMissing = errors.New("checkout does not exist")
)

// Bootstrap executes the install and refresh-and-run procedures for the
// checkout described by Config. Exec and Capture default to the real runners
// and are swappable for tests.
type Bootstrap struct {
	Config  config.Config
	Exec    runner.ExecFunc
	Capture runner.CaptureFunc
}

// New returns a Bootstrap using the real external-command runners.
func New(cfg config.Config) *Bootstrap {
	return &Bootstrap{
		Config:  cfg,
		Exec:    runner.Exec,
		Capture: runner.Capture,
	}
}

// statePath returns the location of the JSON state file, kept next to the
// checkout in the parent directory.
func statePath(parent string) string {
	return filepath.Join(parent, "state.json")
}
