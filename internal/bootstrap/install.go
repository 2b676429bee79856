package bootstrap

import (
	"fmt"
	"os"
	"time"

	"teachertest-bootstrap/internal/gitclient"
	"teachertest-bootstrap/internal/logger"
	"teachertest-bootstrap/internal/state"
)

// Install creates the workspace directory, clones the project repository into
// it, and installs the project's declared dependencies from its manifest.
//
// Preconditions and guarantees:
//   - Creating the parent directory is idempotent: it is created if absent and
//     left untouched if present.
//   - If the project subdirectory already exists, Install aborts with
//     ErrCheckoutExists before any mutation. Removing or renaming the existing
//     directory and rerunning is the only update path through Install.
//   - Every step is checked; the first failing step aborts the procedure, so a
//     failed clone never leads to an attempted dependency install.
func (b *Bootstrap) Install() error {
	parent, err := b.Config.ParentDir()
	if err != nil {
		return err
	}
	project, err := b.Config.ProjectDir()
	if err != nil {
		return err
	}

	logger.Debug("[DEBUG] Install: parent=%s project=%s remote=%s\n",
		parent, project, b.Config.Remote.URL)

	// Ensure the parent workspace directory exists (no-op when present).
	if err := os.MkdirAll(parent, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", parent, err)
	}

	// Fail-fast guard: never clobber an existing checkout.
	if _, err := os.Stat(project); err == nil {
		return fmt.Errorf("%w: %s", ErrCheckoutExists, project)
	}

	logger.Info("[INFO] Cloning %s into %s...\n", b.Config.Remote.URL, project)
	git := &gitclient.Client{Dir: parent, Exec: b.Exec, Capture: b.Capture}
	if err := git.Clone(b.Config.Remote.URL, b.Config.Paths.Project); err != nil {
		return fmt.Errorf("clone of %s failed: %w", b.Config.Remote.URL, err)
	}

	logger.Info("[INFO] Installing dependencies from %s...\n", b.Config.Installer.Manifest)
	args := append(append([]string{}, b.Config.Installer.Args...), b.Config.Installer.Manifest)
	if err := b.Exec(project, b.Config.Installer.Command, args...); err != nil {
		return fmt.Errorf("dependency install failed: %w", err)
	}

	// Record what was done. The procedures never gate on this file, so a
	// failed save is logged inside Save and otherwise ignored.
	st := state.Load(statePath(parent))
	st.RemoteURL = b.Config.Remote.URL
	st.LastInstall = time.Now()
	state.Save(statePath(parent), st)

	logger.Info("[INFO] Installation complete: %s\n", project)
	return nil
}
