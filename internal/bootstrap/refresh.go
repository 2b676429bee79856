package bootstrap

import (
	"fmt"
	"os"
	"time"

	"teachertest-bootstrap/internal/gitclient"
	"teachertest-bootstrap/internal/logger"
	"teachertest-bootstrap/internal/state"
)

// Refresh forces an existing checkout to exactly match the remote branch and
// then launches the project's own entry point.
//
// The synchronization is destructive on purpose: local commits, modifications,
// and untracked files are all discarded so the working tree ends up
// byte-identical to the remote branch. The launcher runs only after every
// synchronization step has succeeded.
func (b *Bootstrap) Refresh() error {
	parent, err := b.Config.ParentDir()
	if err != nil {
		return err
	}
	project, err := b.Config.ProjectDir()
	if err != nil {
		return err
	}

	// Fail-fast guard: a missing checkout means install was never run.
	if _, err := os.Stat(project); err != nil {
		return fmt.Errorf("%w: %s", ErrCheckoutMissing, project)
	}

	remote := b.Config.Remote
	logger.Info("[INFO] Synchronizing %s to %s/%s...\n", project, remote.Name, remote.Branch)

	git := &gitclient.Client{Dir: project, Exec: b.Exec, Capture: b.Capture}
	if err := git.Checkout(remote.Branch); err != nil {
		return fmt.Errorf("checkout of branch %s failed: %w", remote.Branch, err)
	}
	if err := git.Fetch(remote.Name); err != nil {
		return fmt.Errorf("fetch from %s failed: %w", remote.Name, err)
	}
	if err := git.Clean(); err != nil {
		return fmt.Errorf("removal of untracked files failed: %w", err)
	}
	target := remote.Name + "/" + remote.Branch
	if err := git.ResetHard(target); err != nil {
		return fmt.Errorf("hard reset to %s failed: %w", target, err)
	}

	// Record the commit the tree now matches. Resolution failure is logged
	// and ignored; the sync itself already succeeded.
	st := state.Load(statePath(parent))
	st.LastRefresh = time.Now()
	if commit, err := git.RevParse("HEAD"); err == nil {
		st.LastSyncedCommit = commit
		logger.Info("[INFO] Checkout is now at %s\n", commit)
	} else {
		logger.Warn("[WARN] Could not resolve synced commit: %v\n", err)
	}
	state.Save(statePath(parent), st)

	logger.Info("[INFO] Launching %s...\n", b.Config.Launcher.Command)
	if err := b.Exec(project, b.Config.Launcher.Command, b.Config.Launcher.Args...); err != nil {
		return fmt.Errorf("launch of %s failed: %w", b.Config.Launcher.Command, err)
	}
	return nil
}
