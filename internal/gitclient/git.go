package gitclient

import (
	"teachertest-bootstrap/internal/runner"
)

// Client wraps the git command-line client for a single working directory.
// Git is treated as an opaque external collaborator: every operation shells
// out, the user sees git's own output, and git's exit status is the only
// success signal.
//
// Exec and Capture are swappable so tests can record the issued commands
// without a git binary or a network.
type Client struct {
	Dir     string
	Exec    runner.ExecFunc
	Capture runner.CaptureFunc
}

// New returns a Client running git in dir with the default runners.
func New(dir string) *Client {
	return &Client{
		Dir:     dir,
		Exec:    runner.Exec,
		Capture: runner.Capture,
	}
}

// Clone clones the repository at url into dest (relative to the client's
// working directory).
func (c *Client) Clone(url, dest string) error {
	return c.Exec(c.Dir, "git", "clone", url, dest)
}

// Checkout switches the working tree to the named branch.
func (c *Client) Checkout(branch string) error {
	return c.Exec(c.Dir, "git", "checkout", branch)
}

// Fetch updates the named remote's tracking branches without merging.
func (c *Client) Fetch(remote string) error {
	return c.Exec(c.Dir, "git", "fetch", remote)
}

// Clean removes all untracked files and directories from the working tree.
// This is irreversible.
func (c *Client) Clean() error {
	return c.Exec(c.Dir, "git", "clean", "-fd")
}

// ResetHard forces the current branch and working tree to exactly match
// target (e.g. "origin/main"), discarding local commits and modifications.
// This is irreversible.
func (c *Client) ResetHard(target string) error {
	return c.Exec(c.Dir, "git", "reset", "--hard", target)
}

// RevParse resolves ref to a full commit hash.
func (c *Client) RevParse(ref string) (string, error) {
	return c.Capture(c.Dir, "git", "rev-parse", ref)
}
