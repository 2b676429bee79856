package main

import (
	"teachertest-bootstrap/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI commands.
//
// The teachertest-bootstrap project manages a local checkout of the external
// TeacherTest application under the user's home directory. It offers two procedures:
//   - `install` creates the working directory, clones the TeacherTest repository,
//     and installs its declared dependencies from the manifest file inside the checkout
//   - `run` forces an existing checkout to exactly match the remote main branch,
//     discarding local commits, modifications, and untracked files, and then
//     launches the application's own entry point on the inherited console
//
// Error handling strategy:
//   - Precondition violations (checkout already present for install, checkout
//     missing for run) abort early with actionable guidance and no mutation
//   - External tool failures (git, the package installer, the launcher) are
//     surfaced verbatim on the inherited console; every step is checked and
//     the procedure stops at the first failure with a non-zero exit status
//
// Integration points:
//   - Shells out to the git client for clone, checkout, fetch, clean, and
//     hard-reset operations, treating it as an opaque external collaborator
//   - Shells out to the package installer to consume the project's manifest
//   - Maintains a small JSON state file recording the last install time and the
//     last synced commit, giving visibility into what previous runs did
func main() {
	cmd.Execute()
}
