package state

import (
	"encoding/json" // For JSON encoding and decoding of the state file
	"os"            // For file system operations like reading and writing files
	"time"

	"teachertest-bootstrap/internal/logger" // Custom logger package for logging errors and debug info
)

// State records what the bootstrap procedures last did to the checkout.
// It is informational only: neither procedure gates on it, both derive their
// preconditions from the filesystem alone.
type State struct {
	RemoteURL        string    `json:"remote_url"`         // Clone URL the checkout was created from
	LastInstall      time.Time `json:"last_install"`       // When the install procedure last completed
	LastRefresh      time.Time `json:"last_refresh"`       // When the run procedure last synchronized the checkout
	LastSyncedCommit string    `json:"last_synced_commit"` // Commit hash the working tree was last reset to
}

// Load reads the saved state from a JSON file at the given path.
// If the file does not exist or cannot be read, it returns a new empty State,
// so a missing state file is indistinguishable from a fresh install.
func Load(path string) *State {
	// Read entire state JSON file into memory
	file, err := os.ReadFile(path)
	if err != nil {
		// File missing or unreadable: start from an empty state
		return &State{}
	}

	// Parse JSON data into a State struct; a corrupted file degrades to
	// whatever fields parsed, never to a failure
	var st State
	_ = json.Unmarshal(file, &st)
	return &st
}

// Save writes the given State to a JSON file at the given path.
// It pretty-prints the JSON with indentation for readability.
// Errors during marshalling or writing are logged but not propagated: losing
// the state record never fails a procedure that otherwise succeeded.
func Save(path string, st *State) {
	// Marshal the State struct into indented JSON bytes
	file, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		logger.Error("[ERROR] Failed to marshal state: %v\n", err)
		return
	}

	// Log debug info showing the full JSON state being written
	logger.Debug("[DEBUG] Writing state to %s:\n%s\n", path, string(file))

	// Write the JSON bytes to the file with mode 0644 (read/write owner, read others)
	err = os.WriteFile(path, file, 0644)
	if err != nil {
		logger.Error("[ERROR] Failed to write state file %s: %v\n", path, err)
	}
}
