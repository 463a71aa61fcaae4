// Package git provides Git operations via exec for the nbsync CLI.
package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/zikuu-space/nbsync/internal/output"
)

// Run executes a git command in dir with the given arguments.
// An empty dir runs the command in the current directory.
// It captures stdout and returns it as a trimmed string.
// Returns an *output.ExitError on failure with appropriate exit code.
func Run(dir string, args ...string) (string, error) {
	return RunContext(context.Background(), dir, args...)
}

// RunContext executes a git command with the given context and arguments.
// The dir parameter is passed to git via -C so the process working
// directory is never changed. It captures stdout and returns it as a
// trimmed string. Returns an *output.ExitError on failure.
func RunContext(ctx context.Context, dir string, args ...string) (string, error) {
	if dir != "" {
		args = append([]string{"-C", dir}, args...)
	}
	cmd := exec.CommandContext(ctx, "git", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		// Check if git is not found
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", output.NewSystemError("git not found: ensure git is installed and in PATH")
		}

		// Git command failed - include stderr in message
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", output.NewSystemErrorWithCause("git command failed: "+errMsg, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// IsRepo checks if dir is inside a git repository.
func IsRepo(dir string) bool {
	_, err := Run(dir, "rev-parse", "--git-dir")
	return err == nil
}

// RepoRoot returns the root directory of the git repository containing dir.
// Returns an error if dir is not inside a git repository.
func RepoRoot(dir string) (string, error) {
	root, err := Run(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", output.NewSystemErrorWithCause("not in a git repository", err)
	}
	return root, nil
}

// RemoteURL returns the configured URL of the named remote (usually "origin").
// Returns an error if the remote is not configured or git is unavailable;
// callers that only want best-effort detection treat any error as "no remote".
func RemoteURL(dir, name string) (string, error) {
	url, err := Run(dir, "config", "--get", "remote."+name+".url")
	if err != nil {
		return "", err
	}
	return url, nil
}
