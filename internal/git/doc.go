// Package git provides Git operations via exec for the nbsync CLI.
//
// This package wraps git commands by shelling out to the git executable,
// capturing stdout/stderr and translating failures to appropriate errors.
// The target directory is passed to git via -C, so the process working
// directory is never changed.
//
//	git.IsRepo(dir)              // Check if dir is inside a git repository
//	git.RepoRoot(dir)            // Get the root directory of the repository
//	git.RemoteURL(dir, "origin") // Get the configured remote URL
//
// For custom git commands, use Run or RunContext:
//
//	out, err := git.Run(dir, "status", "--short")
//	out, err := git.RunContext(ctx, dir, "log", "--oneline", "-5")
//
// All functions return errors wrapped as *output.ExitError with
// ExitSystemError. Remote-URL lookups are the one place callers swallow
// the error: a missing remote only means Colab links cannot be generated.
package git
