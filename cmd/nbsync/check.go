// Package main provides the entry point for the nbsync CLI.
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zikuu-space/nbsync/internal/config"
	"github.com/zikuu-space/nbsync/internal/output"
	"github.com/zikuu-space/nbsync/internal/repoid"
)

// checkStatus represents the result of a single check.
type checkStatus string

const (
	checkPass checkStatus = "pass"
	checkWarn checkStatus = "warn"
	checkFail checkStatus = "fail"
)

// checkResult holds the result of a single check.
type checkResult struct {
	Name    string      `json:"name"`
	Status  checkStatus `json:"status"`
	Message string      `json:"message"`
	Hint    string      `json:"hint,omitempty"`
}

// newCheckCmd creates the check command.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that sync can run, without writing anything",
		Long: `Verify the preconditions for sync without touching the README.

Checks:
  README   - the target README exists
  MARKERS  - both marker comments are present and in order
  REPO     - a GitHub repository identifier is detectable (warn only)

Exits non-zero when any check fails. A missing repository identifier is
a warning, not a failure: sync still works, with plain filenames instead
of Colab links.

Examples:
  nbsync check          # Human-readable report
  nbsync check --json   # Results as JSON`,
		RunE: runCheck,
	}
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	root, err := rootDir(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	cfg, err := config.Load(root)
	if err != nil {
		wrapped := output.NewUserError(err.Error())
		printer.Error(wrapped)
		return wrapped
	}

	checks := []checkResult{
		checkReadme(root, cfg),
		checkMarkers(root, cfg),
		checkRepoID(root, cfg),
	}

	failed := 0
	for _, c := range checks {
		if c.Status == checkFail {
			failed++
		}
	}

	if printer.IsJSON() {
		result := map[string]any{
			"root":   root,
			"checks": checks,
			"failed": failed,
		}
		if err := printer.WriteJSON(result); err != nil {
			return err
		}
	} else {
		printHumanChecks(printer, checks)
	}

	if failed > 0 {
		return output.NewUserError("check failed")
	}
	return nil
}

// checkReadme verifies the target README exists.
func checkReadme(root string, cfg config.Config) checkResult {
	path := filepath.Join(root, cfg.Readme)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return checkResult{
			Name:    "README",
			Status:  checkFail,
			Message: cfg.Readme + " not found at " + path,
		}
	}
	return checkResult{
		Name:    "README",
		Status:  checkPass,
		Message: path,
	}
}

// checkMarkers verifies both markers are present and ordered.
func checkMarkers(root string, cfg config.Config) checkResult {
	data, err := os.ReadFile(filepath.Join(root, cfg.Readme))
	if err != nil {
		return checkResult{
			Name:    "MARKERS",
			Status:  checkFail,
			Message: "cannot read " + cfg.Readme,
		}
	}

	text := string(data)
	beginIdx := strings.Index(text, cfg.BeginMarker)
	endIdx := strings.Index(text, cfg.EndMarker)

	switch {
	case beginIdx < 0:
		return checkResult{
			Name:    "MARKERS",
			Status:  checkFail,
			Message: "BEGIN marker not found",
			Hint:    "add " + cfg.BeginMarker + " to " + cfg.Readme,
		}
	case endIdx < 0:
		return checkResult{
			Name:    "MARKERS",
			Status:  checkFail,
			Message: "END marker not found",
			Hint:    "add " + cfg.EndMarker + " to " + cfg.Readme,
		}
	case endIdx < beginIdx+len(cfg.BeginMarker):
		return checkResult{
			Name:    "MARKERS",
			Status:  checkFail,
			Message: "END marker appears before BEGIN",
		}
	}

	return checkResult{
		Name:    "MARKERS",
		Status:  checkPass,
		Message: "both markers present and ordered",
	}
}

// checkRepoID reports whether a repository identifier is detectable.
func checkRepoID(root string, cfg config.Config) checkResult {
	repo, found := repoid.Detect(root, "", cfg.GitHubRepo)
	if !found {
		return checkResult{
			Name:    "REPO",
			Status:  checkWarn,
			Message: "no GitHub repository identifier detected",
			Hint:    "set " + repoid.EnvVar + "=\"OWNER/REPO\" to enable Colab links",
		}
	}
	return checkResult{
		Name:    "REPO",
		Status:  checkPass,
		Message: repo,
	}
}

// printHumanChecks outputs check results in human-readable format.
func printHumanChecks(printer *output.Printer, checks []checkResult) {
	for _, c := range checks {
		label := "ok  "
		switch c.Status {
		case checkWarn:
			label = "warn"
		case checkFail:
			label = "FAIL"
		}
		printer.Print("[%s] %-8s %s\n", label, c.Name, c.Message)
		if c.Hint != "" {
			printer.Print("     %-8s %s\n", "", c.Hint)
		}
	}
}
