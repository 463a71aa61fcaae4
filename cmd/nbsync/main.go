// Package main provides the entry point for the nbsync CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/zikuu-space/nbsync/internal/config"
	"github.com/zikuu-space/nbsync/internal/envfile"
	"github.com/zikuu-space/nbsync/internal/git"
	"github.com/zikuu-space/nbsync/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves the --color flag against TTY detection.
func useColor(cmd *cobra.Command) bool {
	mode := "auto"
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// rootDir resolves the repository root for a command invocation:
// the --root flag when given, the enclosing git repository otherwise,
// the working directory as a last resort.
func rootDir(cmd *cobra.Command) (string, error) {
	if flag := cmd.Root().PersistentFlags().Lookup("root"); flag != nil {
		if dir := flag.Value.String(); dir != "" {
			abs, err := filepath.Abs(dir)
			if err != nil {
				return "", output.NewUserError("invalid --root: " + err.Error())
			}
			info, err := os.Stat(abs)
			if err != nil || !info.IsDir() {
				return "", output.NewUserError("--root is not a directory: " + abs)
			}
			return abs, nil
		}
	}

	if root, err := git.RepoRoot(""); err == nil {
		return root, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", output.NewSystemErrorWithCause("getting working directory", err)
	}
	return cwd, nil
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the nbsync CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nbsync",
		Short: "Keep the README notebook list in sync with the repository",
		Long: `nbsync - keeps the root README's notebook list in sync with the repository.

nbsync scans top-level directories for notebook files, builds a Markdown
list (with Colab links when the GitHub repository is known), and splices
it between the two marker comments in README.md:

  <!-- ZIKUU_NOTEBOOKS_LIST:BEGIN -->
  <!-- ZIKUU_NOTEBOOKS_LIST:END -->

The GitHub repository is taken from ZIKUU_GITHUB_REPO ("OWNER/REPO"),
from .nbsync.yml, or parsed from the origin remote URL. Without it the
list still renders, with plain filenames instead of Colab links.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'nbsync --help' for usage")
				printer.Error(err)
				return err
			}
			// Otherwise show help
			return cmd.Help()
		},
	}

	// Load .env.local (then .env) so ZIKUU_GITHUB_REPO can live in a file.
	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, never")
	cmd.PersistentFlags().String("root", "", "Repository root (default: enclosing git repository)")

	cmd.AddCommand(newSyncCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local   (per-repo override, gitignored)
//  2. $CWD/.env         (per-repo)
//  3. ~/.config/nbsync/env (global fallback)
func loadEnvFiles() {
	_ = envfile.Load(".env.local")
	_ = envfile.Load(".env")

	if dir := config.Dir(); dir != "" {
		_ = envfile.Load(filepath.Join(dir, "env"))
	}
}
