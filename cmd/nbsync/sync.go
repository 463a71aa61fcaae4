// Package main provides the entry point for the nbsync CLI.
package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zikuu-space/nbsync/internal/config"
	"github.com/zikuu-space/nbsync/internal/markers"
	"github.com/zikuu-space/nbsync/internal/output"
	"github.com/zikuu-space/nbsync/internal/render"
	"github.com/zikuu-space/nbsync/internal/repoid"
	"github.com/zikuu-space/nbsync/internal/scan"
)

// syncFlags holds the command-line flags for the sync command.
type syncFlags struct {
	repo   string
	dryRun bool
}

// newSyncCmd creates the sync command.
func newSyncCmd() *cobra.Command {
	flags := &syncFlags{}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Rewrite the README notebook list between the markers",
		Long: `Scan top-level directories for notebooks and rewrite the marker region
of the root README.

The file is written only when the spliced text differs from the current
content. Both markers must already exist in the README; sync never creates
them.

Examples:
  nbsync sync                       # Update README.md in place
  nbsync sync --dry-run             # Print the block without writing
  nbsync sync --repo acme/widgets   # Force the Colab link repository
  nbsync sync --json                # Structured result for scripting`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSync(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.repo, "repo", "", "GitHub repository as OWNER/REPO (overrides detection)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Print the rendered block, write nothing")

	return cmd
}

// runSync executes the sync command.
func runSync(cmd *cobra.Command, flags *syncFlags) error {
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

	// The README must exist before any work happens; sync never creates it.
	readmePath := filepath.Join(root, cfg.Readme)
	var original string
	if !flags.dryRun {
		data, err := os.ReadFile(readmePath)
		if err != nil {
			if os.IsNotExist(err) {
				err = output.NewUserError(cfg.Readme + " が見つかりません: " + readmePath)
			} else {
				err = output.NewSystemErrorWithCause("reading "+readmePath, err)
			}
			printer.Error(err)
			return err
		}
		original = string(data)
	}

	repo, found := repoid.Detect(root, flags.repo, cfg.GitHubRepo)

	modules, err := scan.Modules(root, scan.Options{
		Extension: cfg.Extension,
		Readme:    cfg.Readme,
		Excluded:  cfg.Excluded,
	})
	if err != nil {
		printer.Error(err)
		return err
	}

	block := render.Block(modules, render.Options{RepoID: repo, Branch: cfg.Branch})

	if flags.dryRun {
		if printer.IsJSON() {
			return printer.Success(map[string]any{
				"block":   block,
				"repo":    repo,
				"modules": len(modules),
				"written": false,
			})
		}
		printer.Print("%s", block)
		return nil
	}

	updated, err := markers.Replace(original, block, cfg.BeginMarker, cfg.EndMarker)
	if err != nil {
		printer.Error(err)
		return err
	}

	written := updated != original
	if written {
		// Single full-text write; the new content was computed entirely
		// in memory before this point.
		if err := os.WriteFile(readmePath, []byte(updated), 0o644); err != nil {
			wrapped := output.NewSystemErrorWithCause("writing "+readmePath, err)
			printer.Error(wrapped)
			return wrapped
		}
	}

	message := cfg.Readme + " を更新しました。"
	if !written {
		message = cfg.Readme + " は更新不要でした。"
	}

	result := map[string]any{
		"message": message,
		"written": written,
		"repo":    repo,
		"modules": len(modules),
	}
	if err := printer.Success(result); err != nil {
		return err
	}

	if !found {
		printer.Stderr("NOTE: Colabリンクを生成するには環境変数 %s=\"OWNER/REPO\" を設定してください。\n", repoid.EnvVar)
	}
	return nil
}
