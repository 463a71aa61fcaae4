// Package main provides the entry point for the nbsync CLI.
package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zikuu-space/nbsync/internal/config"
	"github.com/zikuu-space/nbsync/internal/output"
	"github.com/zikuu-space/nbsync/internal/scan"
)

// listResult holds the data for list output.
type listResult struct {
	Root    string        `json:"root"`
	Count   int           `json:"count"`
	Modules []scan.Module `json:"modules"`
}

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	var notebooksFlag bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notebook module directories",
		Long: `List the top-level directories that contain notebook files.

Shows each module's directory, display title (from its README H1, falling
back to the directory name), and notebook count. Excluded and hidden
directories never appear, nor do directories without notebooks.

Examples:
  nbsync list              # One row per module
  nbsync list --notebooks  # Also list each notebook file
  nbsync list --json       # Full structure as JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, notebooksFlag)
		},
	}

	cmd.Flags().BoolVar(&notebooksFlag, "notebooks", false, "List individual notebook files")

	return cmd
}

// runList executes the list command.
func runList(cmd *cobra.Command, showNotebooks bool) error {
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

	modules, err := scan.Modules(root, scan.Options{
		Extension: cfg.Extension,
		Readme:    cfg.Readme,
		Excluded:  cfg.Excluded,
	})
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(listResult{Root: root, Count: len(modules), Modules: modules})
	}

	if len(modules) == 0 {
		printer.Println("no notebook modules found")
		return nil
	}

	if showNotebooks {
		for _, mod := range modules {
			printer.Print("%s (%s)\n", mod.Title, mod.Dir)
			for _, nb := range mod.Notebooks {
				printer.Print("  %s\n", nb)
			}
		}
		return nil
	}

	rows := make([][]string, 0, len(modules))
	for _, mod := range modules {
		rows = append(rows, []string{mod.Dir, mod.Title, strconv.Itoa(len(mod.Notebooks))})
	}
	printer.Table([]string{"DIR", "TITLE", "NOTEBOOKS"}, rows)
	return nil
}
