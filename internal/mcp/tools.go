package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/zikuu-space/nbsync/internal/config"
	"github.com/zikuu-space/nbsync/internal/render"
	"github.com/zikuu-space/nbsync/internal/repoid"
	"github.com/zikuu-space/nbsync/internal/scan"
)

// ModuleInfo is one notebook module for tool output.
type ModuleInfo struct {
	Dir       string   `json:"dir"       jsonschema:"top-level directory name"`
	Title     string   `json:"title"     jsonschema:"display title from the module README H1, or the directory name"`
	Notebooks []string `json:"notebooks" jsonschema:"notebook filenames, sorted"`
}

// --- Modules tool ---

// ModulesInput is the input for the modules tool (no parameters needed).
type ModulesInput struct{}

// ModulesOutput is the output for the modules tool.
type ModulesOutput struct {
	Count   int          `json:"count"             jsonschema:"number of notebook modules"`
	Modules []ModuleInfo `json:"modules,omitempty" jsonschema:"notebook modules ordered by directory name"`
}

func handleModules(root string, cfg config.Config) mcp.ToolHandlerFor[ModulesInput, ModulesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ModulesInput) (*mcp.CallToolResult, ModulesOutput, error) {
		modules, err := scan.Modules(root, scanOptions(cfg))
		if err != nil {
			return nil, ModulesOutput{}, fmt.Errorf("scanning modules: %w", err)
		}

		out := ModulesOutput{Count: len(modules)}
		for _, mod := range modules {
			out.Modules = append(out.Modules, ModuleInfo(mod))
		}
		return nil, out, nil
	}
}

// --- Render tool ---

// RenderInput is the input for the render tool.
type RenderInput struct {
	Repo string `json:"repo,omitempty" jsonschema:"OWNER/REPO override for Colab links; detected from env/config/remote when empty"`
}

// RenderOutput is the output for the render tool.
type RenderOutput struct {
	Block string `json:"block"          jsonschema:"the Markdown block sync would splice between the markers"`
	Repo  string `json:"repo,omitempty" jsonschema:"the repository identifier used for Colab links, if any"`
}

func handleRender(root string, cfg config.Config) mcp.ToolHandlerFor[RenderInput, RenderOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, RenderOutput, error) {
		modules, err := scan.Modules(root, scanOptions(cfg))
		if err != nil {
			return nil, RenderOutput{}, fmt.Errorf("scanning modules: %w", err)
		}

		repo, _ := repoid.Detect(root, input.Repo, cfg.GitHubRepo)
		block := render.Block(modules, render.Options{RepoID: repo, Branch: cfg.Branch})

		return nil, RenderOutput{Block: block, Repo: repo}, nil
	}
}

// --- Status tool ---

// StatusInput is the input for the status tool (no parameters needed).
type StatusInput struct{}

// StatusOutput is the output for the status tool.
type StatusOutput struct {
	Root         string `json:"root"           jsonschema:"repository root directory"`
	Readme       string `json:"readme"         jsonschema:"target README path"`
	ReadmeExists bool   `json:"readme_exists"  jsonschema:"whether the target README exists"`
	BeginFound   bool   `json:"begin_found"    jsonschema:"whether the BEGIN marker is present"`
	EndFound     bool   `json:"end_found"      jsonschema:"whether the END marker is present"`
	OrderOK      bool   `json:"order_ok"       jsonschema:"whether END comes after BEGIN"`
	Repo         string `json:"repo,omitempty" jsonschema:"detected OWNER/REPO identifier, if any"`
	ModuleCount  int    `json:"module_count"   jsonschema:"number of notebook modules"`
}

func handleStatus(root string, cfg config.Config) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		readmePath := filepath.Join(root, cfg.Readme)
		out := StatusOutput{
			Root:   root,
			Readme: readmePath,
		}

		if data, err := os.ReadFile(readmePath); err == nil {
			out.ReadmeExists = true
			text := string(data)
			beginIdx := strings.Index(text, cfg.BeginMarker)
			endIdx := strings.Index(text, cfg.EndMarker)
			out.BeginFound = beginIdx >= 0
			out.EndFound = endIdx >= 0
			out.OrderOK = out.BeginFound && out.EndFound && endIdx >= beginIdx+len(cfg.BeginMarker)
		}

		out.Repo, _ = repoid.Detect(root, "", cfg.GitHubRepo)

		modules, err := scan.Modules(root, scanOptions(cfg))
		if err != nil {
			return nil, StatusOutput{}, fmt.Errorf("scanning modules: %w", err)
		}
		out.ModuleCount = len(modules)

		return nil, out, nil
	}
}

// scanOptions maps the configuration onto scanner options.
func scanOptions(cfg config.Config) scan.Options {
	return scan.Options{
		Extension: cfg.Extension,
		Readme:    cfg.Readme,
		Excluded:  cfg.Excluded,
	}
}
