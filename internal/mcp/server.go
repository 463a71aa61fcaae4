// Package mcp provides a Model Context Protocol server for nbsync.
// It exposes the notebook scanner and renderer as read-only MCP tools.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/zikuu-space/nbsync/internal/config"
)

// NewServer creates an MCP server with all nbsync tools registered.
// The root and configuration are fixed at construction; every tool
// operates on the same repository.
func NewServer(version, root string, cfg config.Config) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "nbsync",
		Version: version,
	}, nil)
	registerTools(server, root, cfg)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
// Every nbsync tool is read-only: the README write stays behind the CLI.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all nbsync tools to the server.
func registerTools(server *mcp.Server, root string, cfg config.Config) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "modules",
		Description: "Enumerate top-level notebook module directories: directory name, display title, and notebook filenames.",
		Annotations: readOnlyAnnotations(),
	}, handleModules(root, cfg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render",
		Description: "Render the Markdown notebook list that sync would splice into the README, without writing anything.",
		Annotations: readOnlyAnnotations(),
	}, handleRender(root, cfg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Report repository state: root, README presence, marker presence and ordering, and the detected GitHub repository identifier.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(root, cfg))
}
