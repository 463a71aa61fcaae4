// Package main provides the entry point for the nbsync CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/zikuu-space/nbsync/internal/config"
	nbsyncmcp "github.com/zikuu-space/nbsync/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run nbsync as a Model Context Protocol (MCP) server over stdio.

This exposes the notebook scanner as read-only MCP tools that any
MCP-capable agent environment can use (Claude Code, Cursor, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "nbsync": {
        "command": "nbsync",
        "args": ["serve"]
      }
    }
  }

Available tools: modules, render, status`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := rootDir(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.Load(root)
			if err != nil {
				return err
			}
			server := nbsyncmcp.NewServer(buildVersion(), root, cfg)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
