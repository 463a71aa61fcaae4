// Package output provides structured output handling for the nbsync CLI.
//
// This package handles both human-readable and JSON output formats so that
// every command works equally well for human users and automated callers.
//
// # Printer
//
// The Printer is the primary interface for command output. It switches format
// based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, output.IsTTY(cmd.OutOrStdout()))
//
//	// For success output
//	printer.Success(map[string]any{"message": "README.md updated", "written": true})
//
//	// For error output
//	printer.Error(err)
//
//	// For raw output
//	printer.Println("Some text")
//	printer.Print("Formatted: %s\n", value)
//
// # JSON Mode
//
// When JSON mode is enabled (via --json flag), all output is structured:
//
//	// Success: {"message": "...", "written": true, ...}
//	// Error: {"error": "message", "code": N}
//
// # Exit Codes
//
// The package defines standard exit codes and error types:
//
//	output.ExitSuccess     // 0: Success (including the no-op case)
//	output.ExitUserError   // 1: User error (missing README or markers)
//	output.ExitSystemError // 2: System error (git failed, I/O error)
//
// Use the error constructors to create properly-coded errors:
//
//	output.NewUserError("README.md not found")
//	output.NewSystemError("git command failed")
//
// These errors carry exit codes that are used for both JSON error output
// and process exit codes.
package output
