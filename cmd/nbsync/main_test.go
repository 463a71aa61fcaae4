// Package main provides the entry point for the nbsync CLI.
package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestRootCommand_Version(t *testing.T) {
	version = "1.2.3"

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--version"})

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "1.2.3") {
		t.Errorf("--version output should contain version: %q", output)
	}
	if !strings.Contains(output, "nbsync") {
		t.Errorf("--version output should contain 'nbsync': %q", output)
	}
}

func TestRootCommand_Help(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := buf.String()

	expectations := []string{
		"nbsync",
		"Usage:",
		"sync",
		"list",
		"check",
		"serve",
		"--json",
	}

	for _, expected := range expectations {
		if !strings.Contains(output, expected) {
			t.Errorf("--help output should contain %q: %q", expected, output)
		}
	}
}

func TestRootCommand_JSONFlag_NoSubcommand(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--json"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Expected error when running with --json but no subcommand")
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Expected JSON error output, got: %q", buf.String())
	}
	if _, ok := result["error"]; !ok {
		t.Errorf("JSON output should contain an error field: %v", result)
	}
}

func TestBuildVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		want    string
	}{
		{
			name:    "dev build",
			version: "dev",
			commit:  "none",
			date:    "unknown",
			want:    "dev",
		},
		{
			name:    "release build truncates commit",
			version: "1.0.0",
			commit:  "abcdef1234567890",
			date:    "2026-08-29",
			want:    "1.0.0 (abcdef1, 2026-08-29)",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			version = testCase.version
			commit = testCase.commit
			date = testCase.date
			if got := buildVersion(); got != testCase.want {
				t.Errorf("buildVersion() = %q, want %q", got, testCase.want)
			}
		})
	}
}

func TestRootDir_FlagValidation(t *testing.T) {
	_, _, err := execute(t, "list", "--root", "/nonexistent/path/for/nbsync")
	if err == nil {
		t.Fatal("expected error for nonexistent --root")
	}
	if !strings.Contains(err.Error(), "--root is not a directory") {
		t.Errorf("err = %v", err)
	}
}
